package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsPanelConfig contains the settings panel configuration
type SettingsPanelConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	SensitivityStep        float64
	MinSensitivity         float64
	MaxSensitivity         float64
}

// SettingsPanel is the global settings panel configuration
var SettingsPanel SettingsPanelConfig

func init() {
	SettingsPanel = SettingsPanelConfig{
		Resolutions: []Resolution{
			{Width: 960, Height: 540, Label: "960 x 540"},
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 0,
		SensitivityStep:        0.02,
		MinSensitivity:         0.02,
		MaxSensitivity:         1.0,
	}
}
