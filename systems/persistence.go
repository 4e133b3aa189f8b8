package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/fpscontroller/components"
	cfg "github.com/automoto/fpscontroller/config"
	"github.com/automoto/fpscontroller/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const preferencesKey = "preferences"

// SavedPreferences represents the panel settings stored on disk
type SavedPreferences struct {
	MouseSensitivity float64 `json:"mouseSensitivity"`
	InvertY          bool    `json:"invertY"`
	Variant          string  `json:"variant"`
	Fullscreen       bool    `json:"fullscreen"`
	ResolutionIndex  int     `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "fpscontroller",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadPreferences loads preferences from disk. It returns nil, nil when
// nothing has been saved yet.
func LoadPreferences() (*SavedPreferences, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(preferencesKey)
	if err != nil {
		log.Printf("Warning: Could not load preferences: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var prefs SavedPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("Warning: Could not parse saved preferences: %v", err)
		return nil, err
	}
	return &prefs, nil
}

// SavePreferences saves preferences to disk
func SavePreferences(p *SavedPreferences) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize preferences: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(preferencesKey, data); err != nil {
		log.Printf("Warning: Could not save preferences: %v", err)
		return err
	}
	return nil
}

// SaveCurrentPreferences saves the values shown by the settings panel
func SaveCurrentPreferences(s *components.SettingsPanelData) {
	_ = SavePreferences(preferencesFromPanel(s))
}

func preferencesFromPanel(s *components.SettingsPanelData) *SavedPreferences {
	return &SavedPreferences{
		MouseSensitivity: s.MouseSensitivity,
		InvertY:          s.InvertY,
		Variant:          s.Variant.String(),
		Fullscreen:       s.Fullscreen,
		ResolutionIndex:  s.ResolutionIndex,
	}
}

// ApplyPreferencesGlobal applies saved preferences before the scene exists.
// The controller and pointer pick them up from config when they are created.
func ApplyPreferencesGlobal(saved *SavedPreferences) {
	if saved == nil {
		return
	}
	applyPreferences(saved, &cfg.Player.Controller, &cfg.Pointer, &cfg.SettingsPanel)

	ebiten.SetFullscreen(saved.Fullscreen)
	if !saved.Fullscreen {
		res := cfg.SettingsPanel.Resolutions[cfg.SettingsPanel.DefaultResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// applyPreferences copies the usable parts of saved into the config values.
// Out of range entries are ignored.
func applyPreferences(saved *SavedPreferences, s *controller.Settings, p *cfg.PointerConfig, panel *cfg.SettingsPanelConfig) {
	if saved.MouseSensitivity > 0 {
		s.MouseSensitivity = clampSensitivity(saved.MouseSensitivity, panel)
	}
	if v, ok := controller.ParseVariant(saved.Variant); ok {
		s.Variant = v
	}
	p.InvertY = saved.InvertY
	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(panel.Resolutions) {
		panel.DefaultResolutionIndex = saved.ResolutionIndex
	}
}

func clampSensitivity(v float64, panel *cfg.SettingsPanelConfig) float64 {
	if v < panel.MinSensitivity {
		return panel.MinSensitivity
	}
	if v > panel.MaxSensitivity {
		return panel.MaxSensitivity
	}
	return v
}
