package controller

import "fmt"

// Variant selects the controller generation.
type Variant int

const (
	// Basic moves, jumps and crouches.
	Basic Variant = iota
	// Extended adds free-look on the neck pivot.
	Extended
)

func (v Variant) String() string {
	switch v {
	case Basic:
		return "basic"
	case Extended:
		return "extended"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant is the inverse of Variant.String.
func ParseVariant(name string) (Variant, bool) {
	switch name {
	case "basic":
		return Basic, true
	case "extended":
		return Extended, true
	}
	return 0, false
}

// Settings holds the controller tunables. Angles are in degrees, distances in
// metres and speeds in metres per second.
type Settings struct {
	Variant Variant

	WalkingSpeed   float64
	SprintingSpeed float64
	CrouchingSpeed float64
	InitialSpeed   float64
	JumpVelocity   float64
	Gravity        float64

	// LerpSpeed is the exponential approach rate per second for head height,
	// direction smoothing and free-look recentering.
	LerpSpeed float64

	StandingHeight  float64
	CrouchingHeight float64

	MouseSensitivity float64
	PitchLimit       float64
	FreeLookLimit    float64

	// StopThreshold is the smoothed direction length under which horizontal
	// velocity decelerates instead of following the direction.
	StopThreshold float64
}

// DefaultSettings returns the stock tuning.
func DefaultSettings() Settings {
	return Settings{
		Variant:          Basic,
		WalkingSpeed:     5.0,
		SprintingSpeed:   8.0,
		CrouchingSpeed:   3.0,
		InitialSpeed:     5.0,
		JumpVelocity:     4.5,
		Gravity:          9.8,
		LerpSpeed:        10.0,
		StandingHeight:   1.8,
		CrouchingHeight:  1.3,
		MouseSensitivity: 0.1,
		PitchLimit:       89,
		FreeLookLimit:    120,
		StopThreshold:    1e-3,
	}
}

// Validate reports the first tunable that would break the controller.
func (s Settings) Validate() error {
	switch {
	case s.Variant != Basic && s.Variant != Extended:
		return fmt.Errorf("%w: unknown variant %d", ErrInvalidSettings, int(s.Variant))
	case s.LerpSpeed <= 0:
		return fmt.Errorf("%w: lerp speed must be positive", ErrInvalidSettings)
	case s.WalkingSpeed <= 0 || s.SprintingSpeed <= 0 || s.CrouchingSpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidSettings)
	case s.Gravity < 0:
		return fmt.Errorf("%w: gravity must not be negative", ErrInvalidSettings)
	case s.PitchLimit <= 0 || s.FreeLookLimit <= 0:
		return fmt.Errorf("%w: look limits must be positive", ErrInvalidSettings)
	case s.StopThreshold < 0:
		return fmt.Errorf("%w: stop threshold must not be negative", ErrInvalidSettings)
	}
	return nil
}
