package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/automoto/fpscontroller/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Tuning is an optional override file. Only the fields present in the file
// change; everything else keeps its current value.
type Tuning struct {
	Variant          *string  `yaml:"variant"`
	WalkingSpeed     *float64 `yaml:"walking_speed"`
	SprintingSpeed   *float64 `yaml:"sprinting_speed"`
	CrouchingSpeed   *float64 `yaml:"crouching_speed"`
	JumpVelocity     *float64 `yaml:"jump_velocity"`
	Gravity          *float64 `yaml:"gravity"`
	LerpSpeed        *float64 `yaml:"lerp_speed"`
	StandingHeight   *float64 `yaml:"standing_height"`
	CrouchingHeight  *float64 `yaml:"crouching_height"`
	MouseSensitivity *float64 `yaml:"mouse_sensitivity"`
	PitchLimit       *float64 `yaml:"pitch_limit"`
	FreeLookLimit    *float64 `yaml:"free_look_limit"`
	InvertY          *bool    `yaml:"invert_y"`

	// Bindings replaces the keyboard keys of an action, keyed by action name
	// ("move_jump") with ebiten key names ("Space").
	Bindings map[string][]string `yaml:"bindings"`
}

// LoadTuning reads and parses a tuning file.
func LoadTuning(path string) (*Tuning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tuning %s: %w", path, err)
	}
	defer f.Close()

	t, err := ParseTuning(f)
	if err != nil {
		return nil, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	return t, nil
}

// ParseTuning decodes a tuning document. Unknown fields are rejected.
func ParseTuning(r io.Reader) (*Tuning, error) {
	var t Tuning
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &t, nil
}

// Settings returns base with the tuning applied and validated.
func (t *Tuning) Settings(base controller.Settings) (controller.Settings, error) {
	s := base
	if t.Variant != nil {
		v, ok := controller.ParseVariant(*t.Variant)
		if !ok {
			return base, fmt.Errorf("%w: unknown variant %q", controller.ErrInvalidSettings, *t.Variant)
		}
		s.Variant = v
	}
	set(&s.WalkingSpeed, t.WalkingSpeed)
	set(&s.SprintingSpeed, t.SprintingSpeed)
	set(&s.CrouchingSpeed, t.CrouchingSpeed)
	set(&s.JumpVelocity, t.JumpVelocity)
	set(&s.Gravity, t.Gravity)
	set(&s.LerpSpeed, t.LerpSpeed)
	set(&s.StandingHeight, t.StandingHeight)
	set(&s.CrouchingHeight, t.CrouchingHeight)
	set(&s.MouseSensitivity, t.MouseSensitivity)
	set(&s.PitchLimit, t.PitchLimit)
	set(&s.FreeLookLimit, t.FreeLookLimit)
	if t.WalkingSpeed != nil {
		s.InitialSpeed = *t.WalkingSpeed
	}

	if err := s.Validate(); err != nil {
		return base, err
	}
	return s, nil
}

// KeyBindings resolves the Bindings section.
func (t *Tuning) KeyBindings() (map[controller.Action][]ebiten.Key, error) {
	out := make(map[controller.Action][]ebiten.Key, len(t.Bindings))
	for name, keyNames := range t.Bindings {
		action, ok := controller.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		keys := make([]ebiten.Key, 0, len(keyNames))
		for _, kn := range keyNames {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(kn)); err != nil {
				return nil, fmt.Errorf("action %s: %w", name, err)
			}
			keys = append(keys, k)
		}
		out[action] = keys
	}
	return out, nil
}

// ApplyTuning validates t and then updates Player, Pointer and Input. Nothing
// changes when t is invalid.
func ApplyTuning(t *Tuning) error {
	settings, err := t.Settings(Player.Controller)
	if err != nil {
		return err
	}
	bindings, err := t.KeyBindings()
	if err != nil {
		return err
	}

	Player.Controller = settings
	if t.InvertY != nil {
		Pointer.InvertY = *t.InvertY
	}
	for action, keys := range bindings {
		b := Input.Bindings[action]
		b.Keys = keys
		Input.Bindings[action] = b
	}
	return nil
}

func set(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
