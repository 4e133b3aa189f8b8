package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/fpscontroller/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTuning(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErr  bool
		validate func(t *testing.T, s controller.Settings)
	}{
		{
			name: "overrides present fields",
			content: `variant: extended
walking_speed: 4
jump_velocity: 6.5
mouse_sensitivity: 0.25
`,
			validate: func(t *testing.T, s controller.Settings) {
				assert.Equal(t, controller.Extended, s.Variant)
				assert.Equal(t, 4.0, s.WalkingSpeed)
				assert.Equal(t, 4.0, s.InitialSpeed, "initial speed follows walking speed")
				assert.Equal(t, 6.5, s.JumpVelocity)
				assert.Equal(t, 0.25, s.MouseSensitivity)
				assert.Equal(t, 8.0, s.SprintingSpeed, "untouched fields keep defaults")
			},
		},
		{
			name:    "empty document",
			content: "",
			validate: func(t *testing.T, s controller.Settings) {
				assert.Equal(t, controller.DefaultSettings(), s)
			},
		},
		{
			name:    "unknown field",
			content: "walk_speed: 4\n",
			wantErr: true,
		},
		{
			name:    "wrong type",
			content: "gravity: heavy\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning, err := ParseTuning(strings.NewReader(tt.content))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			s, err := tuning.Settings(controller.DefaultSettings())
			require.NoError(t, err)
			tt.validate(t, s)
		})
	}
}

func TestTuning_SettingsRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"unknown variant": "variant: advanced\n",
		"zero lerp":       "lerp_speed: 0\n",
		"negative speed":  "crouching_speed: -1\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			tuning, err := ParseTuning(strings.NewReader(content))
			require.NoError(t, err)

			base := controller.DefaultSettings()
			s, err := tuning.Settings(base)
			require.ErrorIs(t, err, controller.ErrInvalidSettings)
			assert.Equal(t, base, s)
		})
	}
}

func TestTuning_KeyBindings(t *testing.T) {
	tuning, err := ParseTuning(strings.NewReader(`bindings:
  move_jump: [Space, J]
  move_sprint: [ShiftRight]
`))
	require.NoError(t, err)

	bindings, err := tuning.KeyBindings()
	require.NoError(t, err)
	assert.Equal(t, []ebiten.Key{ebiten.KeySpace, ebiten.KeyJ}, bindings[controller.ActionJump])
	assert.Equal(t, []ebiten.Key{ebiten.KeyShiftRight}, bindings[controller.ActionSprint])

	for _, content := range []string{
		"bindings:\n  fly: [F]\n",
		"bindings:\n  move_jump: [NotAKey]\n",
	} {
		tuning, err := ParseTuning(strings.NewReader(content))
		require.NoError(t, err)
		_, err = tuning.KeyBindings()
		assert.Error(t, err, content)
	}
}

func TestApplyTuning(t *testing.T) {
	savedPlayer, savedPointer := Player, Pointer
	savedJump := Input.Bindings[controller.ActionJump]
	t.Cleanup(func() {
		Player, Pointer = savedPlayer, savedPointer
		Input.Bindings[controller.ActionJump] = savedJump
	})

	tuning, err := ParseTuning(strings.NewReader(`gravity: 12
invert_y: true
bindings:
  move_jump: [J]
`))
	require.NoError(t, err)
	require.NoError(t, ApplyTuning(tuning))

	assert.Equal(t, 12.0, Player.Controller.Gravity)
	assert.True(t, Pointer.InvertY)
	assert.Equal(t, []ebiten.Key{ebiten.KeyJ}, Input.Bindings[controller.ActionJump].Keys)
	assert.Equal(t, savedJump.StandardGamepadButtons, Input.Bindings[controller.ActionJump].StandardGamepadButtons,
		"gamepad buttons are kept")

	bad, err := ParseTuning(strings.NewReader("gravity: 20\nbindings:\n  nope: [J]\n"))
	require.NoError(t, err)
	require.Error(t, ApplyTuning(bad))
	assert.Equal(t, 12.0, Player.Controller.Gravity, "invalid tuning changes nothing")
}

func TestLoadTuning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sprinting_speed: 9\n"), 0o644))

	tuning, err := LoadTuning(path)
	require.NoError(t, err)
	require.NotNil(t, tuning.SprintingSpeed)
	assert.Equal(t, 9.0, *tuning.SprintingSpeed)

	_, err = LoadTuning(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.yaml")
}
