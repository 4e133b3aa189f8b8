package systems

import (
	"image/color"
	"math"
	"testing"

	cfg "github.com/automoto/fpscontroller/config"
	"github.com/automoto/fpscontroller/physics"
	"github.com/stretchr/testify/assert"
)

func TestFitMap(t *testing.T) {
	// 20 x 16 m on 960 x 540 with a 20 px margin is height-bound.
	v := fitMap(20, 16, 960, 540, 20)

	assert.InDelta(t, 31.25, v.scale, 1e-9)
	x, y := v.point(0, 0)
	assert.InDelta(t, 167.5, x, 1e-4)
	assert.InDelta(t, 20, y, 1e-4)
	x, y = v.point(20, 16)
	assert.InDelta(t, 792.5, x, 1e-4)
	assert.InDelta(t, 520, y, 1e-4)
}

func TestForward(t *testing.T) {
	f := forward(0)
	assert.InDelta(t, 0, f.X(), 1e-12)
	assert.InDelta(t, -1, f.Y(), 1e-12)

	f = forward(math.Pi / 2)
	assert.InDelta(t, -1, f.X(), 1e-12)
	assert.InDelta(t, 0, f.Y(), 1e-12)
}

func TestWallColor(t *testing.T) {
	tests := []struct {
		name  string
		solid physics.Solid
		want  color.RGBA
	}{
		{"full wall", physics.Solid{Top: 3}, cfg.Map.WallColor},
		{"crate", physics.Solid{Top: 0.8}, cfg.Map.LowWallColor},
		{"overhang", physics.Solid{Bottom: 1.6, Top: 2.4}, cfg.Map.OverheadColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wallColor(&tt.solid, 1.9))
		})
	}
}

func TestFade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	assert.Equal(t, color.RGBA{}, fade(c, 0))
	assert.Equal(t, c, fade(c, 1))
	assert.Equal(t, c, fade(c, 3))
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 127}, fade(c, 0.5))
}
