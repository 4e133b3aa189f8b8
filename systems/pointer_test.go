package systems

import (
	"testing"

	"github.com/automoto/fpscontroller/components"
	"github.com/stretchr/testify/assert"
)

func TestPointerDeltaSkipsFirstSample(t *testing.T) {
	p := &components.PointerData{}

	dx, dy := pointerDelta(p, 400, 300)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.True(t, p.Tracking)

	dx, dy = pointerDelta(p, 410, 295)
	assert.Equal(t, 10.0, dx)
	assert.Equal(t, -5.0, dy)

	dx, dy = pointerDelta(p, 410, 295)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestPointerDeltaAfterModeChange(t *testing.T) {
	p := &components.PointerData{Tracking: true, LastX: 10, LastY: 10}
	p.Tracking = false

	dx, dy := pointerDelta(p, 900, 700)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.Equal(t, 900, p.LastX)
	assert.Equal(t, 700, p.LastY)
}
