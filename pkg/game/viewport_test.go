package game

import (
	"testing"

	"github.com/cbodonnell/krismas/pkg/game/types"
	"github.com/cbodonnell/krismas/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_resize(t *testing.T) {
	world := newFakeWorld()
	c := newTestController(t, world, &sequence{values: giftBoxDraws(0.5)})
	id, err := c.Spawn()
	require.NoError(t, err)

	before := make(map[types.EntityID]kinematic.Vector)
	for bodyID, p := range world.positions {
		before[bodyID] = p
	}

	require.NoError(t, c.Dispatch(types.ViewportResizedEvent{Width: 1280, Height: 720}))

	v := c.Viewport()
	assert.Equal(t, 1280, v.Width)
	assert.Equal(t, 720, v.Height)
	assert.Equal(t, kinematic.Vector{X: 0, Y: 0}, v.CameraMin)
	assert.Equal(t, kinematic.Vector{X: 1280, Y: 720}, v.CameraMax)

	assert.Equal(t, before, world.positions)
	assert.Equal(t, float64(testWidth), world.defs[c.Ground()].Width)
	assert.Equal(t, kinematic.Vector{X: 400, Y: 300}, world.defs[c.HoopOuter()].Position)
	assert.True(t, world.Contains(id))
}

func TestController_resize_invalid(t *testing.T) {
	c := newTestController(t, newFakeWorld(), &sequence{values: []float64{0}})

	assert.Error(t, c.Dispatch(types.ViewportResizedEvent{Width: 0, Height: 720}))
	assert.Error(t, c.Dispatch(types.ViewportResizedEvent{Width: 1280, Height: -1}))
	assert.Equal(t, types.NewViewport(testWidth, testHeight), c.Viewport())
}
