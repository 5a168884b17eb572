package physics

import (
	"testing"

	"github.com/cbodonnell/krismas/pkg/game/constants"
	"github.com/cbodonnell/krismas/pkg/game/types"
	"github.com/cbodonnell/krismas/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / constants.TicksPerSecond

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(NewWorldOptions{
		Gravity:        constants.Gravity,
		TicksPerSecond: constants.TicksPerSecond,
	})
	require.NoError(t, err)
	return w
}

func entityDef(id types.EntityID, kind types.EntityKind, x, y float64) types.BodyDef {
	return types.BodyDef{
		Entity:      types.Entity{ID: id, Kind: kind},
		Shape:       types.ShapeCircle,
		Position:    kinematic.Vector{X: x, Y: y},
		Radius:      constants.EntityRadius,
		Restitution: constants.EntityRestitution,
	}
}

func groundDef(id types.EntityID, width, height float64) types.BodyDef {
	return types.BodyDef{
		Entity:      types.Entity{ID: id, Kind: types.EntityKindStatic},
		Shape:       types.ShapeRectangle,
		Position:    kinematic.Vector{X: width / 2, Y: height - constants.GroundOffset},
		Width:       width,
		Height:      constants.GroundHeight,
		Restitution: constants.StaticRestitution,
	}
}

func sensorDef(id types.EntityID, x, y float64) types.BodyDef {
	return types.BodyDef{
		Entity:   types.Entity{ID: id, Kind: types.EntityKindSensor},
		Shape:    types.ShapeCircle,
		Position: kinematic.Vector{X: x, Y: y},
		Radius:   constants.HoopInnerRadius,
	}
}

func TestNewWorld_invalidTickRate(t *testing.T) {
	_, err := NewWorld(NewWorldOptions{Gravity: constants.Gravity})
	assert.Error(t, err)
}

func TestWorld_AddRemoveBody(t *testing.T) {
	w := newTestWorld(t)

	require.NoError(t, w.AddBody(entityDef(1, types.EntityKindGiftBox, 100, 100)))
	assert.True(t, w.Contains(1))
	assert.Equal(t, 1, w.BodyCount())

	err := w.AddBody(entityDef(1, types.EntityKindSnowball, 200, 100))
	assert.ErrorIs(t, err, ErrDuplicateBody)

	pos, ok := w.Position(1)
	require.True(t, ok)
	assert.Equal(t, kinematic.Vector{X: 100, Y: 100}, pos)

	require.NoError(t, w.RemoveBody(1))
	assert.False(t, w.Contains(1))
	_, ok = w.Position(1)
	assert.False(t, ok)

	assert.ErrorIs(t, w.RemoveBody(1), ErrBodyNotFound)
}

func TestWorld_gravityPullsEntitiesDown(t *testing.T) {
	w := newTestWorld(t)
	require.NoError(t, w.AddBody(entityDef(1, types.EntityKindSnowball, 100, 85)))

	for i := 0; i < 30; i++ {
		w.Step(dt)
	}

	pos, ok := w.Position(1)
	require.True(t, ok)
	assert.Greater(t, pos.Y, 85.0)
	assert.InDelta(t, 100, pos.X, 1e-6)
}

func TestWorld_groundStopsEntities(t *testing.T) {
	w := newTestWorld(t)
	require.NoError(t, w.AddBody(groundDef(1, 800, 600)))
	require.NoError(t, w.AddBody(entityDef(2, types.EntityKindGiftBox, 400, 85)))

	for i := 0; i < 10*constants.TicksPerSecond; i++ {
		w.Step(dt)
	}

	pos, ok := w.Position(2)
	require.True(t, ok)
	groundTop := 600 - constants.GroundOffset - constants.GroundHeight/2
	assert.Less(t, pos.Y, groundTop)
	assert.Greater(t, pos.Y, groundTop-2*constants.EntityRadius)
}

func TestWorld_sensorContactIsReported(t *testing.T) {
	w := newTestWorld(t)
	require.NoError(t, w.AddBody(sensorDef(1, 400, 300)))
	require.NoError(t, w.AddBody(entityDef(2, types.EntityKindGiftBox, 400, 300)))

	pairs := w.Step(dt)
	require.Len(t, pairs, 1)
	assert.ElementsMatch(t, []types.EntityID{1, 2}, []types.EntityID{pairs[0].A, pairs[0].B})

	// a sensor does not push bodies around
	pos, ok := w.Position(2)
	require.True(t, ok)
	assert.InDelta(t, 400, pos.X, 1e-6)

	// contact already began, so it is not reported again
	assert.Empty(t, w.Step(dt))
}

func TestWorld_SetVelocity(t *testing.T) {
	w, err := NewWorld(NewWorldOptions{TicksPerSecond: constants.TicksPerSecond})
	require.NoError(t, err)
	require.NoError(t, w.AddBody(entityDef(1, types.EntityKindSnowball, 100, 100)))
	require.NoError(t, w.AddBody(groundDef(2, 800, 600)))

	require.NoError(t, w.SetVelocity(1, kinematic.Vector{X: 4, Y: 0}))
	v, ok := w.Velocity(1)
	require.True(t, ok)
	assert.InDelta(t, 4, v.X, 1e-9)
	assert.InDelta(t, 0, v.Y, 1e-9)

	w.Step(dt)
	pos, _ := w.Position(1)
	assert.InDelta(t, 104, pos.X, 1e-6)

	assert.Error(t, w.SetVelocity(2, kinematic.Vector{X: 1}))
	assert.ErrorIs(t, w.SetVelocity(3, kinematic.Vector{X: 1}), ErrBodyNotFound)
}

func TestWorld_hoopRimIsOpenAtTheTop(t *testing.T) {
	w := newTestWorld(t)
	require.NoError(t, w.AddBody(types.BodyDef{
		Entity:      types.Entity{ID: 1, Kind: types.EntityKindStatic},
		Shape:       types.ShapeRing,
		Position:    kinematic.Vector{X: 400, Y: 300},
		Radius:      constants.HoopOuterRadius,
		Restitution: constants.StaticRestitution,
	}))
	require.NoError(t, w.AddBody(sensorDef(2, 400, 300)))
	require.NoError(t, w.AddBody(entityDef(3, types.EntityKindGiftBox, 400, constants.SpawnY)))

	var contacts []types.ContactPair
	for i := 0; i < constants.TicksPerSecond && len(contacts) == 0; i++ {
		contacts = w.Step(dt)
	}
	require.NotEmpty(t, contacts)
}

func TestWorld_Bodies(t *testing.T) {
	w := newTestWorld(t)
	require.NoError(t, w.AddBody(entityDef(3, types.EntityKindSnowball, 300, 100)))
	require.NoError(t, w.AddBody(groundDef(1, 800, 600)))
	require.NoError(t, w.AddBody(entityDef(2, types.EntityKindGiftBox, 200, 100)))

	bodies := w.Bodies()
	require.Len(t, bodies, 3)
	assert.Equal(t, types.EntityID(1), bodies[0].Def.Entity.ID)
	assert.Equal(t, types.EntityID(2), bodies[1].Def.Entity.ID)
	assert.Equal(t, types.EntityID(3), bodies[2].Def.Entity.ID)
	assert.Equal(t, kinematic.Vector{X: 200, Y: 100}, bodies[1].Position)
}
