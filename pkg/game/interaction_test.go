package game

import (
	"testing"

	mocks "github.com/cbodonnell/krismas/mocks/github.com/cbodonnell/krismas/pkg/game"
	"github.com/cbodonnell/krismas/pkg/game/constants"
	"github.com/cbodonnell/krismas/pkg/game/types"
	"github.com/cbodonnell/krismas/pkg/kinematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReleaseVelocity(t *testing.T) {
	tests := []struct {
		name         string
		displacement kinematic.Vector
		want         kinematic.Vector
	}{
		{name: "capped horizontal drag", displacement: kinematic.Vector{X: 100, Y: 0}, want: kinematic.Vector{X: 4, Y: 0}},
		{name: "zero displacement", displacement: kinematic.Vector{}, want: kinematic.Vector{}},
		{name: "short drag is not scaled", displacement: kinematic.Vector{X: 3, Y: -4}, want: kinematic.Vector{X: 0.6, Y: -0.8}},
		{name: "exactly at the cap", displacement: kinematic.Vector{X: 0, Y: 20}, want: kinematic.Vector{X: 0, Y: 4}},
		{name: "capped diagonal drag", displacement: kinematic.Vector{X: -300, Y: 400}, want: kinematic.Vector{X: -2.4, Y: 3.2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReleaseVelocity(tt.displacement)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestReleaseVelocity_neverExceedsCap(t *testing.T) {
	limit := constants.MaxReleaseVelocity * constants.ReleaseMultiplier
	for x := -1000.0; x <= 1000; x += 37 {
		for y := -1000.0; y <= 1000; y += 41 {
			got := ReleaseVelocity(kinematic.Vector{X: x, Y: y})
			assert.LessOrEqual(t, got.Length(), limit+1e-9)
		}
	}
}

func TestKindReleaseMultiplier(t *testing.T) {
	assert.Equal(t, constants.GiftBoxReleaseMultiplier, KindReleaseMultiplier(types.EntityKindGiftBox))
	assert.Equal(t, constants.SnowballReleaseMultiplier, KindReleaseMultiplier(types.EntityKindSnowball))
	assert.Less(t, KindReleaseMultiplier(types.EntityKindGiftBox), KindReleaseMultiplier(types.EntityKindSnowball))
}

func velocityNear(want kinematic.Vector) interface{} {
	return mock.MatchedBy(func(v kinematic.Vector) bool {
		return v.Sub(want).Length() < 1e-9
	})
}

func TestController_DragReleased(t *testing.T) {
	tests := []struct {
		name  string
		draws []float64
	}{
		{name: "gift box", draws: giftBoxDraws(0.5)},
		{name: "snowball", draws: snowballDraws(0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := mocks.NewWorld(t)
			world.EXPECT().AddBody(mock.Anything).Return(nil).Times(4)

			c := newTestController(t, world, &sequence{values: tt.draws})
			id, err := c.Spawn()
			require.NoError(t, err)

			// both kinds are thrown at the same rate
			world.EXPECT().Position(id).Return(kinematic.Vector{X: 400, Y: 200}, true).Once()
			world.EXPECT().SetVelocity(id, velocityNear(kinematic.Vector{X: 4, Y: 0})).Return(nil).Once()

			require.NoError(t, c.Dispatch(types.DragReleasedEvent{
				EntityID: id,
				Pointer:  kinematic.Vector{X: 500, Y: 200},
			}))
		})
	}
}

func TestController_DragReleased_ignoresUntrackedBodies(t *testing.T) {
	world := mocks.NewWorld(t)
	world.EXPECT().AddBody(mock.Anything).Return(nil).Times(3)

	c := newTestController(t, world, &sequence{values: []float64{0}})

	for _, id := range []types.EntityID{c.Ground(), c.HoopOuter(), c.HoopSensor(), 999} {
		require.NoError(t, c.Dispatch(types.DragReleasedEvent{
			EntityID: id,
			Pointer:  kinematic.Vector{X: 10, Y: 10},
		}))
	}
	// no Position or SetVelocity expectations: any call fails the test
}

func TestController_DragReleased_zeroDisplacement(t *testing.T) {
	world := newFakeWorld()
	c := newTestController(t, world, &sequence{values: giftBoxDraws(0.5)})
	id, err := c.Spawn()
	require.NoError(t, err)

	pointer, _ := world.Position(id)
	require.NoError(t, c.Dispatch(types.DragReleasedEvent{EntityID: id, Pointer: pointer}))

	assert.Equal(t, kinematic.Vector{}, world.velocities[id])
}
