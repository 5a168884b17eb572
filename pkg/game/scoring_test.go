package game

import (
	"testing"

	"github.com/cbodonnell/krismas/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_scoring(t *testing.T) {
	world := newFakeWorld()
	var changes []types.ScoreChange
	c, err := NewController(NewControllerOptions{
		World:  world,
		Random: &sequence{values: append(giftBoxDraws(0.2), snowballDraws(0.8)...)},
		Width:  testWidth,
		Height: testHeight,
		OnScoreChange: func(change types.ScoreChange) {
			changes = append(changes, change)
		},
	})
	require.NoError(t, err)
	require.NoError(t, c.Bootstrap())

	gift, err := c.Spawn()
	require.NoError(t, err)
	snowball, err := c.Spawn()
	require.NoError(t, err)
	sensor := c.HoopSensor()
	giftPosition, ok := world.Position(gift)
	require.True(t, ok)

	// gift box contact, sensor second in the pair
	world.contacts = []types.ContactPair{{A: gift, B: sensor}}
	require.NoError(t, c.Tick(dt))

	assert.Equal(t, 10, c.Score())
	assert.Empty(t, c.GiftBoxes())
	assert.False(t, world.Contains(gift))
	_, tracked := c.Entity(gift)
	assert.False(t, tracked)
	require.Len(t, changes, 1)
	assert.Equal(t, types.ScoreChange{
		Entity:   types.Entity{ID: gift, Kind: types.EntityKindGiftBox},
		Delta:    10,
		Score:    10,
		Position: giftPosition,
	}, changes[0])

	// snowball contact, sensor first in the pair
	world.contacts = []types.ContactPair{{A: sensor, B: snowball}}
	require.NoError(t, c.Tick(dt))

	assert.Equal(t, 5, c.Score())
	assert.Empty(t, c.Snowballs())
	assert.False(t, world.Contains(snowball))
	require.Len(t, changes, 2)
	assert.Equal(t, -5, changes[1].Delta)
	assert.Equal(t, 5, changes[1].Score)
}

func TestController_scoring_noLowerBound(t *testing.T) {
	world := newFakeWorld()
	c := newTestController(t, world, &sequence{values: snowballDraws(0.5)})

	for i := 0; i < 3; i++ {
		id, err := c.Spawn()
		require.NoError(t, err)
		require.NoError(t, c.Dispatch(types.CollisionDetectedEvent{
			Pairs: []types.ContactPair{{A: c.HoopSensor(), B: id}},
		}))
	}

	assert.Equal(t, -15, c.Score())
	assert.Empty(t, c.Snowballs())
}

func TestController_scoring_ignoredPairs(t *testing.T) {
	world := newFakeWorld()
	c := newTestController(t, world, &sequence{values: append(giftBoxDraws(0.1), giftBoxDraws(0.9)...)})
	a, err := c.Spawn()
	require.NoError(t, err)
	b, err := c.Spawn()
	require.NoError(t, err)

	require.NoError(t, c.Dispatch(types.CollisionDetectedEvent{Pairs: []types.ContactPair{
		{A: a, B: b},
		{A: a, B: c.Ground()},
		{A: c.HoopOuter(), B: b},
		{A: c.HoopSensor(), B: c.HoopOuter()},
		{A: c.HoopSensor(), B: 999},
	}}))

	assert.Equal(t, 0, c.Score())
	assert.Equal(t, []types.EntityID{a, b}, c.GiftBoxes())
	assert.Empty(t, world.removed)
}

func TestController_scoring_samePairTwice(t *testing.T) {
	world := newFakeWorld()
	c := newTestController(t, world, &sequence{values: giftBoxDraws(0.5)})
	id, err := c.Spawn()
	require.NoError(t, err)

	require.NoError(t, c.Dispatch(types.CollisionDetectedEvent{Pairs: []types.ContactPair{
		{A: c.HoopSensor(), B: id},
		{A: id, B: c.HoopSensor()},
	}}))

	assert.Equal(t, 10, c.Score())
	assert.Equal(t, []types.EntityID{id}, world.removed)
}
