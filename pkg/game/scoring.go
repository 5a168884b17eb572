package game

import (
	"github.com/cbodonnell/krismas/pkg/game/constants"
	"github.com/cbodonnell/krismas/pkg/game/types"
)

// handleCollisions scores every tracked entity that touched the hoop sensor.
func (c *Controller) handleCollisions(e types.CollisionDetectedEvent) {
	for _, pair := range e.Pairs {
		var other types.EntityID
		switch c.hoopSensor {
		case pair.A:
			other = pair.B
		case pair.B:
			other = pair.A
		default:
			continue
		}

		// a body may appear in more than one pair; only the first one scores
		entity, ok := c.entities[other]
		if !ok {
			continue
		}

		var delta int
		switch entity.Kind {
		case types.EntityKindGiftBox:
			delta = constants.GiftBoxReward
		case types.EntityKindSnowball:
			delta = -constants.SnowballPenalty
		default:
			continue
		}

		position, _ := c.world.Position(entity.ID)
		c.score += delta
		if err := c.removeEntity(entity.ID); err != nil {
			c.logger.Error("Failed to remove scored %s: %v", entity.Kind, err)
		}
		c.logger.Debug("%s %d landed in the hoop, score %d", entity.Kind, entity.ID, c.score)

		if c.onScoreChange != nil {
			c.onScoreChange(types.ScoreChange{
				Entity:   entity,
				Delta:    delta,
				Score:    c.score,
				Position: position,
			})
		}
	}
}
