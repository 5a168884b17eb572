package game

import (
	"fmt"

	"github.com/cbodonnell/krismas/pkg/game/constants"
	"github.com/cbodonnell/krismas/pkg/game/types"
	"github.com/cbodonnell/krismas/pkg/kinematic"
)

// ReleaseVelocity converts the drag displacement at release into a launch
// velocity in pixels per tick. The displacement is capped to
// MaxReleaseVelocity before the release multiplier is applied, so the result
// never exceeds MaxReleaseVelocity*ReleaseMultiplier in length.
func ReleaseVelocity(displacement kinematic.Vector) kinematic.Vector {
	scale := displacement.Clamp(constants.MaxReleaseVelocity)
	return displacement.Scale(constants.ReleaseMultiplier * scale)
}

// KindReleaseMultiplier is the per kind throw rate. Gift boxes are heavier.
func KindReleaseMultiplier(kind types.EntityKind) float64 {
	if kind == types.EntityKindGiftBox {
		return constants.GiftBoxReleaseMultiplier
	}
	return constants.SnowballReleaseMultiplier
}

func (c *Controller) handleDragReleased(e types.DragReleasedEvent) error {
	entity, ok := c.entities[e.EntityID]
	if !ok || !entity.Kind.IsTracked() {
		return nil
	}

	position, ok := c.world.Position(entity.ID)
	if !ok {
		c.logger.Warn("Released %s %d is not in the world", entity.Kind, entity.ID)
		return nil
	}

	// TODO: switch to KindReleaseMultiplier once heavier gift box throws are signed off.
	displacement := e.Pointer.Sub(position)
	velocity := ReleaseVelocity(displacement)
	if err := c.world.SetVelocity(entity.ID, velocity); err != nil {
		return fmt.Errorf("failed to set velocity of %s %d: %v", entity.Kind, entity.ID, err)
	}

	switch entity.Kind {
	case types.EntityKindGiftBox:
		c.logger.Debug("Giftbox thrown! velocity=(%0.2f, %0.2f) kind rate %0.2f", velocity.X, velocity.Y, KindReleaseMultiplier(entity.Kind))
	case types.EntityKindSnowball:
		c.logger.Debug("Snowball thrown! velocity=(%0.2f, %0.2f) kind rate %0.2f", velocity.X, velocity.Y, KindReleaseMultiplier(entity.Kind))
	}
	return nil
}
