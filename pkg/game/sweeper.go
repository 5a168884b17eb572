package game

import "github.com/cbodonnell/krismas/pkg/game/types"

// sweep removes tracked entities that have fallen below the visible area.
func (c *Controller) sweep() {
	tracked := make([]types.EntityID, 0, len(c.giftBoxes)+len(c.snowballs))
	tracked = append(tracked, c.giftBoxes...)
	tracked = append(tracked, c.snowballs...)

	bottom := float64(c.viewport.Height)
	for _, id := range tracked {
		position, ok := c.world.Position(id)
		if !ok {
			c.logger.Warn("Tracked entity %d is missing from the world", id)
			c.untrack(id)
			continue
		}
		if position.Y <= bottom {
			continue
		}
		if err := c.removeEntity(id); err != nil {
			c.logger.Error("Failed to sweep entity %d: %v", id, err)
			continue
		}
		c.logger.Trace("Swept entity %d at y=%0.1f", id, position.Y)
	}
}
