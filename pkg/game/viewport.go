package game

import (
	"fmt"

	"github.com/cbodonnell/krismas/pkg/game/types"
)

func (c *Controller) Viewport() types.Viewport {
	return c.viewport
}

// resize refits the camera to the new display size. Existing bodies,
// including the ground and the hoop, keep their position and size.
func (c *Controller) resize(e types.ViewportResizedEvent) error {
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Errorf("invalid viewport size %dx%d", e.Width, e.Height)
	}
	c.viewport = types.NewViewport(e.Width, e.Height)
	c.logger.Debug("Viewport resized to %dx%d", e.Width, e.Height)
	return nil
}
