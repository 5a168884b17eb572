package game

import (
	"fmt"

	"github.com/cbodonnell/krismas/pkg/game/constants"
	"github.com/cbodonnell/krismas/pkg/game/types"
	"github.com/cbodonnell/krismas/pkg/kinematic"
)

// Spawn creates a gift box or a snowball at a random horizontal position near
// the top of the display and starts tracking it.
func (c *Controller) Spawn() (types.EntityID, error) {
	if !c.bootstrapped {
		return 0, ErrNotBootstrapped
	}

	span := float64(c.viewport.Width) - 2*constants.SpawnMargin
	if span < 0 {
		span = 0
	}
	x := c.random.Float64()*span + constants.SpawnMargin

	kind, texture := types.EntityKindSnowball, constants.TextureSnowball
	if c.random.Float64() < constants.GiftBoxProbability {
		kind, texture = types.EntityKindGiftBox, constants.TextureGiftBox
	}

	entity := types.Entity{ID: c.allocateID(), Kind: kind}
	def := types.BodyDef{
		Entity:      entity,
		Shape:       types.ShapeCircle,
		Position:    kinematic.Vector{X: x, Y: constants.SpawnY},
		Radius:      constants.EntityRadius,
		Restitution: constants.EntityRestitution,
		Render: types.RenderDef{
			Texture: texture,
			Scale:   constants.EntitySpriteScale,
		},
	}
	if err := c.world.AddBody(def); err != nil {
		return 0, fmt.Errorf("failed to add %s body: %v", kind, err)
	}
	c.track(entity)

	c.logger.Debug("Spawned %s %d at x=%0.1f", kind, entity.ID, x)
	return entity.ID, nil
}
