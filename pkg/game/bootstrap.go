package game

import (
	"image/color"

	"github.com/cbodonnell/krismas/pkg/game/constants"
	"github.com/cbodonnell/krismas/pkg/game/types"
	"github.com/cbodonnell/krismas/pkg/kinematic"
)

// boundaryDefs describes the static geometry for the current viewport:
// a full width ground near the bottom and a hoop at the centre.
func (c *Controller) boundaryDefs() []types.BodyDef {
	w, h := float64(c.viewport.Width), float64(c.viewport.Height)
	hoopCenter := kinematic.Vector{X: w / 2, Y: h / 2}

	c.ground = c.allocateID()
	c.hoopOuter = c.allocateID()
	c.hoopSensor = c.allocateID()

	return []types.BodyDef{
		{
			Entity:      types.Entity{ID: c.ground, Kind: types.EntityKindStatic},
			Shape:       types.ShapeRectangle,
			Position:    kinematic.Vector{X: w / 2, Y: h - constants.GroundOffset},
			Width:       w,
			Height:      constants.GroundHeight,
			Restitution: constants.StaticRestitution,
			Render: types.RenderDef{
				Fill: color.RGBA{0xff, 0xff, 0xff, 0xff},
			},
		},
		{
			Entity:      types.Entity{ID: c.hoopOuter, Kind: types.EntityKindStatic},
			Shape:       types.ShapeRing,
			Position:    hoopCenter,
			Radius:      constants.HoopOuterRadius,
			Restitution: constants.StaticRestitution,
			Render: types.RenderDef{
				Texture: constants.TextureHoop,
				Scale:   constants.HoopSpriteScale,
			},
		},
		{
			Entity:   types.Entity{ID: c.hoopSensor, Kind: types.EntityKindSensor},
			Shape:    types.ShapeCircle,
			Position: hoopCenter,
			Radius:   constants.HoopInnerRadius,
		},
	}
}
