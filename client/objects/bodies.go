package objects

import (
	"image/color"

	"github.com/cbodonnell/krismas/client/sprites"
	"github.com/cbodonnell/krismas/pkg/game/constants"
	"github.com/cbodonnell/krismas/pkg/game/types"
	"github.com/cbodonnell/krismas/pkg/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BodySource is anything that can report the bodies to render.
type BodySource interface {
	Bodies() []physics.BodyState
}

// BodiesObject renders every body of a simulation each frame, textured when
// the atlas has the texture and as a coloured placeholder otherwise.
type BodiesObject struct {
	*BaseObject

	source BodySource
	atlas  *sprites.Atlas
}

var placeholderColors = map[string]color.Color{
	constants.TextureGiftBox:  color.RGBA{0xc0, 0x39, 0x2b, 0xff},
	constants.TextureSnowball: color.RGBA{0xfa, 0xfa, 0xff, 0xff},
	constants.TextureHoop:     color.RGBA{0xe6, 0x7e, 0x22, 0xff},
}

func NewBodiesObject(id string, source BodySource, atlas *sprites.Atlas, zIndex int) *BodiesObject {
	return &BodiesObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		source:     source,
		atlas:      atlas,
	}
}

func (o *BodiesObject) Draw(screen *ebiten.Image) {
	for _, body := range o.source.Bodies() {
		render := body.Def.Render
		if render.Texture != "" {
			if img, ok := o.atlas.Get(render.Texture); ok {
				drawTexture(screen, img, body)
				continue
			}
			drawPlaceholder(screen, body, placeholderColors[render.Texture])
			continue
		}
		if render.Fill != nil {
			drawPlaceholder(screen, body, render.Fill)
		}
	}
}

func drawTexture(screen *ebiten.Image, img *ebiten.Image, body physics.BodyState) {
	scale := body.Def.Render.Scale
	if scale == 0 {
		scale = 1
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(body.Angle)
	op.GeoM.Translate(body.Position.X, body.Position.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func drawPlaceholder(screen *ebiten.Image, body physics.BodyState, clr color.Color) {
	if clr == nil {
		clr = color.White
	}
	x, y := float32(body.Position.X), float32(body.Position.Y)
	switch body.Def.Shape {
	case types.ShapeCircle:
		vector.DrawFilledCircle(screen, x, y, float32(body.Def.Radius), clr, true)
	case types.ShapeRing:
		vector.StrokeCircle(screen, x, y, float32(body.Def.Radius), float32(constants.HoopRimThickness*2), clr, true)
	case types.ShapeRectangle:
		w, h := float32(body.Def.Width), float32(body.Def.Height)
		vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h, clr, false)
	}
}
