package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/krismas/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextOverlayObject draws upper-cased text centred horizontally at a fixed
// fraction of the screen height.
type TextOverlayObject struct {
	*BaseObject

	text   string
	yRatio float64
	clr    color.Color
}

func NewTextOverlayObject(id string, text string, yRatio float64, clr color.Color) GameObject {
	if clr == nil {
		clr = color.White
	}
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, nil),
		text:       text,
		yRatio:     yRatio,
		clr:        clr,
	}
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	t := strings.ToUpper(o.text)
	f := fonts.MPlusLargeFont
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64(bounds.Max.X>>6)/2, float64(screen.Bounds().Dy())*o.yRatio)
	op.ColorScale.ScaleWithColor(o.clr)
	text.DrawWithOptions(screen, t, f, op)
}
