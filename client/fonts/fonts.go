package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const dpi = 72

var (
	// MPlusLargeFont is the title face.
	MPlusLargeFont font.Face
	// TTFNormalFont is used by buttons and the score label.
	TTFNormalFont font.Face
	// TTFSmallFont is used by floating score effects.
	TTFSmallFont font.Face
)

func init() {
	if err := loadFonts(); err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}
}

func loadFonts() error {
	mplus, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		return fmt.Errorf("failed to parse mplus font: %v", err)
	}
	MPlusLargeFont, err = opentype.NewFace(mplus, &opentype.FaceOptions{
		Size:    48,
		DPI:     dpi,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		return fmt.Errorf("failed to create title face: %v", err)
	}

	goRegular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse go regular font: %v", err)
	}
	for _, f := range []struct {
		face *font.Face
		size float64
	}{
		{face: &TTFNormalFont, size: 24},
		{face: &TTFSmallFont, size: 20},
	} {
		*f.face = truetype.NewFace(goRegular, &truetype.Options{
			Size:    f.size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
	}

	return nil
}
