package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/krismas/client/fonts"
	"github.com/cbodonnell/krismas/client/input"
	"github.com/cbodonnell/krismas/client/objects"
	"github.com/cbodonnell/krismas/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type MenuScene struct {
	*BaseScene

	onPlay    func() error
	ui        *ebitenui.UI
	playErr   string
	bestScore string
}

type MenuSceneOptions struct {
	// OnPlay is called when the play button is pressed.
	OnPlay func() error
	// BestScore is shown under the play button when HasBestScore is set.
	BestScore    int
	HasBestScore bool
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	if opts.OnPlay == nil {
		return nil, fmt.Errorf("menu scene requires a play handler")
	}
	s := &MenuScene{
		BaseScene: NewBaseScene(objects.NewSortedZIndexObject("menu-root")),
		onPlay:    opts.OnPlay,
	}
	if opts.HasBestScore {
		s.bestScore = fmt.Sprintf("Best: %d", opts.BestScore)
	}
	return s, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	if err := s.BaseScene.Init(); err != nil {
		return err
	}
	title := objects.NewTextOverlayObject("menu-title", "Krismas Hoops", 0.3, color.RGBA{0xc0, 0x39, 0x2b, 0xff})
	return s.GetRoot().AddChild("menu-title", title)
}

func (s *MenuScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}

	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	rootContainer.AddChild(column)

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Play", fontFace, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.play()
		}),
	)
	column.AddChild(button)

	if s.bestScore != "" {
		column.AddChild(widget.NewText(
			widget.TextOpts.Text(s.bestScore, fontFace, color.NRGBA{R: 33, G: 47, B: 61, A: 255}),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		))
	}

	if s.playErr != "" {
		column.AddChild(widget.NewText(
			widget.TextOpts.Text(s.playErr, fontFace, color.NRGBA{R: 255, G: 0, B: 0, A: 255}),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		))
		s.playErr = ""
	}

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *MenuScene) play() {
	if err := s.onPlay(); err != nil {
		log.Error("Failed to start game: %v", err)
		s.playErr = "Failed to start game. Please try again."
		s.renderUI()
	}
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	if input.IsPositiveJustPressed() {
		s.play()
	}
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
