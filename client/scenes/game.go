package scenes

import (
	"fmt"
	"image"
	"image/color"

	"github.com/cbodonnell/krismas/client/fonts"
	"github.com/cbodonnell/krismas/client/input"
	"github.com/cbodonnell/krismas/client/objects"
	"github.com/cbodonnell/krismas/client/sprites"
	"github.com/cbodonnell/krismas/pkg/game"
	"github.com/cbodonnell/krismas/pkg/game/constants"
	"github.com/cbodonnell/krismas/pkg/game/types"
	"github.com/cbodonnell/krismas/pkg/kinematic"
	"github.com/cbodonnell/krismas/pkg/log"
	"github.com/cbodonnell/krismas/pkg/physics"
	"github.com/ebitenui/ebitenui"
	uiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

var backgroundColor = color.RGBA{0xcf, 0xde, 0xf3, 0xff}

const (
	bodiesZIndex  = 10
	effectsZIndex = 20
	// effectTTL is how long a score effect stays on screen, in milliseconds.
	effectTTL = 1200
)

type GameScene struct {
	*BaseScene

	// world is the physics simulation.
	world *physics.World
	// controller owns the game state and consumes input events.
	controller *game.Controller
	// atlas holds the loaded textures.
	atlas *sprites.Atlas
	// canvas is the world image, covering the origin to the camera max.
	canvas *ebiten.Image
	// pointer tracks mouse and touch drags.
	pointer *input.Pointer

	ui          *ebitenui.UI
	scoreText   *widget.Text
	spawnButton *widget.Button
	// buttonPressed is set while a press that started on the UI is held.
	buttonPressed bool
}

type GameSceneOptions struct {
	// Width and Height are the initial window size.
	Width  int
	Height int
	// Random drives spawning. Defaults to a time seeded source.
	Random game.RandomSource
	// Atlas holds the textures to draw bodies with.
	Atlas *sprites.Atlas
}

var _ Scene = &GameScene{}
var _ Resizer = &GameScene{}

func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	world, err := physics.NewWorld(physics.NewWorldOptions{
		Gravity:        constants.Gravity,
		TicksPerSecond: constants.TicksPerSecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create physics world: %v", err)
	}

	s := &GameScene{
		BaseScene: NewBaseScene(objects.NewSortedZIndexObject("game-root")),
		world:     world,
		atlas:     opts.Atlas,
		pointer:   input.NewPointer(),
	}

	controller, err := game.NewController(game.NewControllerOptions{
		World:         world,
		Random:        opts.Random,
		Width:         opts.Width,
		Height:        opts.Height,
		OnScoreChange: s.handleScoreChange,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game controller: %v", err)
	}
	s.controller = controller

	return s, nil
}

func (s *GameScene) Init() error {
	if err := s.controller.Bootstrap(); err != nil {
		return fmt.Errorf("failed to bootstrap world: %v", err)
	}

	s.renderUI()

	if err := s.BaseScene.Init(); err != nil {
		return fmt.Errorf("failed to initialize base scene: %v", err)
	}

	bodies := objects.NewBodiesObject("bodies", s.world, s.atlas, bodiesZIndex)
	if err := s.GetRoot().AddChild("bodies", bodies); err != nil {
		return fmt.Errorf("failed to add bodies object: %v", err)
	}

	return nil
}

func (s *GameScene) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    uiimage.NewNineSliceColor(color.NRGBA{R: 46, G: 134, B: 193, A: 255}),
		Hover:   uiimage.NewNineSliceColor(color.NRGBA{R: 40, G: 116, B: 166, A: 255}),
		Pressed: uiimage.NewNineSliceColor(color.NRGBA{R: 27, G: 79, B: 114, A: 255}),
	}

	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
		)),
	)

	s.spawnButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Spawn", fontFace, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   20,
			Right:  20,
			Top:    5,
			Bottom: 5,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.requestSpawn()
		}),
	)
	rootContainer.AddChild(s.spawnButton)

	s.scoreText = widget.NewText(
		widget.TextOpts.Text(scoreLabel(s.controller.Score()), fontFace, color.NRGBA{R: 33, G: 47, B: 61, A: 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
	rootContainer.AddChild(s.scoreText)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func scoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func (s *GameScene) requestSpawn() {
	if err := s.controller.Enqueue(types.SpawnRequestedEvent{}); err != nil {
		log.Error("Failed to request spawn: %v", err)
	}
}

// Resize forwards a window size change to the controller.
func (s *GameScene) Resize(width, height int) {
	if err := s.controller.Enqueue(types.ViewportResizedEvent{Width: width, Height: height}); err != nil {
		log.Error("Failed to enqueue resize: %v", err)
	}
}

// Score returns the current score.
func (s *GameScene) Score() int {
	return s.controller.Score()
}

// BodyCount returns the number of bodies in the simulation.
func (s *GameScene) BodyCount() int {
	return s.world.BodyCount()
}

func (s *GameScene) Update() error {
	s.ui.Update()

	if input.IsSpawnJustPressed() {
		s.requestSpawn()
	}
	s.handlePointer()

	if err := s.controller.Tick(1.0 / float64(constants.TicksPerSecond)); err != nil {
		return fmt.Errorf("failed to tick controller: %v", err)
	}

	if err := s.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %v", err)
	}

	return nil
}

func (s *GameScene) handlePointer() {
	state := s.pointer.Update()
	switch state.Phase {
	case input.PointerPressed:
		if s.overUI(state.X, state.Y) {
			s.buttonPressed = true
			return
		}
		if id, ok := s.world.Grab(s.toWorld(state.X, state.Y)); ok {
			log.Trace("Grabbed entity %d", id)
		}
	case input.PointerMoved:
		if s.buttonPressed {
			return
		}
		s.world.Drag(s.toWorld(state.X, state.Y))
	case input.PointerReleased:
		if s.buttonPressed {
			s.buttonPressed = false
			return
		}
		id, ok := s.world.Release()
		if !ok {
			return
		}
		event := types.DragReleasedEvent{
			EntityID: id,
			Pointer:  s.toWorld(state.X, state.Y),
		}
		if err := s.controller.Enqueue(event); err != nil {
			log.Error("Failed to enqueue drag release: %v", err)
		}
	}
}

func (s *GameScene) overUI(x, y int) bool {
	return image.Pt(x, y).In(s.spawnButton.GetWidget().Rect)
}

// toWorld maps a screen point to world space through the camera bounds.
func (s *GameScene) toWorld(x, y int) kinematic.Vector {
	viewport := s.controller.Viewport()
	sx, sy := s.cameraScale(viewport)
	return kinematic.Vector{
		X: viewport.CameraMin.X + float64(x)/sx,
		Y: viewport.CameraMin.Y + float64(y)/sy,
	}
}

func (s *GameScene) cameraScale(viewport types.Viewport) (float64, float64) {
	extent := viewport.CameraMax.Sub(viewport.CameraMin)
	if extent.X <= 0 || extent.Y <= 0 {
		return 1, 1
	}
	return float64(viewport.Width) / extent.X, float64(viewport.Height) / extent.Y
}

func (s *GameScene) handleScoreChange(change types.ScoreChange) {
	s.scoreText.Label = scoreLabel(change.Score)

	label := fmt.Sprintf("%+d", change.Delta)
	clr := color.Color(color.RGBA{0x1e, 0x84, 0x49, 0xff})
	if change.Delta < 0 {
		clr = color.RGBA{0xc0, 0x39, 0x2b, 0xff}
	}
	effectID := fmt.Sprintf("score-%d-%d", change.Entity.ID, uuid.New().ID())
	effect := objects.NewTextEffect(effectID, objects.NewTextEffectOptions{
		Text:   label,
		X:      change.Position.X,
		Y:      change.Position.Y,
		Color:  clr,
		Scroll: true,
		TTL:    effectTTL,
		ZIndex: effectsZIndex,
	})
	if err := s.GetRoot().AddChild(effectID, effect); err != nil {
		log.Error("Failed to add score effect: %v", err)
	}
}

func (s *GameScene) Draw(screen *ebiten.Image) {
	s.drawWorld()
	s.drawViewport(screen)
	s.ui.Draw(screen)
}

func (s *GameScene) drawWorld() {
	viewport := s.controller.Viewport()
	w, h := int(viewport.CameraMax.X), int(viewport.CameraMax.Y)
	if s.canvas == nil || s.canvas.Bounds().Dx() != w || s.canvas.Bounds().Dy() != h {
		if s.canvas != nil {
			s.canvas.Deallocate()
		}
		s.canvas = ebiten.NewImage(w, h)
	}

	s.canvas.Fill(backgroundColor)
	s.BaseScene.Draw(s.canvas)
}

func (s *GameScene) drawViewport(screen *ebiten.Image) {
	viewport := s.controller.Viewport()
	sx, sy := s.cameraScale(viewport)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(-viewport.CameraMin.X, -viewport.CameraMin.Y)
	opts.GeoM.Scale(sx, sy)
	screen.DrawImage(s.canvas, opts)
}
