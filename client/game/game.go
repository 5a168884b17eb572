package game

import (
	"context"
	"fmt"

	"github.com/cbodonnell/krismas/client/input"
	"github.com/cbodonnell/krismas/client/scenes"
	"github.com/cbodonnell/krismas/client/sprites"
	gamepkg "github.com/cbodonnell/krismas/pkg/game"
	"github.com/cbodonnell/krismas/pkg/log"
	"github.com/cbodonnell/krismas/pkg/state"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// random is shared by every game scene so a seed reproduces a session.
	random gamepkg.RandomSource
	// atlas holds the textures loaded at startup.
	atlas *sprites.Atlas
	// scores keeps the best score of the session.
	scores state.ScoreKeeper
	// width and height are the last outside size reported by Layout.
	width  int
	height int
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
	// pendingScene is switched in at the start of the next Update so a
	// scene is never destroyed while it is running its own Update.
	pendingScene func() error
}

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Debug bool
	// Width and Height are the initial window size.
	Width  int
	Height int
	// Random drives spawning.
	Random gamepkg.RandomSource
	// Atlas holds the body textures.
	Atlas *sprites.Atlas
	// Scores keeps the best score. Defaults to an in-memory keeper.
	Scores state.ScoreKeeper
}

func NewGame(opts NewGameOptions) (*Game, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", opts.Width, opts.Height)
	}

	scores := opts.Scores
	if scores == nil {
		scores = state.NewInMemoryScoreKeeper()
	}

	g := &Game{
		debug:  opts.Debug,
		random: opts.Random,
		atlas:  opts.Atlas,
		scores: scores,
		width:  opts.Width,
		height: opts.Height,
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadMenu() error {
	if gameScene, ok := g.scene.(*scenes.GameScene); ok {
		g.recordScore(gameScene.Score())
	}

	best, hasBest, err := g.scores.Best(context.Background())
	if err != nil {
		log.Warn("Failed to read best score: %v", err)
	}

	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		BestScore:    best,
		HasBestScore: hasBest,
		OnPlay: func() error {
			g.pendingScene = g.loadGame
			return nil
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = GameModeMenu
	return nil
}

func (g *Game) recordScore(score int) {
	improved, err := g.scores.Record(context.Background(), score)
	if err != nil {
		log.Warn("Failed to record score %d: %v", score, err)
		return
	}
	if improved {
		log.Info("New best score: %d", score)
	}
}

func (g *Game) loadGame() error {
	gameScene, err := scenes.NewGameScene(scenes.GameSceneOptions{
		Width:  g.width,
		Height: g.height,
		Random: g.random,
		Atlas:  g.atlas,
	})
	if err != nil {
		return fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.mode = GameModePlay
	log.Info("Game started at %dx%d", g.width, g.height)
	return nil
}

func (g *Game) Update() error {
	if g.pendingScene != nil {
		load := g.pendingScene
		g.pendingScene = nil
		if err := load(); err != nil {
			log.Error("Failed to switch scene: %v", err)
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	}

	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) handleInput() error {
	switch g.mode {
	case GameModePlay:
		if input.IsNegativeJustPressed() {
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()), 16, screen.Bounds().Dy()-80)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), 16, screen.Bounds().Dy()-64)

	gameScene, ok := g.scene.(*scenes.GameScene)
	if !ok {
		return
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Bodies: %d", gameScene.BodyCount()), 16, screen.Bounds().Dy()-48)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", gameScene.Score()), 16, screen.Bounds().Dy()-32)
}

// Layout keeps the screen the size of the window and reports changes to
// scenes that track the viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		log.Debug("Window resized to %dx%d", outsideWidth, outsideHeight)
		if resizer, ok := g.scene.(scenes.Resizer); ok {
			resizer.Resize(outsideWidth, outsideHeight)
		}
	}
	return g.width, g.height
}
