package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/cbodonnell/krismas/client/game"
	"github.com/cbodonnell/krismas/client/sprites"
	"github.com/cbodonnell/krismas/pkg/game/constants"
	"github.com/cbodonnell/krismas/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	width := flag.Int("width", 800, "Initial window width")
	height := flag.Int("height", 600, "Initial window height")
	assets := flag.String("assets", "assets", "Directory holding hoop.png, gift.png and snowball.png")
	seed := flag.Int64("seed", 0, "Random seed for spawning (0 uses the current time)")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Info("Using random seed %d", *seed)

	atlas := sprites.Load(*assets, constants.TextureHoop, constants.TextureGiftBox, constants.TextureSnowball)

	g, err := game.NewGame(game.NewGameOptions{
		Debug:  *debug,
		Width:  *width,
		Height: *height,
		Random: rand.New(rand.NewSource(*seed)),
		Atlas:  atlas,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetTPS(constants.TicksPerSecond)
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Krismas Hoops")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
