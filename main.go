package main

import (
	"errors"
	"flag"
	"image"

	cfg "github.com/automoto/laser-defender/config"
	"github.com/automoto/laser-defender/fonts"
	"github.com/automoto/laser-defender/logger"
	"github.com/automoto/laser-defender/scenes"
	"github.com/automoto/laser-defender/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if cfg.Debug.SkipMenu {
		g.scene = scenes.NewGameScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
	return cfg.C.Width, cfg.C.Height
}

// closer is implemented by scenes that flush state on exit.
type closer interface {
	Close()
}

func main() {
	skipMenu := flag.Bool("skipmenu", false, "Start directly in the game scene")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	logLevel := flag.String("loglevel", "info", "Log level (debug, info, warn, error)")
	tuningPath := flag.String("tuning", "tuning.yaml", "Optional YAML file overriding gameplay values")
	flag.Parse()

	log := logger.Log
	if err := logger.SetLevel(*logLevel); err != nil {
		log.WithError(err).Warn("unknown log level, keeping info")
	}

	cfg.Debug.SkipMenu = *skipMenu
	cfg.Debug.ShowOverlay = *debug

	if tuning, err := cfg.LoadTuning(*tuningPath); err != nil {
		if errors.Is(err, cfg.ErrTuningNotFound) {
			log.WithField("path", *tuningPath).Debug("no tuning file, using defaults")
		} else {
			log.WithError(err).Warn("ignoring tuning file")
		}
	} else {
		tuning.Apply()
		log.WithField("path", *tuningPath).Info("tuning applied")
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.WithError(err).Fatal("could not load fonts")
	}

	ebiten.SetWindowSize(cfg.C.Width*2, cfg.C.Height*2)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.WithError(err).Warn("could not initialize persistence")
	}
	if saved, err := systems.LoadSettings(); err != nil {
		log.WithError(err).Warn("could not load settings")
	} else {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if cfg.Debug.ShowOverlay {
		systems.SetDebugDefault(true)
	}

	game := NewGame()
	err := ebiten.RunGame(game)
	if c, ok := game.scene.(closer); ok {
		c.Close()
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("game exited")
	}
}
