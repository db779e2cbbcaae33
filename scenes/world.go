package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/laser-defender/config"
	"github.com/automoto/laser-defender/logger"
	"github.com/automoto/laser-defender/systems"
	"github.com/automoto/laser-defender/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene is the playfield: one ship, its lasers and the starfield.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewGameScene creates a new game scene; the world is built on first Update.
func NewGameScene(sc SceneChanger) *GameScene {
	return &GameScene{sceneChanger: sc}
}

func (gs *GameScene) Update() error {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if systems.GetOrCreatePause(gs.ecs).QuitRequested {
		systems.EndSession(gs.ecs)
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
	}
	return nil
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

// Close flushes session stats; called when the window is closing.
func (gs *GameScene) Close() {
	if gs.ecs != nil {
		systems.EndSession(gs.ecs)
	}
}

func (gs *GameScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	configureGameWorld(gs.ecs)
	systems.StartSession(gs.ecs)
	logger.WithSystem("scene").Info("game scene ready")
}

// configureGameWorld registers the game systems in frame order and spawns
// the camera, collision space and ship.
func configureGameWorld(e *ecs.ECS) {
	// Systems that always run
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateSettings)

	// Gameplay, frozen while paused
	e.AddSystem(systems.WithPauseCheck(systems.UpdateBoundaries))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateVelocity))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateLasers))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateStars))

	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawLasers)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawEffects)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	// Camera first: the ship's start point and the collision space depend on it
	factory.CreateCamera(e)
	factory.CreateSpace(e)
	factory.CreateShredders(e)
	factory.CreateStarfield(e)
	factory.CreatePlayer(e)

	systems.PrimeInput(e)
}
