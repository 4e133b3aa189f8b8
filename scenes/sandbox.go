package scenes

import (
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/fpscontroller/components"
	cfg "github.com/automoto/fpscontroller/config"
	"github.com/automoto/fpscontroller/systems"
	"github.com/automoto/fpscontroller/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxOptions selects the level and the optional tuning watcher.
type SandboxOptions struct {
	Levels    fs.FS
	LevelPath string
	Tuning    *cfg.Watcher
}

// SandboxScene walks one player around a level seen from above.
type SandboxScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         SandboxOptions
	once         sync.Once
}

func NewSandboxScene(sc SceneChanger, opts SandboxOptions) *SandboxScene {
	return &SandboxScene{sceneChanger: sc, opts: opts}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.mustConfigure)
	s.ecs.Update()
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *SandboxScene) mustConfigure() {
	if err := s.configure(); err != nil {
		log.Fatalf("Failed to build sandbox: %v", err)
	}
}

func (s *SandboxScene) configure() error {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	if s.opts.Tuning != nil {
		ecs.AddSystem(systems.NewTuningReloader(s.opts.Tuning))
	}
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateRespawn)
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdateController)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateOverlay)
	ecs.AddSystem(systems.UpdateSettingsPanel)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawOverlay)
	ecs.AddRenderer(cfg.Default, systems.DrawSettingsPanel)

	s.ecs = ecs
	return Populate(ecs, s.opts.Levels, s.opts.LevelPath)
}

// Populate loads the level into ecs and attaches a controller to a player at
// the first spawn.
func Populate(ecs *ecs.ECS, levels fs.FS, path string) error {
	levelEntry, err := factory.CreateLevel(ecs, levels, path)
	if err != nil {
		return err
	}
	lvl := components.Level.Get(levelEntry)

	factory.CreateSpace(ecs, lvl.Width, lvl.Depth, cfg.Physics.CellSize)
	for _, wall := range lvl.Walls {
		factory.CreateWall(ecs, wall)
	}

	player := factory.CreatePlayer(ecs, lvl.Spawns[0])
	if err := systems.AttachController(ecs, player, cfg.Player.Controller); err != nil {
		return fmt.Errorf("attach controller: %w", err)
	}
	return nil
}
