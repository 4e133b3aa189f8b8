package main

import (
	"flag"
	"fmt"
	"image"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/fpscontroller/assets"
	"github.com/automoto/fpscontroller/config"
	"github.com/automoto/fpscontroller/controller"
	"github.com/automoto/fpscontroller/fonts"
	"github.com/automoto/fpscontroller/scenes"
	"github.com/automoto/fpscontroller/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame(opts scenes.SandboxOptions) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewSandboxScene(g, opts)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// resolveLevel accepts an embedded level name or a .tmx path on disk.
func resolveLevel(name string) (fs.FS, string) {
	if strings.HasSuffix(name, ".tmx") {
		return os.DirFS(filepath.Dir(name)), filepath.Base(name)
	}
	return assets.Levels(), assets.LevelPath(name)
}

func main() {
	levelName := flag.String("level", "sandbox", "Embedded level name or path to a .tmx file")
	tuningPath := flag.String("tuning", "", "YAML file overriding controller tunables")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	variant := flag.String("variant", "", "Controller variant: basic or extended (overrides saved preference)")
	debug := flag.Bool("debug", config.Debug.Enabled, "Draw collision footprints")
	listLevels := flag.Bool("levels", false, "List embedded levels and exit")
	flag.Parse()

	if *listLevels {
		names, err := assets.LevelNames()
		if err != nil {
			log.Fatal(err)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return
	}

	config.Debug.Enabled = *debug

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved preferences
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadPreferences(); err == nil && saved != nil {
		systems.ApplyPreferencesGlobal(saved)
	}

	opts := scenes.SandboxOptions{}
	opts.Levels, opts.LevelPath = resolveLevel(*levelName)

	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		if err := config.ApplyTuning(t); err != nil {
			log.Fatalf("Invalid tuning %s: %v", *tuningPath, err)
		}
		if *watch {
			w, err := config.WatchFile(*tuningPath)
			if err != nil {
				log.Fatalf("Failed to watch tuning: %v", err)
			}
			defer w.Close()
			opts.Tuning = w
		}
	}

	if *variant != "" {
		v, ok := controller.ParseVariant(*variant)
		if !ok {
			log.Fatalf("Unknown variant %q", *variant)
		}
		config.Player.Controller.Variant = v
	}

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
