package systems

import (
	"log"

	"github.com/automoto/fpscontroller/components"
	cfg "github.com/automoto/fpscontroller/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewTuningReloader returns a system that re-applies the tuning file each
// time w reports a change. A bad file is logged and the running values stay.
func NewTuningReloader(w *cfg.Watcher) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		select {
		case path, ok := <-w.Events:
			if ok {
				ReloadTuning(e, path)
			}
		case err, ok := <-w.Errors:
			if ok {
				log.Printf("Warning: tuning watcher: %v", err)
			}
		default:
		}
	}
}

// ReloadTuning loads path into config and pushes the result into every
// running controller.
func ReloadTuning(e *ecs.ECS, path string) {
	t, err := cfg.LoadTuning(path)
	if err != nil {
		log.Printf("Warning: Could not reload tuning: %v", err)
		return
	}
	if err := cfg.ApplyTuning(t); err != nil {
		log.Printf("Warning: Rejected tuning %s: %v", path, err)
		return
	}

	components.Controller.Each(e.World, func(entry *donburi.Entry) {
		c := components.Controller.Get(entry)
		if c.Controller == nil {
			return
		}
		if err := c.ApplySettings(cfg.Player.Controller); err != nil {
			log.Printf("Warning: Could not apply tuning: %v", err)
		}
	})

	pointer := components.Pointer.Get(getOrCreatePointer(e))
	if t.InvertY != nil {
		pointer.InvertY = cfg.Pointer.InvertY
	}
	if entry, ok := components.SettingsPanel.First(e.World); ok {
		s := components.SettingsPanel.Get(entry)
		s.InvertY = pointer.InvertY
		if ctrl := playerController(e); ctrl != nil {
			s.MouseSensitivity = ctrl.MouseSensitivity()
			s.Panel.Refresh(settingsView(s, ctrl.Variant()))
		}
	}
	log.Printf("Reloaded tuning from %s", path)
}
