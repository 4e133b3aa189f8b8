package factory

import (
	"io/fs"

	"github.com/automoto/fpscontroller/archetypes"
	"github.com/automoto/fpscontroller/components"
	"github.com/automoto/fpscontroller/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the map at path and stores it on a new level entity.
func CreateLevel(ecs *ecs.ECS, fsys fs.FS, path string) (*donburi.Entry, error) {
	data, err := level.Load(fsys, path)
	if err != nil {
		return nil, err
	}

	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{Data: data, Path: path})
	return entry, nil
}
