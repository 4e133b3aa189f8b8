package components

import (
	"github.com/automoto/fpscontroller/level"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	*level.Data
	Path string
}

var Level = donburi.NewComponentType[LevelData]()
