// Package level reads sandbox layouts from Tiled maps. Walls and spawns are
// plain rectangle and point objects; one tile edge is one metre.
package level

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

const (
	WallsGroup = "Walls"
	SpawnGroup = "PlayerSpawn"

	// DefaultWallHeight is used when neither the wall nor its group sets a top.
	DefaultWallHeight = 3.0
)

var ErrNoSpawn = errors.New("level has no player spawn")

// Wall is a solid volume in metres. Min and Max span the X/Z footprint.
type Wall struct {
	Min, Max    mgl64.Vec2
	Bottom, Top float64
}

type Spawn struct {
	Position mgl64.Vec3
	// Yaw is in radians, counter-clockwise seen from above.
	Yaw float64
}

type Data struct {
	Name   string
	Width  float64
	Depth  float64
	Walls  []Wall
	Spawns []Spawn
}

// Load parses the TMX file at path within fsys.
func Load(fsys fs.FS, path string) (*Data, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}
	if m.TileWidth <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile width must be positive", path)
	}

	scale := 1 / float64(m.TileWidth)
	data := &Data{
		Name:  strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Width: float64(m.Width*m.TileWidth) * scale,
		Depth: float64(m.Height*m.TileHeight) * scale,
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case WallsGroup:
			wallHeight := DefaultWallHeight
			if len(og.Properties.Get("wall_height")) > 0 {
				wallHeight = og.Properties.GetFloat("wall_height")
			}
			for _, o := range og.Objects {
				w, err := parseWall(o, scale, wallHeight)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: %w", path, err)
				}
				data.Walls = append(data.Walls, w)
			}
		case SpawnGroup:
			for _, o := range og.Objects {
				data.Spawns = append(data.Spawns, parseSpawn(o, scale))
			}
		}
	}

	if len(data.Spawns) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", path, ErrNoSpawn)
	}

	// Sort spawns left-to-right so the first spawn is stable.
	sort.SliceStable(data.Spawns, func(i, j int) bool {
		a, b := data.Spawns[i].Position, data.Spawns[j].Position
		if a.X() != b.X() {
			return a.X() < b.X()
		}
		return a.Z() < b.Z()
	})

	return data, nil
}

func parseWall(o *tiled.Object, scale, wallHeight float64) (Wall, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return Wall{}, fmt.Errorf("wall %d has no area", o.ID)
	}
	w := Wall{
		Min:    mgl64.Vec2{o.X * scale, o.Y * scale},
		Max:    mgl64.Vec2{(o.X + o.Width) * scale, (o.Y + o.Height) * scale},
		Bottom: o.Properties.GetFloat("bottom"),
		Top:    wallHeight,
	}
	if len(o.Properties.Get("top")) > 0 {
		w.Top = o.Properties.GetFloat("top")
	}
	if w.Top <= w.Bottom {
		return Wall{}, fmt.Errorf("wall %d: top %.2f is not above bottom %.2f", o.ID, w.Top, w.Bottom)
	}
	return w, nil
}

func parseSpawn(o *tiled.Object, scale float64) Spawn {
	return Spawn{
		Position: mgl64.Vec3{o.X * scale, o.Properties.GetFloat("height"), o.Y * scale},
		Yaw:      mgl64.DegToRad(math.Mod(o.Properties.GetFloat("yaw"), 360)),
	}
}
