package level

import (
	"math"
	"testing"
	"testing/fstest"

	"github.com/automoto/fpscontroller/assets"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="10">
`

func mapFS(body string) fstest.MapFS {
	return fstest.MapFS{
		"levels/test.tmx": {Data: []byte(header + body + "</map>\n")},
	}
}

func TestLoad(t *testing.T) {
	fsys := mapFS(`
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="320" height="16"/>
  <object id="2" x="64" y="96" width="32" height="64">
   <properties>
    <property name="bottom" type="float" value="1.5"/>
    <property name="top" type="float" value="2"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="224" y="160">
   <properties>
    <property name="yaw" type="float" value="90"/>
   </properties>
   <point/>
  </object>
  <object id="4" x="32" y="64">
   <point/>
  </object>
 </objectgroup>
`)

	data, err := Load(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, "test", data.Name)
	assert.Equal(t, 10.0, data.Width)
	assert.Equal(t, 8.0, data.Depth)

	require.Len(t, data.Walls, 2)
	assert.Equal(t, Wall{
		Min:    mgl64.Vec2{0, 0},
		Max:    mgl64.Vec2{10, 0.5},
		Bottom: 0,
		Top:    DefaultWallHeight,
	}, data.Walls[0])
	assert.Equal(t, Wall{
		Min:    mgl64.Vec2{2, 3},
		Max:    mgl64.Vec2{3, 5},
		Bottom: 1.5,
		Top:    2,
	}, data.Walls[1])

	require.Len(t, data.Spawns, 2)
	assert.Equal(t, mgl64.Vec3{1, 0, 2}, data.Spawns[0].Position, "spawns sorted by X")
	assert.Zero(t, data.Spawns[0].Yaw)
	assert.Equal(t, mgl64.Vec3{7, 0, 5}, data.Spawns[1].Position)
	assert.InDelta(t, math.Pi/2, data.Spawns[1].Yaw, 1e-12)
}

func TestLoad_GroupWallHeight(t *testing.T) {
	fsys := mapFS(`
 <objectgroup id="1" name="Walls">
  <properties>
   <property name="wall_height" type="float" value="4.5"/>
  </properties>
  <object id="1" x="0" y="0" width="32" height="32"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="2" x="64" y="64"><point/></object>
 </objectgroup>
`)

	data, err := Load(fsys, "levels/test.tmx")
	require.NoError(t, err)
	require.Len(t, data.Walls, 1)
	assert.Equal(t, 4.5, data.Walls[0].Top)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		path    string
		wantErr error
	}{
		{
			name: "missing file",
			fsys: fstest.MapFS{},
			path: "levels/none.tmx",
		},
		{
			name: "no spawn",
			fsys: mapFS(`
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="32" height="32"/>
 </objectgroup>
`),
			path:    "levels/test.tmx",
			wantErr: ErrNoSpawn,
		},
		{
			name: "inverted wall",
			fsys: mapFS(`
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="32" height="32">
   <properties>
    <property name="bottom" type="float" value="2"/>
    <property name="top" type="float" value="1"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="2" x="64" y="64"><point/></object>
 </objectgroup>
`),
			path: "levels/test.tmx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.fsys, tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoad_EmbeddedSandbox(t *testing.T) {
	data, err := Load(assets.Levels(), assets.DefaultLevel)
	require.NoError(t, err)

	assert.Equal(t, "sandbox", data.Name)
	assert.Equal(t, 20.0, data.Width)
	assert.Equal(t, 16.0, data.Depth)
	assert.Len(t, data.Walls, 8)
	require.Len(t, data.Spawns, 1)
	assert.Equal(t, mgl64.Vec3{10, 0, 12.5}, data.Spawns[0].Position)
}
