package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// DefaultLevel is the map loaded when no -level flag is given.
const DefaultLevel = "levels/sandbox.tmx"

// Levels exposes the embedded level files.
func Levels() fs.FS { return assetFS }

// LevelNames lists the embedded .tmx files by stem, sorted.
func LevelNames() ([]string, error) {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, strings.TrimSuffix(entry.Name(), ".tmx"))
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no level files found in assets/levels")
	}
	sort.Strings(names)
	return names, nil
}

// LevelPath maps a level stem to its path inside Levels().
func LevelPath(name string) string {
	return path.Join("levels", name+".tmx")
}
