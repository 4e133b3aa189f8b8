package assets

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelNames(t *testing.T) {
	names, err := LevelNames()
	require.NoError(t, err)
	assert.Contains(t, names, "sandbox")
}

func TestLevelPath(t *testing.T) {
	assert.Equal(t, DefaultLevel, LevelPath("sandbox"))

	_, err := fs.Stat(Levels(), LevelPath("sandbox"))
	require.NoError(t, err)
}
