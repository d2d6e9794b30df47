package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	config := NewConfig()

	assert.Zero(t, config.CapacityA())
	assert.Zero(t, config.CapacityB())
	assert.Equal(t, 1<<26, config.MaxInferredCapacity())
	assert.True(t, config.Compact())
	assert.Equal(t, "#", config.CommentPrefix())
	assert.Equal(t, "info", config.LogLevel())
	assert.Equal(t, 1_000_000, config.ProgressEvery())
}

func TestConfigLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bipartite.yaml")
	content := `graph:
  capacity_a: 128
  capacity_b: 64
loader:
  compact: false
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config := NewConfig()
	require.NoError(t, config.LoadFromFile(path))

	assert.Equal(t, 128, config.CapacityA())
	assert.Equal(t, 64, config.CapacityB())
	assert.False(t, config.Compact())
	assert.Equal(t, "#", config.CommentPrefix(), "unset keys keep their defaults")
	assert.Equal(t, zerolog.DebugLevel, config.CreateLogger().GetLevel())
}

func TestConfigLoadMissingFile(t *testing.T) {
	config := NewConfig()
	assert.Error(t, config.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestCreateLoggerFallsBackToInfo(t *testing.T) {
	config := NewConfig()
	config.Set("logging.level", "loud")
	assert.Equal(t, zerolog.InfoLevel, config.CreateLogger().GetLevel())
}
