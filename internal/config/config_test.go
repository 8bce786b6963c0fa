package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/osuushi/tverberg/advanced"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Points())
	assert.Equal(t, 16*time.Millisecond, cfg.Interval)
	assert.Equal(t, "partition.png", cfg.Output)

	min, max := cfg.Bounds()
	assert.Equal(t, advanced.Point{X: 100, Y: 100}, min)
	assert.Equal(t, advanced.Point{X: 700, Y: 500}, max)
}

func TestParse(t *testing.T) {
	t.Run("overrides", func(t *testing.T) {
		cfg, err := Parse(strings.NewReader(`
subsets: 6
canvas:
  width: 1024
seed: 42
interval: 40ms
`))
		require.NoError(t, err)
		assert.Equal(t, 6, cfg.Subsets)
		assert.Equal(t, 16, cfg.Points())
		assert.Equal(t, 1024, cfg.Canvas.Width)
		assert.Equal(t, 600, cfg.Canvas.Height, "unset fields keep their defaults")
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, 40*time.Millisecond, cfg.Interval)
	})

	t.Run("empty", func(t *testing.T) {
		cfg, err := Parse(strings.NewReader("\n"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Parse(strings.NewReader("subset: 3\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode config")
		assert.Contains(t, err.Error(), "subset")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Parse(strings.NewReader("subsets: 1\n"))
		assert.EqualError(t, err, "subsets must be at least 2, got 1")
	})
}

func TestValidate(t *testing.T) {
	modify := func(f func(*Config)) Config {
		cfg := Default()
		f(&cfg)
		return cfg
	}

	assert.EqualError(t, modify(func(c *Config) { c.Canvas.Height = 0 }).Validate(),
		"canvas must have a positive size, got 800x0")
	assert.EqualError(t, modify(func(c *Config) { c.Canvas.Margin = 300 }).Validate(),
		"margin 300 leaves no room on a 800x600 canvas")
	assert.Error(t, modify(func(c *Config) { c.Canvas.Margin = -1 }).Validate())
	assert.Error(t, modify(func(c *Config) { c.Interval = -time.Second }).Validate())
	assert.NoError(t, modify(func(c *Config) { c.Interval = 0 }).Validate())
	assert.NoError(t, modify(func(c *Config) { c.Subsets = 2 }).Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tverberg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: out.png\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out.png", cfg.Output)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}
