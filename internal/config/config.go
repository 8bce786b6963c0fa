// Package config loads the settings of the tverberg command line tool.
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/osuushi/tverberg/advanced"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Number of subsets r. Random point sets get 3r-2 points.
	Subsets int    `yaml:"subsets"`
	Canvas  Canvas `yaml:"canvas"`
	// Zero picks a seed from the clock.
	Seed int64 `yaml:"seed"`
	// Delay between frames of the step animation.
	Interval time.Duration `yaml:"interval"`
	Output   string        `yaml:"output"`
}

type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Random points stay this far from every edge.
	Margin int `yaml:"margin"`
}

func Default() Config {
	return Config{
		Subsets: 4,
		Canvas: Canvas{
			Width:  800,
			Height: 600,
			Margin: 100,
		},
		Interval: 16 * time.Millisecond,
		Output:   "partition.png",
	}
}

// Read a config file. Settings missing from the file keep their defaults, and
// unknown settings are an error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load %s", path)
	}
	return cfg, nil
}

func Parse(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	cfg := Default()
	// An empty document is a valid config, but the decoder reports it as EOF
	if len(bytes.TrimSpace(data)) > 0 {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return Config{}, errors.Wrap(err, "decode config")
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Subsets < 2:
		return errors.Errorf("subsets must be at least 2, got %d", c.Subsets)
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return errors.Errorf("canvas must have a positive size, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	case c.Canvas.Margin < 0 || 2*c.Canvas.Margin >= c.Canvas.Width || 2*c.Canvas.Margin >= c.Canvas.Height:
		return errors.Errorf("margin %d leaves no room on a %dx%d canvas", c.Canvas.Margin, c.Canvas.Width, c.Canvas.Height)
	case c.Interval < 0:
		return errors.Errorf("interval must not be negative, got %s", c.Interval)
	}
	return nil
}

// Number of points needed for the configured subsets.
func (c Config) Points() int {
	return advanced.PointsForSubsets(c.Subsets)
}

// The corners of the area random points are placed in.
func (c Config) Bounds() (min, max advanced.Point) {
	m := float64(c.Canvas.Margin)
	return advanced.Point{X: m, Y: m},
		advanced.Point{X: float64(c.Canvas.Width) - m, Y: float64(c.Canvas.Height) - m}
}
