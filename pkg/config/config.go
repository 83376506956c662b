// Package config loads the client configuration from a TOML file, with
// compiled-in defaults for every field so the file is optional.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Muayad-Arafeh/Qscape/pkg/pipeline"
	"github.com/Muayad-Arafeh/Qscape/pkg/project"
)

// EnvServerURL overrides the configured server URL when set.
const EnvServerURL = "QSCAPE_SERVER_URL"

// Config is the full client configuration.
type Config struct {
	Server ServerConfig           `toml:"server"`
	Solver SolverConfig           `toml:"solver"`
	Canvas CanvasConfig           `toml:"canvas"`
	Geo    GeoConfig              `toml:"geo"`
	Delays map[string]DelayConfig `toml:"delays"`
}

// ServerConfig locates the solver backend.
type ServerConfig struct {
	URL string `toml:"url"`
}

// SolverConfig carries the default solve parameters.
type SolverConfig struct {
	Algorithm    string  `toml:"algorithm"`
	AvoidHazards bool    `toml:"avoid_hazards"`
	RiskWeight   float64 `toml:"risk_weight"`
	HazardWeight float64 `toml:"hazard_weight"`
}

// CanvasConfig sizes the drawing surface.
type CanvasConfig struct {
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Padding float64 `toml:"padding"`
}

// GeoConfig bounds the geographic projection target.
type GeoConfig struct {
	MinLon float64 `toml:"min_lon"`
	MinLat float64 `toml:"min_lat"`
	MaxLon float64 `toml:"max_lon"`
	MaxLat float64 `toml:"max_lat"`
}

// DelayConfig overrides one algorithm's presentation-delay profile.
type DelayConfig struct {
	Multiplier float64 `toml:"multiplier"`
	FloorMS    int     `toml:"floor_ms"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{URL: "http://localhost:8000"},
		Solver: SolverConfig{
			Algorithm:    "dijkstra",
			AvoidHazards: true,
			RiskWeight:   1,
			HazardWeight: 10,
		},
		Canvas: CanvasConfig{Width: 1000, Height: 800, Padding: 60},
		Geo:    GeoConfig{MinLon: 35.85, MinLat: 31.90, MaxLon: 36.05, MaxLat: 32.05},
	}
}

// Load reads path over the defaults. A missing file is not an error; a
// malformed one is. The QSCAPE_SERVER_URL environment variable, when set,
// wins over both the file and the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}
	if url := os.Getenv(EnvServerURL); url != "" {
		cfg.Server.URL = url
	}
	return cfg, nil
}

// DelayTable builds the presentation-delay policy: the stock table with any
// configured per-algorithm overrides applied on top.
func (c Config) DelayTable() pipeline.DelayTable {
	table := pipeline.DefaultDelays()
	for algorithm, d := range c.Delays {
		table[algorithm] = pipeline.DelayProfile{
			Multiplier: d.Multiplier,
			Floor:      time.Duration(d.FloorMS) * time.Millisecond,
		}
	}
	return table
}

// ProjectorCanvas returns the configured canvas as a projection target.
func (c Config) ProjectorCanvas() project.Canvas {
	return project.Canvas{
		Width:   c.Canvas.Width,
		Height:  c.Canvas.Height,
		Padding: c.Canvas.Padding,
	}
}

// GeoBounds returns the configured geographic projection target.
func (c Config) GeoBounds() project.GeoBounds {
	return project.NewGeoBounds(c.Geo.MinLon, c.Geo.MinLat, c.Geo.MaxLon, c.Geo.MaxLat)
}
