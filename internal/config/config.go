package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Coord is an (x, y) pair as it appears in the YAML scenario. Values are
// floats on purpose: the geometry constructors own the integer coercion.
type Coord struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Demo holds the scenario the geodemo binary walks through.
type Demo struct {
	LogLevel string `yaml:"log_level"`

	// Points constructed on the canvas.
	P1 Coord `yaml:"p1"`
	P2 Coord `yaml:"p2"`

	// Free vector and the scalars applied to it.
	V1      Coord   `yaml:"v1"`
	Scale   float64 `yaml:"scale"`
	Divisor float64 `yaml:"divisor"`
}

// DefaultDemo returns the canonical demonstration scenario.
func DefaultDemo() Demo {
	return Demo{
		LogLevel: "info",
		P1:       Coord{X: 100, Y: 150},
		P2:       Coord{X: 300, Y: 400},
		V1:       Coord{X: 3, Y: 4},
		Scale:    2,
		Divisor:  2,
	}
}

// LoadDemo loads the demo scenario from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadDemo(path string) (Demo, error) {
	cfg := DefaultDemo()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SlogLevel maps the configured log level onto slog.
func (d Demo) SlogLevel() (slog.Level, error) {
	switch d.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", d.LogLevel)
	}
}
