package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/udisondev/geo2d/internal/config"
	"github.com/udisondev/geo2d/internal/geo"
)

const ConfigPath = "config/geodemo.yaml"

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := ConfigPath
	if p := os.Getenv("GEODEMO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadDemo(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))

	slog.Info("geo2d demo starting", "canvas_width", geo.Width, "canvas_height", geo.Height)

	p1, err := geo.NewBoundedPoint(cfg.P1.X, cfg.P1.Y)
	if err != nil {
		return fmt.Errorf("building p1: %w", err)
	}
	p2, err := geo.NewBoundedPoint(cfg.P2.X, cfg.P2.Y)
	if err != nil {
		return fmt.Errorf("building p2: %w", err)
	}
	fmt.Println(p1)
	fmt.Println(p2)

	// A rejected write reports ErrOutOfBounds and leaves the point intact.
	if err := p1.SetX(-50); errors.Is(err, geo.ErrOutOfBounds) {
		slog.Warn("coordinate rejected", "err", err)
	}
	if err := p1.SetY(geo.Height + 100); errors.Is(err, geo.ErrOutOfBounds) {
		slog.Warn("coordinate rejected", "err", err)
	}
	fmt.Printf("p1 after rejected writes: %v\n", p1)

	v1 := geo.NewVector2D(cfg.V1.X, cfg.V1.Y)
	v2 := geo.VectorFromPoints(p1, p2)
	fmt.Println(v1)
	fmt.Println(v2)

	fmt.Printf("|v1| = %g\n", v1.Magnitude())
	fmt.Printf("v1 + v2 = %v\n", v1.Add(v2))
	fmt.Printf("v2 - v1 = %v\n", v2.Sub(v1))
	fmt.Printf("v1 * %g = %v\n", cfg.Scale, v1.Scale(cfg.Scale))

	quot, err := v1.Divide(cfg.Divisor)
	if err != nil {
		slog.Warn("division skipped", "divisor", cfg.Divisor, "err", err)
	} else {
		fmt.Printf("v1 / %g = %v\n", cfg.Divisor, quot)
	}

	fmt.Printf("v1 . v2 = %g (method) = %g (function)\n", v1.Dot(v2), geo.Dot(v1, v2))
	fmt.Printf("v1 x v2 = %g (method) = %g (function)\n", v1.Cross(v2), geo.Cross(v1, v2))
	fmt.Printf("mixed(v1, v2) = %g\n", geo.MixedProduct(v1, v2))

	for i := 0; i < v1.Len(); i++ {
		c, err := v1.At(i)
		if err != nil {
			return fmt.Errorf("reading v1[%d]: %w", i, err)
		}
		fmt.Printf("v1[%d] = %g\n", i, c)
	}
	if _, err := v1.At(2); errors.Is(err, geo.ErrIndexOutOfRange) {
		slog.Warn("index rejected", "err", err)
	}

	fmt.Printf("v2 components: %v\n", v2.Components())

	slog.Info("geo2d demo finished")
	return nil
}
