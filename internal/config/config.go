// Package config provides YAML-based configuration loading for krida.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/krida/internal/life"
)

// LifeConfig is the on-disk configuration.
type LifeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Cell   CellConfig   `yaml:"cell"`
	Timing TimingConfig `yaml:"timing"`
	Random RandomConfig `yaml:"random"`
	Engine EngineConfig `yaml:"engine"`
}

// GridConfig sets the board dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CellConfig sets how many terminal characters one cell occupies.
type CellConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig holds delay settings in milliseconds.
type TimingConfig struct {
	DefaultDelayMS int `yaml:"default_delay_ms"`
	MinDelayMS     int `yaml:"min_delay_ms"`
	DefaultStepMS  int `yaml:"default_step_ms"`
	StepUnitMS     int `yaml:"step_unit_ms"`
	MinStepMS      int `yaml:"min_step_ms"`
	MaxStepMS      int `yaml:"max_step_ms"`
}

// RandomConfig holds alive probabilities for the two randomize variants.
type RandomConfig struct {
	Dense  float64 `yaml:"dense"`
	Sparse float64 `yaml:"sparse"`
}

// EngineConfig holds engine tuning.
type EngineConfig struct {
	Workers int    `yaml:"workers"`
	Pattern string `yaml:"pattern"`
}

// Validate checks cell geometry and the derived engine config.
func (c LifeConfig) Validate() error {
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		return fmt.Errorf("config: cell size must be at least 1x1, got %dx%d", c.Cell.Width, c.Cell.Height)
	}
	if err := c.EngineConfig(0).Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// EngineConfig converts to the engine's configuration with the given RNG seed.
func (c LifeConfig) EngineConfig(seed int64) life.Config {
	return life.Config{
		Width:             c.Grid.Width,
		Height:            c.Grid.Height,
		DefaultDelay:      ms(c.Timing.DefaultDelayMS),
		MinDelay:          ms(c.Timing.MinDelayMS),
		DefaultStep:       ms(c.Timing.DefaultStepMS),
		DelayUnit:         ms(c.Timing.StepUnitMS),
		MinStep:           ms(c.Timing.MinStepMS),
		MaxStep:           ms(c.Timing.MaxStepMS),
		DenseProbability:  c.Random.Dense,
		SparseProbability: c.Random.Sparse,
		Seed:              seed,
		Workers:           c.Engine.Workers,
	}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
