package life

import (
	"fmt"
	"time"
)

// Default engine settings.
const (
	DefaultWidth  = 120
	DefaultHeight = 90

	DefaultDelay = 100 * time.Millisecond // initial update delay and hard floor
	DelayUnit    = 10 * time.Millisecond  // step adjustment unit
	MinStep      = 10 * time.Millisecond
	MaxStep      = 100 * time.Millisecond

	DenseProbability  = 0.5
	SparseProbability = 0.1
)

// Config holds the process-wide engine parameters. Grid dimensions are fixed
// for the engine's lifetime.
type Config struct {
	Width  int
	Height int

	DefaultDelay time.Duration // update delay at construction and after ResetDelay
	MinDelay     time.Duration // update delay never goes at or below this on decrease
	DefaultStep  time.Duration // delay step at construction and after ResetDelay
	DelayUnit    time.Duration // amount AdjustDelayStep moves the step by
	MinStep      time.Duration
	MaxStep      time.Duration

	DenseProbability  float64
	SparseProbability float64

	// Seed for the randomize RNG. 0 picks a time based seed.
	Seed int64

	// Workers > 1 splits each generation into row bands evaluated in parallel.
	Workers int
}

// DefaultConfig returns the stock 120x90 configuration with 100ms timing.
func DefaultConfig() Config {
	return Config{
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		DefaultDelay:      DefaultDelay,
		MinDelay:          DefaultDelay,
		DefaultStep:       MaxStep,
		DelayUnit:         DelayUnit,
		MinStep:           MinStep,
		MaxStep:           MaxStep,
		DenseProbability:  DenseProbability,
		SparseProbability: SparseProbability,
		Workers:           1,
	}
}

// Validate reports the first inconsistency in c.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("life: grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if err := c.validateTiming(); err != nil {
		return err
	}
	if !validProbability(c.DenseProbability) {
		return fmt.Errorf("life: dense probability %v outside [0, 1]", c.DenseProbability)
	}
	if !validProbability(c.SparseProbability) {
		return fmt.Errorf("life: sparse probability %v outside [0, 1]", c.SparseProbability)
	}
	if c.Workers < 0 {
		return fmt.Errorf("life: workers must not be negative, got %d", c.Workers)
	}
	return nil
}

func (c Config) validateTiming() error {
	if c.MinDelay <= 0 {
		return fmt.Errorf("life: min delay must be positive, got %v", c.MinDelay)
	}
	if c.DefaultDelay < c.MinDelay {
		return fmt.Errorf("life: default delay %v below min delay %v", c.DefaultDelay, c.MinDelay)
	}
	if c.DelayUnit <= 0 {
		return fmt.Errorf("life: delay unit must be positive, got %v", c.DelayUnit)
	}
	if c.MinStep <= 0 || c.MaxStep < c.MinStep {
		return fmt.Errorf("life: invalid step range [%v, %v]", c.MinStep, c.MaxStep)
	}
	if c.DefaultStep < c.MinStep || c.DefaultStep > c.MaxStep {
		return fmt.Errorf("life: default step %v outside [%v, %v]", c.DefaultStep, c.MinStep, c.MaxStep)
	}
	return nil
}

// normalized replaces invalid settings with defaults so New never fails.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.validateTiming() != nil {
		c.DefaultDelay, c.MinDelay = def.DefaultDelay, def.MinDelay
		c.DefaultStep, c.DelayUnit = def.DefaultStep, def.DelayUnit
		c.MinStep, c.MaxStep = def.MinStep, def.MaxStep
	}
	if !validProbability(c.DenseProbability) {
		c.DenseProbability = def.DenseProbability
	}
	if !validProbability(c.SparseProbability) {
		c.SparseProbability = def.SparseProbability
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return c
}

func validProbability(p float64) bool {
	return p >= 0 && p <= 1
}
