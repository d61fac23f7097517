package config

import (
	_ "embed"

	"github.com/vovakirdan/krida/internal/life"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the hardcoded configuration, identical to the
// embedded defaults/life.yaml.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Grid: GridConfig{
			Width:  life.DefaultWidth,
			Height: life.DefaultHeight,
		},
		Cell: CellConfig{
			Width:  2,
			Height: 1,
		},
		Timing: TimingConfig{
			DefaultDelayMS: 100,
			MinDelayMS:     100,
			DefaultStepMS:  100,
			StepUnitMS:     10,
			MinStepMS:      10,
			MaxStepMS:      100,
		},
		Random: RandomConfig{
			Dense:  life.DenseProbability,
			Sparse: life.SparseProbability,
		},
		Engine: EngineConfig{
			Workers: 1,
			Pattern: "glider",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLifeYAML
}
