package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/krida/internal/config"
	"github.com/vovakirdan/krida/internal/core"
	"github.com/vovakirdan/krida/internal/life"
	"github.com/vovakirdan/krida/internal/patterns"
	"github.com/vovakirdan/krida/internal/storage"
)

// statusRows is how many terminal rows the TUI keeps below the board.
const statusRows = 2

// Engine flags shared by play, serve and run.
var (
	flagPattern string
	flagWorkers int
	flagFit     bool
)

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (config.LifeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagPattern != "" {
		cfg.Engine.Pattern = flagPattern
	}
	if flagWorkers > 0 {
		cfg.Engine.Workers = flagWorkers
	}
	if !patterns.Exists(cfg.Engine.Pattern) {
		return cfg, fmt.Errorf("%w %q (run 'krida patterns')", patterns.ErrUnknownPattern, cfg.Engine.Pattern)
	}
	return cfg, nil
}

// runtimeConfig builds the terminal-side settings for a session.
func runtimeConfig(cfg config.LifeConfig, screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    screenW,
		ScreenH:    screenH,
		CellWidth:  cfg.Cell.Width,
		CellHeight: cfg.Cell.Height,
		Seed:       flagSeed,
		Pattern:    cfg.Engine.Pattern,
	}
}

// newEngine builds an engine seeded with the configured pattern. With fit
// set the grid is sized to the terminal instead of the config.
func newEngine(cfg config.LifeConfig, rc core.RuntimeConfig, fit bool) (*life.Engine, error) {
	ec := cfg.EngineConfig(rc.Seed)
	if fit {
		ec.Width, ec.Height = rc.GridFit(statusRows)
	}

	p, err := patterns.Get(rc.Pattern)
	if err != nil {
		return nil, err
	}

	e := life.New(ec)
	if p.Name != patterns.DefaultName {
		patterns.Stamp(e, p)
	}
	return e, nil
}

// openStore opens the run history, logging instead of failing.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database, history disabled", "error", err)
		return nil
	}
	return store
}

func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagPattern, "pattern", "", "Seed pattern (default from config: glider)")
	cmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel row bands per generation (0 = config)")
	cmd.Flags().BoolVar(&flagFit, "fit", false, "Size the grid to the terminal instead of the config")
}
