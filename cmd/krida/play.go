package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/krida/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run an interactive simulation",
	Long: `Start an interactive simulation. It starts paused with a glider
so you can edit the board first.

Controls:
  Mouse      - Toggle cell under the pointer
  Space      - Run/Pause
  N          - Advance one generation (paused)
  C          - Clear the board
  P          - Randomize, ~50% alive
  R          - Randomize, ~10% alive
  Up/Down    - Slower/Faster
  Right/Left - Bigger/Smaller speed step
  0          - Reset speed
  ?          - Show all keys
  Esc/Q      - Quit

Examples:
  krida play
  krida play --pattern gosper-gun
  krida play --fit --seed 42
  krida play --config ./my-life.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addEngineFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the viewport
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := runtimeConfig(cfg, width, height)
	engine, err := newEngine(cfg, rc, flagFit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("starting session",
		"grid", fmt.Sprintf("%dx%d", engine.Width(), engine.Height()),
		"pattern", rc.Pattern,
		"seed", engine.Seed(),
	)

	store := openStore()

	record, runErr := tui.Run(engine, store, rc)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}

	logger.Info("session finished",
		"generations", record.Generations,
		"peak", record.PeakPopulation,
		"final", record.FinalPopulation,
		"seed", record.Seed,
	)
}
