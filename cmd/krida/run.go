package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/krida/internal/core"
	"github.com/vovakirdan/krida/internal/platform/tui"
	"github.com/vovakirdan/krida/internal/storage"
)

var (
	flagGenerations int
	flagPrint       bool
	flagNoSave      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Advance a simulation without a UI",
	Long: `Advance a simulation as fast as possible and print a summary.
The configured delay is ignored. Ctrl+C stops after the current generation.

Examples:
  krida run --generations 1000
  krida run --pattern acorn --generations 5206 --workers 4
  krida run --pattern blinker --generations 3 --print`,
	Args: cobra.NoArgs,
	Run:  runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&flagGenerations, "generations", 100, "Number of generations to advance")
	runCmd.Flags().BoolVar(&flagPrint, "print", false, "Print the final board")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
	addEngineFlags(runCmd)
}

func runHeadless(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagGenerations < 0 {
		fmt.Fprintln(os.Stderr, "Error: --generations must not be negative")
		os.Exit(1)
	}

	rc := runtimeConfig(cfg, 0, 0)
	engine, err := newEngine(cfg, rc, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	peak := engine.Population()
	for i := 0; i < flagGenerations; i++ {
		if ctx.Err() != nil {
			logger.Warn("interrupted", "generation", engine.Generation())
			break
		}
		engine.AdvanceGeneration()
		peak = max(peak, engine.Population())
	}
	elapsed := time.Since(start)

	record := storage.RunRecord{
		Mode:            storage.ModeHeadless,
		Pattern:         rc.Pattern,
		Seed:            engine.Seed(),
		Width:           engine.Width(),
		Height:          engine.Height(),
		Generations:     engine.Generation(),
		PeakPopulation:  peak,
		FinalPopulation: engine.Population(),
		Duration:        elapsed,
	}

	if flagPrint {
		screen := core.NewScreen(engine.Width(), engine.Height())
		tui.DrawBoard(screen, engine, 1, 1)
		fmt.Println(screen.String())
		fmt.Println()
	}

	fmt.Printf("Pattern:     %s\n", record.Pattern)
	fmt.Printf("Grid:        %dx%d\n", record.Width, record.Height)
	fmt.Printf("Seed:        %d\n", record.Seed)
	fmt.Printf("Generations: %d\n", record.Generations)
	fmt.Printf("Population:  %d (peak %d)\n", record.FinalPopulation, record.PeakPopulation)
	fmt.Printf("Elapsed:     %v\n", elapsed.Round(time.Microsecond))

	if flagNoSave || record.Generations == 0 {
		return
	}
	saveRecord(record)
}

// saveRecord stores a run, logging on failure.
func saveRecord(record storage.RunRecord) {
	store := openStore()
	if store == nil {
		return
	}
	defer store.Close()

	if _, err := store.SaveRun(record); err != nil {
		logger.Warn("could not record run", "error", err)
	}
}
