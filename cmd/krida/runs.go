package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagRunsMode  string
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the longest recorded runs",
	Long: `Display the recorded runs with the most generations.

Examples:
  krida runs
  krida runs --mode ssh --limit 20
  krida runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagRunsMode, "mode", "", "Filter by mode: play, ssh, headless")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all recorded runs")
}

func runRuns(cmd *cobra.Command, args []string) {
	store := openStore()
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println("Run history cleared.")
		return
	}

	runs, err := store.LongestRuns(flagRunsMode, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'krida play' or 'krida run' to record one!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %-7s  %-11s  %-9s  %-8s  %s\n",
		"Rank", "Mode", "Pattern", "Grid", "Generations", "Peak/End", "Duration", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %-7s  %-11s  %-9s  %-8s  %s\n",
		"----", "----", "-------", "----", "-----------", "--------", "--------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8s  %-12s  %-7s  %-11d  %-9s  %-8s  %s\n",
			i+1, r.Mode, r.Pattern,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.Generations,
			fmt.Sprintf("%d/%d", r.PeakPopulation, r.FinalPopulation),
			r.Duration.Round(time.Second),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	if total, err := store.RunCount(); err == nil {
		fmt.Println()
		fmt.Printf("Total runs: %d\n", total)
	}
}
