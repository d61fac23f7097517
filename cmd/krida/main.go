// krida is a terminal Game of Life on a toroidal grid.
//
// Usage:
//
//	krida play               - Run an interactive simulation
//	krida serve              - Start SSH server for remote sessions
//	krida run                - Advance a simulation headless and print a summary
//	krida patterns           - List seed patterns
//	krida runs               - Show the longest recorded runs
//
// Global flags:
//
//	--config <path>     - Config YAML (default: search ~/.krida/configs, ./configs)
//	--seed <value>      - RNG seed for reproducible randomization
//	--db <path>         - Run history database (default: ~/.krida/runs.db)
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "krida",
	Short: "Krida - Conway's Game of Life in your terminal",
	Long: `Krida simulates Conway's Game of Life on a wrap-around grid.
Start paused, edit the seed with the mouse, then let it run.

Available commands:
  play      - Interactive simulation
  serve     - Start SSH server for remote sessions
  run       - Headless simulation
  patterns  - List seed patterns
  runs      - Show run history

Examples:
  krida play
  krida play --pattern acorn --fit
  krida serve --ssh :2222
  krida run --generations 500 --pattern r-pentomino --print`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "krida",
			Level:           level,
		})
		return nil
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.krida/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(runsCmd)
}
