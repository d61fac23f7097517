package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/krida/internal/patterns"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List seed patterns",
	Long:  `Shows every seed pattern that can be passed to --pattern.`,
	Args:  cobra.NoArgs,
	Run:   runPatterns,
}

func runPatterns(cmd *cobra.Command, args []string) {
	list := patterns.List()

	// Calculate column widths
	maxNameLen := len("Name")
	for _, p := range list {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Println("Available patterns:")
	fmt.Println()
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxNameLen, "Name", "Size", "Cells", "Title")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxNameLen, "----", "----", "-----", "-----")

	for _, p := range list {
		w, h := p.Size()
		title := p.Title
		if p.Name == patterns.DefaultName {
			title += " (default)"
		}
		fmt.Printf("  %-*s  %-7s  %-5d  %s\n", maxNameLen, p.Name, fmt.Sprintf("%dx%d", w, h), len(p.Cells), title)
	}

	fmt.Println()
	fmt.Println("Run 'krida play --pattern <name>' to start with a pattern.")
}
