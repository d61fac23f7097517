package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/krida/internal/core"
	"github.com/vovakirdan/krida/internal/life"
)

// Glyph drawn for every character of a live cell.
const liveGlyph = '█'

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorCell:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorPaused:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
	core.ColorRunning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")),
}

// DrawBoard paints every live cell of e as a cellW x cellH block. Cells that
// fall outside dst are clipped by the screen.
func DrawBoard(dst *core.Screen, e *life.Engine, cellW, cellH int) {
	dst.Clear()
	rows := min(e.Height(), (dst.Height()+cellH-1)/cellH)
	cols := min(e.Width(), (dst.Width()+cellW-1)/cellW)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if e.IsAlive(x, y) {
				dst.FillRect(x*cellW, y*cellH, cellW, cellH, liveGlyph, core.ColorCell)
			}
		}
	}
}

// StatusLine summarizes engine state for the HUD.
func StatusLine(e *life.Engine) string {
	return fmt.Sprintf("gen %d  pop %d  delay %v  step %v  %dx%d",
		e.Generation(), e.Population(), e.UpdateDelay(), e.DelayStep(), e.Width(), e.Height())
}

// renderHUD renders the styled state badge followed by the status line.
func renderHUD(e *life.Engine) string {
	badge := colorStyles[core.ColorRunning].Render(" RUNNING ")
	if e.Paused() {
		badge = colorStyles[core.ColorPaused].Render(" PAUSED ")
	}
	return badge + " " + colorStyles[core.ColorHUD].Render(StatusLine(e))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
