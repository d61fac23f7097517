package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorCell          // live cell
	ColorHUD           // status line
	ColorPaused        // PAUSED badge
	ColorRunning       // RUNNING badge
)
