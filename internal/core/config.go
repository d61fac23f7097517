package core

// RuntimeConfig carries terminal-level settings from the CLI into the
// platform layer. Engine tuning lives in life.Config.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	CellWidth  int    // Characters per grid cell horizontally
	CellHeight int    // Characters per grid cell vertically
	Seed       int64  // RNG seed, 0 means time based
	Pattern    string // Seed pattern name
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		CellWidth:  2,
		CellHeight: 1,
		Seed:       0, // 0 means use current time in platform layer
		Pattern:    "glider",
	}
}

// GridFit returns how many whole grid cells fit on the screen, reserving
// reservedRows terminal rows for status lines. Both results are at least 1.
func (c RuntimeConfig) GridFit(reservedRows int) (w, h int) {
	cw, ch := max(c.CellWidth, 1), max(c.CellHeight, 1)
	w = max(c.ScreenW/cw, 1)
	h = max((c.ScreenH-reservedRows)/ch, 1)
	return w, h
}
