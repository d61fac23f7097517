// Package life implements Conway's Game of Life on a fixed-size torus.
//
// The Engine owns the grid, its generation buffer, the paused flag and the
// timing parameters. A presentation layer drives it: it calls
// AdvanceGeneration once per UpdateDelay while running, queries IsAlive to
// draw, and forwards input to the mutators. An Engine is not safe for
// concurrent use.
package life

import (
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/krida/internal/core"
)

// Glider is the initial pattern seeded at construction, in (x, y) form.
var Glider = []core.Point{{X: 2, Y: 1}, {X: 3, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}}

// Engine is the Game of Life simulation state.
type Engine struct {
	cfg  Config
	w, h int
	cur  []bool // current generation, row-major
	nxt  []bool // generation buffer

	paused      bool
	updateDelay time.Duration
	delayStep   time.Duration

	seed       int64
	rng        *rand.Rand
	generation uint64
}

// New allocates a paused engine seeded with a glider. Invalid config fields
// fall back to DefaultConfig values; call Config.Validate first to reject them.
func New(cfg Config) *Engine {
	cfg = cfg.normalized()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:         cfg,
		w:           cfg.Width,
		h:           cfg.Height,
		cur:         make([]bool, cfg.Width*cfg.Height),
		nxt:         make([]bool, cfg.Width*cfg.Height),
		paused:      true, // start halted so the seed can be edited
		updateDelay: cfg.DefaultDelay,
		delayStep:   cfg.DefaultStep,
		seed:        seed,
		rng:         rand.New(rand.NewPCG(uint64(seed), 0)),
	}
	for _, p := range Glider {
		e.Set(p.X, p.Y, true)
	}
	return e
}

// Width returns the number of grid columns.
func (e *Engine) Width() int { return e.w }

// Height returns the number of grid rows.
func (e *Engine) Height() int { return e.h }

// Config returns the normalized configuration the engine runs with.
func (e *Engine) Config() Config { return e.cfg }

// Seed returns the RNG seed actually in use.
func (e *Engine) Seed() int64 { return e.seed }

// Generation returns how many generations have been advanced.
func (e *Engine) Generation() uint64 { return e.generation }

func (e *Engine) inBounds(x, y int) bool {
	return x >= 0 && x < e.w && y >= 0 && y < e.h
}

// IsAlive reports whether cell (x, y) is alive. Out-of-bounds cells are dead.
func (e *Engine) IsAlive(x, y int) bool {
	if !e.inBounds(x, y) {
		return false
	}
	return e.cur[y*e.w+x]
}

// Set forces cell (x, y) to the given state. Out-of-bounds cells are ignored.
func (e *Engine) Set(x, y int, alive bool) {
	if !e.inBounds(x, y) {
		return
	}
	e.cur[y*e.w+x] = alive
}

// ToggleCell flips cell (x, y). Out-of-bounds coordinates are ignored.
func (e *Engine) ToggleCell(x, y int) {
	if !e.inBounds(x, y) {
		return
	}
	i := y*e.w + x
	e.cur[i] = !e.cur[i]
}

// Clear kills every cell. Pause state and timing are untouched.
func (e *Engine) Clear() {
	clear(e.cur)
}

// Randomize draws every cell independently. Dense uses the dense alive
// probability (~50%), otherwise the sparse one (~10%).
func (e *Engine) Randomize(dense bool) {
	p := e.cfg.SparseProbability
	if dense {
		p = e.cfg.DenseProbability
	}
	for i := range e.cur {
		e.cur[i] = e.rng.Float64() < p
	}
}

// Population returns the number of live cells.
func (e *Engine) Population() int {
	n := 0
	for _, alive := range e.cur {
		if alive {
			n++
		}
	}
	return n
}

// Paused reports whether the simulation is halted.
func (e *Engine) Paused() bool { return e.paused }

// TogglePause switches between Paused and Running.
func (e *Engine) TogglePause() {
	e.paused = !e.paused
}

// AdvanceGeneration computes the next generation into the buffer from a
// read-only pass over the current grid, then swaps the two.
func (e *Engine) AdvanceGeneration() {
	if e.cfg.Workers > 1 && e.h > 1 {
		e.advanceBands(min(e.cfg.Workers, e.h))
	} else {
		e.advanceRows(0, e.h)
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
}

// advanceBands splits rows across workers. Each band writes only its own
// buffer rows; Wait orders every write before the swap.
func (e *Engine) advanceBands(workers int) {
	var eg errgroup.Group
	band := (e.h + workers - 1) / workers
	for y0 := 0; y0 < e.h; y0 += band {
		y1 := min(y0+band, e.h)
		eg.Go(func() error {
			e.advanceRows(y0, y1)
			return nil
		})
	}
	_ = eg.Wait() // bands never fail
}

// advanceRows applies the rule to rows [y0, y1).
func (e *Engine) advanceRows(y0, y1 int) {
	w, h := e.w, e.h
	for y := y0; y < y1; y++ {
		up := ((y + h - 1) % h) * w
		row := y * w
		down := ((y + 1) % h) * w
		for x := 0; x < w; x++ {
			left := (x + w - 1) % w
			right := (x + 1) % w

			n := b2i(e.cur[up+left]) + b2i(e.cur[up+x]) + b2i(e.cur[up+right]) +
				b2i(e.cur[row+left]) + b2i(e.cur[row+right]) +
				b2i(e.cur[down+left]) + b2i(e.cur[down+x]) + b2i(e.cur[down+right])

			e.nxt[row+x] = Rule(e.cur[row+x], n)
		}
	}
}

// LiveNeighbors counts the live Moore neighbors of (x, y) with toroidal wrap.
// The cell itself is not counted.
func (e *Engine) LiveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := core.Wrap(x+dx, e.w)
			ny := core.Wrap(y+dy, e.h)
			n += b2i(e.cur[ny*e.w+nx])
		}
	}
	return n
}

// Rule returns the next state of a cell given its state and live neighbor count.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
