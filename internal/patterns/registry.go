// Package patterns provides a registry of named seed patterns.
// Patterns register themselves in init() so the CLI can list and pick them
// without hardcoded switch statements.
package patterns

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/krida/internal/core"
)

// DefaultName is the pattern every engine is constructed with.
const DefaultName = "glider"

// ErrUnknownPattern is returned by Get for unregistered names.
var ErrUnknownPattern = errors.New("patterns: unknown pattern")

// Pattern is a set of live cells with a display title.
type Pattern struct {
	Name  string
	Title string
	Cells []core.Point

	// Anchored patterns are placed at their literal coordinates and clipped
	// to the grid. Others are centered and wrapped around the torus.
	Anchored bool
}

// Size returns the width and height of the pattern's bounding box.
func (p Pattern) Size() (w, h int) {
	return core.Bounds(p.Cells)
}

// Grid is the subset of the engine that Stamp needs.
type Grid interface {
	Width() int
	Height() int
	Clear()
	Set(x, y int, alive bool)
}

// Stamp clears g and draws p onto it.
func Stamp(g Grid, p Pattern) {
	g.Clear()

	if p.Anchored {
		for _, c := range p.Cells {
			g.Set(c.X, c.Y, true)
		}
		return
	}

	w, h := g.Width(), g.Height()
	bw, bh := p.Size()
	offset := core.Point{X: (w - bw) / 2, Y: (h - bh) / 2}
	for _, c := range p.Cells {
		at := core.WrapPoint(c.Add(offset), w, h)
		g.Set(at.X, at.Y, true)
	}
}

var (
	registered = make(map[string]Pattern)
	mu         sync.RWMutex
)

// Register adds a pattern to the registry.
// Panics if a pattern with the same name is already registered.
func Register(p Pattern) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registered[p.Name]; exists {
		panic(fmt.Sprintf("patterns: %q already registered", p.Name))
	}
	registered[p.Name] = p
}

// List returns all registered patterns, sorted by name.
func List() []Pattern {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Pattern, 0, len(registered))
	for _, p := range registered {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get looks up a pattern by name. An empty name selects DefaultName.
func Get(name string) (Pattern, error) {
	if name == "" {
		name = DefaultName
	}

	mu.RLock()
	defer mu.RUnlock()

	p, ok := registered[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// Exists checks if a pattern with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := registered[name]
	return ok
}
