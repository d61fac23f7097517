package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/krida/internal/core"
	"github.com/vovakirdan/krida/internal/life"
	"github.com/vovakirdan/krida/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 10, 8
	cfg.Seed = 3
	rc := core.RuntimeConfig{ScreenW: 20, ScreenH: 10, CellWidth: 2, CellHeight: 1, Pattern: "glider"}
	return NewModel(life.New(cfg), store, rc, storage.ModePlay)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestTickWhilePausedDoesNotAdvance(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, TickMsg(time.Now()))
	if m.Engine().Generation() != 0 {
		t.Errorf("Generation() = %d, expected 0 while paused", m.Engine().Generation())
	}
	if cmd == nil {
		t.Error("tick chain must continue while paused")
	}
}

func TestTickWhileRunningAdvancesOnce(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	if m.Engine().Paused() {
		t.Fatal("space should start the simulation")
	}

	m, cmd := update(t, m, TickMsg(time.Now()))
	if m.Engine().Generation() != 1 {
		t.Errorf("Generation() = %d, expected 1", m.Engine().Generation())
	}
	if cmd == nil {
		t.Error("expected next tick to be scheduled")
	}
}

func TestKeysDriveEngine(t *testing.T) {
	m := newTestModel(t, nil)
	e := m.Engine()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if e.UpdateDelay() != 200*time.Millisecond {
		t.Errorf("UpdateDelay() = %v, expected 200ms", e.UpdateDelay())
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if e.DelayStep() != 90*time.Millisecond {
		t.Errorf("DelayStep() = %v, expected 90ms", e.DelayStep())
	}
	m, _ = update(t, m, runeKey('0'))
	if e.UpdateDelay() != life.DefaultDelay || e.DelayStep() != life.MaxStep {
		t.Errorf("reset left %v/%v", e.UpdateDelay(), e.DelayStep())
	}

	m, _ = update(t, m, runeKey('c'))
	if e.Population() != 0 {
		t.Errorf("Population() = %d after clear", e.Population())
	}
	m, _ = update(t, m, runeKey('p'))
	if e.Population() == 0 {
		t.Error("dense randomize left the board empty")
	}

	m, _ = update(t, m, runeKey('n'))
	if e.Generation() != 1 {
		t.Errorf("single step while paused: Generation() = %d, expected 1", e.Generation())
	}

	_, cmd := update(t, m, runeKey('z'))
	if cmd != nil {
		t.Error("unbound key should produce no command")
	}
}

func TestSingleStepIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, runeKey('n'))
	if m.Engine().Generation() != 0 {
		t.Errorf("Generation() = %d, expected 0", m.Engine().Generation())
	}
}

func TestMouseClickTogglesCell(t *testing.T) {
	m := newTestModel(t, nil)
	e := m.Engine()

	// Column 7 with 2-wide cells is grid x 3.
	click := tea.MouseMsg{X: 7, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, click)
	if !e.IsAlive(3, 5) {
		t.Fatal("left click should revive (3,5)")
	}
	m, _ = update(t, m, click)
	if e.IsAlive(3, 5) {
		t.Error("second click should kill (3,5)")
	}

	before := e.Population()
	ignored := []tea.MouseMsg{
		{X: 7, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		{X: 7, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		{X: 7, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, // HUD row
		{X: 40, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, // past grid width
	}
	for _, msg := range ignored {
		m, _ = update(t, m, msg)
	}
	if e.Population() != before {
		t.Errorf("Population() = %d, expected %d", e.Population(), before)
	}
}

func TestResizeKeepsGrid(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})

	if m.Engine().Width() != 10 || m.Engine().Height() != 8 {
		t.Errorf("grid resized to %dx%d", m.Engine().Width(), m.Engine().Height())
	}
	if m.screen.Width() != 60 || m.screen.Height() != 28 {
		t.Errorf("screen = %dx%d, expected 60x28", m.screen.Width(), m.screen.Height())
	}
}

func TestViewDrawsGlider(t *testing.T) {
	m := newTestModel(t, nil)
	DrawBoard(m.screen, m.Engine(), 2, 1)

	// Glider (2,1) sits at columns 4-5 of row 1.
	if m.screen.Get(4, 1) != liveGlyph || m.screen.Get(5, 1) != liveGlyph {
		t.Error("expected glider cell (2,1) drawn at columns 4-5")
	}
	if m.screen.Get(0, 0) != ' ' {
		t.Error("expected dead cell to be blank")
	}

	view := m.View()
	if !strings.Contains(view, "PAUSED") || !strings.Contains(view, "gen 0") {
		t.Errorf("View() missing HUD: %q", view)
	}
}

func TestQuitSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	for i := 0; i < 4; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}

	// A second quit must not record twice.
	update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	runs, err := store.LongestRuns("", 10)
	if err != nil {
		t.Fatalf("LongestRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Generations != 4 || runs[0].Pattern != "glider" || runs[0].Mode != storage.ModePlay {
		t.Errorf("unexpected run: %+v", runs[0])
	}
	if runs[0].PeakPopulation != 5 {
		t.Errorf("PeakPopulation = %d, expected 5", runs[0].PeakPopulation)
	}
}

func TestQuitWithoutGenerationsSkipsSave(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	update(t, m, runeKey('q'))

	if n, _ := store.RunCount(); n != 0 {
		t.Errorf("RunCount() = %d, expected 0", n)
	}
}
