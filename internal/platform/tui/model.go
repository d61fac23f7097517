package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/krida/internal/core"
	"github.com/vovakirdan/krida/internal/life"
	"github.com/vovakirdan/krida/internal/storage"
)

// Model is the Bubble Tea model for one interactive simulation session.
// It drives the engine: it advances on ticks while running, forwards keys
// and clicks to the mutators, and draws from IsAlive.
type Model struct {
	engine   *life.Engine
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	store    *storage.Store
	config   core.RuntimeConfig
	mode     string
	started  time.Time
	peak     int
	quitting bool
	saved    bool // Whether the run has been recorded
}

// NewModel creates a model driving e. store may be nil.
func NewModel(e *life.Engine, store *storage.Store, cfg core.RuntimeConfig, mode string) Model {
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = 1
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = 1
	}

	m := Model{
		engine:  e,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		store:   store,
		config:  cfg,
		mode:    mode,
		started: time.Now(),
		peak:    e.Population(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardRows())
	return m
}

// Engine returns the engine driven by this model.
func (m Model) Engine() *life.Engine {
	return m.engine
}

// Init starts the tick chain.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.engine.UpdateDelay())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.boardRows())
	default:
		Apply(m.engine, action)
		m.trackPeak()
	}
	return m, nil
}

// handleMouse toggles the cell under a left click inside the board area.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.X < 0 || msg.Y < 0 || msg.Y >= m.screen.Height() {
		return m, nil
	}
	m.engine.ToggleCell(msg.X/m.config.CellWidth, msg.Y/m.config.CellHeight)
	m.trackPeak()
	return m, nil
}

// handleResize resizes the viewport. The grid keeps its dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.boardRows())
	return m, nil
}

// handleTick advances once if running and schedules the next tick using the
// delay in effect now.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if !m.engine.Paused() {
		m.engine.AdvanceGeneration()
		m.trackPeak()
	}
	return m, tickCmd(m.engine.UpdateDelay())
}

func (m *Model) trackPeak() {
	m.peak = max(m.peak, m.engine.Population())
}

// boardRows is the number of terminal rows left for the board.
func (m Model) boardRows() int {
	rows := m.config.ScreenH - 1 - lipgloss.Height(m.help.View(m.keys))
	return max(rows, 0)
}

// Record summarizes the session so far.
func (m Model) Record() storage.RunRecord {
	return storage.RunRecord{
		Mode:            m.mode,
		Pattern:         m.config.Pattern,
		Seed:            m.engine.Seed(),
		Width:           m.engine.Width(),
		Height:          m.engine.Height(),
		Generations:     m.engine.Generation(),
		PeakPopulation:  m.peak,
		FinalPopulation: m.engine.Population(),
		Duration:        time.Since(m.started),
	}
}

// saveRun records the session once. Runs that never advanced are skipped.
func (m *Model) saveRun() {
	if m.saved || m.store == nil || m.engine.Generation() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session ends regardless
	m.store.SaveRun(m.Record())
	m.saved = true
}

// View renders the board, the status line and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawBoard(m.screen, m.engine, m.config.CellWidth, m.config.CellHeight)
	return RenderScreen(m.screen) + "\n" + renderHUD(m.engine) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local session.
func Run(e *life.Engine, store *storage.Store, cfg core.RuntimeConfig) (storage.RunRecord, error) {
	model := NewModel(e, store, cfg, storage.ModePlay)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks toggle cells
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		return fm.Record(), err
	}
	return model.Record(), err
}
