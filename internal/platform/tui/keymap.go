package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/krida/internal/core"
)

// KeyMap defines the key bindings for a simulation session.
type KeyMap struct {
	Pause        key.Binding
	Clear        key.Binding
	Quit         key.Binding
	RandomDense  key.Binding
	RandomSparse key.Binding
	DelayUp      key.Binding
	DelayDown    key.Binding
	DelayReset   key.Binding
	StepUp       key.Binding
	StepDown     key.Binding
	SingleStep   key.Binding
	Help         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.SingleStep, k.Clear, k.RandomDense, k.RandomSparse, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.SingleStep, k.Clear},
		{k.RandomDense, k.RandomSparse},
		{k.DelayUp, k.DelayDown, k.DelayReset},
		{k.StepUp, k.StepDown},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "run/pause"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
		RandomDense: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "random 50%"),
		),
		RandomSparse: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random 10%"),
		),
		DelayUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "slower"),
		),
		DelayDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "faster"),
		),
		DelayReset: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset speed"),
		),
		StepUp: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "bigger step"),
		),
		StepDown: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "smaller step"),
		),
		SingleStep: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "step once"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// Action translates a key message to a simulation action.
// Unbound keys map to core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Pause, core.ActionTogglePause},
		{k.Clear, core.ActionClear},
		{k.RandomDense, core.ActionRandomDense},
		{k.RandomSparse, core.ActionRandomSparse},
		{k.DelayUp, core.ActionDelayUp},
		{k.DelayDown, core.ActionDelayDown},
		{k.DelayReset, core.ActionDelayReset},
		{k.StepUp, core.ActionStepUp},
		{k.StepDown, core.ActionStepDown},
		{k.SingleStep, core.ActionSingleStep},
		{k.Help, core.ActionHelp},
	}

	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}
