package core

// Action represents a semantic simulation control, abstracted from physical
// key presses so the platform can rebind keys without touching the engine.
type Action int

const (
	ActionNone          Action = iota
	ActionTogglePause          // Space - run/halt the simulation
	ActionClear                // C - kill every cell
	ActionQuit                 // Esc, Q, Ctrl+C - exit the session
	ActionRandomDense          // P - ~50% alive
	ActionRandomSparse         // R - ~10% alive
	ActionDelayUp              // Up - slower
	ActionDelayDown            // Down - faster
	ActionDelayReset           // 0 - restore default delay and step
	ActionStepUp               // Right - larger delay step
	ActionStepDown             // Left - smaller delay step
	ActionSingleStep           // N - advance one generation while paused
	ActionHelp                 // ? - toggle full help
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTogglePause:
		return "TogglePause"
	case ActionClear:
		return "Clear"
	case ActionQuit:
		return "Quit"
	case ActionRandomDense:
		return "RandomDense"
	case ActionRandomSparse:
		return "RandomSparse"
	case ActionDelayUp:
		return "DelayUp"
	case ActionDelayDown:
		return "DelayDown"
	case ActionDelayReset:
		return "DelayReset"
	case ActionStepUp:
		return "StepUp"
	case ActionStepDown:
		return "StepDown"
	case ActionSingleStep:
		return "SingleStep"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
