package tui

import (
	"github.com/vovakirdan/krida/internal/core"
	"github.com/vovakirdan/krida/internal/life"
)

// Apply forwards an engine-level action to the matching mutator and reports
// whether the action was one. Quit and Help are handled by the model.
func Apply(e *life.Engine, a core.Action) bool {
	switch a {
	case core.ActionTogglePause:
		e.TogglePause()
	case core.ActionClear:
		e.Clear()
	case core.ActionRandomDense:
		e.Randomize(true)
	case core.ActionRandomSparse:
		e.Randomize(false)
	case core.ActionDelayUp:
		e.AdjustUpdateDelay(true)
	case core.ActionDelayDown:
		e.AdjustUpdateDelay(false)
	case core.ActionDelayReset:
		e.ResetDelay()
	case core.ActionStepUp:
		e.AdjustDelayStep(true)
	case core.ActionStepDown:
		e.AdjustDelayStep(false)
	case core.ActionSingleStep:
		// Only while paused, so the tick chain stays the sole driver when running.
		if e.Paused() {
			e.AdvanceGeneration()
		}
	default:
		return false
	}
	return true
}
