package life

import "time"

// UpdateDelay is the wall-clock interval between automatic advances.
func (e *Engine) UpdateDelay() time.Duration { return e.updateDelay }

// DelayStep is the amount AdjustUpdateDelay moves the delay by.
func (e *Engine) DelayStep() time.Duration { return e.delayStep }

// AdjustDelayStep moves the step by one unit, clamped to [MinStep, MaxStep].
func (e *Engine) AdjustDelayStep(increase bool) {
	if increase {
		if e.delayStep >= e.cfg.MaxStep {
			return
		}
		e.delayStep = min(e.delayStep+e.cfg.DelayUnit, e.cfg.MaxStep)
		return
	}
	if e.delayStep <= e.cfg.MinStep {
		return
	}
	e.delayStep = max(e.delayStep-e.cfg.DelayUnit, e.cfg.MinStep)
}

// AdjustUpdateDelay moves the delay by the current step. A decrease that
// would land at or below MinDelay is rejected.
func (e *Engine) AdjustUpdateDelay(increase bool) {
	if increase {
		e.updateDelay += e.delayStep
		return
	}
	if e.updateDelay-e.delayStep <= e.cfg.MinDelay {
		return
	}
	e.updateDelay -= e.delayStep
}

// ResetDelay restores the default delay and step.
func (e *Engine) ResetDelay() {
	e.updateDelay = e.cfg.DefaultDelay
	e.delayStep = e.cfg.DefaultStep
}
