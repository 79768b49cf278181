package trigger

import "github.com/cwbudde/algo-stimloop/dsp/core"

// triggerState enumerates the pulse state machine.
type triggerState int

const (
	stateIdle triggerState = iota
	stateWaitRise
	stateWaitFall
	stateWaitCool
)

// Trigger is a single pulse generator. Armed by a detection flag, it
// waits for its timing signal to reach a saved target (unwrapping the
// signal across period boundaries), asserts its output for a fixed
// duration, then enforces a cooldown before it can re-arm.
type Trigger[I core.Index] struct {
	// Configuration, in samples.
	duration  I
	cooldown  I
	reraiseOK bool

	state        triggerState
	timeoutLeft  I
	savedTarget  I
	prevSignal   I
	unwrapOffset I
}

// NewTrigger returns a trigger in its reset state.
func NewTrigger[I core.Index]() *Trigger[I] {
	t := &Trigger[I]{}
	t.ResetState()
	return t
}

// ResetState restores the default configuration (one-sample pulses,
// 50-sample cooldown, no re-raise) and forces the trigger idle.
func (t *Trigger[I]) ResetState() {
	t.duration = 1
	t.cooldown = 50
	t.reraiseOK = false

	t.ForceIdle()
}

// ForceIdle resets the transient state to idle. Configuration is left
// intact.
func (t *Trigger[I]) ForceIdle() {
	t.state = stateIdle
	t.timeoutLeft = 0
	t.savedTarget = 0
	t.prevSignal = 0
	t.unwrapOffset = 0
}

// ProcessSample advances the trigger by one tick and reports whether
// the pulse is asserted. countLeft is the bank-shared pulse quota; it
// is checked before arming and decremented exactly once per pulse, on
// the idle-to-wait-rise transition.
func (t *Trigger[I]) ProcessSample(sig, target, period I, detect bool, countLeft *I) bool {
	switch t.state {
	case stateWaitRise:
		// Pulse queued but not yet active. Wait for the signal to
		// reach the saved target, unwrapping past one period boundary
		// when the signal falls back by more than half a period.
		sig += t.unwrapOffset

		if sig+(period>>1) < t.prevSignal {
			t.unwrapOffset += period
			sig += period
		}

		t.prevSignal = sig

		if sig >= t.savedTarget {
			t.timeoutLeft = t.duration
			t.state = stateWaitFall
		}

	case stateWaitFall:
		// Pulse is active.
		if t.timeoutLeft > 0 {
			t.timeoutLeft--
		}
		if t.timeoutLeft == 0 {
			t.timeoutLeft = t.cooldown
			t.state = stateWaitCool
		}

	case stateWaitCool:
		if t.timeoutLeft > 0 {
			t.timeoutLeft--
		}
		// Re-arm only once detection de-asserts, unless re-raising on
		// a still-asserted flag is allowed.
		if t.timeoutLeft == 0 && (!detect || t.reraiseOK) {
			t.state = stateIdle
		}

	default:
		// Idle: queue a pulse if detection is asserted and quota
		// remains.
		if detect && *countLeft > 0 {
			*countLeft--
			t.state = stateWaitRise

			t.savedTarget = target
			// If the signal already passed the target, aim one period
			// later. Calibration offsets can push the signal past a
			// full period, so check and advance a second time.
			if sig >= t.savedTarget {
				t.savedTarget += period
			}
			if sig >= t.savedTarget {
				t.savedTarget += period
			}

			t.unwrapOffset = 0
			t.prevSignal = sig
		}
	}

	return t.state == stateWaitFall
}

// SetPulseDuration sets the pulse width in samples, floored at one.
func (t *Trigger[I]) SetPulseDuration(samples I) {
	if samples < 1 {
		samples = 1
	}
	t.duration = samples
}

// SetPulseCooldown sets the post-pulse cooldown in samples, floored at
// one.
func (t *Trigger[I]) SetPulseCooldown(samples I) {
	if samples < 1 {
		samples = 1
	}
	t.cooldown = samples
}

// SetReRaise selects whether a still-asserted detection flag may start
// another pulse after cooldown.
func (t *Trigger[I]) SetReRaise(ok bool) { t.reraiseOK = ok }

// PulseDuration returns the pulse width in samples.
func (t *Trigger[I]) PulseDuration() I { return t.duration }

// PulseCooldown returns the cooldown in samples.
func (t *Trigger[I]) PulseCooldown() I { return t.cooldown }

// ReRaise reports whether re-raising is allowed.
func (t *Trigger[I]) ReRaise() bool { return t.reraiseOK }
