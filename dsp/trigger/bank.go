package trigger

import (
	"github.com/cwbudde/algo-stimloop/dsp/core"
	"github.com/cwbudde/algo-stimloop/dsp/slice"
)

// Bank is a (bank, channel) array of triggers sharing a pulse quota
// and an arming window, gated by a per-cell enable mask.
type Bank[I core.Index] struct {
	triggers []Trigger[I]
	enabled  *slice.Slice[bool]

	countLeft      I
	windowTimeLeft I

	banks int
	chans int

	banksActive int
	chansActive int
}

// NewBank returns a disarmed bank with all cells disabled and zero
// active geometry.
func NewBank[I core.Index](banks, chans int) *Bank[I] {
	if banks < 1 {
		banks = 1
	}
	if chans < 1 {
		chans = 1
	}

	b := &Bank[I]{
		triggers: make([]Trigger[I], banks*chans),
		enabled:  slice.New[bool](banks, chans),
		banks:    banks,
		chans:    chans,
	}
	b.ResetState()
	return b
}

// at returns the trigger at (bank, chan).
func (b *Bank[I]) at(bank, ch int) *Trigger[I] {
	return &b.triggers[bank*b.chans+ch]
}

// ResetState restores every trigger's default configuration, clears
// the enable mask, disarms the bank, and zeroes the active geometry.
func (b *Bank[I]) ResetState() {
	b.countLeft = 0
	b.windowTimeLeft = 0

	b.banksActive = 0
	b.chansActive = 0

	b.enabled.Fill(false)

	for i := range b.triggers {
		b.triggers[i].ResetState()
	}
}

// ForceIdle halts all triggering and resets every trigger to idle.
// Configuration is left intact.
func (b *Bank[I]) ForceIdle() {
	b.countLeft = 0
	b.windowTimeLeft = 0

	for i := range b.triggers {
		b.triggers[i].ForceIdle()
	}
}

// EnableTriggering arms the bank: triggering is allowed for the next
// windowSamples ticks and at most maxPulses pulses.
func (b *Bank[I]) EnableTriggering(windowSamples, maxPulses I) {
	b.windowTimeLeft = windowSamples
	b.countLeft = maxPulses
}

// DisableTriggering disarms the bank. Pulses in progress still
// complete.
func (b *Bank[I]) DisableTriggering() {
	b.windowTimeLeft = 0
	b.countLeft = 0
}

// ProcessSamples advances every enabled cell in the active
// subrectangle by one tick. When the arming window runs out the pulse
// quota drops to zero, but triggers are still stepped so pulses in
// flight complete. Inactive cells' outputs are left untouched.
func (b *Bank[I]) ProcessSamples(sig, target, period *slice.Slice[I], detect, out *slice.Slice[bool]) {
	if b.windowTimeLeft > 0 {
		b.windowTimeLeft--
	} else {
		b.countLeft = 0
	}

	for bi := 0; bi < b.banksActive; bi++ {
		for ci := 0; ci < b.chansActive; ci++ {
			pulse := false

			if b.enabled.At(bi, ci) {
				pulse = b.at(bi, ci).ProcessSample(
					sig.At(bi, ci), target.At(bi, ci),
					period.At(bi, ci), detect.At(bi, ci),
					&b.countLeft,
				)
			}

			out.Set(bi, ci, pulse)
		}
	}
}

// TriggerCountLeft returns the remaining pulse quota.
func (b *Bank[I]) TriggerCountLeft() I { return b.countLeft }

// WindowTimeLeft returns the remaining arming window in samples.
func (b *Bank[I]) WindowTimeLeft() I { return b.windowTimeLeft }

// ActiveBanks returns the active bank count.
func (b *Bank[I]) ActiveBanks() int { return b.banksActive }

// SetActiveBanks clamps and stores the active bank count.
func (b *Bank[I]) SetActiveBanks(n int) {
	if n < 0 {
		n = 0
	} else if n > b.banks {
		n = b.banks
	}
	b.banksActive = n
}

// ActiveChans returns the active channel count.
func (b *Bank[I]) ActiveChans() int { return b.chansActive }

// SetActiveChans clamps and stores the active channel count.
func (b *Bank[I]) SetActiveChans(n int) {
	if n < 0 {
		n = 0
	} else if n > b.chans {
		n = b.chans
	}
	b.chansActive = n
}

// SetEnableFlags replaces the whole enable mask.
func (b *Bank[I]) SetEnableFlags(want *slice.Slice[bool]) {
	b.enabled.CopyFrom(want)
}

// EnableFlags copies the enable mask into out.
func (b *Bank[I]) EnableFlags(out *slice.Slice[bool]) {
	out.CopyFrom(b.enabled)
}

// SetPulseDurations applies per-cell pulse widths.
func (b *Bank[I]) SetPulseDurations(samples *slice.Slice[I]) {
	for bi := 0; bi < b.banks; bi++ {
		for ci := 0; ci < b.chans; ci++ {
			b.at(bi, ci).SetPulseDuration(samples.At(bi, ci))
		}
	}
}

// PulseDurations copies per-cell pulse widths into out.
func (b *Bank[I]) PulseDurations(out *slice.Slice[I]) {
	for bi := 0; bi < b.banks; bi++ {
		for ci := 0; ci < b.chans; ci++ {
			out.Set(bi, ci, b.at(bi, ci).PulseDuration())
		}
	}
}

// SetPulseCooldowns applies per-cell cooldowns.
func (b *Bank[I]) SetPulseCooldowns(samples *slice.Slice[I]) {
	for bi := 0; bi < b.banks; bi++ {
		for ci := 0; ci < b.chans; ci++ {
			b.at(bi, ci).SetPulseCooldown(samples.At(bi, ci))
		}
	}
}

// PulseCooldowns copies per-cell cooldowns into out.
func (b *Bank[I]) PulseCooldowns(out *slice.Slice[I]) {
	for bi := 0; bi < b.banks; bi++ {
		for ci := 0; ci < b.chans; ci++ {
			out.Set(bi, ci, b.at(bi, ci).PulseCooldown())
		}
	}
}

// SetAllReRaises applies one re-raise setting everywhere.
func (b *Bank[I]) SetAllReRaises(ok bool) {
	for i := range b.triggers {
		b.triggers[i].SetReRaise(ok)
	}
}

// ReRaises copies per-cell re-raise settings into out.
func (b *Bank[I]) ReRaises(out *slice.Slice[bool]) {
	for bi := 0; bi < b.banks; bi++ {
		for ci := 0; ci < b.chans; ci++ {
			out.Set(bi, ci, b.at(bi, ci).ReRaise())
		}
	}
}

// SetOneEnableFlag sets one cell's enable flag. Out-of-range indices
// are ignored.
func (b *Bank[I]) SetOneEnableFlag(bank, ch int, enabled bool) {
	if bank >= 0 && bank < b.banks && ch >= 0 && ch < b.chans {
		b.enabled.Set(bank, ch, enabled)
	}
}

// OneEnableFlag returns one cell's enable flag. Out-of-range indices
// return false.
func (b *Bank[I]) OneEnableFlag(bank, ch int) bool {
	if bank >= 0 && bank < b.banks && ch >= 0 && ch < b.chans {
		return b.enabled.At(bank, ch)
	}
	return false
}

// SetOnePulseDuration sets one cell's pulse width. Out-of-range
// indices are ignored.
func (b *Bank[I]) SetOnePulseDuration(bank, ch int, samples I) {
	if bank >= 0 && bank < b.banks && ch >= 0 && ch < b.chans {
		b.at(bank, ch).SetPulseDuration(samples)
	}
}

// OnePulseDuration returns one cell's pulse width. Out-of-range
// indices return zero.
func (b *Bank[I]) OnePulseDuration(bank, ch int) I {
	if bank >= 0 && bank < b.banks && ch >= 0 && ch < b.chans {
		return b.at(bank, ch).PulseDuration()
	}
	return 0
}

// SetOnePulseCooldown sets one cell's cooldown. Out-of-range indices
// are ignored.
func (b *Bank[I]) SetOnePulseCooldown(bank, ch int, samples I) {
	if bank >= 0 && bank < b.banks && ch >= 0 && ch < b.chans {
		b.at(bank, ch).SetPulseCooldown(samples)
	}
}

// OnePulseCooldown returns one cell's cooldown. Out-of-range indices
// return zero.
func (b *Bank[I]) OnePulseCooldown(bank, ch int) I {
	if bank >= 0 && bank < b.banks && ch >= 0 && ch < b.chans {
		return b.at(bank, ch).PulseCooldown()
	}
	return 0
}

// SetOneReRaise sets one cell's re-raise setting. Out-of-range
// indices are ignored.
func (b *Bank[I]) SetOneReRaise(bank, ch int, ok bool) {
	if bank >= 0 && bank < b.banks && ch >= 0 && ch < b.chans {
		b.at(bank, ch).SetReRaise(ok)
	}
}

// OneReRaise returns one cell's re-raise setting. Out-of-range
// indices return false.
func (b *Bank[I]) OneReRaise(bank, ch int) bool {
	if bank >= 0 && bank < b.banks && ch >= 0 && ch < b.chans {
		return b.at(bank, ch).ReRaise()
	}
	return false
}
