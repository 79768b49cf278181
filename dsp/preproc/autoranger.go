package preproc

import (
	"github.com/cwbudde/algo-stimloop/dsp/core"
	"github.com/cwbudde/algo-stimloop/dsp/slice"
)

// AutoRanger fits per-channel input ranges into a desired output range
// via bit-shift attenuation and an additive offset. Running values
// track the observed min/max watermarks; latched values are one-shot
// snapshots taken when a countdown scheduled by LatchAfter expires.
type AutoRanger[S core.Sample, I core.Index] struct {
	chans int

	minVals []S
	maxVals []S

	latchCountdown  I
	countdownActive bool

	middleWanted   S
	halfspanWanted S

	// Attenuation can be per-channel or tied across channels.
	// Offsets are always per-channel.
	attenTied bool

	runningOffsets []S
	runningAttens  []uint8

	latchedOffsets []S
	latchedAttens  []uint8
}

// New returns an auto-ranger for the given channel count. The desired
// range defaults to the full span of S, tracking is reset so the first
// sample seeds both watermarks, and latched values are identity.
func New[S core.Sample, I core.Index](chans int) *AutoRanger[S, I] {
	if chans < 1 {
		chans = 1
	}

	a := &AutoRanger[S, I]{
		chans:          chans,
		minVals:        make([]S, chans),
		maxVals:        make([]S, chans),
		runningOffsets: make([]S, chans),
		runningAttens:  make([]uint8, chans),
		latchedOffsets: make([]S, chans),
		latchedAttens:  make([]uint8, chans),
	}

	a.SetDesiredRange(core.MinValue[S](), core.MaxValue[S]())
	a.ResetTracking(a.attenTied)
	a.ResetLatched()
	return a
}

// recalcAttenOffset refreshes the running attenuation and offset from
// the min/max watermarks.
func (a *AutoRanger[S, I]) recalcAttenOffset() {
	for c := 0; c < a.chans; c++ {
		thisMin := a.minVals[c]
		thisMax := a.maxVals[c]

		// Before any sample arrives the watermarks are inverted;
		// collapse to a zero span.
		if thisMax < thisMin {
			thisMax = thisMin
		}

		thisMin = core.ShiftRight(thisMin, 1)
		thisMax = core.ShiftRight(thisMax, 1)

		// (A/2 + B/2) stands in for (A+B)/2 without overflow.
		middle := thisMin + thisMax
		halfspan := thisMax - thisMin

		var atten uint8
		for halfspan > a.halfspanWanted {
			atten++
			// Half spans are non-negative, so a logical shift is fine.
			halfspan >>= 1
		}
		a.runningAttens[c] = atten

		middle = core.ShiftRight(middle, atten)
		// Unsigned arguments wrap around, implementing negative offsets.
		a.runningOffsets[c] = a.middleWanted - middle
	}
}

// calcOutput applies the attenuate-and-offset mapping to one input
// slice.
func (a *AutoRanger[S, I]) calcOutput(in, out *slice.Slice[S], useLatched bool) {
	if !useLatched {
		a.recalcAttenOffset()
	}

	attens := a.runningAttens
	offsets := a.runningOffsets
	if useLatched {
		attens = a.latchedAttens
		offsets = a.latchedOffsets
	}

	// Tied attenuation is the maximum across channels.
	var groupAtten uint8
	for c := 0; c < a.chans; c++ {
		if attens[c] > groupAtten {
			groupAtten = attens[c]
		}
	}

	for c := 0; c < a.chans; c++ {
		atten := attens[c]
		if a.attenTied {
			atten = groupAtten
		}

		v := in.At(0, c)
		v = core.ShiftRight(v, atten)
		v += offsets[c]
		out.Set(0, c, v)
	}
}

// UpdateFromSample extends the min/max watermarks with one input slice
// and advances the latch countdown. When the countdown expires the
// running attenuation and offset are snapshotted into latched storage.
func (a *AutoRanger[S, I]) UpdateFromSample(data *slice.Slice[S]) {
	for c := 0; c < a.chans; c++ {
		v := data.At(0, c)
		if v < a.minVals[c] {
			a.minVals[c] = v
		}
		if v > a.maxVals[c] {
			a.maxVals[c] = v
		}
	}

	if a.countdownActive {
		if a.latchCountdown > 0 {
			a.latchCountdown--
		} else {
			a.countdownActive = false
			a.latchCountdown = 0

			a.recalcAttenOffset()
			copy(a.latchedOffsets, a.runningOffsets)
			copy(a.latchedAttens, a.runningAttens)
		}
	}
}

// RunningOutput applies the running attenuation and offset to in,
// recomputing them from the watermarks first. Tracking state is not
// modified.
func (a *AutoRanger[S, I]) RunningOutput(in, out *slice.Slice[S]) {
	a.calcOutput(in, out, false)
}

// LatchedOutput applies the latched attenuation and offset to in.
// Internal state is not modified.
func (a *AutoRanger[S, I]) LatchedOutput(in, out *slice.Slice[S]) {
	a.calcOutput(in, out, true)
}

// ResetTracking reinitializes the min/max watermarks so that any
// sample will update both. The argument is accepted for interface
// parity with the hardware configuration path and is ignored; tied
// attenuation is controlled through SetTiedAttenuation.
func (a *AutoRanger[S, I]) ResetTracking(_ bool) {
	for c := 0; c < a.chans; c++ {
		a.minVals[c] = core.MaxValue[S]()
		a.maxVals[c] = core.MinValue[S]()
	}
}

// ResetLatched restores the latched attenuation and offset to identity.
func (a *AutoRanger[S, I]) ResetLatched() {
	for c := 0; c < a.chans; c++ {
		a.latchedOffsets[c] = 0
		a.latchedAttens[c] = 0
	}
}

// LatchAfter schedules a one-shot snapshot of the running values after
// the given number of samples.
func (a *AutoRanger[S, I]) LatchAfter(sampCount I) {
	a.latchCountdown = sampCount
	a.countdownActive = true
}

// LatchPending reports whether a scheduled latch has not yet fired.
func (a *AutoRanger[S, I]) LatchPending() bool {
	return a.countdownActive
}

// SetTiedAttenuation selects whether the effective attenuation is the
// per-channel value or the maximum across channels.
func (a *AutoRanger[S, I]) SetTiedAttenuation(tied bool) {
	a.attenTied = tied
}

// SetDesiredRange sets the target output window. Bounds are halved
// internally so that full-span requests cannot overflow.
func (a *AutoRanger[S, I]) SetDesiredRange(newMin, newMax S) {
	scratchMin := core.ShiftRight(newMin, 1)
	scratchMax := core.ShiftRight(newMax, 1)

	if scratchMax < scratchMin {
		scratchMax = scratchMin
	}

	a.middleWanted = scratchMin + scratchMax
	a.halfspanWanted = scratchMax - scratchMin
}

// MinValuesSeen copies the per-channel minimum watermarks into data.
func (a *AutoRanger[S, I]) MinValuesSeen(data *slice.Slice[S]) {
	for c := 0; c < a.chans; c++ {
		data.Set(0, c, a.minVals[c])
	}
}

// MaxValuesSeen copies the per-channel maximum watermarks into data.
func (a *AutoRanger[S, I]) MaxValuesSeen(data *slice.Slice[S]) {
	for c := 0; c < a.chans; c++ {
		data.Set(0, c, a.maxVals[c])
	}
}

// RunningAttenOffset recomputes and reports the running attenuation
// bit-shifts and offsets.
func (a *AutoRanger[S, I]) RunningAttenOffset(bitShifts, offsets *slice.Slice[S]) {
	a.recalcAttenOffset()
	for c := 0; c < a.chans; c++ {
		offsets.Set(0, c, a.runningOffsets[c])
		bitShifts.Set(0, c, S(a.runningAttens[c]))
	}
}

// LatchedAttenOffset reports the latched attenuation bit-shifts and
// offsets.
func (a *AutoRanger[S, I]) LatchedAttenOffset(bitShifts, offsets *slice.Slice[S]) {
	for c := 0; c < a.chans; c++ {
		offsets.Set(0, c, a.latchedOffsets[c])
		bitShifts.Set(0, c, S(a.latchedAttens[c]))
	}
}

// SetAttenOffset manually latches the given attenuation bit-shifts and
// offsets, overriding any earlier snapshot.
func (a *AutoRanger[S, I]) SetAttenOffset(bitShifts, offsets *slice.Slice[S]) {
	for c := 0; c < a.chans; c++ {
		a.latchedOffsets[c] = offsets.At(0, c)
		a.latchedAttens[c] = uint8(bitShifts.At(0, c))
	}
}
