package detect

import (
	"github.com/cwbudde/algo-stimloop/dsp/core"
	"github.com/cwbudde/algo-stimloop/dsp/slice"
)

// DeGlitcher delays rising and falling edges by configured amounts,
// removing pulses and drop-outs shorter than the delay at the cost of
// added latency. Any opposite-polarity sample reloads the pending
// countdown.
type DeGlitcher[I core.Index] struct {
	riseDelay I
	fallDelay I

	riseCountdown I
	fallCountdown I
	lastOutput    bool
}

// ProcessSample advances the de-glitcher by one input flag and returns
// the debounced output.
func (d *DeGlitcher[I]) ProcessSample(in bool) bool {
	if d.lastOutput {
		switch {
		case in:
			// Still high.
			d.fallCountdown = d.fallDelay
		case d.fallCountdown == 0:
			// Low and past the delay.
			d.lastOutput = false
			d.riseCountdown = d.riseDelay
		default:
			// Low but the change cannot be reported yet.
			d.fallCountdown--
		}
	} else {
		switch {
		case !in:
			// Still low.
			d.riseCountdown = d.riseDelay
		case d.riseCountdown == 0:
			// High and past the delay.
			d.lastOutput = true
			d.fallCountdown = d.fallDelay
		default:
			// High but the change cannot be reported yet.
			d.riseCountdown--
		}
	}

	return d.lastOutput
}

// SetDelays sets the edge delays, reloads both countdowns, and resets
// the output low.
func (d *DeGlitcher[I]) SetDelays(riseDelay, fallDelay I) {
	d.riseDelay = riseDelay
	d.fallDelay = fallDelay
	d.riseCountdown = riseDelay
	d.fallCountdown = fallDelay
	d.lastOutput = false
}

// DeGlitcherBank is a (bank, channel) array of de-glitchers.
type DeGlitcherBank[I core.Index] struct {
	deglitchers []DeGlitcher[I]

	banks int
	chans int
}

// NewDeGlitcherBank returns a bank of de-glitchers with zero delays
// and low outputs.
func NewDeGlitcherBank[I core.Index](banks, chans int) *DeGlitcherBank[I] {
	if banks < 1 {
		banks = 1
	}
	if chans < 1 {
		chans = 1
	}
	return &DeGlitcherBank[I]{
		deglitchers: make([]DeGlitcher[I], banks*chans),
		banks:       banks,
		chans:       chans,
	}
}

// at returns the de-glitcher at (bank, chan).
func (b *DeGlitcherBank[I]) at(bank, ch int) *DeGlitcher[I] {
	return &b.deglitchers[bank*b.chans+ch]
}

// ProcessSample advances every cell by one input slice. Every cell is
// evaluated, active or not.
func (b *DeGlitcherBank[I]) ProcessSample(in, out *slice.Slice[bool]) {
	for bi := 0; bi < b.banks; bi++ {
		for ci := 0; ci < b.chans; ci++ {
			out.Set(bi, ci, b.at(bi, ci).ProcessSample(in.At(bi, ci)))
		}
	}
}

// SetDelays applies per-cell rise and fall delays.
func (b *DeGlitcherBank[I]) SetDelays(riseDelays, fallDelays *slice.Slice[I]) {
	for bi := 0; bi < b.banks; bi++ {
		for ci := 0; ci < b.chans; ci++ {
			b.at(bi, ci).SetDelays(riseDelays.At(bi, ci), fallDelays.At(bi, ci))
		}
	}
}

// SetBankDelays applies per-bank delays ([banks][1]).
func (b *DeGlitcherBank[I]) SetBankDelays(riseDelays, fallDelays *slice.Slice[I]) {
	for bi := 0; bi < b.banks; bi++ {
		r := riseDelays.At(bi, 0)
		f := fallDelays.At(bi, 0)
		for ci := 0; ci < b.chans; ci++ {
			b.at(bi, ci).SetDelays(r, f)
		}
	}
}

// SetChanDelays applies per-channel delays ([1][chans]).
func (b *DeGlitcherBank[I]) SetChanDelays(riseDelays, fallDelays *slice.Slice[I]) {
	for bi := 0; bi < b.banks; bi++ {
		for ci := 0; ci < b.chans; ci++ {
			b.at(bi, ci).SetDelays(riseDelays.At(0, ci), fallDelays.At(0, ci))
		}
	}
}

// SetUniformDelays applies one delay pair everywhere.
func (b *DeGlitcherBank[I]) SetUniformDelays(riseDelay, fallDelay I) {
	for i := range b.deglitchers {
		b.deglitchers[i].SetDelays(riseDelay, fallDelay)
	}
}

// SetOneDelays sets one cell's delay pair. Out-of-range indices are
// ignored.
func (b *DeGlitcherBank[I]) SetOneDelays(bank, ch int, riseDelay, fallDelay I) {
	if bank >= 0 && bank < b.banks && ch >= 0 && ch < b.chans {
		b.at(bank, ch).SetDelays(riseDelay, fallDelay)
	}
}
