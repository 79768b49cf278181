package analytic

import (
	"github.com/cwbudde/algo-stimloop/dsp/core"
	"github.com/cwbudde/algo-stimloop/dsp/slice"
)

// Bank is a (bank, channel) array of independent estimators.
type Bank[S core.Sample, I core.Index] struct {
	estimators []Estimator[S, I]

	banks int
	chans int

	banksActive int
	chansActive int
}

// NewBank returns a bank of reset estimators with the full geometry
// active.
func NewBank[S core.Sample, I core.Index](banks, chans int) *Bank[S, I] {
	if banks < 1 {
		banks = 1
	}
	if chans < 1 {
		chans = 1
	}

	b := &Bank[S, I]{
		estimators: make([]Estimator[S, I], banks*chans),
		banks:      banks,
		chans:      chans,
	}
	b.ResetState()
	return b
}

// at returns the estimator at (bank, chan).
func (b *Bank[S, I]) at(bank, ch int) *Estimator[S, I] {
	return &b.estimators[bank*b.chans+ch]
}

// ResetState resets every estimator (including zero levels and
// minimum periods) and restores the full active geometry.
func (b *Bank[S, I]) ResetState() {
	for i := range b.estimators {
		b.estimators[i].ResetState()
	}
	b.banksActive = b.banks
	b.chansActive = b.chans
}

// HandleSamples advances every active estimator by one slice.
func (b *Bank[S, I]) HandleSamples(in *slice.Slice[S]) {
	for bi := 0; bi < b.banksActive; bi++ {
		for ci := 0; ci < b.chansActive; ci++ {
			b.at(bi, ci).HandleSample(in.At(bi, ci))
		}
	}
}

// EstimatedAnalytic copies every active estimator's features into the
// output slices. Inactive cells are untouched.
func (b *Bank[S, I]) EstimatedAnalytic(outMagnitude *slice.Slice[S], outPeriod, sinceRise, sinceFall *slice.Slice[I]) {
	for bi := 0; bi < b.banksActive; bi++ {
		for ci := 0; ci < b.chansActive; ci++ {
			mag, period, rise, fall := b.at(bi, ci).EstimatedAnalytic()
			outMagnitude.Set(bi, ci, mag)
			outPeriod.Set(bi, ci, period)
			sinceRise.Set(bi, ci, rise)
			sinceFall.Set(bi, ci, fall)
		}
	}
}

// ActiveChans returns the active channel count.
func (b *Bank[S, I]) ActiveChans() int { return b.chansActive }

// SetActiveChans clamps and stores the active channel count.
func (b *Bank[S, I]) SetActiveChans(n int) {
	if n < 0 {
		n = 0
	} else if n > b.chans {
		n = b.chans
	}
	b.chansActive = n
}

// ActiveBanks returns the active bank count.
func (b *Bank[S, I]) ActiveBanks() int { return b.banksActive }

// SetActiveBanks clamps and stores the active bank count.
func (b *Bank[S, I]) SetActiveBanks(n int) {
	if n < 0 {
		n = 0
	} else if n > b.banks {
		n = b.banks
	}
	b.banksActive = n
}

// SetMinPeriods applies a per-bank minimum period ([banks][1]) to
// every channel's estimator, active or not.
func (b *Bank[S, I]) SetMinPeriods(periods *slice.Slice[I]) {
	for bi := 0; bi < b.banks; bi++ {
		p := periods.At(bi, 0)
		for ci := 0; ci < b.chans; ci++ {
			b.at(bi, ci).SetMinPeriod(p)
		}
	}
}

// SetOneMinPeriod applies one minimum period to every channel of one
// bank. Out-of-range banks are ignored.
func (b *Bank[S, I]) SetOneMinPeriod(bank int, period I) {
	if bank < 0 || bank >= b.banks {
		return
	}
	for ci := 0; ci < b.chans; ci++ {
		b.at(bank, ci).SetMinPeriod(period)
	}
}

// SetZeroLevels applies per-cell zero levels, active or not.
func (b *Bank[S, I]) SetZeroLevels(zeros *slice.Slice[S]) {
	for bi := 0; bi < b.banks; bi++ {
		for ci := 0; ci < b.chans; ci++ {
			b.at(bi, ci).SetZeroLevel(zeros.At(bi, ci))
		}
	}
}

// SetOneZeroLevel sets one cell's zero level. Out-of-range indices are
// ignored.
func (b *Bank[S, I]) SetOneZeroLevel(bank, ch int, zero S) {
	if bank >= 0 && bank < b.banks && ch >= 0 && ch < b.chans {
		b.at(bank, ch).SetZeroLevel(zero)
	}
}
