package biquad

import (
	"github.com/cwbudde/algo-stimloop/dsp/core"
	"github.com/cwbudde/algo-stimloop/dsp/slice"
)

// Bank is a (bank, channel) array of biquad chains. Chains within a
// bank share coefficients conceptually but keep independent history,
// since each channel carries an independent signal. Coefficients are
// therefore replicated per channel, trading memory for the 1:1
// hardware mapping.
type Bank[S core.Sample] struct {
	chains []Chain[S]

	stageCount int
	banks      int
	chans      int

	stagesActive int
	banksActive  int
	chansActive  int
}

// NewBank returns a bank of zero-coefficient chains with zero active
// geometry.
func NewBank[S core.Sample](stageCount, banks, chans int) *Bank[S] {
	if stageCount < 1 {
		stageCount = 1
	}
	if banks < 1 {
		banks = 1
	}
	if chans < 1 {
		chans = 1
	}

	b := &Bank[S]{
		chains:     make([]Chain[S], banks*chans),
		stageCount: stageCount,
		banks:      banks,
		chans:      chans,
	}
	for i := range b.chains {
		b.chains[i].sections = make([]Section[S], stageCount)
		b.chains[i].buffers = make([][]S, stageCount+1)
		for s := range b.chains[i].buffers {
			b.chains[i].buffers[s] = make([]S, chainBufLen)
		}
	}
	return b
}

// chain returns the chain at (bank, chan).
func (b *Bank[S]) chain(bank, ch int) *Chain[S] {
	return &b.chains[bank*b.chans+ch]
}

// ApplyOnce advances every active (bank, channel) chain by one sample.
// Input has shape [1][chans]; each channel's sample is replicated
// across banks. Inactive output cells are left untouched and may hold
// stale data.
func (b *Bank[S]) ApplyOnce(in *slice.Slice[S], out *slice.Slice[S]) {
	for bi := 0; bi < b.banksActive; bi++ {
		for ci := 0; ci < b.chansActive; ci++ {
			out.Set(bi, ci, b.chain(bi, ci).ApplyOnce(in.At(0, ci)))
		}
	}
}

// ActiveStages returns the active stage count.
func (b *Bank[S]) ActiveStages() int { return b.stagesActive }

// SetActiveStages clamps the active stage count and propagates it to
// every chain.
func (b *Bank[S]) SetActiveStages(n int) {
	if n < 0 {
		n = 0
	} else if n > b.stageCount {
		n = b.stageCount
	}
	b.stagesActive = n

	for i := range b.chains {
		b.chains[i].SetActiveStages(n)
	}
}

// ActiveChans returns the active channel count.
func (b *Bank[S]) ActiveChans() int { return b.chansActive }

// SetActiveChans clamps and stores the active channel count.
func (b *Bank[S]) SetActiveChans(n int) {
	if n < 0 {
		n = 0
	} else if n > b.chans {
		n = b.chans
	}
	b.chansActive = n
}

// ActiveBanks returns the active bank count.
func (b *Bank[S]) ActiveBanks() int { return b.banksActive }

// SetActiveBanks clamps and stores the active bank count.
func (b *Bank[S]) SetActiveBanks(n int) {
	if n < 0 {
		n = 0
	} else if n > b.banks {
		n = b.banks
	}
	b.banksActive = n
}

// Blank zeroes every chain's coefficients.
func (b *Bank[S]) Blank() {
	for i := range b.chains {
		b.chains[i].Blank()
	}
}

// SetCoefficients writes one stage's coefficients into every channel's
// chain of the named bank, active or not. Out-of-range stage or bank
// indices are ignored.
func (b *Bank[S]) SetCoefficients(stage, bank int, coeffs Coefficients[S]) {
	if stage < 0 || stage >= b.stageCount {
		return
	}
	if bank < 0 || bank >= b.banks {
		return
	}
	for ci := 0; ci < b.chans; ci++ {
		b.chain(bank, ci).SetCoefficients(stage, coeffs)
	}
}

// StageCoefficients returns one stage's coefficients for the named
// bank. Out-of-range indices return the zero filter.
func (b *Bank[S]) StageCoefficients(stage, bank int) Coefficients[S] {
	if stage < 0 || stage >= b.stageCount {
		return Coefficients[S]{}
	}
	if bank < 0 || bank >= b.banks {
		return Coefficients[S]{}
	}
	return b.chain(bank, 0).StageCoefficients(stage)
}

// StageCount returns the compiled stage capacity.
func (b *Bank[S]) StageCount() int { return b.stageCount }

// Banks returns the compiled bank capacity.
func (b *Bank[S]) Banks() int { return b.banks }

// Chans returns the compiled channel capacity.
func (b *Bank[S]) Chans() int { return b.chans }

// FastSettle preloads every chain's history buffers from the input
// slice, active or not. See Chain.FastSettle for the copyInput
// convention.
func (b *Bank[S]) FastSettle(in *slice.Slice[S], copyInput []bool) {
	for bi := 0; bi < b.banks; bi++ {
		for ci := 0; ci < b.chans; ci++ {
			b.chain(bi, ci).FastSettle(in.At(0, ci), copyInput)
		}
	}
}
