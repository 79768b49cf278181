package fir

import (
	"github.com/cwbudde/algo-stimloop/dsp/core"
	"github.com/cwbudde/algo-stimloop/dsp/slice"
)

// Bank is an array of FIR filters, one per bank, sharing one circular
// input buffer per channel. bufLen must be a power of two.
type Bank[S core.Sample, I core.Index] struct {
	filters []Filter[S, I]

	inBufs [][]S
	bufPtr int

	banks  int
	chans  int
	bufLen int

	banksActive int
	chansActive int
}

// NewBank returns a bank of blanked filters with zeroed input buffers
// and zero active geometry. bufLen must be a power of two and at least
// maxCoeffs; this is a caller contract, not a checked condition.
func NewBank[S core.Sample, I core.Index](maxCoeffs, bufLen, banks, chans int) *Bank[S, I] {
	if maxCoeffs < 1 {
		maxCoeffs = 1
	}
	if bufLen < 1 {
		bufLen = 1
	}
	if banks < 1 {
		banks = 1
	}
	if chans < 1 {
		chans = 1
	}

	b := &Bank[S, I]{
		filters: make([]Filter[S, I], banks),
		inBufs:  make([][]S, chans),
		banks:   banks,
		chans:   chans,
		bufLen:  bufLen,
	}
	for i := range b.filters {
		b.filters[i].coeffs = make([]S, maxCoeffs)
	}
	for c := range b.inBufs {
		b.inBufs[c] = make([]S, bufLen)
	}
	return b
}

// ApplyOnce advances the bank by one input slice. Active channels'
// samples enter the shared buffers, then each active bank's filter
// runs over each active channel's history. Inactive output cells are
// zeroed.
func (b *Bank[S, I]) ApplyOnce(in *slice.Slice[S], out *slice.Slice[S]) {
	out.Fill(0)

	mask := b.bufLen - 1
	b.bufPtr &= mask

	for c := 0; c < b.chansActive; c++ {
		b.inBufs[c][b.bufPtr] = in.At(0, c)
	}

	b.bufPtr = (b.bufPtr + 1) & mask

	for bi := 0; bi < b.banksActive; bi++ {
		// Underflow wraps around to a valid start index.
		readIdx := (b.bufPtr - int(b.filters[bi].CoeffCount())) & mask

		for c := 0; c < b.chansActive; c++ {
			out.Set(bi, c, b.filters[bi].ApplyOnceCircular(b.inBufs[c], readIdx, mask))
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

// BlankAllFilters blanks every bank's filter.
func (b *Bank[S, I]) BlankAllFilters() {
	for i := range b.filters {
		b.filters[i].Blank()
	}
}

// BlankOneFilter blanks one bank's filter. Out-of-range banks are
// ignored.
func (b *Bank[S, I]) BlankOneFilter(bank int) {
	if bank >= 0 && bank < b.banks {
		b.filters[bank].Blank()
	}
}

// SetOneCoefficient stores one coefficient of one bank's filter.
func (b *Bank[S, I]) SetOneCoefficient(bank int, idx I, val S) {
	if bank >= 0 && bank < b.banks {
		b.filters[bank].SetOneCoefficient(idx, val)
	}
}

// OneCoefficient returns one coefficient of one bank's filter.
// Out-of-range indices return zero.
func (b *Bank[S, I]) OneCoefficient(bank int, idx I) S {
	if bank >= 0 && bank < b.banks {
		return b.filters[bank].OneCoefficient(idx)
	}
	return 0
}

// SetOneGeometry sets one bank's fracbits and coefficient count.
func (b *Bank[S, I]) SetOneGeometry(bank int, fracBits uint8, coeffCount I) {
	if bank >= 0 && bank < b.banks {
		b.filters[bank].SetFracBits(fracBits)
		b.filters[bank].SetCoeffCount(coeffCount)
	}
}

// OneGeometry returns one bank's fracbits and coefficient count.
// Out-of-range banks return zeros.
func (b *Bank[S, I]) OneGeometry(bank int) (fracBits uint8, coeffCount I) {
	if bank >= 0 && bank < b.banks {
		return b.filters[bank].FracBits(), b.filters[bank].CoeffCount()
	}
	return 0, 0
}

// SetBankCoefficients replaces one bank's full coefficient set and
// geometry.
func (b *Bank[S, I]) SetBankCoefficients(bank int, fracBits uint8, coeffCount I, coeffs []S) {
	if bank >= 0 && bank < b.banks {
		b.filters[bank].SetAllCoefficients(fracBits, coeffCount, coeffs)
	}
}

// BankCoefficients copies one bank's coefficient storage into coeffs
// and returns its geometry. Out-of-range banks zero coeffs.
func (b *Bank[S, I]) BankCoefficients(bank int, coeffs []S) (fracBits uint8, coeffCount I) {
	if bank >= 0 && bank < b.banks {
		return b.filters[bank].AllCoefficients(coeffs)
	}
	for i := range coeffs {
		coeffs[i] = 0
	}
	return 0, 0
}

// BlankAllInputBuffers zeroes every channel's input buffer and resets
// the write pointer.
func (b *Bank[S, I]) BlankAllInputBuffers() {
	b.bufPtr = 0
	for c := range b.inBufs {
		for i := range b.inBufs[c] {
			b.inBufs[c][i] = 0
		}
	}
}

// BlankOneInputBuffer zeroes one channel's input buffer, leaving the
// write pointer where it is.
func (b *Bank[S, I]) BlankOneInputBuffer(ch int) {
	if ch < 0 || ch >= b.chans {
		return
	}
	for i := range b.inBufs[ch] {
		b.inBufs[ch][i] = 0
	}
}

// FastSettle fills every channel's buffer (active or not) with that
// channel's current input sample and resets the write pointer, so the
// filters behave as if the input had been constant for a full buffer.
func (b *Bank[S, I]) FastSettle(in *slice.Slice[S]) {
	b.bufPtr = 0
	for c := 0; c < b.chans; c++ {
		v := in.At(0, c)
		for i := range b.inBufs[c] {
			b.inBufs[c][i] = v
		}
	}
}

// Banks returns the compiled bank capacity.
func (b *Bank[S, I]) Banks() int { return b.banks }

// Chans returns the compiled channel capacity.
func (b *Bank[S, I]) Chans() int { return b.chans }

// MaxCoeffs returns the per-filter coefficient capacity.
func (b *Bank[S, I]) MaxCoeffs() int { return b.filters[0].MaxCoeffs() }
