package lut

import (
	"cmp"

	"github.com/cwbudde/algo-stimloop/dsp/slice"
)

// BankLUT holds one lookup table per bank and applies bank b's table to
// every channel of slice row b.
type BankLUT[In cmp.Ordered, Out any] struct {
	luts []StepLUT[In, Out]

	banks int
	chans int

	banksActive int
	chansActive int
	rowsActive  int
}

// NewBank returns blanked per-bank tables with zero active geometry.
func NewBank[In cmp.Ordered, Out any](rows, banks, chans int) *BankLUT[In, Out] {
	if rows < 1 {
		rows = 1
	}
	if banks < 1 {
		banks = 1
	}
	if chans < 1 {
		chans = 1
	}

	b := &BankLUT[In, Out]{
		luts:  make([]StepLUT[In, Out], banks),
		banks: banks,
		chans: chans,
	}
	for i := range b.luts {
		b.luts[i].inputs = make([]In, rows)
		b.luts[i].outputs = make([]Out, rows)
	}
	return b
}

// LookupOneLE applies bank bankIdx's table to one value. Out-of-range
// banks return the zero of Out.
func (b *BankLUT[In, Out]) LookupOneLE(v In, bankIdx int) Out {
	var out Out
	if bankIdx >= 0 && bankIdx < b.banks {
		out = b.luts[bankIdx].LookupLE(v)
	}
	return out
}

// LookupOneGE applies bank bankIdx's table to one value. Out-of-range
// banks return the zero of Out.
func (b *BankLUT[In, Out]) LookupOneGE(v In, bankIdx int) Out {
	var out Out
	if bankIdx >= 0 && bankIdx < b.banks {
		out = b.luts[bankIdx].LookupGE(v)
	}
	return out
}

// LookupAllLE applies each active bank's table to that bank's active
// channels. Inactive output cells are zeroed.
func (b *BankLUT[In, Out]) LookupAllLE(in *slice.Slice[In], out *slice.Slice[Out]) {
	var zero Out
	out.Fill(zero)

	banks := min(b.banksActive, b.banks)
	chans := min(b.chansActive, b.chans)

	for bi := 0; bi < banks; bi++ {
		for ci := 0; ci < chans; ci++ {
			out.Set(bi, ci, b.luts[bi].LookupLE(in.At(bi, ci)))
		}
	}
}

// LookupAllGE applies each active bank's table to that bank's active
// channels. Inactive output cells are zeroed.
func (b *BankLUT[In, Out]) LookupAllGE(in *slice.Slice[In], out *slice.Slice[Out]) {
	var zero Out
	out.Fill(zero)

	banks := min(b.banksActive, b.banks)
	chans := min(b.chansActive, b.chans)

	for bi := 0; bi < banks; bi++ {
		for ci := 0; ci < chans; ci++ {
			out.Set(bi, ci, b.luts[bi].LookupGE(in.At(bi, ci)))
		}
	}
}

// Blank zeroes every bank's table.
func (b *BankLUT[In, Out]) Blank() {
	for i := range b.luts {
		b.luts[i].Blank()
	}
}

// SetOneEntry stores one pair in one bank's table. Out-of-range bank or
// row indices are ignored.
func (b *BankLUT[In, Out]) SetOneEntry(bankIdx, row int, in In, out Out) {
	if bankIdx >= 0 && bankIdx < b.banks {
		b.luts[bankIdx].SetEntry(row, in, out)
	}
}

// OneEntry returns one pair from one bank's table. Out-of-range
// indices return zeros.
func (b *BankLUT[In, Out]) OneEntry(bankIdx, row int) (In, Out) {
	if bankIdx >= 0 && bankIdx < b.banks {
		return b.luts[bankIdx].Entry(row)
	}
	var zin In
	var zout Out
	return zin, zout
}

// SetActiveBanks clamps and stores the active bank count.
func (b *BankLUT[In, Out]) SetActiveBanks(n int) {
	if n < 0 {
		n = 0
	} else if n > b.banks {
		n = b.banks
	}
	b.banksActive = n
}

// SetActiveChans clamps and stores the active channel count.
func (b *BankLUT[In, Out]) SetActiveChans(n int) {
	if n < 0 {
		n = 0
	} else if n > b.chans {
		n = b.chans
	}
	b.chansActive = n
}

// SetActiveRows clamps the active row count and propagates it to every
// bank's table.
func (b *BankLUT[In, Out]) SetActiveRows(n int) {
	if n < 0 {
		n = 0
	} else if n > b.luts[0].Rows() {
		n = b.luts[0].Rows()
	}
	b.rowsActive = n

	for i := range b.luts {
		b.luts[i].SetActiveRows(n)
	}
}

// ActiveBanks returns the active bank count.
func (b *BankLUT[In, Out]) ActiveBanks() int { return b.banksActive }

// ActiveChans returns the active channel count.
func (b *BankLUT[In, Out]) ActiveChans() int { return b.chansActive }

// ActiveRows returns the active row count.
func (b *BankLUT[In, Out]) ActiveRows() int { return b.rowsActive }

// Banks returns the storage bank count.
func (b *BankLUT[In, Out]) Banks() int { return b.banks }
