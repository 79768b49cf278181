package slice

import "cmp"

// SelectWinningBanks picks, for each channel, the value from the bank
// named in selections. dest has shape [1][chans]; invalid selection
// indices default to bank 0.
func SelectWinningBanks[T any](source, dest *Slice[T], selections *Slice[int]) {
	for c := 0; c < source.chans; c++ {
		b := selections.At(0, c)
		if b < 0 || b >= source.banks {
			b = 0
		}
		dest.Set(0, c, source.At(b, c))
	}
}

// ConditionallyLatchNew copies newValues cells into target wherever the
// corresponding latch flag equals replaceFlag.
func ConditionallyLatchNew[T any](target, newValues *Slice[T], latchFlags *Slice[bool], replaceFlag bool) {
	for b := 0; b < target.banks; b++ {
		for c := 0; c < target.chans; c++ {
			if latchFlags.At(b, c) == replaceFlag {
				target.Set(b, c, newValues.At(b, c))
			}
		}
	}
}

// IdentifyWinningBanks performs winner-take-all voting among banks.
// For each active channel it records the index of the maximal bank in
// selections ([1][chans]) and whether the winner was a local maximum
// in wasLocal ([1][chans]). A win by the first or last scanned bank is
// an edge of the distribution, not a local maximum.
func IdentifyWinningBanks[T cmp.Ordered](source *Slice[T], activeBanks, activeChans int, selections *Slice[int], wasLocal *Slice[bool]) {
	if activeBanks > source.banks {
		activeBanks = source.banks
	}
	if activeChans > source.chans {
		activeChans = source.chans
	}

	selections.Fill(0)
	wasLocal.Fill(false)

	for c := 0; c < activeChans; c++ {
		maxVal := source.At(0, c)
		maxIdx := 0

		for b := 1; b < activeBanks; b++ {
			if v := source.At(b, c); v > maxVal {
				maxVal = v
				maxIdx = b
			}
		}

		local := maxIdx != 0 && maxIdx != activeBanks-1

		selections.Set(0, c, maxIdx)
		wasLocal.Set(0, c, local)
	}
}
