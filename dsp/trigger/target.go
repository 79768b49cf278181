package trigger

import (
	"github.com/cwbudde/algo-stimloop/dsp/core"
	"github.com/cwbudde/algo-stimloop/dsp/slice"
)

// SelectZCInputs routes, for each trigger, either the rising or
// falling crossing delay from that trigger's (bank, channel) source
// into signalsOut ([1][trigs]). Cells with invalid source indices are
// left unchanged; the caller initializes them.
func SelectZCInputs[I core.Index](
	srcBanks, srcChans *slice.Slice[int],
	wantFalling *slice.Slice[bool],
	riseDelays, fallDelays *slice.Slice[I],
	signalsOut *slice.Slice[I],
) {
	banks := riseDelays.Banks()
	chans := riseDelays.Chans()

	for ti := 0; ti < signalsOut.Chans(); ti++ {
		bi := srcBanks.At(0, ti)
		ci := srcChans.At(0, ti)
		if bi < 0 || bi >= banks || ci < 0 || ci >= chans {
			continue
		}

		if wantFalling.At(0, ti) {
			signalsOut.Set(0, ti, fallDelays.At(bi, ci))
		} else {
			signalsOut.Set(0, ti, riseDelays.At(bi, ci))
		}
	}
}

// SelectPhaseTargets converts, for each trigger, a nominal phase
// fraction (0..255) into a delay in samples, (frac * period) >> 8,
// using the period of that trigger's (bank, channel) source. Cells
// with invalid source indices are left unchanged.
func SelectPhaseTargets[I core.Index](
	srcBanks, srcChans *slice.Slice[int],
	periods *slice.Slice[I],
	nominalTargets, targetsOut *slice.Slice[I],
) {
	banks := periods.Banks()
	chans := periods.Chans()

	for ti := 0; ti < targetsOut.Chans(); ti++ {
		bi := srcBanks.At(0, ti)
		ci := srcChans.At(0, ti)
		if bi < 0 || bi >= banks || ci < 0 || ci >= chans {
			continue
		}

		v := nominalTargets.At(0, ti)
		v *= periods.At(bi, ci)
		v >>= 8
		targetsOut.Set(0, ti, v)
	}
}

// SelectZCPhase combines crossing and phase targeting. For triggers
// with wantPhase set, the signal is the delay since phase zero and the
// target is the fractional phase converted to samples; otherwise the
// signal follows wantFalling as in SelectZCInputs and the nominal
// target is copied verbatim. wantPhase takes priority over
// wantFalling. Cells with invalid source indices are left unchanged.
func SelectZCPhase[I core.Index](
	srcBanks, srcChans *slice.Slice[int],
	wantPhase, wantFalling *slice.Slice[bool],
	riseDelays, fallDelays, phases, periods *slice.Slice[I],
	signalsOut *slice.Slice[I],
	nominalTargets, targetsOut *slice.Slice[I],
) {
	banks := periods.Banks()
	chans := periods.Chans()

	for ti := 0; ti < signalsOut.Chans(); ti++ {
		bi := srcBanks.At(0, ti)
		ci := srcChans.At(0, ti)
		if bi < 0 || bi >= banks || ci < 0 || ci >= chans {
			continue
		}

		if wantPhase.At(0, ti) {
			signalsOut.Set(0, ti, phases.At(bi, ci))

			v := nominalTargets.At(0, ti)
			v *= periods.At(bi, ci)
			v >>= 8
			targetsOut.Set(0, ti, v)
		} else {
			if wantFalling.At(0, ti) {
				signalsOut.Set(0, ti, fallDelays.At(bi, ci))
			} else {
				signalsOut.Set(0, ti, riseDelays.At(bi, ci))
			}

			targetsOut.Set(0, ti, nominalTargets.At(0, ti))
		}
	}
}

// SelectConditionalFlags combines detection flags per trigger: "A",
// "A and B", or "A and not B", where A and B are read from the
// trigger's (bank, channel) source in the primary and secondary
// slices. Invalid source indices produce false.
func SelectConditionalFlags(
	srcBanks, srcChans *slice.Slice[int],
	wantSecondary, negateSecondary *slice.Slice[bool],
	primary, secondary *slice.Slice[bool],
	outputFlags *slice.Slice[bool],
) {
	banks := primary.Banks()
	chans := primary.Chans()

	for ti := 0; ti < outputFlags.Chans(); ti++ {
		bi := srcBanks.At(0, ti)
		ci := srcChans.At(0, ti)
		if bi < 0 || bi >= banks || ci < 0 || ci >= chans {
			outputFlags.Set(0, ti, false)
			continue
		}

		v := primary.At(bi, ci)

		if wantSecondary.At(0, ti) {
			second := secondary.At(bi, ci)
			if negateSecondary.At(0, ti) {
				second = !second
			}
			v = v && second
		}

		outputFlags.Set(0, ti, v)
	}
}
