package detect

import (
	"github.com/cwbudde/algo-stimloop/dsp/core"
	"github.com/cwbudde/algo-stimloop/dsp/slice"
)

// TestSamples performs the stateless single-threshold test: each
// output flag is true if and only if the sample is at or above its
// threshold. Every cell is evaluated, active or not.
func TestSamples[S core.Sample](in, thresholds *slice.Slice[S], out *slice.Slice[bool]) {
	for b := 0; b < in.Banks(); b++ {
		for c := 0; c < in.Chans(); c++ {
			out.Set(b, c, in.At(b, c) >= thresholds.At(b, c))
		}
	}
}

// ThresholdDual combines the flags of two single-threshold tests with
// hysteresis: a cell turns on when its activate flag fires and stays
// on until its sustain flag goes false. Upstream computes activate
// with the higher threshold and sustain with the lower one.
type ThresholdDual struct {
	prevState *slice.Slice[bool]
}

// NewThresholdDual returns a detector with no events latched.
func NewThresholdDual(banks, chans int) *ThresholdDual {
	return &ThresholdDual{prevState: slice.New[bool](banks, chans)}
}

// ResetState clears the detector to "no events detected".
func (d *ThresholdDual) ResetState() {
	d.prevState.Fill(false)
}

// TestDual evaluates one slice of activate and sustain flags. Every
// cell is evaluated, active or not.
func (d *ThresholdDual) TestDual(activate, sustain, out *slice.Slice[bool]) {
	for b := 0; b < d.prevState.Banks(); b++ {
		for c := 0; c < d.prevState.Chans(); c++ {
			v := activate.At(b, c) || (d.prevState.At(b, c) && sustain.At(b, c))
			out.Set(b, c, v)
			d.prevState.Set(b, c, v)
		}
	}
}
