package response

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-stimloop/dsp/filter/biquad"
	"github.com/cwbudde/algo-stimloop/dsp/filter/fir"
)

func TestChainImpulseResponsePassthrough(t *testing.T) {
	c := biquad.NewChain[int32](1)
	c.SetActiveStages(1)
	c.SetCoefficients(0, biquad.Coefficients[int32]{B0: 1})

	ir := ChainImpulseResponse(c, 1000, 8)
	assert.Equal(t, []int32{1000, 0, 0, 0, 0, 0, 0, 0}, ir)
}

func TestChainImpulseResponseDecay(t *testing.T) {
	// y[n] = (4*x[n] + 2*y[n-1]) >> 2 halves every sample.
	c := biquad.NewChain[int32](1)
	c.SetActiveStages(1)
	c.SetCoefficients(0, biquad.Coefficients[int32]{A0Bits: 2, A1: -2, B0: 4})

	ir := ChainImpulseResponse(c, 64, 5)
	assert.Equal(t, []int32{64, 32, 16, 8, 4}, ir)
}

func TestFIRImpulseResponse(t *testing.T) {
	b := fir.NewBank[int32, uint32](4, 16, 1, 1)
	b.SetOneCoefficient(0, 0, 3)
	b.SetOneCoefficient(0, 1, -1)
	b.SetOneCoefficient(0, 2, 4)
	b.SetOneGeometry(0, 0, 3)

	ir := FIRImpulseResponse(b, 0, 1, 6)
	// The newest sample pairs with the last coefficient, so the
	// impulse walks the taps in reverse.
	assert.Equal(t, []int32{4, -1, 3, 0, 0, 0}, ir)
}

func TestFloat64UnsignedWraps(t *testing.T) {
	in := []uint16{5, ^uint16(5) + 1}
	got := Float64(in)
	assert.Equal(t, []float64{5, -5}, got)
}

func TestMagnitudeSpectrumDC(t *testing.T) {
	// A constant impulse response is a pure DC spectrum.
	ir := []float64{1, 1, 1, 1}
	mags, err := MagnitudeSpectrum(ir)
	require.NoError(t, err)
	require.Len(t, mags, 3)

	assert.InDelta(t, 4, mags[0], 1e-9)
	assert.InDelta(t, 0, mags[1], 1e-9)
	assert.InDelta(t, 0, mags[2], 1e-9)
}

func TestMagnitudeSpectrumImpulseIsFlat(t *testing.T) {
	ir := []float64{1, 0, 0, 0, 0, 0, 0, 0}
	mags, err := MagnitudeSpectrum(ir)
	require.NoError(t, err)

	for i, m := range mags {
		assert.InDelta(t, 1, m, 1e-9, "bin %d", i)
	}
}

func TestMagnitudeSpectrumEmpty(t *testing.T) {
	_, err := MagnitudeSpectrum(nil)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestLowpassAttenuatesNyquist(t *testing.T) {
	// Two-tap average: unity at DC, null at Nyquist.
	c := biquad.NewChain[int32](1)
	c.SetActiveStages(1)
	c.SetCoefficients(0, biquad.Coefficients[int32]{A0Bits: 1, B0: 1, B1: 1})

	ir := ChainImpulseResponse(c, 1<<12, 16)
	mags, err := MagnitudeSpectrum(Float64(ir))
	require.NoError(t, err)

	dc := mags[0]
	nyquist := mags[len(mags)-1]
	assert.Greater(t, dc, 0.0)
	assert.Less(t, nyquist/dc, 0.05)
	assert.False(t, math.IsNaN(nyquist))
}
