package response

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-stimloop/dsp/core"
	"github.com/cwbudde/algo-stimloop/dsp/filter/biquad"
	"github.com/cwbudde/algo-stimloop/dsp/filter/fir"
)

// ErrEmptyResponse is returned when there is no impulse response to
// transform.
var ErrEmptyResponse = errors.New("response: empty impulse response")

// ChainImpulseResponse captures length samples of a biquad chain's
// response to an impulse of the given amplitude. The chain's history
// buffers are consumed; analyze a dedicated instance, not one that is
// streaming.
func ChainImpulseResponse[S core.Sample](c *biquad.Chain[S], amplitude S, length int) []S {
	if length <= 0 {
		return nil
	}

	out := make([]S, length)
	out[0] = c.ApplyOnce(amplitude)
	for i := 1; i < length; i++ {
		out[i] = c.ApplyOnce(0)
	}
	return out
}

// FIRImpulseResponse captures length samples of one FIR bank filter's
// response to an impulse of the given amplitude. The bank's coefficients
// are copied into a standalone filter that runs over a private probe
// buffer; the bank's input buffers are left untouched.
func FIRImpulseResponse[S core.Sample, I core.Index](b *fir.Bank[S, I], bank int, amplitude S, length int) []S {
	if length <= 0 {
		return nil
	}

	out := make([]S, length)

	// Probe through the filter directly: build a one-shot history and
	// slide the impulse past the taps.
	probe := make([]S, nextPowerOf2(length+b.MaxCoeffs()))
	mask := len(probe) - 1
	probe[0] = amplitude

	f := fir.NewFilter[S, I](b.MaxCoeffs())
	coeffs := make([]S, b.MaxCoeffs())
	bits, count := b.BankCoefficients(bank, coeffs)
	f.SetAllCoefficients(bits, count, coeffs)

	for i := 0; i < length; i++ {
		start := (i + 1 - int(count)) & mask
		out[i] = f.ApplyOnceCircular(probe, start, mask)
	}
	return out
}

// Float64 widens an integer response to float64, interpreting unsigned
// storage as two's-complement signed data.
func Float64[S core.Sample](in []S) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		if !core.IsSigned[S]() && core.IsNegative(v) {
			out[i] = -float64(core.Negate(v))
		} else {
			out[i] = float64(v)
		}
	}
	return out
}

// MagnitudeSpectrum returns |H[k]| for the first half of the FFT of
// the impulse response, zero-padded to the next power of two.
func MagnitudeSpectrum(ir []float64) ([]float64, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyResponse
	}

	fftSize := nextPowerOf2(len(ir))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range ir {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	n := fftSize/2 + 1
	re := make([]float64, n)
	im := make([]float64, n)
	for i := 0; i < n; i++ {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}

	mags := make([]float64, n)
	vecmath.Magnitude(mags, re, im)
	return mags, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
