package fir

import "github.com/cwbudde/algo-stimloop/dsp/core"

// Filter is a single fixed-point FIR: coefficients, an active
// coefficient count, and the fractional-scaling shift. It holds no
// signal history; the bank owns the shared input buffers.
type Filter[S core.Sample, I core.Index] struct {
	fracBits   uint8
	coeffCount I
	coeffs     []S
}

// NewFilter returns a blanked filter with storage for maxCoeffs
// coefficients.
func NewFilter[S core.Sample, I core.Index](maxCoeffs int) *Filter[S, I] {
	if maxCoeffs < 1 {
		maxCoeffs = 1
	}
	f := &Filter[S, I]{coeffs: make([]S, maxCoeffs)}
	return f
}

// ApplyOnceCircular convolves the active coefficients against a
// circular buffer starting at inPtr. The buffer length must be a power
// of two; inMask performs the wrapping.
func (f *Filter[S, I]) ApplyOnceCircular(inbuf []S, inPtr, inMask int) S {
	var total S
	for k := I(0); k < f.coeffCount; k++ {
		inPtr &= inMask
		total += inbuf[inPtr] * f.coeffs[k]
		inPtr++
	}
	return core.ShiftRight(total, f.fracBits)
}

// Blank zeroes the coefficients, count, and fracbits, yielding a valid
// zero-output filter.
func (f *Filter[S, I]) Blank() {
	f.fracBits = 0
	f.coeffCount = 0
	for i := range f.coeffs {
		f.coeffs[i] = 0
	}
}

// SetFracBits sets the fractional-scaling shift.
func (f *Filter[S, I]) SetFracBits(bits uint8) { f.fracBits = bits }

// FracBits returns the fractional-scaling shift.
func (f *Filter[S, I]) FracBits() uint8 { return f.fracBits }

// SetCoeffCount clamps and stores the active coefficient count.
func (f *Filter[S, I]) SetCoeffCount(count I) {
	if int(count) > len(f.coeffs) {
		count = I(len(f.coeffs))
	}
	f.coeffCount = count
}

// CoeffCount returns the active coefficient count.
func (f *Filter[S, I]) CoeffCount() I { return f.coeffCount }

// SetOneCoefficient stores one coefficient. Out-of-range indices are
// ignored.
func (f *Filter[S, I]) SetOneCoefficient(idx I, val S) {
	if int(idx) < len(f.coeffs) {
		f.coeffs[idx] = val
	}
}

// OneCoefficient returns one coefficient. Out-of-range indices return
// zero.
func (f *Filter[S, I]) OneCoefficient(idx I) S {
	if int(idx) < len(f.coeffs) {
		return f.coeffs[idx]
	}
	return 0
}

// SetAllCoefficients copies the full coefficient storage (used or not)
// and the geometry.
func (f *Filter[S, I]) SetAllCoefficients(bits uint8, count I, coeffs []S) {
	copy(f.coeffs, coeffs)
	f.SetFracBits(bits)
	f.SetCoeffCount(count)
}

// AllCoefficients copies the full coefficient storage into coeffs and
// returns the geometry.
func (f *Filter[S, I]) AllCoefficients(coeffs []S) (bits uint8, count I) {
	copy(coeffs, f.coeffs)
	return f.fracBits, f.coeffCount
}

// MaxCoeffs returns the coefficient storage capacity.
func (f *Filter[S, I]) MaxCoeffs() int { return len(f.coeffs) }
