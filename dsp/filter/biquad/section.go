package biquad

import "github.com/cwbudde/algo-stimloop/dsp/core"

// Coefficients holds one second-order section's transfer function:
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (2^A0Bits + A1*z^-1 + A2*z^-2)
//
// The leading denominator coefficient is the power of two 2^A0Bits,
// exploited as a shift. The zero value is a valid filter producing
// zero output.
type Coefficients[S core.Sample] struct {
	A0Bits uint8
	A1, A2 S

	B0, B1, B2 S
}

// Section is a single Direct Form I biquad. It holds coefficients
// only; signal history lives in the caller's buffers.
type Section[S core.Sample] struct {
	coeffs Coefficients[S]
}

// ApplyOnceCircular runs one filter step over circular history
// buffers. Buffer lengths must be powers of two; masks perform the
// wrapping. Elements [ptr], [ptr-1], and [ptr-2] of each buffer are
// read, and the output is written at [outPtr].
func (s *Section[S]) ApplyOnceCircular(inbuf []S, inPtr, inMask int, outbuf []S, outPtr, outMask int) {
	// Adding the mask is equivalent to adding -1.
	inNow := inbuf[inPtr]
	inPtr = (inPtr + inMask) & inMask
	inPrev1 := inbuf[inPtr]
	inPtr = (inPtr + inMask) & inMask
	inPrev2 := inbuf[inPtr]

	savedOutPtr := outPtr

	outPtr = (outPtr + outMask) & outMask
	outPrev1 := outbuf[outPtr]
	outPtr = (outPtr + outMask) & outMask
	outPrev2 := outbuf[outPtr]

	out := s.coeffs.B0 * inNow
	out += s.coeffs.B1 * inPrev1
	out += s.coeffs.B2 * inPrev2
	out -= s.coeffs.A1 * outPrev1
	out -= s.coeffs.A2 * outPrev2
	out = core.ShiftRight(out, s.coeffs.A0Bits)

	outbuf[savedOutPtr] = out
}

// Blank zeroes all coefficients, yielding a valid zero-output filter.
func (s *Section[S]) Blank() {
	s.coeffs = Coefficients[S]{}
}

// SetCoefficients replaces the section's coefficients.
func (s *Section[S]) SetCoefficients(c Coefficients[S]) {
	s.coeffs = c
}

// Coefficients returns the section's coefficients.
func (s *Section[S]) Coefficients() Coefficients[S] {
	return s.coeffs
}
