// Package biquad provides fixed-point IIR biquad runtime primitives:
// a single Direct Form I [Section], a [Chain] cascade with internal
// ring buffers, and a [Bank] of chains indexed by (bank, channel).
//
// Each section computes
//
//	y[n] = (b0*x[n] + b1*x[n-1] + b2*x[n-2] - a1*y[n-1] - a2*y[n-2]) >> a0bits
//
// with the leading denominator coefficient constrained to a power of
// two so the division reduces to a sign-safe shift. Zeroed
// coefficients form a valid filter with zero output. The caller is
// responsible for choosing S wide enough that the multiply-accumulate
// cannot overflow; no saturation is performed.
//
// The bank layout exists so the same geometry can be time-multiplexed
// through shared arithmetic units in an HDL implementation; this
// package advances exactly one slice per call.
package biquad
