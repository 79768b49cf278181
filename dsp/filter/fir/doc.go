// Package fir provides fixed-point FIR filter runtime primitives.
//
// Each filter computes
//
//	y = (sum_{k=0}^{n-1} a[k] * x[k]) >> fracbits
//
// with the shift realizing the fractional scaling of the coefficients.
// A [Bank] shares one circular input buffer per channel across all
// banks (the input is never modified, only the coefficients differ),
// mirroring the time-multiplexed HDL layout. Buffer lengths must be
// powers of two; indices wrap by mask, never by modulo.
//
// A freshly constructed filter has zero coefficients and produces zero
// output until configured.
package fir
