// Package preproc provides input conditioning ahead of the filter
// banks.
//
// The auto-ranger monitors the observed range of each channel and
// derives a bit-shift attenuation and additive offset that fit the
// signal into a caller-specified output window:
//
//	out = (in >> attenBits) + offset
//
// Measured and requested bounds are halved before use so that signals
// approaching the storage type's extremes cannot overflow the middle
// and span arithmetic; the derived offset may be off by one as a
// result. An FPGA implementation recomputes attenuation and offset on
// every tick; this version recomputes on demand, which is bit-exact
// with the per-tick form because the mapping depends only on the
// min/max watermarks.
package preproc
