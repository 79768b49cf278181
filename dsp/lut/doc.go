// Package lut provides stepwise monotonic lookup tables used for delay
// and phase calibration.
//
// Lookups scan every active row so that timing is independent of the
// data, matching the hardware implementation. The caller guarantees
// monotonic ordering of the input column (descending for LE lookups,
// ascending for GE lookups); the table does not validate it.
package lut
