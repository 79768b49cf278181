// Package coeffio reads and writes filter-bank coefficient tables and
// calibration lookup tables as CSV.
//
// The format is a header row of quoted column names followed by data
// rows, CRLF-terminated. Readers accept extra columns and ragged rows;
// missing cells read as the empty string, which parses as zero.
// Optional match criteria restrict which rows apply (per column, any
// of the listed values must match; every listed column must pass), and
// an optional bank remap renames bank indices after reading.
//
// Values pass through a signed 64-bit intermediate, interpreting
// unsigned sample storage as two's-complement. Unsigned values in the
// upper half of the range, uint64 included, are written as negative
// numbers and read back to the same bits.
package coeffio
