// Package core provides the integer primitives shared by every stage of
// the streaming pipeline: type traits (signedness, value limits, bit
// width), sign-safe right shifts, and shift-and-subtract modulo.
//
// The pipeline deliberately carries signed sample values in unsigned
// storage after band-pass filtering, so a plain logical right shift
// would rotate zeros into the sign bit and destroy negative values.
// Every module that shifts sample data dispatches through [ShiftRight],
// which selects the arithmetic shift for signed storage and the
// negate-shift-negate form for unsigned storage holding signed data.
package core
