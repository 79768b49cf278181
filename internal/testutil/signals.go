// Package testutil provides deterministic integer test signals shared
// by the package test suites.
package testutil

import "github.com/cwbudde/algo-stimloop/dsp/core"

// SquareWave generates a square wave about zeroLevel: the first half
// period at zeroLevel+amplitude, the second at zeroLevel-amplitude.
func SquareWave[S core.Sample](amplitude, zeroLevel S, period, length int) []S {
	out := make([]S, length)
	half := period / 2
	for i := range out {
		if i%period < half {
			out[i] = zeroLevel + amplitude
		} else {
			out[i] = zeroLevel - amplitude
		}
	}
	return out
}

// Impulse generates an impulse of the given amplitude at the given
// position.
func Impulse[S core.Sample](amplitude S, length, pos int) []S {
	out := make([]S, length)
	if pos >= 0 && pos < length {
		out[pos] = amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC[S core.Sample](value S, length int) []S {
	out := make([]S, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp generates a signal that increases by step each sample, starting
// at zero.
func Ramp[S core.Sample](step S, length int) []S {
	out := make([]S, length)
	var v S
	for i := range out {
		out[i] = v
		v += step
	}
	return out
}
