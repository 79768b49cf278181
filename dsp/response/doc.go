// Package response provides host-side analysis of configured
// fixed-point filters: impulse-response capture and FFT magnitude
// spectra.
//
// This is configuration-time tooling for verifying coefficient tables
// before deployment; nothing here runs on the per-tick path.
package response
