// Package analytic approximates the analytic signal of a narrow-band
// input by tracking peaks, troughs, and zero crossings.
//
// Each estimator reports the envelope magnitude of the last full lobe,
// the period implied by the last two crossings, and the live sample
// counts since the last rising and falling crossings. Derived
// quantities (frequency, phase fraction) are deliberately left to the
// caller, so that direct low-error measurements stay distinguishable
// from derived higher-error ones.
//
// Crossing detection is gated by half the caller-supplied minimum
// period, which suppresses spurious detections from high-frequency
// noise. The gap defaults to the index type's maximum, so an
// unconfigured estimator never detects a crossing.
package analytic
