// Package trigger emits stimulation pulses phase-aligned to the
// oscillation tracked by the analytic estimators.
//
// Stateless target-logic functions assemble, per trigger, a timing
// signal (delay since a rising or falling crossing, or since phase
// zero) and the target value it must reach; flag logic combines
// detection evidence from one or two sources. Each [Trigger] is then a
// four-state machine (idle, wait-rise, wait-fall, wait-cool) that
// unwraps the timing signal across period boundaries, asserts its
// pulse for a fixed duration, and enforces a cooldown. A [Bank] adds
// an enable mask plus a shared pulse quota and arming window.
//
// The target and flag cases are kept as distinct functions so each can
// be realized with the minimum needed hardware resources.
package trigger
