// Package detect turns envelope estimates into debounced detection
// flags: an exponential averager smooths the envelope, single- and
// dual-threshold tests produce boolean event flags (the dual test adds
// hysteresis), and a de-glitcher delays edges to suppress brief pulses
// and drop-outs.
package detect
