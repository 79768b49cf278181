package analytic

import "github.com/cwbudde/algo-stimloop/dsp/core"

// Estimator tracks peak, trough, and zero-crossing features for one
// (bank, channel) cell.
type Estimator[S core.Sample, I core.Index] struct {
	// Configuration.
	zeroLevel S
	minZCGap  I

	// State.
	maxMagSeen S
	lastMag    S
	sinceRise  I
	sinceFall  I
	lastPeriod I
}

// NewEstimator returns an estimator in its reset state.
func NewEstimator[S core.Sample, I core.Index]() *Estimator[S, I] {
	e := &Estimator[S, I]{}
	e.ResetState()
	return e
}

// ResetState clears feature tracking. The zero level returns to 0 and
// the minimum-period gap to the index maximum, which suppresses all
// crossing detection until SetMinPeriod is called.
func (e *Estimator[S, I]) ResetState() {
	e.zeroLevel = 0
	e.minZCGap = core.MaxValue[I]()

	e.maxMagSeen = 0
	e.lastMag = 0
	e.sinceRise = 0
	e.sinceFall = 0
	e.lastPeriod = 0
}

// SetMinPeriod sets the crossing gate to half the given period. The
// period should be substantially smaller than the input signal's real
// minimum period.
func (e *Estimator[S, I]) SetMinPeriod(period I) {
	e.minZCGap = period >> 1
}

// SetZeroLevel sets the level subtracted from each sample before sign
// and magnitude extraction. Unsigned storage wraps around, which is
// the default band-pass output behavior.
func (e *Estimator[S, I]) SetZeroLevel(zero S) {
	e.zeroLevel = zero
}

// HandleSample advances the estimator by one sample.
func (e *Estimator[S, I]) HandleSample(v S) {
	// Counters saturate rather than wrap.
	if e.sinceRise < core.MaxValue[I]() {
		e.sinceRise++
	}
	if e.sinceFall < core.MaxValue[I]() {
		e.sinceFall++
	}

	v -= e.zeroLevel

	isNegative := core.IsNegative(v)
	mag := v
	if isNegative {
		mag = core.Negate(mag)
	}

	if mag > e.maxMagSeen {
		e.maxMagSeen = mag
	}

	if e.sinceRise > e.sinceFall {
		// Negative lobe: looking for a rising crossing.
		if !isNegative && e.sinceFall >= e.minZCGap {
			e.lastPeriod = (e.sinceRise - e.sinceFall) << 1
			e.lastMag = e.maxMagSeen
			e.maxMagSeen = mag
			e.sinceRise = 0
		}
	} else {
		// Positive lobe: looking for a falling crossing.
		if isNegative && e.sinceRise >= e.minZCGap {
			e.lastPeriod = (e.sinceFall - e.sinceRise) << 1
			e.lastMag = e.maxMagSeen
			e.maxMagSeen = mag
			e.sinceFall = 0
		}
	}
}

// EstimatedAnalytic returns the latest lobe magnitude, the period
// implied by the last crossing pair, and the live counters since the
// last rising and falling crossings. All durations are in samples.
func (e *Estimator[S, I]) EstimatedAnalytic() (magnitude S, period, sinceRise, sinceFall I) {
	return e.lastMag, e.lastPeriod, e.sinceRise, e.sinceFall
}
