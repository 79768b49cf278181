package trigger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-stimloop/dsp/analytic"
	"github.com/cwbudde/algo-stimloop/dsp/detect"
	"github.com/cwbudde/algo-stimloop/dsp/filter/biquad"
	"github.com/cwbudde/algo-stimloop/dsp/slice"
	"github.com/cwbudde/algo-stimloop/dsp/trigger"
	"github.com/cwbudde/algo-stimloop/internal/testutil"
)

// Full closed-loop tick: band-pass stage, analytic estimator,
// magnitude threshold, phase-targeted trigger. The input oscillation
// has period 40; the trigger aims at phase fraction 128/256, half a
// cycle past each rising crossing.
func TestClosedLoopPhaseTargeting(t *testing.T) {
	const (
		period    = 40
		amplitude = 1000
		ticks     = 400
	)

	iir := biquad.NewBank[int16](1, 1, 1)
	iir.SetActiveStages(1)
	iir.SetActiveBanks(1)
	iir.SetActiveChans(1)
	iir.SetCoefficients(0, 0, biquad.Coefficients[int16]{B0: 1})

	est := analytic.NewBank[int16, uint32](1, 1)
	est.SetOneMinPeriod(0, 20)

	triggers := trigger.NewBank[uint32](1, 1)
	triggers.SetActiveBanks(1)
	triggers.SetActiveChans(1)
	triggers.SetOneEnableFlag(0, 0, true)
	triggers.SetOnePulseDuration(0, 0, 2)
	triggers.SetOnePulseCooldown(0, 0, 5)
	// The envelope never drops, so re-arming must be allowed.
	triggers.SetOneReRaise(0, 0, true)
	triggers.EnableTriggering(ticks, 50)

	in := slice.New[int16](1, 1)
	band := slice.New[int16](1, 1)
	mag := slice.New[int16](1, 1)
	periods := slice.New[uint32](1, 1)
	rise := slice.New[uint32](1, 1)
	fall := slice.New[uint32](1, 1)

	thresholds := slice.New[int16](1, 1)
	thresholds.Fill(500)
	detectFlags := slice.New[bool](1, 1)

	srcBanks := slice.New[int](1, 1)
	srcChans := slice.New[int](1, 1)
	wantFalling := slice.New[bool](1, 1)
	nominal := slice.New[uint32](1, 1)
	nominal.Fill(128)

	signals := slice.New[uint32](1, 1)
	targets := slice.New[uint32](1, 1)
	pulses := slice.New[bool](1, 1)

	wave := testutil.SquareWave[int16](amplitude, 0, period, ticks)

	var pulseStarts []int
	prevPulse := false
	riseAtStart := map[int]uint32{}

	for tick := 0; tick < ticks; tick++ {
		in.Set(0, 0, wave[tick])

		iir.ApplyOnce(in, band)
		est.HandleSamples(band)
		est.EstimatedAnalytic(mag, periods, rise, fall)

		detect.TestSamples(mag, thresholds, detectFlags)

		trigger.SelectZCInputs(srcBanks, srcChans, wantFalling, rise, fall, signals)
		trigger.SelectPhaseTargets(srcBanks, srcChans, periods, nominal, targets)

		triggers.ProcessSamples(signals, targets, periods, detectFlags, pulses)

		if pulses.At(0, 0) && !prevPulse {
			pulseStarts = append(pulseStarts, tick)
			riseAtStart[tick] = rise.At(0, 0)
		}
		prevPulse = pulses.At(0, 0)
	}

	require.GreaterOrEqual(t, len(pulseStarts), 2)

	// Once the period estimate has locked, every pulse begins half a
	// cycle past a rising crossing.
	for _, tick := range pulseStarts {
		if tick < 3*period {
			continue
		}
		assert.Equal(t, uint32(period/2), riseAtStart[tick], "pulse at tick %d", tick)
	}

	// The quota only ever decreases.
	assert.LessOrEqual(t, triggers.TriggerCountLeft(), uint32(50))
}
