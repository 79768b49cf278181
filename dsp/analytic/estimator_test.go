package analytic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cwbudde/algo-stimloop/dsp/core"
	"github.com/cwbudde/algo-stimloop/dsp/slice"
	"github.com/cwbudde/algo-stimloop/internal/testutil"
)

func TestSquareWaveLocksPeriodAndMagnitude(t *testing.T) {
	const period = 40
	const amplitude = 1000

	e := NewEstimator[int16, uint32]()
	e.SetMinPeriod(20) // crossing gate of 10 samples

	wave := testutil.SquareWave[int16](amplitude, 0, period, 4*period)
	for _, v := range wave {
		e.HandleSample(v)
	}

	mag, p, rise, fall := e.EstimatedAnalytic()
	assert.Equal(t, uint32(period), p)
	assert.Equal(t, int16(amplitude), mag)
	// In steady state the crossing counters stay bounded by the period.
	assert.LessOrEqual(t, rise, uint32(period))
	assert.LessOrEqual(t, fall, uint32(period))
}

func TestThirdCrossingEstablishesPeriod(t *testing.T) {
	const period = 40

	e := NewEstimator[int16, uint32]()
	e.SetMinPeriod(20)

	wave := testutil.SquareWave[int16](1000, 0, period, 200)

	// First crossing: counters started equal, period estimate is 0.
	// Second crossing: since-rise still measures from stream start.
	// Third crossing: both counters anchored, period locks to 40.
	crossings := 0
	var lastP uint32
	for _, v := range wave {
		before := e.sinceRise + e.sinceFall
		e.HandleSample(v)
		after := e.sinceRise + e.sinceFall
		if after < before {
			crossings++
			_, lastP, _, _ = e.EstimatedAnalytic()
			if crossings == 3 {
				break
			}
		}
	}
	assert.Equal(t, 3, crossings)
	assert.Equal(t, uint32(period), lastP)
}

func TestDefaultGateSuppressesDetection(t *testing.T) {
	// An unconfigured estimator has minZCGap == MaxValue and must never
	// report a crossing.
	e := NewEstimator[int16, uint32]()

	wave := testutil.SquareWave[int16](500, 0, 10, 500)
	for _, v := range wave {
		e.HandleSample(v)
	}

	mag, p, _, _ := e.EstimatedAnalytic()
	assert.Equal(t, int16(0), mag)
	assert.Equal(t, uint32(0), p)
}

func TestCountersSaturate(t *testing.T) {
	e := NewEstimator[int16, uint8]()

	for i := 0; i < 300; i++ {
		e.HandleSample(100)
	}

	_, _, rise, fall := e.EstimatedAnalytic()
	assert.Equal(t, core.MaxValue[uint8](), rise)
	assert.Equal(t, core.MaxValue[uint8](), fall)
}

func TestZeroLevelShift(t *testing.T) {
	const period = 20

	e := NewEstimator[int16, uint32]()
	e.SetMinPeriod(10)
	e.SetZeroLevel(500)

	wave := testutil.SquareWave[int16](300, 500, period, 6*period)
	for _, v := range wave {
		e.HandleSample(v)
	}

	mag, p, _, _ := e.EstimatedAnalytic()
	assert.Equal(t, uint32(period), p)
	assert.Equal(t, int16(300), mag)
}

func TestUnsignedStorageWraps(t *testing.T) {
	// Signed square wave carried in unsigned storage, zero level 0:
	// negative samples wrap modulo 2^16.
	const period = 20

	e := NewEstimator[uint16, uint32]()
	e.SetMinPeriod(10)

	for i := 0; i < 6*period; i++ {
		var v uint16 = 700
		if i%period >= period/2 {
			v = core.Negate(uint16(700))
		}
		e.HandleSample(v)
	}

	mag, p, _, _ := e.EstimatedAnalytic()
	assert.Equal(t, uint32(period), p)
	assert.Equal(t, uint16(700), mag)
}

func TestZeroInputStaysZero(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := NewEstimator[int32, uint32]()
		if rapid.Bool().Draw(t, "configure") {
			e.SetMinPeriod(uint32(rapid.IntRange(2, 100).Draw(t, "minp")))
		}

		n := rapid.IntRange(1, 500).Draw(t, "n")
		for i := 0; i < n; i++ {
			e.HandleSample(0)
		}

		mag, p, _, _ := e.EstimatedAnalytic()
		if mag != 0 || p != 0 {
			t.Fatalf("zero input produced mag %d period %d", mag, p)
		}
	})
}

func TestBankGeometryAndConfig(t *testing.T) {
	b := NewBank[int16, uint32](2, 2)
	assert.Equal(t, 2, b.ActiveBanks())
	assert.Equal(t, 2, b.ActiveChans())

	periods := slice.New[uint32](2, 1)
	periods.Set(0, 0, 20)
	periods.Set(1, 0, 40)
	b.SetMinPeriods(periods)

	// Feed bank 0 a period-20 wave and bank 1 a period-40 wave.
	w20 := testutil.SquareWave[int16](1000, 0, 20, 200)
	w40 := testutil.SquareWave[int16](1000, 0, 40, 200)
	in := slice.New[int16](2, 2)
	for i := 0; i < 200; i++ {
		in.Set(0, 0, w20[i])
		in.Set(0, 1, w20[i])
		in.Set(1, 0, w40[i])
		in.Set(1, 1, w40[i])
		b.HandleSamples(in)
	}

	mag := slice.New[int16](2, 2)
	period := slice.New[uint32](2, 2)
	rise := slice.New[uint32](2, 2)
	fall := slice.New[uint32](2, 2)
	b.EstimatedAnalytic(mag, period, rise, fall)

	assert.Equal(t, uint32(20), period.At(0, 0))
	assert.Equal(t, uint32(20), period.At(0, 1))
	assert.Equal(t, uint32(40), period.At(1, 0))
	assert.Equal(t, uint32(40), period.At(1, 1))
}

func TestBankResetRestoresGeometry(t *testing.T) {
	b := NewBank[int16, uint32](3, 4)
	b.SetActiveBanks(1)
	b.SetActiveChans(2)

	b.ResetState()
	assert.Equal(t, 3, b.ActiveBanks())
	assert.Equal(t, 4, b.ActiveChans())
}

func TestBankInactiveCellsSkipped(t *testing.T) {
	b := NewBank[int16, uint32](2, 2)
	b.SetActiveBanks(1)
	b.SetActiveChans(1)
	b.SetOneMinPeriod(0, 4)
	b.SetOneMinPeriod(1, 4)

	in := slice.New[int16](2, 2)
	in.Fill(100)
	for i := 0; i < 10; i++ {
		b.HandleSamples(in)
	}

	// The inactive estimator never advanced.
	_, _, rise, _ := b.at(1, 1).EstimatedAnalytic()
	assert.Equal(t, uint32(0), rise)
}
