package biquad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// passthrough is a unit-gain filter: y[n] = x[n].
func passthrough() Coefficients[int32] {
	return Coefficients[int32]{B0: 1}
}

func TestChainPassthrough(t *testing.T) {
	c := NewChain[int32](2)
	c.SetActiveStages(1)
	c.SetCoefficients(0, passthrough())

	input := []int32{0, 1, 2, 3, 0, 0, 0, 0}
	var got []int32
	for _, x := range input {
		got = append(got, c.ApplyOnce(x))
	}

	// After the settle period the chain is a delay-free identity.
	assert.Equal(t, []int32{1, 2, 3, 0, 0, 0, 0}, got[1:])
}

func TestChainZeroStagesIdentity(t *testing.T) {
	c := NewChain[int32](3)
	// stagesActive defaults to zero.

	for i := int32(0); i < 16; i++ {
		assert.Equal(t, i*3-7, c.ApplyOnce(i*3-7))
	}
}

func TestChainZeroCoefficientsZeroOutput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := NewChain[int64](2)
		c.SetActiveStages(rapid.IntRange(1, 2).Draw(t, "stages"))

		n := rapid.IntRange(1, 64).Draw(t, "n")
		for i := 0; i < n; i++ {
			x := rapid.Int64Range(-1<<40, 1<<40).Draw(t, "x")
			if got := c.ApplyOnce(x); got != 0 {
				t.Fatalf("zero filter produced %d", got)
			}
		}
	})
}

func TestChainTwoTapAverage(t *testing.T) {
	// y[n] = (x[n] + x[n-1]) >> 1
	c := NewChain[int32](1)
	c.SetActiveStages(1)
	c.SetCoefficients(0, Coefficients[int32]{A0Bits: 1, B0: 1, B1: 1})

	input := []int32{4, 8, -8, 2}
	want := []int32{2, 6, 0, -3}
	for i, x := range input {
		assert.Equal(t, want[i], c.ApplyOnce(x), "sample %d", i)
	}
}

func TestChainFeedbackDecay(t *testing.T) {
	// y[n] = (4*x[n] + 2*y[n-1]) >> 2: an impulse decays geometrically.
	c := NewChain[int32](1)
	c.SetActiveStages(1)
	c.SetCoefficients(0, Coefficients[int32]{A0Bits: 2, A1: -2, B0: 4})

	got := []int32{c.ApplyOnce(64)}
	for i := 0; i < 4; i++ {
		got = append(got, c.ApplyOnce(0))
	}
	assert.Equal(t, []int32{64, 32, 16, 8, 4}, got)
}

func TestChainUnsignedCarriesSign(t *testing.T) {
	// The two-tap average on unsigned storage must agree with the signed
	// result modulo 2^16.
	c := NewChain[uint16](1)
	c.SetActiveStages(1)
	c.SetCoefficients(0, Coefficients[uint16]{A0Bits: 1, B0: 1, B1: 1})

	neg := func(v uint16) uint16 { return ^v + 1 }

	assert.Equal(t, neg(2), c.ApplyOnce(neg(4)))
	assert.Equal(t, neg(5), c.ApplyOnce(neg(6)))
}

func TestChainSetActiveStagesClamps(t *testing.T) {
	c := NewChain[int32](2)
	c.SetActiveStages(99)
	assert.Equal(t, 2, c.ActiveStages())
	c.SetActiveStages(-1)
	assert.Equal(t, 0, c.ActiveStages())
}

func TestChainCoefficientAccessorBounds(t *testing.T) {
	c := NewChain[int32](2)
	c.SetCoefficients(5, passthrough()) // ignored
	assert.Equal(t, Coefficients[int32]{}, c.StageCoefficients(5))
	assert.Equal(t, Coefficients[int32]{}, c.StageCoefficients(0))
}

func TestChainFastSettle(t *testing.T) {
	// A DC-tracking stage preloaded with the input settles instantly.
	c := NewChain[int32](1)
	c.SetActiveStages(1)
	c.SetCoefficients(0, passthrough())

	c.FastSettle(1000, []bool{true})
	assert.Equal(t, int32(1000), c.ApplyOnce(1000))
}
