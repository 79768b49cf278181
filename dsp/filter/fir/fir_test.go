package fir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
	"pgregory.net/rapid"

	"github.com/cwbudde/algo-stimloop/dsp/slice"
)

func oneChanBank(maxCoeffs, bufLen int) *Bank[int32, uint32] {
	b := NewBank[int32, uint32](maxCoeffs, bufLen, 1, 1)
	b.SetActiveBanks(1)
	b.SetActiveChans(1)
	return b
}

func feed(b *Bank[int32, uint32], x int32) int32 {
	in := slice.New[int32](1, 1)
	out := slice.New[int32](1, 1)
	in.Set(0, 0, x)
	b.ApplyOnce(in, out)
	return out.At(0, 0)
}

func TestUnconfiguredFilterIsZero(t *testing.T) {
	b := oneChanBank(8, 16)
	for i := int32(0); i < 32; i++ {
		assert.Equal(t, int32(0), feed(b, i*100-1000))
	}
}

func TestMovingAverage(t *testing.T) {
	// Two-tap average with one fractional bit.
	b := oneChanBank(8, 16)
	b.SetOneCoefficient(0, 0, 1)
	b.SetOneCoefficient(0, 1, 1)
	b.SetOneGeometry(0, 1, 2)

	assert.Equal(t, int32(2), feed(b, 4))  // (0+4)/2
	assert.Equal(t, int32(6), feed(b, 8))  // (4+8)/2
	assert.Equal(t, int32(3), feed(b, -2)) // (8-2)/2
}

func TestImpulseResponseIsCoefficients(t *testing.T) {
	b := oneChanBank(4, 8)
	coeffs := []int32{3, -1, 4, 1}
	for i, c := range coeffs {
		b.SetOneCoefficient(0, uint32(i), c)
	}
	b.SetOneGeometry(0, 0, 4)

	got := []int32{feed(b, 1)}
	for i := 0; i < 5; i++ {
		got = append(got, feed(b, 0))
	}

	// The newest sample aligns with the last active coefficient.
	assert.Equal(t, []int32{1, 4, -1, 3, 0, 0}, got)
}

func TestMatchesFloatReference(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "taps")

		b := oneChanBank(8, 32)
		coeffs := make([]float64, n)
		for k := 0; k < n; k++ {
			c := int32(rapid.IntRange(-64, 64).Draw(t, "coeff"))
			b.SetOneCoefficient(0, uint32(k), c)
			coeffs[k] = float64(c)
		}
		b.SetOneGeometry(0, 0, uint32(n))

		history := make([]float64, n)
		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			x := int32(rapid.IntRange(-1000, 1000).Draw(t, "x"))

			// Oldest sample pairs with coefficient zero.
			copy(history, history[1:])
			history[n-1] = float64(x)

			got := feed(b, x)
			want := floats.Dot(coeffs, history)
			if float64(got) != want {
				t.Fatalf("step %d: got %d, want %v", i, got, want)
			}
		}
	})
}

func TestFracBitsShiftPreservesSign(t *testing.T) {
	b := oneChanBank(2, 8)
	b.SetOneCoefficient(0, 0, 1)
	b.SetOneGeometry(0, 2, 1)

	assert.Equal(t, int32(5), feed(b, 20))
	assert.Equal(t, int32(-5), feed(b, -20))
}

func TestBankSharesInputAcrossBanks(t *testing.T) {
	b := NewBank[int32, uint32](4, 8, 2, 1)
	b.SetActiveBanks(2)
	b.SetActiveChans(1)

	// Bank 0: identity. Bank 1: delay by one.
	b.SetOneCoefficient(0, 0, 1)
	b.SetOneGeometry(0, 0, 1)
	b.SetOneCoefficient(1, 0, 1)
	b.SetOneCoefficient(1, 1, 0)
	b.SetOneGeometry(1, 0, 2)

	in := slice.New[int32](1, 1)
	out := slice.New[int32](2, 1)

	in.Set(0, 0, 11)
	b.ApplyOnce(in, out)
	assert.Equal(t, int32(11), out.At(0, 0))
	assert.Equal(t, int32(0), out.At(1, 0))

	in.Set(0, 0, 22)
	b.ApplyOnce(in, out)
	assert.Equal(t, int32(22), out.At(0, 0))
	assert.Equal(t, int32(11), out.At(1, 0))
}

func TestInactiveOutputsZeroed(t *testing.T) {
	b := NewBank[int32, uint32](2, 8, 2, 2)
	b.SetActiveBanks(1)
	b.SetActiveChans(1)
	b.SetOneCoefficient(0, 0, 1)
	b.SetOneGeometry(0, 0, 1)

	in := slice.New[int32](1, 2)
	in.Fill(9)
	out := slice.New[int32](2, 2)
	out.Fill(-1)

	b.ApplyOnce(in, out)

	assert.Equal(t, int32(9), out.At(0, 0))
	// ApplyOnce blanks the whole output, active or not.
	assert.Equal(t, int32(0), out.At(0, 1))
	assert.Equal(t, int32(0), out.At(1, 0))
	assert.Equal(t, int32(0), out.At(1, 1))
}

func TestFastSettle(t *testing.T) {
	// A DC-gain filter settles instantly after FastSettle.
	b := oneChanBank(4, 8)
	for k := uint32(0); k < 4; k++ {
		b.SetOneCoefficient(0, k, 1)
	}
	b.SetOneGeometry(0, 2, 4)

	in := slice.New[int32](1, 1)
	in.Set(0, 0, 100)
	b.FastSettle(in)

	assert.Equal(t, int32(100), feed(b, 100))
}

func TestGeometryAccessorBounds(t *testing.T) {
	b := NewBank[int32, uint32](4, 8, 2, 2)
	bits, count := b.OneGeometry(-1)
	assert.Equal(t, uint8(0), bits)
	assert.Equal(t, uint32(0), count)

	b.SetOneGeometry(0, 3, 99)
	bits, count = b.OneGeometry(0)
	assert.Equal(t, uint8(3), bits)
	// Coefficient counts clamp to storage capacity.
	assert.Equal(t, uint32(4), count)
}
