package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareWave(t *testing.T) {
	w := SquareWave[int16](1000, 0, 4, 8)
	assert.Equal(t, []int16{1000, 1000, -1000, -1000, 1000, 1000, -1000, -1000}, w)
}

func TestSquareWaveOffset(t *testing.T) {
	w := SquareWave[uint16](100, 500, 2, 4)
	assert.Equal(t, []uint16{600, 400, 600, 400}, w)
}

func TestImpulse(t *testing.T) {
	w := Impulse[int32](7, 4, 1)
	assert.Equal(t, []int32{0, 7, 0, 0}, w)

	assert.Equal(t, []int32{0, 0}, Impulse[int32](7, 2, 5))
}

func TestRamp(t *testing.T) {
	assert.Equal(t, []int32{0, 3, 6, 9}, Ramp[int32](3, 4))
}
