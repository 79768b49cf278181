package slice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFastModuloSlice(t *testing.T) {
	in := New[uint32](1, 3)
	moduli := New[uint32](1, 3)
	out := New[uint32](1, 3)

	in.Set(0, 0, 23)
	moduli.Set(0, 0, 5)
	in.Set(0, 1, 40)
	moduli.Set(0, 1, 8)
	in.Set(0, 2, 7)
	moduli.Set(0, 2, 9)

	FastModulo(in, moduli, out, 3)

	assert.Equal(t, uint32(3), out.At(0, 0))
	assert.Equal(t, uint32(0), out.At(0, 1))
	assert.Equal(t, uint32(7), out.At(0, 2))
}

func TestFastModuloSliceInPlace(t *testing.T) {
	in := New[uint32](1, 1)
	moduli := New[uint32](1, 1)
	in.Set(0, 0, 17)
	moduli.Set(0, 0, 5)

	FastModulo(in, moduli, in, 2)
	assert.Equal(t, uint32(2), in.At(0, 0))
}
