package slice

import "github.com/cwbudde/algo-stimloop/dsp/core"

// FastModulo reduces every cell of in modulo the corresponding cell of
// moduli using the shift-and-subtract form from core.FastModulo. Input
// and output may reference the same slice.
func FastModulo[T core.Sample](in, moduli, out *Slice[T], subcount uint8) {
	for b := 0; b < in.banks; b++ {
		for c := 0; c < in.chans; c++ {
			out.Set(b, c, core.FastModulo(in.At(b, c), moduli.At(b, c), subcount))
		}
	}
}
