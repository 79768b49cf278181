package coeffio

import (
	"strconv"
	"strings"

	"github.com/cwbudde/algo-stimloop/dsp/core"
)

// sampleToInt64 widens a sample to a signed 64-bit value, interpreting
// unsigned storage as two's-complement. Unsigned values in the upper
// half of the range, uint64 included, map to negative results, so
// int64ToSample restores every bit.
func sampleToInt64[S core.Sample](v S) int64 {
	result := int64(v)

	if !core.IsSigned[S]() {
		maxVal := core.MaxValue[S]()
		if v > maxVal>>1 {
			// Operating modulo (maxVal + 1).
			result -= int64(maxVal)
			result--
		}
	}
	return result
}

// int64ToSample narrows a signed 64-bit value to a sample type,
// wrapping negatives into unsigned storage.
func int64ToSample[S core.Sample](v int64) S {
	if core.IsSigned[S]() {
		return S(v)
	}

	if v < 0 {
		maxVal := core.MaxValue[S]()
		v += int64(maxVal)
		v++
	}
	return S(v)
}

// parseCell parses a CSV cell as a signed 64-bit integer. Empty or
// malformed cells parse as zero.
func parseCell(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseCellInt parses a CSV cell as an int. Empty or malformed cells
// parse as zero.
func parseCellInt(s string) int {
	return int(parseCell(s))
}
