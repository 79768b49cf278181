// Package slice provides the rectangular [bank][channel] sample
// container exchanged between pipeline stages, plus the cell-remapping
// and winner-take-all voting operations that compose across banks.
//
// A slice is one tick wide: each pipeline stage reads its input slice
// and writes its output slice exactly once per tick. Storage is
// allocated at construction and never resized; "active" subsets are
// tracked by the modules themselves, not by the container.
package slice
