package slice

// Slice is a rectangular [bank][channel] buffer of values, one tick
// wide. Geometry is fixed at construction; cells outside a module's
// active subrectangle may hold stale data.
type Slice[T any] struct {
	banks int
	chans int
	data  []T
}

// New returns a zeroed slice with the given geometry. Bank and channel
// counts below one are clamped to one.
func New[T any](banks, chans int) *Slice[T] {
	if banks < 1 {
		banks = 1
	}
	if chans < 1 {
		chans = 1
	}
	return &Slice[T]{
		banks: banks,
		chans: chans,
		data:  make([]T, banks*chans),
	}
}

// Banks returns the bank count.
func (s *Slice[T]) Banks() int { return s.banks }

// Chans returns the channel count.
func (s *Slice[T]) Chans() int { return s.chans }

// At returns the value at (bank, chan).
func (s *Slice[T]) At(bank, ch int) T {
	return s.data[bank*s.chans+ch]
}

// Set stores a value at (bank, chan).
func (s *Slice[T]) Set(bank, ch int, v T) {
	s.data[bank*s.chans+ch] = v
}

// Row returns the backing storage for one bank's channels.
func (s *Slice[T]) Row(bank int) []T {
	return s.data[bank*s.chans : (bank+1)*s.chans]
}

// Fill assigns one value to every cell.
func (s *Slice[T]) Fill(v T) {
	for i := range s.data {
		s.data[i] = v
	}
}

// CopyFrom copies the overlapping rectangle of src into s. Slices of
// the same shape copy in full.
func (s *Slice[T]) CopyFrom(src *Slice[T]) {
	if s.banks == src.banks && s.chans == src.chans {
		copy(s.data, src.data)
		return
	}

	banks := min(s.banks, src.banks)
	chans := min(s.chans, src.chans)
	for b := 0; b < banks; b++ {
		copy(s.Row(b)[:chans], src.Row(b)[:chans])
	}
}

// Map copies selected source cells to target cells. For each target
// cell, the source (bank, chan) indices are read from srcBanks and
// srcChans and clamped into the source geometry. srcBanks, srcChans,
// and target share one shape; source may have any shape.
func Map[T any](srcBanks, srcChans *Slice[int], source, target *Slice[T]) {
	for b := 0; b < target.banks; b++ {
		for c := 0; c < target.chans; c++ {
			sb := srcBanks.At(b, c)
			sc := srcChans.At(b, c)

			if sb < 0 {
				sb = 0
			} else if sb >= source.banks {
				sb = source.banks - 1
			}

			if sc < 0 {
				sc = 0
			} else if sc >= source.chans {
				sc = source.chans - 1
			}

			target.Set(b, c, source.At(sb, sc))
		}
	}
}
