package packing

import "github.com/idilsaglam/packlist/internal/model"

// IDSource hands out item ids.
type IDSource interface {
	Next() int
}

// Sequence is a monotonic IDSource. Ids are never reused, even after the
// item that held one is deleted.
type Sequence struct {
	last int
}

// NewSequence starts numbering above the largest id in seed.
func NewSequence(seed []model.Item) *Sequence {
	s := &Sequence{}
	for _, it := range seed {
		if it.ID > s.last {
			s.last = it.ID
		}
	}
	return s
}

// Next returns a fresh id.
func (s *Sequence) Next() int {
	s.last++
	return s.last
}
