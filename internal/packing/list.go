// Package packing holds the canonical packing list and its derived views.
package packing

import (
	"github.com/idilsaglam/packlist/internal/model"
)

// List is the canonical, insertion-ordered collection of items.
// It is the only place items are mutated.
type List struct {
	items []model.Item
}

// NewList returns a list seeded with items, in the given order.
func NewList(seed []model.Item) *List {
	l := &List{items: make([]model.Item, 0, len(seed))}
	for _, it := range seed {
		l.items = append(l.items, it.Normalize())
	}
	return l
}

// Items returns a copy of the canonical sequence.
func (l *List) Items() []model.Item {
	out := make([]model.Item, len(l.items))
	copy(out, l.items)
	return out
}

// Len reports how many items are on the list.
func (l *List) Len() int { return len(l.items) }

// Add appends it to the end of the list.
func (l *List) Add(it model.Item) {
	l.items = append(l.items, it.Normalize())
}

// Delete removes the item with the given id. It reports false when no such
// item exists.
func (l *List) Delete(id int) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true
}

// Toggle flips the packed flag of the item with the given id. It reports
// false when no such item exists.
func (l *List) Toggle(id int) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.items[i].Packed = !l.items[i].Packed
	return true
}

// Clear empties the list.
func (l *List) Clear() {
	l.items = []model.Item{}
}

func (l *List) index(id int) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Stats summarizes how much of the list is packed.
type Stats struct {
	Total   int
	Packed  int
	Percent int
}

// Stats counts items and packed items. Percent is rounded to the nearest
// integer and is 0 for an empty list.
func (l *List) Stats() Stats {
	return Summarize(l.items)
}

// Summarize computes Stats for any sequence of items.
func Summarize(items []model.Item) Stats {
	s := Stats{Total: len(items)}
	for _, it := range items {
		if it.Packed {
			s.Packed++
		}
	}
	if s.Total > 0 {
		s.Percent = (s.Packed*100 + s.Total/2) / s.Total
	}
	return s
}
