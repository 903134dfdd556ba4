package packing

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/idilsaglam/packlist/internal/model"
)

// SortMode selects how the list view orders items.
type SortMode int

const (
	SortInput SortMode = iota
	SortDescription
	SortPacked
)

// SortModes lists every mode in selector order.
var SortModes = []SortMode{SortInput, SortDescription, SortPacked}

var ErrUnknownSortMode = errors.New("unknown sort mode")

func (m SortMode) String() string {
	switch m {
	case SortDescription:
		return "description"
	case SortPacked:
		return "packed"
	default:
		return "input"
	}
}

// Label is the human-readable selector text.
func (m SortMode) Label() string {
	switch m {
	case SortDescription:
		return "Sort by description"
	case SortPacked:
		return "Sort by packed status"
	default:
		return "Sort by input order"
	}
}

// Next cycles to the following mode, wrapping around.
func (m SortMode) Next() SortMode {
	return SortModes[(int(m)+1)%len(SortModes)]
}

// ParseSortMode accepts "input", "description" or "packed" (any case).
// An empty string means input order.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "input":
		return SortInput, nil
	case "description":
		return SortDescription, nil
	case "packed":
		return SortPacked, nil
	}
	return SortInput, fmt.Errorf("%w: %q", ErrUnknownSortMode, s)
}

// Sorter derives display orderings. Description comparison uses the
// collation rules of its locale.
type Sorter struct {
	coll *collate.Collator
}

// NewSorter builds a Sorter for a BCP 47 locale tag. Unparseable tags fall
// back to English.
func NewSorter(locale string) *Sorter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Sorter{coll: collate.New(tag)}
}

// Sort returns a new slice ordered by mode. items is never modified.
func (s *Sorter) Sort(items []model.Item, mode SortMode) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)

	switch mode {
	case SortDescription:
		sort.SliceStable(out, func(i, j int) bool {
			return s.coll.CompareString(out[i].Description, out[j].Description) < 0
		})
	case SortPacked:
		sort.SliceStable(out, func(i, j int) bool {
			return !out[i].Packed && out[j].Packed
		})
	}
	return out
}
