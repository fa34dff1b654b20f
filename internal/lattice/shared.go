package lattice

import (
	"fmt"
	"sync"
)

// sharedCell is the canonical backing storage for one distinct value of J
// seen by NewShared. Cells are never mutated after creation.
type sharedCell[J Integrity] struct {
	value J
}

// sharedPool interns cells across all instantiations of Shared[J], keyed by
// a string that embeds the concrete Go type of J so distinct J
// instantiations never collide.
var sharedPool sync.Map // key: string -> *sharedCell[J]

// Shared wraps an integrity value J, adding structural sharing: two Shared
// values built from equal J values reference the same backing cell, so
// Equal and Compare short-circuit on pointer identity before falling back to
// J's own Equal/Compare. Shared[J] is semantically identical to J.
type Shared[J Integrity] struct {
	cell *sharedCell[J]
}

func sharedKey(v Integrity) string {
	return fmt.Sprintf("%T:%s", v, v.String())
}

// NewShared interns v and returns a Shared[J] referencing its canonical
// cell.
func NewShared[J Integrity](v J) Shared[J] {
	key := sharedKey(v)
	if existing, ok := sharedPool.Load(key); ok {
		if cell, ok := existing.(*sharedCell[J]); ok {
			return Shared[J]{cell: cell}
		}
	}
	actual, _ := sharedPool.LoadOrStore(key, &sharedCell[J]{value: v})
	return Shared[J]{cell: actual.(*sharedCell[J])}
}

func (Shared[J]) integrity() {}

// Value returns the wrapped integrity value.
func (s Shared[J]) Value() J { return s.cell.value }

func (s Shared[J]) other(o Integrity) Shared[J] {
	os, ok := o.(Shared[J])
	if !ok {
		panic("lattice: Shared operation on mismatched variant")
	}
	return os
}

// Join returns the interned join of the two wrapped values.
func (s Shared[J]) Join(o Integrity) Integrity {
	os := s.other(o)
	return NewShared[J](s.cell.value.Join(os.cell.value).(J))
}

// Meet returns the interned meet of the two wrapped values.
func (s Shared[J]) Meet(o Integrity) Integrity {
	os := s.other(o)
	return NewShared[J](s.cell.value.Meet(os.cell.value).(J))
}

// Compare short-circuits on cell identity, then delegates to J.Compare.
func (s Shared[J]) Compare(o Integrity) Order {
	os := s.other(o)
	if s.cell == os.cell {
		return Equivalent
	}
	return s.cell.value.Compare(os.cell.value)
}

// Equal short-circuits on cell identity, then delegates to J.Equal.
func (s Shared[J]) Equal(o Integrity) bool {
	os := s.other(o)
	if s.cell == os.cell {
		return true
	}
	return s.cell.value.Equal(os.cell.value)
}

// Min returns the interned least element of J's lattice.
func (s Shared[J]) Min() Integrity { return NewShared[J](s.cell.value.Min().(J)) }

// Max returns the interned greatest element of J's lattice.
func (s Shared[J]) Max() Integrity { return NewShared[J](s.cell.value.Max().(J)) }

func (s Shared[J]) String() string { return s.cell.value.String() }
