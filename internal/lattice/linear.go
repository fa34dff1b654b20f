package lattice

import "fmt"

// Linear is a totally ordered lattice over a closed integer interval
// [Lo..Hi]; join is numeric max, meet is numeric min.
type Linear struct {
	Lo, Hi int
	v      int
}

func (Linear) integrity() {}

// NewLinear constructs a Linear value in [lo..hi]. It rejects v outside the
// interval with a *DomainError; this is the only construction failure mode
// in the whole lattice algebra.
func NewLinear(lo, hi, v int) (Linear, error) {
	if lo > hi {
		return Linear{}, &DomainError{Variant: "Linear", Message: fmt.Sprintf("empty interval [%d..%d]", lo, hi)}
	}
	if v < lo || v > hi {
		return Linear{}, &DomainError{Variant: "Linear", Message: fmt.Sprintf("value %d outside [%d..%d]", v, lo, hi)}
	}
	return Linear{Lo: lo, Hi: hi, v: v}, nil
}

// MustLinear is like NewLinear but panics on error; for use with
// compile-time-known bounds (tests, demo fixtures).
func MustLinear(lo, hi, v int) Linear {
	l, err := NewLinear(lo, hi, v)
	if err != nil {
		panic(err)
	}
	return l
}

// Value returns the receiver's numeric position in [Lo..Hi].
func (l Linear) Value() int { return l.v }

func (l Linear) other(o Integrity) Linear {
	ol, ok := o.(Linear)
	if !ok || ol.Lo != l.Lo || ol.Hi != l.Hi {
		panic("lattice: Linear operation on mismatched variant or interval")
	}
	return ol
}

// Join returns the numeric maximum of the two values.
func (l Linear) Join(o Integrity) Integrity {
	ol := l.other(o)
	if ol.v > l.v {
		return ol
	}
	return l
}

// Meet returns the numeric minimum of the two values.
func (l Linear) Meet(o Integrity) Integrity {
	ol := l.other(o)
	if ol.v < l.v {
		return ol
	}
	return l
}

// Compare reports the total order of l and o's values.
func (l Linear) Compare(o Integrity) Order {
	ol := l.other(o)
	switch {
	case l.v < ol.v:
		return Less
	case l.v > ol.v:
		return Greater
	default:
		return Equivalent
	}
}

// Equal reports whether l and o hold the same numeric value.
func (l Linear) Equal(o Integrity) bool {
	return l.Compare(o) == Equivalent
}

// Min returns Lo.
func (l Linear) Min() Integrity { return Linear{Lo: l.Lo, Hi: l.Hi, v: l.Lo} }

// Max returns Hi.
func (l Linear) Max() Integrity { return Linear{Lo: l.Lo, Hi: l.Hi, v: l.Hi} }

func (l Linear) String() string { return fmt.Sprintf("linear(%d in [%d..%d])", l.v, l.Lo, l.Hi) }
