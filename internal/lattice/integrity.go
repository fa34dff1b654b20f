package lattice

import "fmt"

// Order is the result of comparing two integrity values in their lattice's
// partial order.
type Order int

const (
	// Less means the left operand is strictly below the right one.
	Less Order = iota
	// Equivalent means the two operands denote the same lattice element.
	Equivalent
	// Greater means the left operand is strictly above the right one.
	Greater
	// Unordered means neither operand dominates the other (only possible
	// for the partial-order variants Bitset and Set[T]).
	Unordered
)

// String renders o for diagnostics.
func (o Order) String() string {
	switch o {
	case Less:
		return "less"
	case Equivalent:
		return "equivalent"
	case Greater:
		return "greater"
	case Unordered:
		return "unordered"
	default:
		return "invalid-order"
	}
}

// Integrity is a value of a bounded lattice: a partially ordered set with
// join, meet, a least element (Min) and a greatest element (Max). It is the
// sealed interface implemented by Singleton, Linear, Bitset, Set[T], and
// Shared[J] — see the package doc comment for the contract those
// implementations must satisfy.
type Integrity interface {
	// Join returns the least upper bound of the receiver and other.
	Join(other Integrity) Integrity
	// Meet returns the greatest lower bound of the receiver and other.
	Meet(other Integrity) Integrity
	// Compare reports the partial-order relation of the receiver to other.
	Compare(other Integrity) Order
	// Equal reports whether the receiver and other denote the same element.
	Equal(other Integrity) bool
	// Min returns the least element of the receiver's lattice.
	Min() Integrity
	// Max returns the greatest element of the receiver's lattice.
	Max() Integrity
	// String renders the value for diagnostics.
	String() string

	// integrity seals the interface to this package's variants.
	integrity()
}

// LessEq reports whether a <= b, i.e. a.Join(b) == b (equivalently
// a.Meet(b) == a). It is a convenience built on Compare.
func LessEq(a, b Integrity) bool {
	switch a.Compare(b) {
	case Less, Equivalent:
		return true
	default:
		return false
	}
}

// DomainError reports construction of an integrity value outside the range
// its lattice allows. The only variant that can fail construction is
// Linear, whose value must lie within its closed interval.
type DomainError struct {
	// Variant names the integrity variant that rejected the value.
	Variant string
	// Message describes the violation.
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("lattice: %s: %s", e.Variant, e.Message)
}
