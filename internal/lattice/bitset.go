package lattice

import (
	"fmt"
	"math/bits"
)

// Bitset is the lattice of subsets of an N-bit universe (N <= 64): join is
// set union, meet is set intersection, ordering is the subset relation.
type Bitset struct {
	n    int
	mask uint64
}

func (Bitset) integrity() {}

// NewBitset constructs a Bitset of width n (0 < n <= 64) holding the given
// bits; bits outside the low n positions are cleared.
func NewBitset(n int, bits uint64) Bitset {
	if n <= 0 || n > 64 {
		panic("lattice: Bitset width must be in (0, 64]")
	}
	return Bitset{n: n, mask: bits & widthMask(n)}
}

func widthMask(n int) uint64 {
	if n == 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(n)) - 1
}

// Bits returns the receiver's raw bitmask.
func (b Bitset) Bits() uint64 { return b.mask }

// Width returns the receiver's universe size N.
func (b Bitset) Width() int { return b.n }

func (b Bitset) other(o Integrity) Bitset {
	ob, ok := o.(Bitset)
	if !ok || ob.n != b.n {
		panic("lattice: Bitset operation on mismatched variant or width")
	}
	return ob
}

// Join returns the union of the two bitsets.
func (b Bitset) Join(o Integrity) Integrity {
	ob := b.other(o)
	return Bitset{n: b.n, mask: b.mask | ob.mask}
}

// Meet returns the intersection of the two bitsets.
func (b Bitset) Meet(o Integrity) Integrity {
	ob := b.other(o)
	return Bitset{n: b.n, mask: b.mask & ob.mask}
}

// Compare reports the subset relation between b and o.
func (b Bitset) Compare(o Integrity) Order {
	ob := b.other(o)
	switch {
	case b.mask == ob.mask:
		return Equivalent
	case b.mask&ob.mask == b.mask:
		return Less
	case b.mask&ob.mask == ob.mask:
		return Greater
	default:
		return Unordered
	}
}

// Equal reports whether b and o hold the same bits.
func (b Bitset) Equal(o Integrity) bool {
	return b.mask == b.other(o).mask
}

// Min returns the empty set.
func (b Bitset) Min() Integrity { return Bitset{n: b.n, mask: 0} }

// Max returns the full N-bit set.
func (b Bitset) Max() Integrity { return Bitset{n: b.n, mask: widthMask(b.n)} }

func (b Bitset) String() string {
	return fmt.Sprintf("bitset(%0*b/%d)", b.n, b.mask, bits.OnesCount64(b.mask))
}
