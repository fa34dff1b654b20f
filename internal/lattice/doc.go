// Package lattice implements the bounded-lattice integrity values carried by
// every SOFI entity.
//
// Integrity is a sealed interface: the only implementations are Singleton,
// Linear, Bitset, Set[T], and Shared[J]. Each provides join (Join), meet
// (Meet), a partial-order comparison (Compare), decidable equality (Equal),
// and its own least/greatest elements (Min/Max).
//
// Join/Meet/Compare/Equal assume the other operand is the same concrete
// variant with matching structural parameters (the same Lo/Hi interval for
// Linear, the same bit width for Bitset, the same element type for Set[T]).
// A SOFI system fixes one integrity variant for all of its entities, so this
// is never an issue in practice; a mismatch panics rather than returning a
// silently wrong answer.
package lattice
