// Package access implements the SOFI access-controller hierarchy: monotone
// predicates on a subject's integrity that gate operations.
//
// Controller is a sealed interface with three variants: Single (a single
// integrity floor), List (an existential over several floors), and PerOp
// (dispatch by operation key, with an optional default and first-class
// Deny). All three are monotone in the subject integrity by construction —
// see the package doc on Controller for the invariant implementations must
// preserve if they compose these further.
package access
