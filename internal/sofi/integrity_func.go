package sofi

import "github.com/roach88/sofi/internal/lattice"

// IntegrityFunc is the integrity-modification function family: a
// mapping (i, limit, op) -> I, with a declared Safe property. A
// function is safe iff it is guaranteed to never return a value greater
// than limit; the engine trusts safe functions to honor that bound and
// clamps (meets with limit) the result of any unsafe one at the call sites
// that require it (passIntegrity).
type IntegrityFunc interface {
	Apply(i, limit lattice.Integrity, op Operation) lattice.Integrity
	Safe() bool
}

type minFunc struct{}

// Min returns the always-safe function that ignores its input and returns
// the lattice's least element.
func Min() IntegrityFunc { return minFunc{} }

func (minFunc) Apply(_, limit lattice.Integrity, _ Operation) lattice.Integrity { return limit.Min() }
func (minFunc) Safe() bool                                                     { return true }

type identityFunc struct{}

// Identity returns the always-safe function that returns i meet limit.
func Identity() IntegrityFunc { return identityFunc{} }

func (identityFunc) Apply(i, limit lattice.Integrity, _ Operation) lattice.Integrity {
	return i.Meet(limit)
}
func (identityFunc) Safe() bool { return true }

type maxFunc struct{}

// Max returns the always-safe function that ignores its input and returns
// limit.
func Max() IntegrityFunc { return maxFunc{} }

func (maxFunc) Apply(_, limit lattice.Integrity, _ Operation) lattice.Integrity { return limit }
func (maxFunc) Safe() bool                                                     { return true }
