package access

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/sofi/internal/lattice"
)

// OpKey is the stable key an operation exposes for PerOp dispatch.
type OpKey string

// Op is the minimal capability an access controller needs from an
// operation: a stable dispatch key. internal/sofi.Operation satisfies this.
type Op interface {
	Key() OpKey
}

// Kind identifies which role a Controller.Test call is being made in. It
// carries intent only; a Controller is free to ignore it, and the three
// variants in this package do.
type Kind int

const (
	// KindAccess is the object's access-controller test in engine Step 1.
	KindAccess Kind = iota
	// KindMinSubj is the subject's minimum-integrity test in engine Step 3.
	KindMinSubj
	// KindMinObj is the object's minimum-integrity test in engine Step 3.
	KindMinObj
)

func (k Kind) String() string {
	switch k {
	case KindAccess:
		return "access"
	case KindMinSubj:
		return "min_subj"
	case KindMinObj:
		return "min_obj"
	default:
		return "invalid_kind"
	}
}

// Controller is the sealed interface for SOFI access controllers: a
// monotone predicate on a subject's integrity. Test must be monotone — if
// Test(i, ...) is true and i <= i', then Test(i', ...) must also be true.
// Implementations must not hold mutable state that could break this across
// calls.
//
// verdict is passed through opaquely (as the concrete *sofi.Verdict the
// engine is evaluating) so a custom Controller can annotate it; the three
// provided variants ignore it.
type Controller interface {
	Test(subj lattice.Integrity, op Op, verdict any, kind Kind) bool
	String() string

	controller()
}

// Deny is the controller that denies every operation. It is the first-class
// representation of a "null" sub-controller in a PerOp table: a key present
// with a null entry denies regardless of subject integrity.
type Deny struct{}

func (Deny) controller() {}

// Test always returns false.
func (Deny) Test(lattice.Integrity, Op, any, Kind) bool { return false }

func (Deny) String() string { return "deny" }

// Single requires the subject's integrity to be at least Floor.
type Single struct {
	Floor lattice.Integrity
}

func (Single) controller() {}

// Test reports whether subj >= s.Floor.
func (s Single) Test(subj lattice.Integrity, _ Op, _ any, _ Kind) bool {
	return lattice.LessEq(s.Floor, subj)
}

func (s Single) String() string { return fmt.Sprintf("single(%s)", s.Floor) }

// List requires the subject's integrity to be at least one of Floors. An
// empty list denies every operation.
type List struct {
	Floors []lattice.Integrity
}

func (List) controller() {}

// Test reports whether subj dominates at least one floor in l.Floors.
func (l List) Test(subj lattice.Integrity, _ Op, _ any, _ Kind) bool {
	for _, floor := range l.Floors {
		if lattice.LessEq(floor, subj) {
			return true
		}
	}
	return false
}

func (l List) String() string {
	parts := make([]string, len(l.Floors))
	for i, f := range l.Floors {
		parts[i] = f.String()
	}
	return fmt.Sprintf("list(%s)", strings.Join(parts, " | "))
}

// PerOp dispatches by the operation's key: a key present in ByKey (even as
// a nil/Deny entry) takes precedence over Default. A key absent from ByKey
// falls back to Default; a nil Default denies.
type PerOp struct {
	ByKey   map[OpKey]Controller
	Default Controller
}

func (PerOp) controller() {}

// Test dispatches to the sub-controller selected by op.Key().
func (p PerOp) Test(subj lattice.Integrity, op Op, verdict any, kind Kind) bool {
	if c, ok := p.ByKey[op.Key()]; ok {
		if c == nil {
			return false
		}
		return c.Test(subj, op, verdict, kind)
	}
	if p.Default == nil {
		return false
	}
	return p.Default.Test(subj, op, verdict, kind)
}

func (p PerOp) String() string {
	keys := make([]string, 0, len(p.ByKey))
	for k := range p.ByKey {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return fmt.Sprintf("per_op(%d keys, default=%v)", len(keys), p.Default != nil)
}

// UnknownOpError reports a PerOp (or per-op ACL configuration) referencing
// an operation key that is not declared in the relevant operation table.
// The core engine never raises this — PerOp.Test simply falls back to
// Default for an unrecognized key — but config loaders that build a PerOp
// table from a declared set of operations (internal/config, internal/demo)
// use it to reject typos at load time.
type UnknownOpError struct {
	Key OpKey
}

func (e *UnknownOpError) Error() string {
	return fmt.Sprintf("access: unknown operation key %q", e.Key)
}
