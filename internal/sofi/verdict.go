package sofi

// Verdict is the engine's decision object: a pair of booleans (access test,
// minimum-integrity test) plus the derived Allowed. A default-constructed
// Verdict is denied, and stays denied until both tests have run — Allowed
// reports false for any Verdict where AccessTest or MinTest has not yet
// been recorded.
//
// Err, Destroy, Clone, and ClonedEntity are extended, domain-specific
// fields an implementation may add on top of the core access/min-integrity
// decision: Err records an execution failure from an operation's body (the
// engine still reports Allowed true — an execution error never rolls back
// a committed integrity change); Destroy and Clone are set by
// internal/demo's destroy/clone operations and acted on by the driver in
// cmd/sofi, whose request-feed loop is responsible for inserting cloned
// entities when the operation body requests one and deleting those marked
// destroy. ClonedEntity and ClonedName carry the clone operation's output
// to the driver; the operation body never persists it directly.
type Verdict struct {
	accessTest bool
	minTest    bool
	accessSet  bool
	minSet     bool

	Err          error
	Destroy      bool
	Clone        bool
	ClonedName   string
	ClonedEntity *Entity
}

// AccessTest reports the object access-controller's decision. It is
// meaningless (and false) before the engine's Step 1 has run.
func (v Verdict) AccessTest() bool { return v.accessTest }

// MinTest reports the joint minimum-integrity decision. It is meaningless
// (and false) before the engine's Step 3 has run.
func (v Verdict) MinTest() bool { return v.minTest }

// Allowed reports whether the operation may be (or was) executed. It is
// false until both AccessTest and MinTest have been recorded.
func (v Verdict) Allowed() bool {
	return v.accessSet && v.minSet && v.accessTest && v.minTest
}

// setAccessTest records the access-controller result. It is called exactly
// once, by Engine.Operation's Step 1.
func (v *Verdict) setAccessTest(allowed bool) {
	v.accessTest = allowed
	v.accessSet = true
}

// setMinTest records the joint minimum-integrity result. It is called
// exactly once, by Engine.Operation's Step 3.
func (v *Verdict) setMinTest(allowed bool) {
	v.minTest = allowed
	v.minSet = true
}
