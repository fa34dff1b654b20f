package sofi

import "github.com/roach88/sofi/internal/access"

// OpKey is the stable key an Operation exposes for per-operation ACL
// lookup. It is an alias of access.OpKey so an Operation satisfies
// access.Op without an adapter.
type OpKey = access.OpKey

// ExecuteFunc is an operation's body: the domain-specific work an engine
// performs when an operation is allowed and execution is requested. It may
// mutate domain data reachable from subj/obj and may set Verdict's extended
// fields (Err, Destroy, Clone).
type ExecuteFunc func(subj, obj *Entity, v *Verdict)

// Operation is an immutable descriptor: a stable key, read/write flow
// flags, an optional display name, and a body. The
// four flow classes (no-flow, read, write, read-write) follow from the two
// flags; any argument an operation needs is captured by its ExecuteFunc
// closure, since the engine's Operation call takes no separate argument.
type Operation struct {
	key     OpKey
	isRead  bool
	isWrite bool
	name    string
	execute ExecuteFunc
}

// NewOperation constructs an Operation. execute may be nil for operations
// with no domain effect beyond integrity propagation (e.g. a pure no-op).
func NewOperation(key OpKey, isRead, isWrite bool, name string, execute ExecuteFunc) Operation {
	return Operation{key: key, isRead: isRead, isWrite: isWrite, name: name, execute: execute}
}

// Key returns the operation's stable dispatch key.
func (o Operation) Key() OpKey { return o.key }

// IsRead reports whether information flows from object to subject.
func (o Operation) IsRead() bool { return o.isRead }

// IsWrite reports whether information flows from subject to object.
func (o Operation) IsWrite() bool { return o.isWrite }

// Name returns the operation's display name, or "" if unset.
func (o Operation) Name() string { return o.name }

// Execute runs the operation body, if any.
func (o Operation) Execute(subj, obj *Entity, v *Verdict) {
	if o.execute != nil {
		o.execute(subj, obj, v)
	}
}
