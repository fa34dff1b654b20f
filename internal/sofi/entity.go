package sofi

import (
	"github.com/roach88/sofi/internal/access"
	"github.com/roach88/sofi/internal/lattice"
)

// Entity bundles everything the engine needs about a subject or object:
// its current integrity, the access controller used as a minimum-integrity
// floor, the access controller gating operations where this entity is the
// object, and its three integrity-function roles.
//
// Entities are created by an agent, mutated only by Engine.Operation
// (integrity) and an operation's ExecuteFunc (domain data), and destroyed
// by an agent when a Verdict's Destroy field is set. Only Integrity and
// MinIntegrity may be changed after construction; AccessCtrl, TestFun,
// ProvFun, and RecvFun are fixed for the entity's lifetime.
type Entity struct {
	integrity    lattice.Integrity
	minIntegrity access.Controller
	accessCtrl   access.Controller
	testFun      IntegrityFunc
	provFun      IntegrityFunc
	recvFun      IntegrityFunc
	payload      any
}

// EntityOption configures an optional Entity field at construction time.
type EntityOption func(*Entity)

// WithMinIntegrity sets the entity's minimum-integrity controller.
func WithMinIntegrity(c access.Controller) EntityOption {
	return func(e *Entity) { e.minIntegrity = c }
}

// WithAccessCtrl sets the entity's access controller.
func WithAccessCtrl(c access.Controller) EntityOption {
	return func(e *Entity) { e.accessCtrl = c }
}

// WithTestFun sets the entity's test function.
func WithTestFun(f IntegrityFunc) EntityOption { return func(e *Entity) { e.testFun = f } }

// WithProvFun sets the entity's providing function.
func WithProvFun(f IntegrityFunc) EntityOption { return func(e *Entity) { e.provFun = f } }

// WithRecvFun sets the entity's receiving function.
func WithRecvFun(f IntegrityFunc) EntityOption { return func(e *Entity) { e.recvFun = f } }

// WithPayload attaches domain data to the entity. The engine never reads or
// writes it; it exists so an ExecuteFunc can reach the data an operation
// body is meant to act on.
func WithPayload(p any) EntityOption { return func(e *Entity) { e.payload = p } }

// NewEntity constructs an Entity with the given integrity and its default
// roles: a denying access controller and minimum-integrity controller,
// test_fun = Identity, prov_fun = Min, recv_fun = Min. Options override
// individual defaults.
func NewEntity(integrity lattice.Integrity, opts ...EntityOption) *Entity {
	e := &Entity{
		integrity:    integrity,
		minIntegrity: access.Deny{},
		accessCtrl:   access.Deny{},
		testFun:      Identity(),
		provFun:      Min(),
		recvFun:      Min(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Integrity returns the entity's current integrity.
func (e *Entity) Integrity() lattice.Integrity { return e.integrity }

// SetIntegrity replaces the entity's integrity. Only Engine.Operation
// should call this in normal operation; it is exported so agents can
// restore an entity's integrity on import.
func (e *Entity) SetIntegrity(i lattice.Integrity) { e.integrity = i }

// MinIntegrity returns the access controller used as the entity's
// minimum-integrity floor.
func (e *Entity) MinIntegrity() access.Controller { return e.minIntegrity }

// SetMinIntegrity replaces the entity's minimum-integrity controller.
func (e *Entity) SetMinIntegrity(c access.Controller) { e.minIntegrity = c }

// AccessCtrl returns the access controller gating operations where this
// entity is the object.
func (e *Entity) AccessCtrl() access.Controller { return e.accessCtrl }

// TestFun returns the entity's test function.
func (e *Entity) TestFun() IntegrityFunc { return e.testFun }

// ProvFun returns the entity's providing function.
func (e *Entity) ProvFun() IntegrityFunc { return e.provFun }

// RecvFun returns the entity's receiving function.
func (e *Entity) RecvFun() IntegrityFunc { return e.recvFun }

// Payload returns the entity's domain data, or nil if none was attached.
func (e *Entity) Payload() any { return e.payload }

// SetPayload replaces the entity's domain data.
func (e *Entity) SetPayload(p any) { e.payload = p }

// Clone returns a new Entity with the same integrity, access controller,
// minimum-integrity controller, and integrity functions as e, but no
// payload (the caller attaches a fresh one — e.g. under a new name — via
// SetPayload). Used by operation bodies that create a new entity from an
// existing one (internal/demo's clone operation).
func (e *Entity) Clone() *Entity {
	return &Entity{
		integrity:    e.integrity,
		minIntegrity: e.minIntegrity,
		accessCtrl:   e.accessCtrl,
		testFun:      e.testFun,
		provFun:      e.provFun,
		recvFun:      e.recvFun,
	}
}
