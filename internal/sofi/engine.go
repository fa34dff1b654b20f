package sofi

import (
	"github.com/roach88/sofi/internal/access"
	"github.com/roach88/sofi/internal/lattice"
)

// Observer is called at four fixed points during Engine.Operation, for
// logging or auditing. The algorithm itself never consults an Observer's
// return value — these are no-op hooks an implementation may override
// without being able to alter the decision: the algorithm is fixed, only
// the observer varies.
type Observer interface {
	// InitVerdict is called once a Verdict has been allocated, before any
	// test runs.
	InitVerdict(subj, obj *Entity, op Operation, execute bool, v *Verdict)
	// AfterTestAccess is called once the object's access controller has
	// been tested and the result stored in v.
	AfterTestAccess(subj, obj *Entity, op Operation, execute bool, v *Verdict, allowed bool)
	// AfterTestMin is called once both minimum-integrity tests have been
	// evaluated and the joint result stored in v. iSubj/iObj are nil when
	// the operation is not a read/write respectively.
	AfterTestMin(subj, obj *Entity, op Operation, execute bool, v *Verdict,
		iSubj *lattice.Integrity, allowMinSubj bool, iObj *lattice.Integrity, allowMinObj bool)
	// ExecuteOp is called after a committed operation's body has run.
	ExecuteOp(subj, obj *Entity, op Operation, v *Verdict)
}

// NopObserver implements Observer with no-op methods; it is Engine's
// default Observer.
type NopObserver struct{}

func (NopObserver) InitVerdict(*Entity, *Entity, Operation, bool, *Verdict) {}
func (NopObserver) AfterTestAccess(*Entity, *Entity, Operation, bool, *Verdict, bool) {}
func (NopObserver) AfterTestMin(*Entity, *Entity, Operation, bool, *Verdict,
	*lattice.Integrity, bool, *lattice.Integrity, bool) {
}
func (NopObserver) ExecuteOp(*Entity, *Entity, Operation, *Verdict) {}

// Engine is the SOFI engine: the orchestrator of access tests, integrity
// propagation, minimum-integrity checks, and operation execution. An
// Engine instance drives one request at a time; it performs no I/O and
// holds no state of its own beyond its Observer, so it is safe to reuse
// across unrelated subject/object pairs, but not to call concurrently on
// overlapping entities.
type Engine struct {
	observer Observer
}

// New constructs an Engine. A nil observer is replaced with NopObserver.
func New(observer Observer) *Engine {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Engine{observer: observer}
}

// Operation performs or tests a SOFI operation between subj and obj:
//
//  1. Access test: obj's access controller tests subj's integrity.
//  2. Propagation: prospective new integrities are computed via passIntegrity.
//  3. Minimum-integrity test: both prospective integrities (if any) are
//     checked against their entity's minimum-integrity controller.
//  4. Commit & execute: if execute is true and both tests passed, the new
//     integrities are committed and the operation's body runs.
//
// A denied access test short-circuits before propagation, so a denied
// operation cannot leak integrity via side-effectful propagation. When
// execute is false, the full decision is still made (all tests run) but no
// entity is mutated and the prospective integrities are discarded.
func (e *Engine) Operation(subj, obj *Entity, op Operation, execute bool) Verdict {
	var v Verdict
	e.observer.InitVerdict(subj, obj, op, execute, &v)

	allowAccess := obj.AccessCtrl().Test(subj.Integrity(), op, &v, access.KindAccess)
	v.setAccessTest(allowAccess)
	e.observer.AfterTestAccess(subj, obj, op, execute, &v, allowAccess)
	if !allowAccess {
		return v
	}

	var iSubj, iObj *lattice.Integrity
	if op.IsWrite() {
		r := passIntegrity(subj, obj, op)
		iObj = &r
	}
	if op.IsRead() {
		r := passIntegrity(obj, subj, op)
		iSubj = &r
	}

	allowMinSubj := true
	allowMinObj := true
	if iSubj != nil {
		allowMinSubj = subj.MinIntegrity().Test(*iSubj, op, &v, access.KindMinSubj)
	}
	if iObj != nil {
		allowMinObj = obj.MinIntegrity().Test(*iObj, op, &v, access.KindMinObj)
	}
	v.setMinTest(allowMinSubj && allowMinObj)
	e.observer.AfterTestMin(subj, obj, op, execute, &v, iSubj, allowMinSubj, iObj, allowMinObj)
	if !v.MinTest() {
		return v
	}

	if execute {
		if iSubj != nil {
			subj.SetIntegrity(*iSubj)
		}
		if iObj != nil {
			obj.SetIntegrity(*iObj)
		}
		op.Execute(subj, obj, &v)
		e.observer.ExecuteOp(subj, obj, op, &v)
	}
	return v
}

// passIntegrity computes the reader's prospective new integrity from an
// operation flowing from writer to reader:
//
//	t = reader.test_fun(writer.integrity, reader.integrity, op)
//	if !reader.test_fun.safe: t = t * reader.integrity
//	p = writer.prov_fun(writer.integrity, writer.integrity, op)
//	if p != min:
//	    if !writer.prov_fun.safe: p = p * writer.integrity
//	    r = reader.recv_fun(p, p, op)
//	    if r != min:
//	        if !reader.recv_fun.safe: r = r * p
//	        t = t + r
//	return t
//
// The clamp guarding p is against the writer's own integrity, not against
// the reader's test-function safety.
func passIntegrity(writer, reader *Entity, op Operation) lattice.Integrity {
	min := writer.Integrity().Min()

	t := reader.TestFun().Apply(writer.Integrity(), reader.Integrity(), op)
	if !reader.TestFun().Safe() {
		t = t.Meet(reader.Integrity())
	}

	p := writer.ProvFun().Apply(writer.Integrity(), writer.Integrity(), op)
	if !p.Equal(min) {
		if !writer.ProvFun().Safe() {
			p = p.Meet(writer.Integrity())
		}
		r := reader.RecvFun().Apply(p, p, op)
		if !r.Equal(min) {
			if !reader.RecvFun().Safe() {
				r = r.Meet(p)
			}
			t = t.Join(r)
		}
	}
	return t
}
