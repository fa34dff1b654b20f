package cli

import (
	"log/slog"

	"github.com/roach88/sofi/internal/lattice"
	"github.com/roach88/sofi/internal/sofi"
)

// SlogObserver implements sofi.Observer by logging each of the engine's
// four fixed points through log/slog.
type SlogObserver struct{}

func (SlogObserver) InitVerdict(subj, obj *sofi.Entity, op sofi.Operation, execute bool, v *sofi.Verdict) {
	slog.Debug("operation starting", "op", op.Key(), "execute", execute)
}

func (SlogObserver) AfterTestAccess(subj, obj *sofi.Entity, op sofi.Operation, execute bool, v *sofi.Verdict, allowed bool) {
	slog.Debug("access test", "op", op.Key(), "allowed", allowed)
}

func (SlogObserver) AfterTestMin(subj, obj *sofi.Entity, op sofi.Operation, execute bool, v *sofi.Verdict,
	iSubj *lattice.Integrity, allowMinSubj bool, iObj *lattice.Integrity, allowMinObj bool) {
	slog.Debug("minimum-integrity test", "op", op.Key(), "subject_ok", allowMinSubj, "object_ok", allowMinObj)
}

func (SlogObserver) ExecuteOp(subj, obj *sofi.Entity, op sofi.Operation, v *sofi.Verdict) {
	if v.Err != nil {
		slog.Error("operation body failed", "op", op.Key(), "error", v.Err)
		return
	}
	slog.Info("operation executed", "op", op.Key(), "destroy", v.Destroy, "clone", v.Clone)
}
