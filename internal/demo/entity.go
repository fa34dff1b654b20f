package demo

import (
	"github.com/roach88/sofi/internal/lattice"
	"github.com/roach88/sofi/internal/sofi"
)

// NewEntity constructs a demonstration entity: a sofi.Entity carrying a
// *Data payload under name. opts configure the usual sofi.Entity fields
// (access controller, minimum integrity, integrity functions); the
// defaults are the same as sofi.NewEntity's (deny everything, identity /
// min / min), matching the original demo's per-row int_fun defaults.
func NewEntity(name string, integrity lattice.Integrity, opts ...sofi.EntityOption) *sofi.Entity {
	opts = append([]sofi.EntityOption{sofi.WithPayload(&Data{Name: name})}, opts...)
	return sofi.NewEntity(integrity, opts...)
}
