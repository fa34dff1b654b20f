package agent

import "github.com/roach88/sofi/internal/sofi"

// Agent is the boundary between a SOFI system and an external store:
// Export persists an entity under its own name; Import reconstructs one
// by name. A driver (cmd/sofi) imports subject and object before each
// request and exports them after.
type Agent interface {
	// Export persists e under name, creating or replacing the stored
	// record.
	Export(name string, e *sofi.Entity) (Result, error)
	// Import reconstructs the entity stored under name. A ResultError (or
	// ResultUntrusted) return carries no usable entity; the returned
	// *sofi.Entity is nil in that case.
	Import(name string) (*sofi.Entity, Result, error)
	// Delete removes the stored record for name, used when a verdict's
	// Destroy field is set.
	Delete(name string) (Result, error)
}
