package agent

import (
	"fmt"
	"sync"

	"github.com/roach88/sofi/internal/demo"
	"github.com/roach88/sofi/internal/sofi"
)

// Memory is an in-process Agent backed by a map, for tests and the replay
// driver's deterministic demonstration runs with no persistent store. It
// is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	entries map[string]*sofi.Entity
}

// NewMemory constructs an empty Memory agent.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]*sofi.Entity)}
}

// Export stores a snapshot of e under name; later mutations to e do not
// affect the stored copy.
func (m *Memory) Export(name string, e *sofi.Entity) (Result, error) {
	if e == nil {
		return ResultError, fmt.Errorf("agent: export %q: nil entity", name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := e.Clone()
	d := demo.Payload(e)
	snapshot.SetPayload(&demo.Data{Name: name, Data: d.Data})
	m.entries[name] = snapshot
	return ResultSuccess, nil
}

// Import returns a fresh snapshot of the entity stored under name.
func (m *Memory) Import(name string) (*sofi.Entity, Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.entries[name]
	if !ok {
		return nil, ResultError, fmt.Errorf("agent: import %q: not found", name)
	}
	snapshot := stored.Clone()
	d := demo.Payload(stored)
	snapshot.SetPayload(&demo.Data{Name: name, Data: d.Data})
	return snapshot, ResultSuccess, nil
}

// Delete removes the stored record for name. Deleting an absent name is
// not an error — it matches the already-destroyed state the caller wants.
func (m *Memory) Delete(name string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, name)
	return ResultSuccess, nil
}
