package demo

import "github.com/roach88/sofi/internal/sofi"

// Data is the domain payload the demonstration operations read and write.
// It is attached to a sofi.Entity via sofi.WithPayload/SetPayload; the
// engine never looks at it. Name mirrors the entity's primary key in a
// persistent store (internal/agent), kept alongside Data so clone can
// produce a fresh named copy without a round trip through the store.
type Data struct {
	Name string
	Data string
}

// Payload extracts an entity's *Data, or a zero Data if none was attached
// (entities built outside this package need not carry one).
func Payload(e *sofi.Entity) *Data {
	if d, ok := e.Payload().(*Data); ok {
		return d
	}
	return &Data{}
}
