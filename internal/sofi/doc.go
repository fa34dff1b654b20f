// Package sofi implements the Subject-Object-Flow-Integrity decision engine:
// the orchestration of access tests, integrity propagation through
// testing/providing/receiving functions, minimum-integrity checks, and
// operation execution.
//
// The package is deliberately small and has no I/O: Engine.Operation is a
// single, uninterruptible logical step over two *Entity values and an
// Operation descriptor. Everything outside that — where entities come from,
// how they are persisted, how operations are fed to the engine — lives in
// internal/agent, internal/config, and internal/demo.
package sofi
