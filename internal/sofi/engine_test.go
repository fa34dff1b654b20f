package sofi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sofi/internal/access"
	"github.com/roach88/sofi/internal/lattice"
	"github.com/roach88/sofi/internal/sofi"
)

// set is shorthand for a finite Set[string] integrity, the lattice variant
// used throughout the scenarios below.
func set(elems ...string) lattice.Integrity { return lattice.NewSet(elems...) }

// trivialACL is a List whose one floor is the lattice minimum: it allows
// every subject integrity. Used for scenarios that state a min- or access-
// ACL of "[[]]".
func trivialACL() access.Controller {
	return access.List{Floors: []lattice.Integrity{lattice.NewSet[string]()}}
}

func noop() sofi.Operation    { return sofi.NewOperation("", false, false, "no-op", nil) }
func readOp() sofi.Operation  { return sofi.NewOperation("read", true, false, "read", nil) }
func writeOp() sofi.Operation { return sofi.NewOperation("write", false, true, "write", nil) }
func swapOp() sofi.Operation  { return sofi.NewOperation("swap", true, true, "swap", nil) }

// meetWith returns an always-safe IntegrityFunc that meets its input with a
// fixed set, used by scenario 6 to model subject/object-specific
// providing/receiving rules.
type meetWith struct{ with lattice.Integrity }

func (m meetWith) Apply(i, _ lattice.Integrity, _ sofi.Operation) lattice.Integrity {
	return i.Meet(m.with)
}
func (meetWith) Safe() bool { return true }

func TestScenario1_NoFlowAllowed(t *testing.T) {
	subj := sofi.NewEntity(set("i1"), sofi.WithMinIntegrity(trivialACL()))
	obj := sofi.NewEntity(set("i1"),
		sofi.WithMinIntegrity(trivialACL()),
		sofi.WithAccessCtrl(access.PerOp{Default: trivialACL()}),
	)
	eng := sofi.New(nil)

	v := eng.Operation(subj, obj, noop(), true)

	assert.True(t, v.AccessTest())
	assert.True(t, v.MinTest())
	assert.True(t, v.Allowed())
	assert.True(t, subj.Integrity().Equal(set("i1")))
	assert.True(t, obj.Integrity().Equal(set("i1")))
}

func TestScenario2_ReadUpdatesSubjectOnly(t *testing.T) {
	subj := sofi.NewEntity(set("i1", "i3"), sofi.WithMinIntegrity(trivialACL()))
	obj := sofi.NewEntity(set("i1", "i2"),
		sofi.WithMinIntegrity(trivialACL()),
		sofi.WithAccessCtrl(access.PerOp{Default: trivialACL()}),
	)
	eng := sofi.New(nil)

	v := eng.Operation(subj, obj, readOp(), true)

	require.True(t, v.Allowed())
	assert.True(t, subj.Integrity().Equal(set("i1")))
	assert.True(t, obj.Integrity().Equal(set("i1", "i2")), "object untouched by a read")
}

func TestScenario3_WriteDeniedByObjectMinIntegrity(t *testing.T) {
	subj := sofi.NewEntity(set("i1", "i3"), sofi.WithMinIntegrity(trivialACL()))
	obj := sofi.NewEntity(set("i1", "i2"),
		sofi.WithMinIntegrity(access.List{Floors: []lattice.Integrity{set("i1", "i2")}}),
		sofi.WithAccessCtrl(access.PerOp{Default: trivialACL()}),
	)
	eng := sofi.New(nil)

	v := eng.Operation(subj, obj, writeOp(), true)

	assert.True(t, v.AccessTest())
	assert.False(t, v.MinTest())
	assert.False(t, v.Allowed())
	assert.True(t, subj.Integrity().Equal(set("i1", "i3")), "denied op leaves subject unchanged")
	assert.True(t, obj.Integrity().Equal(set("i1", "i2")), "denied op leaves object unchanged")
}

func TestScenario4_PerOpOverridesDefault(t *testing.T) {
	obj := sofi.NewEntity(set("i1"),
		sofi.WithMinIntegrity(trivialACL()),
		sofi.WithAccessCtrl(access.PerOp{
			ByKey: map[access.OpKey]access.Controller{
				"read": access.List{Floors: []lattice.Integrity{set("i2")}},
			},
			Default: access.Single{Floor: lattice.Universe[string]()},
		}),
	)
	eng := sofi.New(nil)

	subjRead := sofi.NewEntity(set("i2"), sofi.WithMinIntegrity(trivialACL()))
	v := eng.Operation(subjRead, obj, readOp(), true)
	assert.True(t, v.AccessTest(), "read uses the per-op entry, not the universe default")

	subjWrite := sofi.NewEntity(set("i2"), sofi.WithMinIntegrity(trivialACL()))
	v = eng.Operation(subjWrite, obj, writeOp(), true)
	assert.False(t, v.AccessTest(), "write falls back to the universe-requiring default")
}

func TestScenario5_ReadWriteUpdatesBoth(t *testing.T) {
	subj := sofi.NewEntity(set("i1", "i3", "i4"),
		sofi.WithMinIntegrity(access.List{Floors: []lattice.Integrity{set("i4")}}))
	obj := sofi.NewEntity(set("i1", "i2", "i4"),
		sofi.WithMinIntegrity(access.List{Floors: []lattice.Integrity{set("i1")}}),
		sofi.WithAccessCtrl(access.PerOp{Default: trivialACL()}),
	)
	eng := sofi.New(nil)

	v := eng.Operation(subj, obj, swapOp(), true)

	require.True(t, v.Allowed())
	assert.True(t, subj.Integrity().Equal(set("i1", "i4")))
	assert.True(t, obj.Integrity().Equal(set("i1", "i4")))
}

func TestScenario6_ProvidingAndReceivingNarrowInformation(t *testing.T) {
	subj := sofi.NewEntity(set("i1", "i2", "i3", "i4"),
		sofi.WithMinIntegrity(trivialACL()),
		sofi.WithProvFun(meetWith{with: set("i2", "i3")}),
	)
	obj := sofi.NewEntity(set("i1"),
		sofi.WithMinIntegrity(trivialACL()),
		sofi.WithAccessCtrl(access.PerOp{Default: trivialACL()}),
		sofi.WithRecvFun(meetWith{with: set("i2", "i4")}),
	)
	eng := sofi.New(nil)

	v := eng.Operation(subj, obj, writeOp(), true)

	require.True(t, v.Allowed())
	assert.True(t, obj.Integrity().Equal(set("i1", "i2")))
	assert.True(t, subj.Integrity().Equal(set("i1", "i2", "i3", "i4")), "write never touches the subject")
}

func TestExecuteFalseDiscardsProspectiveIntegrities(t *testing.T) {
	subj := sofi.NewEntity(set("i1", "i3"), sofi.WithMinIntegrity(trivialACL()))
	obj := sofi.NewEntity(set("i1", "i2"),
		sofi.WithMinIntegrity(trivialACL()),
		sofi.WithAccessCtrl(access.PerOp{Default: trivialACL()}),
	)
	eng := sofi.New(nil)

	v := eng.Operation(subj, obj, readOp(), false)

	require.True(t, v.Allowed())
	assert.True(t, subj.Integrity().Equal(set("i1", "i3")), "execute=false must not mutate entities")
	assert.True(t, obj.Integrity().Equal(set("i1", "i2")))
}

func TestDeniedAccessShortCircuitsBeforePropagation(t *testing.T) {
	subj := sofi.NewEntity(set("i1"))
	obj := sofi.NewEntity(set("i9")) // default access controller (Deny) denies everyone

	eng := sofi.New(nil)
	v := eng.Operation(subj, obj, writeOp(), true)

	assert.False(t, v.AccessTest())
	assert.False(t, v.Allowed())
	assert.True(t, subj.Integrity().Equal(set("i1")))
	assert.True(t, obj.Integrity().Equal(set("i9")))
}

func TestVerdictDeniedBeforeBothTestsRun(t *testing.T) {
	var v sofi.Verdict
	assert.False(t, v.Allowed())
}

func TestPassIntegrityNeverExceedsReaderWhenSafe(t *testing.T) {
	// pass(writer, reader, op) <= reader.integrity whenever test_fun,
	// prov_fun, and recv_fun are all safe.
	subj := sofi.NewEntity(set("i1", "i2", "i3"), sofi.WithMinIntegrity(trivialACL()))
	obj := sofi.NewEntity(set("i1"),
		sofi.WithMinIntegrity(trivialACL()),
		sofi.WithAccessCtrl(access.PerOp{Default: trivialACL()}),
	)
	eng := sofi.New(nil)

	v := eng.Operation(subj, obj, writeOp(), true)
	require.True(t, v.Allowed())
	assert.True(t, lattice.LessEq(obj.Integrity(), set("i1")))
}
