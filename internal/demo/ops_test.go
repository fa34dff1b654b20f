package demo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sofi/internal/access"
	"github.com/roach88/sofi/internal/demo"
	"github.com/roach88/sofi/internal/lattice"
	"github.com/roach88/sofi/internal/sofi"
)

func allowAll() access.Controller {
	return access.List{Floors: []lattice.Integrity{lattice.NewSet[string]()}}
}

func TestBindUnknownKey(t *testing.T) {
	_, err := demo.Bind("bogus", "")
	require.Error(t, err)
}

func TestReadCopiesObjectDataToSubject(t *testing.T) {
	subj := demo.NewEntity("alice", lattice.NewSet("i1"), sofi.WithMinIntegrity(allowAll()))
	obj := demo.NewEntity("secret", lattice.NewSet("i1"),
		sofi.WithMinIntegrity(allowAll()),
		sofi.WithAccessCtrl(access.PerOp{Default: allowAll()}),
	)
	demo.Payload(obj).Data = "top secret"

	op, err := demo.Bind(demo.Read, "")
	require.NoError(t, err)

	eng := sofi.New(nil)
	v := eng.Operation(subj, obj, op, true)

	require.True(t, v.Allowed())
	assert.Equal(t, "top secret", demo.Payload(subj).Data)
}

func TestWriteArgReplacesObjectData(t *testing.T) {
	subj := demo.NewEntity("alice", lattice.NewSet("i1"), sofi.WithMinIntegrity(allowAll()))
	obj := demo.NewEntity("doc", lattice.NewSet("i1"),
		sofi.WithMinIntegrity(allowAll()),
		sofi.WithAccessCtrl(access.PerOp{Default: allowAll()}),
	)
	demo.Payload(obj).Data = "old"

	op, err := demo.Bind(demo.WriteArg, "new")
	require.NoError(t, err)

	eng := sofi.New(nil)
	v := eng.Operation(subj, obj, op, true)

	require.True(t, v.Allowed())
	assert.Equal(t, "new", demo.Payload(obj).Data)
}

func TestSetIntegrityParsesArgAndUpdatesObject(t *testing.T) {
	subj := demo.NewEntity("alice", lattice.NewSet[string](), sofi.WithMinIntegrity(allowAll()))
	obj := demo.NewEntity("doc", lattice.NewSet[string](),
		sofi.WithMinIntegrity(allowAll()),
		sofi.WithAccessCtrl(access.PerOp{Default: allowAll()}),
	)

	op, err := demo.Bind(demo.SetIntegrity, `["i1","i2"]`)
	require.NoError(t, err)

	eng := sofi.New(nil)
	v := eng.Operation(subj, obj, op, true)

	require.True(t, v.Allowed())
	require.NoError(t, v.Err)
	assert.True(t, obj.Integrity().Equal(lattice.NewSet("i1", "i2")))
}

func TestCloneProducesNamedCopyWithoutMutatingOriginal(t *testing.T) {
	subj := demo.NewEntity("alice", lattice.NewSet("i1"), sofi.WithMinIntegrity(allowAll()))
	obj := demo.NewEntity("doc", lattice.NewSet("i1"),
		sofi.WithMinIntegrity(allowAll()),
		sofi.WithAccessCtrl(access.PerOp{Default: allowAll()}),
	)
	demo.Payload(obj).Data = "payload"

	op, err := demo.Bind(demo.Clone, "doc-copy")
	require.NoError(t, err)

	eng := sofi.New(nil)
	v := eng.Operation(subj, obj, op, true)

	require.True(t, v.Allowed())
	assert.True(t, v.Clone)
	require.NotNil(t, v.ClonedEntity)
	assert.Equal(t, "doc-copy", v.ClonedName)
	assert.Equal(t, "payload", demo.Payload(v.ClonedEntity).Data)
	assert.True(t, v.ClonedEntity.Integrity().Equal(obj.Integrity()))
	assert.Equal(t, "payload", demo.Payload(obj).Data, "clone must not mutate the original")
}

func TestDestroySetsVerdictDestroy(t *testing.T) {
	subj := demo.NewEntity("alice", lattice.NewSet("i1"), sofi.WithMinIntegrity(allowAll()))
	obj := demo.NewEntity("doc", lattice.NewSet("i1"),
		sofi.WithMinIntegrity(allowAll()),
		sofi.WithAccessCtrl(access.PerOp{Default: allowAll()}),
	)

	op, err := demo.Bind(demo.Destroy, "")
	require.NoError(t, err)

	eng := sofi.New(nil)
	v := eng.Operation(subj, obj, op, true)

	require.True(t, v.Allowed())
	assert.True(t, v.Destroy)
}

func TestTableFuncMatchesMinIdentityMax(t *testing.T) {
	zero := lattice.NewSet[string]()
	full := lattice.NewSet("i1", "i2")

	op, _ := demo.Bind(demo.NoOp, "")

	minF := demo.TableMin()
	assert.True(t, minF.Apply(full, full, op).Equal(zero))
	assert.True(t, minF.Safe())

	idF := demo.TableIdentity(zero)
	assert.True(t, idF.Apply(full, lattice.NewSet("i1"), op).Equal(lattice.NewSet("i1")))

	maxF := demo.TableMax(zero, full)
	assert.True(t, maxF.Apply(zero, full, op).Equal(full))
}
