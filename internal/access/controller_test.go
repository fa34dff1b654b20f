package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/sofi/internal/access"
	"github.com/roach88/sofi/internal/lattice"
)

type fakeOp access.OpKey

func (o fakeOp) Key() access.OpKey { return access.OpKey(o) }

func i(v int) lattice.Integrity { return lattice.MustLinear(0, 10, v) }

func TestSingle(t *testing.T) {
	c := access.Single{Floor: i(5)}
	assert.False(t, c.Test(i(4), fakeOp(""), nil, access.KindAccess))
	assert.True(t, c.Test(i(5), fakeOp(""), nil, access.KindAccess))
	assert.True(t, c.Test(i(6), fakeOp(""), nil, access.KindAccess))
}

func TestListEmptyDenies(t *testing.T) {
	c := access.List{}
	assert.False(t, c.Test(i(10), fakeOp(""), nil, access.KindAccess))
}

func TestListExistential(t *testing.T) {
	c := access.List{Floors: []lattice.Integrity{i(3), i(7)}}
	assert.True(t, c.Test(i(3), fakeOp(""), nil, access.KindAccess))
	assert.True(t, c.Test(i(8), fakeOp(""), nil, access.KindAccess))
	assert.False(t, c.Test(i(1), fakeOp(""), nil, access.KindAccess))
}

func TestPerOpDispatch(t *testing.T) {
	c := access.PerOp{
		ByKey: map[access.OpKey]access.Controller{
			"read":  access.Single{Floor: i(2)},
			"write": nil, // explicit deny
		},
		Default: access.Single{Floor: i(8)},
	}

	assert.True(t, c.Test(i(2), fakeOp("read"), nil, access.KindAccess), "per-op entry overrides default")
	assert.False(t, c.Test(i(10), fakeOp("write"), nil, access.KindAccess), "nil entry denies regardless of subject")
	assert.False(t, c.Test(i(5), fakeOp("clone"), nil, access.KindAccess), "missing key falls back to default")
	assert.True(t, c.Test(i(9), fakeOp("clone"), nil, access.KindAccess), "missing key meets default")
}

func TestPerOpNilDefaultDenies(t *testing.T) {
	c := access.PerOp{ByKey: map[access.OpKey]access.Controller{}}
	assert.False(t, c.Test(i(10), fakeOp("anything"), nil, access.KindAccess))
}

func TestMonotonicity(t *testing.T) {
	controllers := []access.Controller{
		access.Single{Floor: i(5)},
		access.List{Floors: []lattice.Integrity{i(3), i(7)}},
		access.PerOp{Default: access.Single{Floor: i(4)}},
		access.Deny{},
	}
	levels := []lattice.Integrity{i(0), i(1), i(2), i(3), i(4), i(5), i(6), i(7), i(8), i(9), i(10)}
	for _, c := range controllers {
		for a := 0; a < len(levels); a++ {
			for b := a; b < len(levels); b++ {
				if c.Test(levels[a], fakeOp(""), nil, access.KindAccess) {
					assert.True(t, c.Test(levels[b], fakeOp(""), nil, access.KindAccess),
						"%v: monotonicity violated between %v and %v", c, levels[a], levels[b])
				}
			}
		}
	}
}
