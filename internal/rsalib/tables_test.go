package rsalib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExDataLifecycle(t *testing.T) {
	t.Cleanup(CleanupAllExData)

	idx := GetExNewIndex("app")
	require.GreaterOrEqual(t, idx, 0)
	r := newRSA(t)

	require.NoError(t, r.SetExData(idx, "payload"))
	assert.Equal(t, "payload", r.ExData(idx))

	before := State().ExDataEntries
	r.Free()
	assert.Equal(t, before-1, State().ExDataEntries)
}

func TestExDataIndexesAreDistinct(t *testing.T) {
	t.Cleanup(CleanupAllExData)

	a := GetExNewIndex("a")
	b := GetExNewIndex("b")
	assert.NotEqual(t, a, b)

	r := newRSA(t)
	defer r.Free()
	require.NoError(t, r.SetExData(a, 1))
	require.NoError(t, r.SetExData(b, 2))
	assert.Equal(t, 1, r.ExData(a))
	assert.Equal(t, 2, r.ExData(b))
}

func TestSetExDataUnknownIndex(t *testing.T) {
	r := newRSA(t)
	defer r.Free()

	err := r.SetExData(9999, "x")
	require.Error(t, err)
	var le *LibError
	assert.ErrorAs(t, err, &le)
	assert.Nil(t, r.ExData(9999))
}

func TestCleanupAllExData(t *testing.T) {
	idx := GetExNewIndex("app")
	r := newRSA(t)
	defer r.Free()
	require.NoError(t, r.SetExData(idx, 1))

	CleanupAllExData()
	assert.Zero(t, State().ExDataEntries)
	assert.Nil(t, r.ExData(idx))
	assert.Error(t, r.SetExData(idx, 2))
}

func TestLiveKeys(t *testing.T) {
	before := LiveKeys()
	r := newRSA(t)
	assert.Equal(t, before+1, LiveKeys())
	r.Free()
	r.Free()
	assert.Equal(t, before, LiveKeys())
	assert.Equal(t, before, State().LiveKeys)
}
