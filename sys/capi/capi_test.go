//go:build hdf5 && cgo

package capi

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/hdf5/sys"
)

// The native error stack is per thread, so each test pins itself.
func pin(t *testing.T) {
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)
}

func TestRegistered(t *testing.T) {
	lib := sys.Registered()
	require.NotNil(t, lib)
	assert.Contains(t, lib.Name(), "libhdf5")
}

func TestPropertyListRoundTrip(t *testing.T) {
	pin(t)
	lib := New()

	fapl := lib.PCreate(lib.PredefinedClass(sys.ClassFileAccess))
	require.Positive(t, int64(fapl))
	defer lib.IDecRef(fapl)

	assert.Equal(t, sys.TypeGenPropList, lib.IGetType(fapl))
	assert.Equal(t, sys.Tri(1), lib.IIsValid(fapl))
	assert.Equal(t, 1, lib.IGetRef(fapl))

	c := lib.PCopy(fapl)
	require.Positive(t, int64(c))
	assert.NotEqual(t, fapl, c)
	assert.Equal(t, sys.Tri(1), lib.PEqual(fapl, c))
	assert.Equal(t, 0, lib.IDecRef(c))
	assert.Equal(t, sys.Tri(0), lib.IIsValid(c))

	assert.Equal(t, sys.Tri(1), lib.PExist(fapl, "sieve_buf_size"))
	assert.Equal(t, sys.Tri(0), lib.PExist(fapl, "no-such-property"))

	var names []string
	ret := lib.PIterate(fapl, func(_ sys.ID, name string) sys.Herr {
		names = append(names, name)
		return 0
	})
	require.GreaterOrEqual(t, ret, sys.Herr(0))
	assert.Contains(t, names, "sieve_buf_size")

	n, ret := lib.PGetNProps(fapl)
	require.GreaterOrEqual(t, ret, sys.Herr(0))
	assert.Equal(t, len(names), n)
}

func TestClasses(t *testing.T) {
	pin(t)
	lib := New()

	for _, kind := range sys.ClassKinds() {
		cls := lib.PredefinedClass(kind)
		require.Positive(t, int64(cls), kind.String())
		name, ret := lib.PGetClassName(cls)
		require.GreaterOrEqual(t, ret, sys.Herr(0))
		assert.Equal(t, kind.String(), name)
	}
}

func TestErrorStack(t *testing.T) {
	pin(t)
	lib := New()
	lib.ClearErrors()

	assert.Less(t, lib.PCopy(sys.InvalidID), sys.ID(0))
	stack := lib.ErrorStack()
	assert.Contains(t, stack, "H5Pcopy")
	assert.Contains(t, stack, "major:")

	lib.ClearErrors()
	assert.Empty(t, lib.ErrorStack())
}
