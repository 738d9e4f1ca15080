package hdf5

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/hdf5/errors"
	"github.com/wippyai/hdf5/sys"
)

func TestCall_TranslatesFailure(t *testing.T) {
	lib := useSim(t)
	p := newList(t, sys.ClassFileAccess)

	lib.FailNext("H5Pcopy", 1)
	id, err := call(lib, errors.PhaseCopy, "H5Pcopy", func(l sys.Library) sys.ID {
		return l.PCopy(p.ID())
	})
	require.Error(t, err)
	assert.Equal(t, sys.InvalidID, id)
	assert.ErrorIs(t, err, errors.ErrNativeCall)

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.PhaseCopy, e.Phase)
	assert.Equal(t, "H5Pcopy", e.Op)
	assert.Contains(t, e.Stack, "H5Pcopy()")
	assert.Contains(t, err.Error(), "injected failure")

	assert.Zero(t, lib.ErrorDepth(), "error stack must be cleared after translation")
}

func TestCall_Success(t *testing.T) {
	lib := useSim(t)
	p := newList(t, sys.ClassFileAccess)

	ret, err := call(lib, errors.PhaseCompare, "H5Pequal", func(l sys.Library) sys.Tri {
		return l.PEqual(p.ID(), p.ID())
	})
	require.NoError(t, err)
	assert.Equal(t, sys.Tri(1), ret)
}

func TestCall_NoLibrary(t *testing.T) {
	ret, err := call(nil, errors.PhaseQuery, "H5Pexist", func(l sys.Library) sys.Tri {
		t.Fatal("fn must not run without a library")
		return 0
	})
	assert.Less(t, ret, sys.Tri(0))
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindNotInitialized, e.Kind)
}

func TestCall_Reentrant(t *testing.T) {
	lib := useSim(t)
	p := newList(t, sys.ClassFileAccess)

	var inner bool
	_, err := call(lib, errors.PhaseIterate, "H5Piterate", func(l sys.Library) sys.Herr {
		return l.PIterate(p.ID(), func(id sys.ID, name string) sys.Herr {
			inner = p.Has(name)
			if !inner {
				return -1
			}
			return 1
		})
	})
	require.NoError(t, err)
	assert.True(t, inner)
	assert.Zero(t, lib.Overlaps())
}

func TestSync_GroupsOperations(t *testing.T) {
	lib := useSim(t)

	n := SyncValue(func() int {
		p, err := NewPropertyList(sys.ClassDatasetXfer)
		require.NoError(t, err)
		defer p.Close()

		count := 0
		for _, name := range p.Properties() {
			if p.Has(name) {
				count++
			}
		}
		return count
	})
	assert.Positive(t, n)
	assert.Zero(t, lib.Live())
}

func TestLock_SerializesConcurrentCalls(t *testing.T) {
	lib := useSim(t)

	const workers = 16
	const rounds = 40

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			kind := sys.ClassKinds()[w%len(sys.ClassKinds())]
			for i := 0; i < rounds; i++ {
				p, err := NewPropertyList(kind)
				if err != nil {
					t.Errorf("NewPropertyList: %v", err)
					return
				}
				c := p.Clone()
				if !p.Equal(c) {
					t.Errorf("clone of %v not equal", kind)
				}
				for _, name := range c.Properties() {
					if !p.Has(name) {
						t.Errorf("%v lost property %q", kind, name)
					}
				}
				_ = c.Close()
				_ = p.Close()
			}
		}(w)
	}
	wg.Wait()

	assert.Zero(t, lib.Overlaps(), "library calls overlapped")
	assert.Zero(t, lib.Live(), "identifiers leaked")
	assert.Zero(t, lib.ErrorDepth())
}
