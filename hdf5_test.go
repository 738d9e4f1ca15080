package hdf5

import (
	"testing"

	"go.uber.org/zap"

	"github.com/wippyai/hdf5/sim"
	"github.com/wippyai/hdf5/sys"
)

// useSim points the package at a fresh simulated library for one test.
func useSim(t *testing.T) *sim.Library {
	t.Helper()
	lib := sim.New()
	opts := DefaultOptions()
	opts.Library = lib
	Configure(opts)
	t.Cleanup(func() {
		Configure(DefaultOptions())
		SetLogger(zap.NewNop())
	})
	return lib
}

func newList(t *testing.T, kind sys.ClassKind) *PropertyList {
	t.Helper()
	p, err := NewPropertyList(kind)
	if err != nil {
		t.Fatalf("NewPropertyList(%v): %v", kind, err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p
}
