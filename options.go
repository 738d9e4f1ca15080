package hdf5

import (
	"go.uber.org/zap"

	"github.com/wippyai/hdf5/sim"
	"github.com/wippyai/hdf5/sys"
)

// Options configures the package.
type Options struct {
	// Library is the native backend. Nil selects the backend registered
	// with sys.Register, or the simulated library if none is.
	Library sys.Library

	// Logger replaces the package logger when non-nil.
	Logger *zap.Logger

	// ReleaseLeaked attaches a cleanup to every handle that releases its
	// identifier if the owner is garbage collected without Close.
	ReleaseLeaked bool
}

// DefaultOptions returns default configuration.
func DefaultOptions() Options {
	return Options{
		ReleaseLeaked: true,
	}
}

var (
	current       sys.Library
	releaseLeaked = true
)

// Configure applies opts. Objects created before the call stay bound to
// the backend they were created with.
func Configure(opts Options) {
	libLock.Lock()
	defer libLock.Unlock()

	if opts.Logger != nil {
		SetLogger(opts.Logger)
	}
	current = opts.Library
	releaseLeaked = opts.ReleaseLeaked
}

// Backend returns the native backend new objects are created with.
func Backend() sys.Library {
	libLock.Lock()
	defer libLock.Unlock()
	return backend()
}

// backend resolves the current library. Callers hold libLock.
func backend() sys.Library {
	if current != nil {
		return current
	}
	if lib := sys.Registered(); lib != nil {
		current = lib
		return current
	}
	Logger().Info("no native backend registered, using simulated library")
	current = sim.Default()
	return current
}
