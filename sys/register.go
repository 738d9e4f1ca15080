package sys

import "sync"

var (
	registered   Library
	registeredMu sync.RWMutex
)

// Register installs the process-wide native backend. Backends call it
// from init, so importing a backend package for side effects selects it:
//
//	import _ "github.com/wippyai/hdf5/sys/capi"
//
// Registering twice panics, mirroring database/sql drivers.
func Register(lib Library) {
	if lib == nil {
		panic("sys: Register library is nil")
	}
	registeredMu.Lock()
	defer registeredMu.Unlock()
	if registered != nil {
		panic("sys: Register called twice (already have " + registered.Name() + ")")
	}
	registered = lib
}

// Registered returns the backend installed with Register, or nil.
func Registered() Library {
	registeredMu.RLock()
	defer registeredMu.RUnlock()
	return registered
}
