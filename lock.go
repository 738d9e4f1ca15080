package hdf5

import (
	"github.com/wippyai/hdf5/internal/rmutex"
)

// libLock serializes every call into the native library. It is reentrant,
// so an operation may call another operation while holding it.
var libLock rmutex.Mutex

// Sync runs fn while holding the process-wide library lock. Operations in
// this package take the lock themselves; Sync is for callers that need
// several of them to run without other threads' calls interleaving.
func Sync(fn func()) {
	libLock.Do(fn)
}

// SyncValue is Sync for functions that return a value.
func SyncValue[T any](fn func() T) T {
	libLock.Lock()
	defer libLock.Unlock()
	return fn()
}
