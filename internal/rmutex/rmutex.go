// Package rmutex provides a reentrant mutex keyed by OS thread.
//
// The holder is wired to its OS thread for as long as it holds the lock,
// so the thread id identifies the holder and any state the native library
// keeps per thread (its error stack) stays with the caller. Callbacks that
// the native library makes into Go run on the same thread and can re-lock.
package rmutex

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Mutex is a reentrant mutual exclusion lock. The zero value is unlocked.
// A Mutex must not be copied after first use.
type Mutex struct {
	mu    sync.Mutex
	owner atomic.Int64
	depth int
}

// Lock acquires m, blocking until it is available. A thread that already
// holds m acquires it again immediately.
func (m *Mutex) Lock() {
	runtime.LockOSThread()
	tid := threadID()
	if m.owner.Load() == tid {
		m.depth++
		return
	}
	m.mu.Lock()
	m.owner.Store(tid)
	m.depth = 1
}

// TryLock acquires m without blocking and reports whether it succeeded.
func (m *Mutex) TryLock() bool {
	runtime.LockOSThread()
	tid := threadID()
	if m.owner.Load() == tid {
		m.depth++
		return true
	}
	if !m.mu.TryLock() {
		runtime.UnlockOSThread()
		return false
	}
	m.owner.Store(tid)
	m.depth = 1
	return true
}

// Unlock releases one level of m. It panics if the calling thread does not
// hold m.
func (m *Mutex) Unlock() {
	if m.owner.Load() != threadID() {
		panic("rmutex: unlock of mutex not held by this thread")
	}
	m.depth--
	if m.depth == 0 {
		m.owner.Store(0)
		m.mu.Unlock()
	}
	runtime.UnlockOSThread()
}

// Held reports whether the calling thread holds m.
func (m *Mutex) Held() bool {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	return m.owner.Load() == threadID()
}

// Do runs fn while holding m. The lock is released even if fn panics.
func (m *Mutex) Do(fn func()) {
	m.Lock()
	defer m.Unlock()
	fn()
}
