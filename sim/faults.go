package sim

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/hdf5/sys"
)

// FailNext makes the next n calls of the named native primitive fail,
// e.g. FailNext("H5Pcopy", 1). Each injected failure pushes a record on
// the error stack like a real one.
func (l *Library) FailNext(op string, n int) {
	l.faultsMu.Lock()
	defer l.faultsMu.Unlock()
	if n <= 0 {
		delete(l.faults, op)
		return
	}
	l.faults[op] = n
}

// ResetFaults cancels every pending injected failure.
func (l *Library) ResetFaults() {
	l.faultsMu.Lock()
	defer l.faultsMu.Unlock()
	clear(l.faults)
}

func (l *Library) fault(op string) bool {
	l.faultsMu.Lock()
	n := l.faults[op]
	if n > 0 {
		if n == 1 {
			delete(l.faults, op)
		} else {
			l.faults[op] = n - 1
		}
	}
	l.faultsMu.Unlock()

	if n == 0 {
		return false
	}
	logger().Debug("injected failure", zap.String("op", op))
	l.push(op, "Internal error", "Injected failure", "injected failure")
	return true
}

// Invalidate releases id regardless of its reference count, the way the
// native library drops members of a container that was closed.
func (l *Library) Invalidate(id sys.ID) bool {
	_, ok := l.reg.Remove(id)
	return ok
}

// SetProperty sets a property on a list, inserting it if absent. It stands
// in for the typed setters of the native library, which sit outside the
// handle layer. An empty name is accepted so tests can model libraries that
// yield one during iteration.
func (l *Library) SetProperty(id sys.ID, name string, value []byte) error {
	v, ok := l.reg.GetTyped(id, sys.TypeGenPropList)
	if !ok {
		return fmt.Errorf("sim: %d is not a property list", id)
	}
	v.(*plist).set(name, value)
	return nil
}

// Live returns the number of user-visible identifiers.
func (l *Library) Live() int {
	return l.reg.Len(true)
}

// Overlaps returns how many library calls started while another was
// still running outside an iteration callback.
func (l *Library) Overlaps() int64 {
	return l.overlaps.Load()
}
