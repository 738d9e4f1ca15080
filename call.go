package hdf5

import (
	"github.com/wippyai/hdf5/errors"
	"github.com/wippyai/hdf5/sys"
)

// call invokes one native primitive under the library lock. A negative
// result becomes a native-call error carrying the library's error stack,
// and the stack is cleared so no record outlives the call that made it.
// Every native call in this package goes through here.
func call[T sys.Ret](lib sys.Library, phase errors.Phase, op string, fn func(sys.Library) T) (T, error) {
	libLock.Lock()
	defer libLock.Unlock()

	if lib == nil {
		var zero T
		return zero - 1, errors.NotInitialized(phase, "native library")
	}

	ret := fn(lib)
	if ret < 0 {
		stack := lib.ErrorStack()
		lib.ClearErrors()
		return ret, errors.NativeCall(phase, op, stack)
	}
	return ret, nil
}

// idType returns the kind of id, or TypeBadID for the sentinel, for
// non-positive values, and for anything the library does not recognize.
func idType(lib sys.Library, id sys.ID) sys.IDType {
	if id <= 0 {
		return sys.TypeBadID
	}
	typ, err := call(lib, errors.PhaseLookup, "H5Iget_type", func(l sys.Library) sys.IDType {
		return l.IGetType(id)
	})
	if err != nil || !typ.Valid() {
		return sys.TypeBadID
	}
	return typ
}

// isValidID reports whether id denotes a live user-visible object.
func isValidID(lib sys.Library, id sys.ID) bool {
	if id <= 0 {
		return false
	}
	ok, err := call(lib, errors.PhaseLookup, "H5Iis_valid", func(l sys.Library) sys.Tri {
		return l.IIsValid(id)
	})
	return err == nil && ok > 0
}

// refCount returns the native reference count of id, 0 if unavailable.
func refCount(lib sys.Library, id sys.ID) int {
	if id <= 0 {
		return 0
	}
	n, err := call(lib, errors.PhaseLookup, "H5Iget_ref", func(l sys.Library) int {
		return l.IGetRef(id)
	})
	if err != nil {
		return 0
	}
	return n
}
