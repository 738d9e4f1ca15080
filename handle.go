package hdf5

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/wippyai/hdf5/errors"
	"github.com/wippyai/hdf5/sys"
)

// Handle exclusively owns one native identifier. It holds a single
// reference and gives it back exactly once, on Close or, when leak release
// is enabled, when the Handle becomes unreachable. A Handle is never
// copied; sharing an object means sharing the *Handle.
//
// Handle is not safe to Close concurrently with other use of the same
// object.
type Handle struct {
	lib     sys.Library
	id      sys.ID
	cleanup runtime.Cleanup
	tracked bool
}

// leaked is what a Handle's cleanup needs to release its identifier.
// It must not point back at the Handle.
type leaked struct {
	lib sys.Library
	id  sys.ID
}

func invalidHandle() *Handle {
	return &Handle{id: sys.InvalidID}
}

// handleFromID takes ownership of id. It fails without taking ownership
// if id is the sentinel, is not a live identifier, or its kind is not one
// of types. Callers hold libLock.
func handleFromID(lib sys.Library, id sys.ID, object string, types []sys.IDType) (*Handle, error) {
	if lib == nil {
		return nil, errors.NotInitialized(errors.PhaseLookup, "native library")
	}
	typ := idType(lib, id)
	if !acceptsType(types, typ) {
		return nil, errors.InvalidIdentifier(object, int64(id), int32(typ))
	}
	if !isValidID(lib, id) {
		return nil, errors.InvalidIdentifier(object, int64(id), int32(typ))
	}

	h := &Handle{lib: lib, id: id}
	if releaseLeaked {
		h.cleanup = runtime.AddCleanup(h, releaseLeakedID, leaked{lib: lib, id: id})
		h.tracked = true
	}
	return h, nil
}

func acceptsType(types []sys.IDType, typ sys.IDType) bool {
	if !typ.Valid() {
		return false
	}
	for _, t := range types {
		if t == typ {
			return true
		}
	}
	return false
}

// ID returns the identifier, or sys.InvalidID after Close.
func (h *Handle) ID() sys.ID {
	if h == nil {
		return sys.InvalidID
	}
	return h.id
}

// IsValid reports whether the identifier is still live in the library.
// An identifier may become invalid without Close, for example when the
// library closes the file that owns it.
func (h *Handle) IsValid() bool {
	if h == nil || h.id == sys.InvalidID {
		return false
	}
	return isValidID(h.lib, h.id)
}

// RefCount returns the native reference count, or 0 if the handle is
// invalid.
func (h *Handle) RefCount() int {
	if h == nil || h.id == sys.InvalidID {
		return 0
	}
	return refCount(h.lib, h.id)
}

// Close releases the identifier. It is idempotent, and an identifier that
// the library already invalidated is not released again. The returned
// error reports a failed release; the handle is closed either way.
func (h *Handle) Close() error {
	if h == nil {
		return nil
	}

	libLock.Lock()
	defer libLock.Unlock()

	if h.id == sys.InvalidID {
		return nil
	}
	id := h.id
	h.id = sys.InvalidID
	if h.tracked {
		h.cleanup.Stop()
		h.tracked = false
	}
	return release(h.lib, id)
}

// release drops one reference to id if it is still valid.
func release(lib sys.Library, id sys.ID) error {
	if !isValidID(lib, id) {
		return nil
	}
	_, err := call(lib, errors.PhaseRelease, "H5Idec_ref", func(l sys.Library) int {
		return l.IDecRef(id)
	})
	if err != nil {
		Logger().Warn("release identifier", zap.Int64("id", int64(id)), zap.Error(err))
	}
	return err
}

func releaseLeakedID(l leaked) {
	libLock.Lock()
	defer libLock.Unlock()

	Logger().Warn("releasing identifier of an object that was never closed",
		zap.Int64("id", int64(l.id)),
		zap.String("library", l.lib.Name()))
	_ = release(l.lib, l.id)
}
