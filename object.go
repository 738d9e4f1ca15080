package hdf5

import (
	"fmt"
	"strings"

	"github.com/wippyai/hdf5/errors"
	"github.com/wippyai/hdf5/sys"
)

// objectClass describes one wrapper kind: its display name and the
// identifier kinds it accepts.
type objectClass struct {
	name   string
	goName string
	types  []sys.IDType
}

func (c *objectClass) accepts(typ sys.IDType) bool {
	return acceptsType(c.types, typ)
}

// Object is the behavior shared by every wrapper kind. Wrappers embed it
// and add their own operations.
type Object struct {
	handle *Handle
	class  *objectClass
}

// newObject wraps id, taking ownership only on success.
func newObject(lib sys.Library, id sys.ID, class *objectClass) (Object, error) {
	libLock.Lock()
	defer libLock.Unlock()

	h, err := handleFromID(lib, id, class.name, class.types)
	if err != nil {
		return Object{}, err
	}
	return Object{handle: h, class: class}, nil
}

func invalidObject(class *objectClass) Object {
	return Object{handle: invalidHandle(), class: class}
}

// Handle returns the owning handle.
func (o Object) Handle() *Handle { return o.handle }

// ID returns the native identifier, or sys.InvalidID.
func (o Object) ID() sys.ID { return o.handle.ID() }

// IsValid reports whether the identifier is live.
func (o Object) IsValid() bool { return o.handle.IsValid() }

// RefCount returns the native reference count.
func (o Object) RefCount() int { return o.handle.RefCount() }

// Close releases the identifier. See Handle.Close.
func (o Object) Close() error { return o.handle.Close() }

// IDType returns the kind the library reports for the identifier, or
// sys.TypeBadID.
func (o Object) IDType() sys.IDType {
	if o.handle == nil {
		return sys.TypeBadID
	}
	return idType(o.handle.lib, o.handle.id)
}

func (o Object) library() sys.Library {
	if o.handle == nil {
		return nil
	}
	return o.handle.lib
}

func (o Object) className() string {
	if o.class == nil {
		return "object"
	}
	return o.class.name
}

// String returns "<HDF5 property list #42>", or
// "<HDF5 property list: invalid id>" once the identifier is gone.
func (o Object) String() string {
	if !o.IsValid() {
		return fmt.Sprintf("<HDF5 %s: invalid id>", o.className())
	}
	return fmt.Sprintf("<HDF5 %s #%d>", o.className(), o.ID())
}

// GoString implements fmt.GoStringer for %#v.
func (o Object) GoString() string {
	goName := "Object"
	if o.class != nil {
		goName = o.class.goName
	}
	return fmt.Sprintf("hdf5.%s{id: %d, type: %q, valid: %t}", goName, o.ID(), o.IDType(), o.IsValid())
}

// checkName rejects names the library cannot receive.
func checkName(phase errors.Phase, name string) error {
	if name == "" {
		return errors.InvalidName(phase, name, "empty")
	}
	if strings.IndexByte(name, 0) >= 0 {
		return errors.InvalidName(phase, name, "contains NUL")
	}
	return nil
}

// The helpers below serve both property lists and property list classes,
// which the library queries through the same primitives.

func hasProperty(o Object, name string) (bool, error) {
	if err := checkName(errors.PhaseQuery, name); err != nil {
		return false, err
	}
	ret, err := call(o.library(), errors.PhaseQuery, "H5Pexist", func(l sys.Library) sys.Tri {
		return l.PExist(o.ID(), name)
	})
	if err != nil {
		return false, err
	}
	return ret > 0, nil
}

func propertyNames(o Object) ([]string, error) {
	var names []string
	seen := make(map[string]struct{})
	_, err := call(o.library(), errors.PhaseIterate, "H5Piterate", func(l sys.Library) sys.Herr {
		return l.PIterate(o.ID(), func(_ sys.ID, name string) sys.Herr {
			if name == "" {
				return 0
			}
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
			return 0
		})
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func propertyCount(o Object) (int, error) {
	var n int
	_, err := call(o.library(), errors.PhaseQuery, "H5Pget_nprops", func(l sys.Library) sys.Herr {
		var ret sys.Herr
		n, ret = l.PGetNProps(o.ID())
		return ret
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func contentEqual(a, b Object) (bool, error) {
	if a.library() != b.library() {
		return false, nil
	}
	ret, err := call(a.library(), errors.PhaseCompare, "H5Pequal", func(l sys.Library) sys.Tri {
		return l.PEqual(a.ID(), b.ID())
	})
	if err != nil {
		return false, err
	}
	return ret > 0, nil
}
