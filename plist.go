package hdf5

import (
	"go.uber.org/zap"

	"github.com/wippyai/hdf5/errors"
	"github.com/wippyai/hdf5/sys"
)

var plistClass = &objectClass{
	name:   "property list",
	goName: "PropertyList",
	types:  []sys.IDType{sys.TypeGenPropList},
}

// PropertyList is an ordered set of named settings that configures how
// files, datasets, links and other objects are created and accessed.
//
// The query methods fail open: a native failure reads as false or as an
// empty result, and is logged at debug level.
type PropertyList struct {
	Object
}

// PropertyListFromID takes ownership of id, which must be a live property
// list identifier. On failure the caller keeps ownership.
func PropertyListFromID(id sys.ID) (*PropertyList, error) {
	return propertyListFromID(Backend(), id)
}

func propertyListFromID(lib sys.Library, id sys.ID) (*PropertyList, error) {
	obj, err := newObject(lib, id, plistClass)
	if err != nil {
		return nil, err
	}
	return &PropertyList{Object: obj}, nil
}

// NewPropertyList creates a property list of the predefined class kind
// with default values.
func NewPropertyList(kind sys.ClassKind) (*PropertyList, error) {
	libLock.Lock()
	defer libLock.Unlock()

	lib := backend()
	cls, err := call(lib, errors.PhaseCreate, "H5P_CLS", func(l sys.Library) sys.ID {
		return l.PredefinedClass(kind)
	})
	if err != nil {
		return nil, err
	}
	return createList(lib, cls)
}

// createList mints a list of class cls and wraps it.
func createList(lib sys.Library, cls sys.ID) (*PropertyList, error) {
	id, err := call(lib, errors.PhaseCreate, "H5Pcreate", func(l sys.Library) sys.ID {
		return l.PCreate(cls)
	})
	if err != nil {
		return nil, err
	}
	return adoptList(lib, id)
}

// adoptList wraps a freshly minted id, releasing it if wrapping fails.
func adoptList(lib sys.Library, id sys.ID) (*PropertyList, error) {
	p, err := propertyListFromID(lib, id)
	if err != nil {
		_ = release(lib, id)
		return nil, err
	}
	return p, nil
}

// Clone returns an independent deep copy. The copy has its own identifier
// and reference count and outlives the original. If the library cannot
// copy the list, Clone returns a list with an invalid identifier; use
// TryClone to see the error.
func (p *PropertyList) Clone() *PropertyList {
	c, err := p.TryClone()
	if err != nil {
		Logger().Debug("clone property list", zap.Error(err))
		return &PropertyList{Object: invalidObject(plistClass)}
	}
	return c
}

// TryClone is Clone that reports failure.
func (p *PropertyList) TryClone() (*PropertyList, error) {
	if p == nil {
		return nil, errors.InvalidIdentifier(plistClass.name, int64(sys.InvalidID), int32(sys.TypeBadID))
	}

	libLock.Lock()
	defer libLock.Unlock()

	lib := p.library()
	id, err := call(lib, errors.PhaseCopy, "H5Pcopy", func(l sys.Library) sys.ID {
		return l.PCopy(p.ID())
	})
	if err != nil {
		return nil, err
	}
	return adoptList(lib, id)
}

// Equal reports whether p and other hold the same class and the same
// property values. Identity is not required; a list equals its clone.
func (p *PropertyList) Equal(other *PropertyList) bool {
	if p == nil || other == nil {
		return false
	}
	ok, err := contentEqual(p.Object, other.Object)
	if err != nil {
		Logger().Debug("compare property lists", zap.Error(err))
		return false
	}
	return ok
}

// Has reports whether the list defines a property called name, including
// properties inherited from parent classes. Empty names and names with NUL
// bytes are never present.
func (p *PropertyList) Has(name string) bool {
	if p == nil {
		return false
	}
	ok, err := hasProperty(p.Object, name)
	if err != nil {
		Logger().Debug("query property", zap.String("name", name), zap.Error(err))
		return false
	}
	return ok
}

// Properties returns the names of every property in the order the library
// enumerates them. It returns nil if enumeration fails.
func (p *PropertyList) Properties() []string {
	if p == nil {
		return nil
	}
	names, err := propertyNames(p.Object)
	if err != nil {
		Logger().Debug("enumerate properties", zap.Error(err))
		return nil
	}
	return names
}

// Len returns the number of properties in the list.
func (p *PropertyList) Len() (int, error) {
	if p == nil {
		return 0, errors.InvalidIdentifier(plistClass.name, int64(sys.InvalidID), int32(sys.TypeBadID))
	}
	return propertyCount(p.Object)
}

// Class returns the class the list was created from. The caller owns the
// returned class and should Close it.
func (p *PropertyList) Class() (*PropertyListClass, error) {
	if p == nil {
		return nil, errors.InvalidIdentifier(plistClass.name, int64(sys.InvalidID), int32(sys.TypeBadID))
	}

	libLock.Lock()
	defer libLock.Unlock()

	lib := p.library()
	id, err := call(lib, errors.PhaseQuery, "H5Pget_class", func(l sys.Library) sys.ID {
		return l.PGetClass(p.ID())
	})
	if err != nil {
		return nil, err
	}
	return adoptClass(lib, id)
}
