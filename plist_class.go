package hdf5

import (
	"go.uber.org/zap"

	"github.com/wippyai/hdf5/errors"
	"github.com/wippyai/hdf5/sys"
)

var plistClassClass = &objectClass{
	name:   "property list class",
	goName: "PropertyListClass",
	types:  []sys.IDType{sys.TypeGenPropClass},
}

// PropertyListClass is a property list class: the template that fixes
// which properties a list has and their defaults. Classes form a tree
// rooted at the "root" class.
type PropertyListClass struct {
	Object
}

// PropertyListClassFromID takes ownership of id, which must be a live
// property list class identifier.
func PropertyListClassFromID(id sys.ID) (*PropertyListClass, error) {
	obj, err := newObject(Backend(), id, plistClassClass)
	if err != nil {
		return nil, err
	}
	return &PropertyListClass{Object: obj}, nil
}

// ClassOf returns an owned copy of the predefined class kind. Predefined
// classes belong to the library, so the copy is what callers hold.
func ClassOf(kind sys.ClassKind) (*PropertyListClass, error) {
	libLock.Lock()
	defer libLock.Unlock()

	lib := backend()
	cls, err := call(lib, errors.PhaseLookup, "H5P_CLS", func(l sys.Library) sys.ID {
		return l.PredefinedClass(kind)
	})
	if err != nil {
		return nil, err
	}
	id, err := call(lib, errors.PhaseCopy, "H5Pcopy", func(l sys.Library) sys.ID {
		return l.PCopy(cls)
	})
	if err != nil {
		return nil, err
	}
	return adoptClass(lib, id)
}

func adoptClass(lib sys.Library, id sys.ID) (*PropertyListClass, error) {
	obj, err := newObject(lib, id, plistClassClass)
	if err != nil {
		_ = release(lib, id)
		return nil, err
	}
	return &PropertyListClass{Object: obj}, nil
}

// Name returns the class name the library reports, such as "file access".
// It returns "" if the name is unavailable.
func (c *PropertyListClass) Name() string {
	if c == nil {
		return ""
	}
	var name string
	_, err := call(c.library(), errors.PhaseQuery, "H5Pget_class_name", func(l sys.Library) sys.Herr {
		var ret sys.Herr
		name, ret = l.PGetClassName(c.ID())
		return ret
	})
	if err != nil {
		Logger().Debug("query class name", zap.Error(err))
		return ""
	}
	return name
}

// Kind maps the class to its predefined kind, or sys.ClassUnknown for
// user-defined classes.
func (c *PropertyListClass) Kind() sys.ClassKind {
	return sys.ClassKindByName(c.Name())
}

// Parent returns the parent class. The root class has none and returns an
// error.
func (c *PropertyListClass) Parent() (*PropertyListClass, error) {
	if c == nil {
		return nil, errors.InvalidIdentifier(plistClassClass.name, int64(sys.InvalidID), int32(sys.TypeBadID))
	}

	libLock.Lock()
	defer libLock.Unlock()

	lib := c.library()
	id, err := call(lib, errors.PhaseQuery, "H5Pget_class_parent", func(l sys.Library) sys.ID {
		return l.PGetClassParent(c.ID())
	})
	if err != nil {
		return nil, err
	}
	return adoptClass(lib, id)
}

// Create returns a new property list of this class with default values.
func (c *PropertyListClass) Create() (*PropertyList, error) {
	if c == nil {
		return nil, errors.InvalidIdentifier(plistClassClass.name, int64(sys.InvalidID), int32(sys.TypeBadID))
	}

	libLock.Lock()
	defer libLock.Unlock()
	return createList(c.library(), c.ID())
}

// Equal reports whether both values denote the same class.
func (c *PropertyListClass) Equal(other *PropertyListClass) bool {
	if c == nil || other == nil {
		return false
	}
	ok, err := contentEqual(c.Object, other.Object)
	if err != nil {
		Logger().Debug("compare classes", zap.Error(err))
		return false
	}
	return ok
}

// Has reports whether lists of this class carry a property called name.
func (c *PropertyListClass) Has(name string) bool {
	if c == nil {
		return false
	}
	ok, err := hasProperty(c.Object, name)
	if err != nil {
		Logger().Debug("query class property", zap.String("name", name), zap.Error(err))
		return false
	}
	return ok
}

// Properties returns the names of the properties lists of this class
// start with, including inherited ones.
func (c *PropertyListClass) Properties() []string {
	if c == nil {
		return nil
	}
	names, err := propertyNames(c.Object)
	if err != nil {
		Logger().Debug("enumerate class properties", zap.Error(err))
		return nil
	}
	return names
}

// Len returns the number of properties in the class.
func (c *PropertyListClass) Len() (int, error) {
	if c == nil {
		return 0, errors.InvalidIdentifier(plistClassClass.name, int64(sys.InvalidID), int32(sys.TypeBadID))
	}
	return propertyCount(c.Object)
}
