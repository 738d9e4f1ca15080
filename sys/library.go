package sys

// Library is the native surface the handle layer calls through. Methods
// follow the native return conventions and are not safe for concurrent use:
// callers serialize every call with the process-wide lock.
type Library interface {
	// Name identifies the backend, e.g. "libhdf5 1.14.3" or "sim".
	Name() string

	// PredefinedClass returns the library-owned identifier of a predefined
	// property list class. The caller must not release it.
	PredefinedClass(kind ClassKind) ID

	// PCreate creates a property list of class cls.
	PCreate(cls ID) ID
	// PCopy deep-copies a property list or class into a new identifier.
	PCopy(id ID) ID
	// PEqual compares two property lists or two classes by content.
	PEqual(a, b ID) Tri
	// PExist reports whether the named property exists.
	PExist(id ID, name string) Tri
	// PIterate calls fn for each property of id in library order.
	PIterate(id ID, fn PropFunc) Herr
	// PGetNProps returns the number of properties in a list or class.
	PGetNProps(id ID) (int, Herr)
	// PGetClass returns a new identifier for the class of a property list.
	PGetClass(plist ID) ID
	// PGetClassName returns the name of a property list class.
	PGetClassName(cls ID) (string, Herr)
	// PGetClassParent returns a new identifier for the parent of a class.
	PGetClassParent(cls ID) ID

	// IGetType reports the identifier kind, TypeBadID if unknown.
	IGetType(id ID) IDType
	// IIsValid reports whether id denotes a live user-visible object.
	IIsValid(id ID) Tri
	// IGetRef returns the reference count of id.
	IGetRef(id ID) int
	// IDecRef drops one reference; at zero the object is released.
	// Returns the remaining count or a negative value on failure.
	IDecRef(id ID) int

	// ErrorStack describes the current error stack of the calling thread.
	ErrorStack() string
	// ClearErrors empties the current error stack.
	ClearErrors()
}
