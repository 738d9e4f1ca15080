package sys

import "fmt"

// ID is a native identifier (hid_t). It is opaque outside the current
// process and stops meaning anything once released.
type ID int64

// InvalidID is the sentinel for "no identifier".
const InvalidID ID = -1

// Herr is the native status return: negative on failure.
type Herr int32

// Tri is the native three-valued return: positive true, zero false,
// negative failure.
type Tri int32

// Ret is the set of raw return types the call wrapper understands.
// Every one of them signals failure with a negative value.
type Ret interface {
	~int | ~int32 | ~int64
}

// PropFunc is called once per property during PIterate. A zero return
// continues iteration, a positive return stops it, a negative return
// aborts it with failure.
type PropFunc func(id ID, name string) Herr

// IDType mirrors the native identifier kind tags (H5I_type_t).
type IDType int32

const (
	TypeBadID        IDType = -1
	TypeUninit       IDType = 0
	TypeFile         IDType = 1
	TypeGroup        IDType = 2
	TypeDatatype     IDType = 3
	TypeDataspace    IDType = 4
	TypeDataset      IDType = 5
	TypeMap          IDType = 6
	TypeAttr         IDType = 7
	TypeVFL          IDType = 8
	TypeVOL          IDType = 9
	TypeGenPropClass IDType = 10
	TypeGenPropList  IDType = 11
	TypeErrorClass   IDType = 12
	TypeErrorMsg     IDType = 13
	TypeErrorStack   IDType = 14
	TypeSpaceSelIter IDType = 15
	TypeEventSet     IDType = 16
	NumTypes         IDType = 17
)

var idTypeNames = [...]string{
	TypeUninit:       "uninit",
	TypeFile:         "file",
	TypeGroup:        "group",
	TypeDatatype:     "datatype",
	TypeDataspace:    "dataspace",
	TypeDataset:      "dataset",
	TypeMap:          "map",
	TypeAttr:         "attribute",
	TypeVFL:          "vfl",
	TypeVOL:          "vol",
	TypeGenPropClass: "property list class",
	TypeGenPropList:  "property list",
	TypeErrorClass:   "error class",
	TypeErrorMsg:     "error message",
	TypeErrorStack:   "error stack",
	TypeSpaceSelIter: "selection iterator",
	TypeEventSet:     "event set",
}

// Valid reports whether t is a real library type, not the bad-id marker.
func (t IDType) Valid() bool {
	return t > TypeBadID && t < NumTypes
}

func (t IDType) String() string {
	if t >= 0 && int(t) < len(idTypeNames) {
		return idTypeNames[t]
	}
	if t == TypeBadID {
		return "bad id"
	}
	return fmt.Sprintf("IDType(%d)", int32(t))
}

// ClassKind names the predefined property list classes.
type ClassKind uint8

const (
	ClassUnknown ClassKind = iota
	ClassRoot
	ClassObjectCreate
	ClassFileCreate
	ClassFileAccess
	ClassDatasetCreate
	ClassDatasetAccess
	ClassDatasetXfer
	ClassFileMount
	ClassGroupCreate
	ClassGroupAccess
	ClassDatatypeCreate
	ClassDatatypeAccess
	ClassStringCreate
	ClassAttributeCreate
	ClassAttributeAccess
	ClassObjectCopy
	ClassLinkCreate
	ClassLinkAccess
	numClassKinds
)

// Class names as the native library reports them from H5Pget_class_name.
var classNames = [...]string{
	ClassUnknown:         "",
	ClassRoot:            "root",
	ClassObjectCreate:    "object create",
	ClassFileCreate:      "file create",
	ClassFileAccess:      "file access",
	ClassDatasetCreate:   "dataset create",
	ClassDatasetAccess:   "dataset access",
	ClassDatasetXfer:     "data xfer",
	ClassFileMount:       "file mount",
	ClassGroupCreate:     "group create",
	ClassGroupAccess:     "group access",
	ClassDatatypeCreate:  "datatype create",
	ClassDatatypeAccess:  "datatype access",
	ClassStringCreate:    "string create",
	ClassAttributeCreate: "attribute create",
	ClassAttributeAccess: "attribute access",
	ClassObjectCopy:      "object copy",
	ClassLinkCreate:      "link create",
	ClassLinkAccess:      "link access",
}

func (k ClassKind) String() string {
	if int(k) < len(classNames) && k != ClassUnknown {
		return classNames[k]
	}
	return "unknown"
}

// ClassKinds lists every predefined class in declaration order.
func ClassKinds() []ClassKind {
	kinds := make([]ClassKind, 0, numClassKinds-1)
	for k := ClassRoot; k < numClassKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Names taken from the H5P_* macros where they differ from the class name.
var classAliases = map[string]ClassKind{
	"dataset xfer": ClassDatasetXfer,
}

// ClassKindByName resolves a native class name ("file access"), a macro
// name ("dataset xfer") or a dashed form of either ("file-access").
// Unknown names return ClassUnknown.
func ClassKindByName(name string) ClassKind {
	for alias, k := range classAliases {
		if name == alias || name == dashed(alias) {
			return k
		}
	}
	for k := ClassRoot; k < numClassKinds; k++ {
		n := classNames[k]
		if name == n || name == dashed(n) {
			return k
		}
	}
	return ClassUnknown
}

func dashed(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c == ' ' {
			b[i] = '-'
		}
	}
	return string(b)
}
