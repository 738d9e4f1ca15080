//go:build hdf5 && cgo

package capi

/*
#cgo pkg-config: hdf5
#include <stdlib.h>
#include <stdint.h>
#include <hdf5.h>

// Implemented in callbacks.go
extern herr_t goPropIterate(hid_t id, char *name, void *data);
extern herr_t goErrorWalk(unsigned n, H5E_error2_t *err, void *data);

enum {
	KIND_ROOT = 1,
	KIND_OBJECT_CREATE,
	KIND_FILE_CREATE,
	KIND_FILE_ACCESS,
	KIND_DATASET_CREATE,
	KIND_DATASET_ACCESS,
	KIND_DATASET_XFER,
	KIND_FILE_MOUNT,
	KIND_GROUP_CREATE,
	KIND_GROUP_ACCESS,
	KIND_DATATYPE_CREATE,
	KIND_DATATYPE_ACCESS,
	KIND_STRING_CREATE,
	KIND_ATTRIBUTE_CREATE,
	KIND_ATTRIBUTE_ACCESS,
	KIND_OBJECT_COPY,
	KIND_LINK_CREATE,
	KIND_LINK_ACCESS
};

// The H5P_* class macros call H5open, so they cannot be read from Go.
static hid_t h5p_class(int kind) {
	switch (kind) {
	case KIND_ROOT:             return H5P_ROOT;
	case KIND_OBJECT_CREATE:    return H5P_OBJECT_CREATE;
	case KIND_FILE_CREATE:      return H5P_FILE_CREATE;
	case KIND_FILE_ACCESS:      return H5P_FILE_ACCESS;
	case KIND_DATASET_CREATE:   return H5P_DATASET_CREATE;
	case KIND_DATASET_ACCESS:   return H5P_DATASET_ACCESS;
	case KIND_DATASET_XFER:     return H5P_DATASET_XFER;
	case KIND_FILE_MOUNT:       return H5P_FILE_MOUNT;
	case KIND_GROUP_CREATE:     return H5P_GROUP_CREATE;
	case KIND_GROUP_ACCESS:     return H5P_GROUP_ACCESS;
	case KIND_DATATYPE_CREATE:  return H5P_DATATYPE_CREATE;
	case KIND_DATATYPE_ACCESS:  return H5P_DATATYPE_ACCESS;
	case KIND_STRING_CREATE:    return H5P_STRING_CREATE;
	case KIND_ATTRIBUTE_CREATE: return H5P_ATTRIBUTE_CREATE;
	case KIND_ATTRIBUTE_ACCESS: return H5P_ATTRIBUTE_ACCESS;
	case KIND_OBJECT_COPY:      return H5P_OBJECT_COPY;
	case KIND_LINK_CREATE:      return H5P_LINK_CREATE;
	case KIND_LINK_ACCESS:      return H5P_LINK_ACCESS;
	}
	return H5I_INVALID_HID;
}

static herr_t prop_iterate_cb(hid_t id, const char *name, void *data) {
	return goPropIterate(id, (char *)name, data);
}

static int h5p_iterate(hid_t id, uintptr_t handle) {
	return H5Piterate(id, NULL, prop_iterate_cb, (void *)handle);
}

static herr_t error_walk_cb(unsigned n, const H5E_error2_t *err, void *data) {
	return goErrorWalk(n, (H5E_error2_t *)err, data);
}

static herr_t h5e_walk(uintptr_t handle) {
	return H5Ewalk2(H5E_DEFAULT, H5E_WALK_DOWNWARD, error_walk_cb, (void *)handle);
}

static herr_t h5e_clear(void) {
	return H5Eclear2(H5E_DEFAULT);
}

static herr_t h5e_silence(void) {
	return H5Eset_auto2(H5E_DEFAULT, NULL, NULL);
}
*/
import "C"

import (
	"fmt"
	"runtime/cgo"
	"strings"
	"unsafe"

	"github.com/wippyai/hdf5/sys"
)

var classCodes = map[sys.ClassKind]C.int{
	sys.ClassRoot:            C.KIND_ROOT,
	sys.ClassObjectCreate:    C.KIND_OBJECT_CREATE,
	sys.ClassFileCreate:      C.KIND_FILE_CREATE,
	sys.ClassFileAccess:      C.KIND_FILE_ACCESS,
	sys.ClassDatasetCreate:   C.KIND_DATASET_CREATE,
	sys.ClassDatasetAccess:   C.KIND_DATASET_ACCESS,
	sys.ClassDatasetXfer:     C.KIND_DATASET_XFER,
	sys.ClassFileMount:       C.KIND_FILE_MOUNT,
	sys.ClassGroupCreate:     C.KIND_GROUP_CREATE,
	sys.ClassGroupAccess:     C.KIND_GROUP_ACCESS,
	sys.ClassDatatypeCreate:  C.KIND_DATATYPE_CREATE,
	sys.ClassDatatypeAccess:  C.KIND_DATATYPE_ACCESS,
	sys.ClassStringCreate:    C.KIND_STRING_CREATE,
	sys.ClassAttributeCreate: C.KIND_ATTRIBUTE_CREATE,
	sys.ClassAttributeAccess: C.KIND_ATTRIBUTE_ACCESS,
	sys.ClassObjectCopy:      C.KIND_OBJECT_COPY,
	sys.ClassLinkCreate:      C.KIND_LINK_CREATE,
	sys.ClassLinkAccess:      C.KIND_LINK_ACCESS,
}

// Library is the libhdf5 backend. Its methods must be called with the hdf5
// package's library lock held.
type Library struct {
	version string
}

func init() {
	C.h5e_silence()
	sys.Register(New())
}

// New returns a backend bound to the linked libhdf5.
func New() *Library {
	var major, minor, release C.uint
	C.H5get_libversion(&major, &minor, &release)
	return &Library{version: fmt.Sprintf("%d.%d.%d", major, minor, release)}
}

// Name implements sys.Library.
func (l *Library) Name() string { return "libhdf5 " + l.version }

// Version returns the linked library version, e.g. "1.14.3".
func (l *Library) Version() string { return l.version }

// PredefinedClass implements sys.Library.
func (l *Library) PredefinedClass(kind sys.ClassKind) sys.ID {
	code, ok := classCodes[kind]
	if !ok {
		return sys.InvalidID
	}
	return sys.ID(C.h5p_class(code))
}

// PCreate implements sys.Library.
func (l *Library) PCreate(cls sys.ID) sys.ID {
	return sys.ID(C.H5Pcreate(C.hid_t(cls)))
}

// PCopy implements sys.Library.
func (l *Library) PCopy(id sys.ID) sys.ID {
	return sys.ID(C.H5Pcopy(C.hid_t(id)))
}

// PEqual implements sys.Library.
func (l *Library) PEqual(a, b sys.ID) sys.Tri {
	return sys.Tri(C.H5Pequal(C.hid_t(a), C.hid_t(b)))
}

// PExist implements sys.Library.
func (l *Library) PExist(id sys.ID, name string) sys.Tri {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	return sys.Tri(C.H5Pexist(C.hid_t(id), cs))
}

// iteration carries a PIterate callback through the native library.
type iteration struct {
	fn sys.PropFunc
}

// PIterate implements sys.Library.
func (l *Library) PIterate(id sys.ID, fn sys.PropFunc) sys.Herr {
	h := cgo.NewHandle(&iteration{fn: fn})
	defer h.Delete()
	return sys.Herr(C.h5p_iterate(C.hid_t(id), C.uintptr_t(h)))
}

// PGetNProps implements sys.Library.
func (l *Library) PGetNProps(id sys.ID) (int, sys.Herr) {
	var n C.size_t
	ret := C.H5Pget_nprops(C.hid_t(id), &n)
	return int(n), sys.Herr(ret)
}

// PGetClass implements sys.Library.
func (l *Library) PGetClass(plist sys.ID) sys.ID {
	return sys.ID(C.H5Pget_class(C.hid_t(plist)))
}

// PGetClassName implements sys.Library.
func (l *Library) PGetClassName(cls sys.ID) (string, sys.Herr) {
	cs := C.H5Pget_class_name(C.hid_t(cls))
	if cs == nil {
		return "", -1
	}
	defer C.H5free_memory(unsafe.Pointer(cs))
	return C.GoString(cs), 0
}

// PGetClassParent implements sys.Library.
func (l *Library) PGetClassParent(cls sys.ID) sys.ID {
	return sys.ID(C.H5Pget_class_parent(C.hid_t(cls)))
}

// IGetType implements sys.Library.
func (l *Library) IGetType(id sys.ID) sys.IDType {
	return sys.IDType(C.H5Iget_type(C.hid_t(id)))
}

// IIsValid implements sys.Library.
func (l *Library) IIsValid(id sys.ID) sys.Tri {
	return sys.Tri(C.H5Iis_valid(C.hid_t(id)))
}

// IGetRef implements sys.Library.
func (l *Library) IGetRef(id sys.ID) int {
	return int(C.H5Iget_ref(C.hid_t(id)))
}

// IDecRef implements sys.Library.
func (l *Library) IDecRef(id sys.ID) int {
	return int(C.H5Idec_ref(C.hid_t(id)))
}

// errorWalk collects the records of the default error stack.
type errorWalk struct {
	b strings.Builder
}

// ErrorStack implements sys.Library. The calling thread must be the one
// that made the failing call; the native error stack is per thread.
func (l *Library) ErrorStack() string {
	w := &errorWalk{}
	h := cgo.NewHandle(w)
	defer h.Delete()
	if C.h5e_walk(C.uintptr_t(h)) < 0 {
		return ""
	}
	return w.b.String()
}

// ClearErrors implements sys.Library.
func (l *Library) ClearErrors() {
	C.h5e_clear()
}

var _ sys.Library = (*Library)(nil)
