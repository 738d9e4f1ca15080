//go:build hdf5 && cgo

package capi

/*
#include <hdf5.h>
*/
import "C"

import (
	"fmt"
	"runtime/cgo"
	"unsafe"

	"github.com/wippyai/hdf5/sys"
)

// Go callback implementations, called from C through the trampolines in
// capi.go. Definitions cannot live in this preamble because of //export.

//export goPropIterate
func goPropIterate(id C.hid_t, name *C.char, data unsafe.Pointer) C.herr_t {
	it, ok := cgo.Handle(uintptr(data)).Value().(*iteration)
	if !ok || it.fn == nil {
		return -1
	}
	return C.herr_t(it.fn(sys.ID(id), C.GoString(name)))
}

//export goErrorWalk
func goErrorWalk(n C.uint, rec *C.H5E_error2_t, data unsafe.Pointer) C.herr_t {
	w, ok := cgo.Handle(uintptr(data)).Value().(*errorWalk)
	if !ok {
		return -1
	}
	if n == 0 {
		w.b.WriteString("HDF5-DIAG: Error detected in HDF5:\n")
	}
	fmt.Fprintf(&w.b, "  #%03d: %s line %d in %s(): %s\n",
		uint(n),
		C.GoString(rec.file_name),
		uint(rec.line),
		C.GoString(rec.func_name),
		C.GoString(rec.desc))
	fmt.Fprintf(&w.b, "    major: %s\n", errorMessage(rec.maj_num))
	fmt.Fprintf(&w.b, "    minor: %s\n", errorMessage(rec.min_num))
	return 0
}

func errorMessage(id C.hid_t) string {
	var buf [128]C.char
	if C.H5Eget_msg(id, nil, &buf[0], C.size_t(len(buf))) < 0 {
		return "(unknown)"
	}
	return C.GoString(&buf[0])
}
