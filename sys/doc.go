// Package sys describes the native HDF5 surface used by the handle layer.
//
// It holds the identifier type, the sentinel, the identifier kind tags,
// the native return conventions, and the Library interface that concrete
// backends implement. Nothing here takes locks on behalf of the caller;
// the root hdf5 package serializes every call.
//
// Two backends exist:
//
//	sys/capi   cgo binding to libhdf5 (build with -tags hdf5)
//	sim        pure-Go implementation of the identifier semantics
//
// A backend becomes the process default by calling Register, normally from
// its init function.
package sys
