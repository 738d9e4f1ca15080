// Package capi binds the handle layer to libhdf5 through cgo.
//
// The binding is only compiled with the hdf5 build tag and cgo enabled:
//
//	go build -tags hdf5 ./...
//
// libhdf5 is located with pkg-config. Importing the package registers the
// backend with sys.Register:
//
//	import _ "github.com/wippyai/hdf5/sys/capi"
//
// Automatic error-stack printing is switched off at init; failures are
// reported through the error values of the hdf5 package instead.
//
// Without the build tag the package is empty and the hdf5 package falls
// back to the simulated library.
package capi
