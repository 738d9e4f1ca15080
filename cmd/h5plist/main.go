// Command h5plist inspects HDF5 property lists and their classes.
//
// Build with -tags hdf5 to run against libhdf5; otherwise it uses the
// simulated library.
package main

import (
	_ "github.com/wippyai/hdf5/sys/capi"
)

func main() {
	execute()
}
