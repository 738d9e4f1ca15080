// Package hdf5 is a safe handle layer over the native HDF5 library.
//
// HDF5 refers to every object it manages (files, datasets, property lists,
// classes) through integer identifiers with manual reference counting, and
// its default build is not thread-safe. This package wraps identifiers in
// owning Go values and funnels every native call through one process-wide
// reentrant lock.
//
// # Architecture Overview
//
//	hdf5/                Handle, Object, PropertyList and the call wrapper
//	├── sys/             Native surface: identifier types and the Library table
//	│   └── capi/        cgo backend over libhdf5 (build tag "hdf5")
//	├── sim/             In-process simulated library for tests and tooling
//	├── errors/          Structured error types
//	├── internal/rmutex/ Reentrant thread-keyed mutex
//	├── internal/registry/ Identifier registry used by sim
//	└── cmd/h5plist/     Property list inspector
//
// # Ownership
//
// Each Handle holds exactly one reference to its identifier and releases it
// once, on Close. Cloning a property list makes a new native object with its
// own identifier; it never shares the original's reference. If a value is
// dropped without Close, a runtime cleanup releases the identifier and logs
// a warning; see Options.ReleaseLeaked.
//
// # Failure
//
// Native calls that signal failure become *errors.Error values of kind
// errors.KindNativeCall, carrying the library's error stack. The property
// list queries (Equal, Has, Properties, Clone) fail open instead: a failure
// reads as false, empty, or an invalid list.
//
// # Quick Start
//
//	import _ "github.com/wippyai/hdf5/sys/capi" // register the native backend
//
//	fapl, err := hdf5.NewPropertyList(sys.ClassFileAccess)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer fapl.Close()
//
//	clone := fapl.Clone()
//	defer clone.Close()
//	fmt.Println(fapl.Equal(clone), fapl.Has("sieve_buf_size"))
//
// Without a registered backend the package runs against the simulated
// library from package sim.
package hdf5
