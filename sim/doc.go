// Package sim implements sys.Library in pure Go.
//
// It reproduces the parts of the native library the handle layer depends
// on: type-tagged identifiers with reference counts, the predefined
// property list class hierarchy, property lists with deep copy and content
// equality, callback-driven iteration, and a per-library error stack. It is
// the default backend when no cgo backend is registered and the test double
// for the root package.
//
// Beyond sys.Library it offers hooks that only make sense for a
// simulation:
//
//	lib := sim.New()
//	lib.FailNext("H5Pcopy", 1)         // next H5Pcopy fails
//	lib.Invalidate(id)                 // external close of id
//	lib.SetProperty(id, "k", []byte{}) // mutate a list
//	lib.Live()                         // user-visible identifiers
//	lib.Overlaps()                     // unserialized concurrent calls
//
// Like the native library, a Library is not safe for concurrent use.
package sim
