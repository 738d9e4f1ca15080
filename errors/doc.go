// Package errors provides structured error types for the hdf5 handle layer.
//
// Errors are categorized by Phase (which kind of native primitive was running)
// and Kind (error category). The Error type carries the native primitive name,
// the offending identifier, and the native library's error stack text.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCopy, errors.KindNativeCall).
//		Op("H5Pcopy").
//		ID(int64(id)).
//		Stack(lib.ErrorStack()).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NativeCall(errors.PhaseCreate, "H5Pcreate", stack)
//	err := errors.InvalidIdentifier("property list", id, actualType)
//
// All errors implement the standard error interface and support errors.Is/As.
// The sentinels ErrNativeCall and ErrInvalidIdentifier match by kind:
//
//	if errors.Is(err, errors.ErrNativeCall) { ... }
package errors
