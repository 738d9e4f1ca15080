package hdf5

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	nopLogger = zap.NewNop()
	logger    atomic.Pointer[zap.Logger]
)

// Logger returns the logger used for fail-open queries and for
// identifiers released by the garbage collector. It is a no-op logger
// until SetLogger or Configure installs one.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger replaces the package logger. It is safe to call while
// handles are being released in the background; nil restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
