package sim

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var log atomic.Pointer[zap.Logger]

func logger() *zap.Logger {
	if l := log.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetLogger configures the simulated library's logger.
func SetLogger(l *zap.Logger) {
	log.Store(l)
}
