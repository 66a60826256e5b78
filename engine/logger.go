package engine

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the engine's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger replaces the engine's logger. Call before any engine use;
// the first Logger call pins the instance. Installing a logger whose
// core enables debug turns per-operation read/write tracing on.
func SetLogger(l *zap.Logger) {
	logger = l
	debug = l != nil && l.Core().Enabled(zap.DebugLevel)
}

// debug gates the per-operation trace lines so that, in the default
// nop configuration, Read and Write pay nothing for them.
var debug = false

func debugf(format string, args ...any) {
	if debug {
		Logger().Sugar().Debugf(format, args...)
	}
}
