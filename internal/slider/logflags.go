package slider

import (
	"log"
	"sync/atomic"
)

var traceLogEnabled atomic.Bool

// SetTraceLoggingEnabled toggles tracing of rejected settings and drag lifecycle events.
func SetTraceLoggingEnabled(enabled bool) {
	traceLogEnabled.Store(enabled)
}

// TraceLoggingEnabled reports whether tracing is on, for packages that
// trace alongside the engine.
func TraceLoggingEnabled() bool {
	return traceLogEnabled.Load()
}

func tracef(format string, args ...any) {
	if !TraceLoggingEnabled() {
		return
	}
	log.Printf("slider: "+format, args...)
}
