package paperdoll

import "log"

// globalDebug gates warning output for non-fatal oddities (missing registry
// lookups, empty composites). Off by default.
var globalDebug bool

// SetDebug enables or disables debug warnings. When enabled, registry misses
// and empty composites are logged to the standard logger.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

func debugf(format string, args ...any) {
	if globalDebug {
		log.Printf("paperdoll: "+format, args...)
	}
}
