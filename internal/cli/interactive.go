// Package cli provides helpers for interactive mode detection.
package cli

import "os"

// IsNonInteractive reports whether the TUI must not be started.
func IsNonInteractive() bool {
	if nonInteractive {
		return true
	}
	if _, ok := os.LookupEnv("STATESTYLE_NON_INTERACTIVE"); ok {
		return true
	}
	return !hasTTY()
}

// IsInteractive reports whether the session can drive the preview.
func IsInteractive() bool {
	return !IsNonInteractive()
}
