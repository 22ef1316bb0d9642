package cli

import (
	"errors"
	"fmt"
	"strings"
)

// PreflightError reports a command that cannot run in the current
// environment, with guidance on what to do instead.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}

func formatError(err error) string {
	var preflight *PreflightError
	if !errors.As(err, &preflight) {
		return fmt.Sprintf("Error: %v", err)
	}
	lines := []string{fmt.Sprintf("Error: %s", preflight.Message)}
	if preflight.Hint != "" {
		lines = append(lines, fmt.Sprintf("Hint: %s", preflight.Hint))
	}
	if preflight.NextStep != "" {
		lines = append(lines, fmt.Sprintf("Try: %s", preflight.NextStep))
	}
	return strings.Join(lines, "\n")
}
