package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTransition is returned when a requested target is not an edge of the current node.
var ErrInvalidTransition = errors.New("invalid transition")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrNotFound is returned by key-value stores when a key does not exist.
var ErrNotFound = errors.New("key not found")

// InvalidTransitionError describes a rejected Advance. It unwraps to ErrInvalidTransition.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %q is not an edge of %q", e.To, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ConfigurationError aggregates every integrity issue found in a graph definition
// or in a stored session checked against it.
type ConfigurationError struct {
	Issues []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Issues) == 1 {
		return "configuration error: " + e.Issues[0]
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "configuration error: %d issues:\n", len(e.Issues))
	for i, issue := range e.Issues {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, issue)
	}
	return sb.String()
}

// IsConfigurationError reports whether err is (or wraps) a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
