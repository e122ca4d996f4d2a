package crust

import "fmt"

// ValidationError reports a single offending parameter and the constraint it
// violated. Handlers surface the message to the caller; no request is built
// when one is returned.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Constraint)
}

// UnknownToolError reports a tool name with no matching endpoint in the
// catalog. Kept distinct from ValidationError so callers can tell a bad
// capability apart from a bad argument.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Name)
}
