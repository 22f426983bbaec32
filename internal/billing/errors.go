package billing

import "fmt"

// ConfigurationError indicates a missing rate table entry for a
// floor/bed-type pair. Bills can never be generated against an
// unconfigured combination.
type ConfigurationError struct {
	Floor   Floor
	BedType BedType
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("no rate configured for floor %q bed type %q", e.Floor, e.BedType)
}

// ValidationError indicates an input that violates a domain rule
// (negative amounts, malformed dates, leave date before move-in date).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
