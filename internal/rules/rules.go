// Package rules implements the per-field constraint checkers the catalog
// engine compiles schemas into. Each checker validates one lexical value;
// presence of required fields is the caller's concern.
package rules

// Checker validates a single field value against one constraint.
type Checker interface {
	// Name returns the constraint kind name used in messages.
	Name() string
	// Validate checks the value and returns a descriptive error on failure.
	Validate(value string) error
}
