package errors

import (
	"errors"
	"fmt"
)

// Load failures abort catalog construction. Callers distinguish them from
// data violations with errors.Is.
var (
	// ErrDuplicateKey indicates two raw entries share a primary key value.
	ErrDuplicateKey = errors.New("duplicate primary key")
	// ErrMissingKey indicates a raw entry has no value for the primary key field.
	ErrMissingKey = errors.New("missing primary key field")
)

// ConfigError reports a wiring mistake: inconsistent rule parameters, a
// unique group naming an undeclared field, or validating a catalog against a
// schema for a different entity. It is never produced by bad data.
type ConfigError struct {
	Op     string
	Reason string
}

// Error formats the configuration error with the operation that rejected it.
func (e *ConfigError) Error() string {
	if e == nil {
		return "config error <nil>"
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// NewConfigError builds a ConfigError for the given operation.
func NewConfigError(op, format string, args ...any) *ConfigError {
	return &ConfigError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// AsConfig extracts a ConfigError from an error chain.
func AsConfig(err error) (*ConfigError, bool) {
	if err == nil {
		return nil, false
	}
	var cfg *ConfigError
	if errors.As(err, &cfg) && cfg != nil {
		return cfg, true
	}
	return nil, false
}
