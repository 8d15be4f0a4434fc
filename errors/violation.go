package errors

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Code identifies the constraint a violation was raised against.
type Code string

const (
	// ErrFieldMissing indicates a required field is absent from an entry.
	ErrFieldMissing Code = "field-missing"
	// ErrLengthExact indicates a value does not have the exact required length.
	ErrLengthExact Code = "length-exact"
	// ErrLengthRange indicates a value length is outside the allowed range.
	ErrLengthRange Code = "length-range"
	// ErrEnumeration indicates a value is not a member of a closed value set.
	ErrEnumeration Code = "enumeration"
	// ErrNumericRange indicates a value is not an integer within the allowed range.
	ErrNumericRange Code = "numeric-range"
	// ErrPattern indicates a value does not match the required pattern.
	ErrPattern Code = "pattern"
	// ErrUniqueKey indicates a declared unique field group is duplicated.
	ErrUniqueKey Code = "unique-key"
	// ErrCardinality indicates the catalog entry count is outside the declared bounds.
	ErrCardinality Code = "cardinality"
)

// Violation describes a single data problem found by validation. Violations
// are collected, never raised mid-run; a catalog with violations is still a
// catalog.
type Violation struct {
	Code     string
	Message  string
	Key      string
	Field    string
	Ordinal  int
	Actual   string
	Expected []string
}

// ViolationList is an error that wraps one or more violations.
type ViolationList []Violation //nolint:errname // public API name, kept plural like the slice it is.

// Error returns a compact summary of the violations.
func (v ViolationList) Error() string {
	switch len(v) {
	case 0:
		return "no violations"
	case 1:
		return v[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
	}
}

// Error formats the violation for display, including code, message, and the
// entry and field it was raised on.
func (v *Violation) Error() string {
	if v == nil {
		return "violation <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", v.Code, v.Message))
	switch {
	case v.Key != "" && v.Field != "":
		b.WriteString(fmt.Sprintf(" at %s.%s", v.Key, v.Field))
	case v.Key != "":
		b.WriteString(fmt.Sprintf(" at %s", v.Key))
	case v.Field != "":
		b.WriteString(fmt.Sprintf(" at %s", v.Field))
	}
	if len(v.Expected) > 0 {
		b.WriteString(fmt.Sprintf(" (expected: %s)", strings.Join(v.Expected, ", ")))
	}
	if v.Actual != "" {
		b.WriteString(fmt.Sprintf(" (actual: %s)", v.Actual))
	}
	return b.String()
}

// NewViolation builds a Violation with a code, message, and the entry key and
// field it applies to.
func NewViolation(code Code, msg, key, field string) Violation {
	return Violation{Code: string(code), Message: msg, Key: key, Field: field}
}

// NewViolationf formats a message and builds a Violation.
func NewViolationf(code Code, key, field, format string, args ...any) Violation {
	return NewViolation(code, fmt.Sprintf(format, args...), key, field)
}

// AsViolations extracts violations from an error returned by validation
// helpers: a wrapped ViolationList, or single violations combined with
// multierr as a report's Err does.
func AsViolations(err error) ([]Violation, bool) {
	if err == nil {
		return nil, false
	}
	if list, ok := asViolationList(err); ok {
		return []Violation(list), true
	}

	var collected []Violation
	for _, e := range multierr.Errors(err) {
		var v *Violation
		if errors.As(e, &v) && v != nil {
			collected = append(collected, *v)
		}
	}
	if len(collected) == 0 {
		return nil, false
	}
	return collected, true
}

func asViolationList(err error) (ViolationList, bool) {
	if err == nil {
		return nil, false
	}
	var list ViolationList
	if errors.As(err, &list) {
		return list, true
	}

	var listPtr *ViolationList
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}

	return nil, false
}
