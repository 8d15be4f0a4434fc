package rules

import (
	"fmt"
	"unicode/utf8"
)

// FixedLength requires a value to have an exact length.
type FixedLength struct {
	Value int
}

// NewFixedLength builds a fixed-length checker.
func NewFixedLength(n int) (*FixedLength, error) {
	if n <= 0 {
		return nil, fmt.Errorf("fixed length must be positive, got %d", n)
	}
	return &FixedLength{Value: n}, nil
}

// Name returns the constraint kind name.
func (f *FixedLength) Name() string {
	return "fixedLength"
}

// Validate checks if the value has the exact length. Length is measured in
// characters, not bytes.
func (f *FixedLength) Validate(value string) error {
	if length := utf8.RuneCountInString(value); length != f.Value {
		return fmt.Errorf("length must be %d, got %d", f.Value, length)
	}
	return nil
}

// LengthRange requires a value length within [Min, Max]. Max zero means
// unbounded above.
type LengthRange struct {
	Min int
	Max int
}

// NewLengthRange builds a length-range checker.
func NewLengthRange(minLen, maxLen int) (*LengthRange, error) {
	if minLen < 0 {
		return nil, fmt.Errorf("minimum length must not be negative, got %d", minLen)
	}
	if maxLen < 0 {
		return nil, fmt.Errorf("maximum length must not be negative, got %d", maxLen)
	}
	if maxLen != 0 && maxLen < minLen {
		return nil, fmt.Errorf("maximum length %d is below minimum length %d", maxLen, minLen)
	}
	return &LengthRange{Min: minLen, Max: maxLen}, nil
}

// Name returns the constraint kind name.
func (l *LengthRange) Name() string {
	return "lengthRange"
}

// Validate checks if the value length falls inside the range.
func (l *LengthRange) Validate(value string) error {
	length := utf8.RuneCountInString(value)
	if length < l.Min {
		return fmt.Errorf("length must be at least %d, got %d", l.Min, length)
	}
	if l.Max != 0 && length > l.Max {
		return fmt.Errorf("length must be at most %d, got %d", l.Max, length)
	}
	return nil
}
