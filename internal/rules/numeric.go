package rules

import (
	"fmt"
	"strconv"
)

// NumericRange requires a value to be a decimal integer within [Min, Max].
type NumericRange struct {
	Min int
	Max int
}

// NewNumericRange builds a numeric-range checker.
func NewNumericRange(minVal, maxVal int) (*NumericRange, error) {
	if maxVal < minVal {
		return nil, fmt.Errorf("maximum %d is below minimum %d", maxVal, minVal)
	}
	return &NumericRange{Min: minVal, Max: maxVal}, nil
}

// Name returns the constraint kind name.
func (n *NumericRange) Name() string {
	return "numericRange"
}

// Validate checks if the value parses as an integer inside the range.
func (n *NumericRange) Validate(value string) error {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("value %q is not an integer", value)
	}
	if parsed < n.Min || parsed > n.Max {
		return fmt.Errorf("value must be between %d and %d, got %d", n.Min, n.Max, parsed)
	}
	return nil
}
