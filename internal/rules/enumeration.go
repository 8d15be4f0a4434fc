package rules

import (
	"fmt"
	"strings"
)

// Enumeration requires a value to be a member of a closed set. Matching is
// case-sensitive.
type Enumeration struct {
	Values []string

	members map[string]struct{}
}

// NewEnumeration builds an enumeration checker over the given value set.
func NewEnumeration(values []string) (*Enumeration, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("enumeration requires at least one value")
	}
	members := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, dup := members[v]; dup {
			return nil, fmt.Errorf("enumeration value %q repeated", v)
		}
		members[v] = struct{}{}
	}
	return &Enumeration{Values: values, members: members}, nil
}

// Name returns the constraint kind name.
func (e *Enumeration) Name() string {
	return "enumeration"
}

// Validate checks if the value is in the set.
func (e *Enumeration) Validate(value string) error {
	if _, ok := e.members[value]; !ok {
		return fmt.Errorf("value %q is not one of %s", value, strings.Join(e.Values, ", "))
	}
	return nil
}
