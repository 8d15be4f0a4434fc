package rules

import (
	"fmt"
	"regexp"
)

// Pattern requires a value to match a regular expression. The expression is
// anchored to the whole value.
type Pattern struct {
	Source string

	re *regexp.Regexp
}

// NewPattern compiles a pattern checker. The expression must be valid Go
// regular expression syntax; it is wrapped so a match must cover the entire
// value.
func NewPattern(expr string) (*Pattern, error) {
	if expr == "" {
		return nil, fmt.Errorf("pattern must not be empty")
	}
	re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	return &Pattern{Source: expr, re: re}, nil
}

// Name returns the constraint kind name.
func (p *Pattern) Name() string {
	return "pattern"
}

// Validate checks if the value matches the pattern.
func (p *Pattern) Validate(value string) error {
	if !p.re.MatchString(value) {
		return fmt.Errorf("value %q does not match pattern %q", value, p.Source)
	}
	return nil
}
