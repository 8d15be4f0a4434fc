// Package fold normalizes strings into case-insensitive lookup keys.
package fold

import (
	"strings"

	"golang.org/x/text/cases"
)

// Key returns the case-folded form of s for use as a lookup key. Folding is
// language-neutral full Unicode case folding, so keys built from different
// casings of the same name compare equal.
func Key(s string) string {
	return cases.Fold().String(s)
}

// Contains reports whether s contains fragment under case folding.
func Contains(s, fragment string) bool {
	return strings.Contains(Key(s), Key(fragment))
}
