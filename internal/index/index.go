// Package index provides the lookup structures a catalog builds while
// loading: the primary key map, per-field secondary indexes, and unique-group
// trackers. All structures work over entry ordinals; resolving ordinals back
// to entries is the caller's concern.
package index

import "strings"

// keySep separates field values inside a composite key. The unit separator
// does not occur in catalog data.
const keySep = "\x1f"

// Key joins field values into one composite index key.
func Key(values ...string) string {
	if len(values) == 1 {
		return values[0]
	}
	return strings.Join(values, keySep)
}

// Primary maps primary key values to entry ordinals.
type Primary struct {
	slots map[string]int
}

// NewPrimary builds a primary index sized for the given entry count.
func NewPrimary(capacity int) *Primary {
	return &Primary{slots: make(map[string]int, capacity)}
}

// Insert records the key at the given ordinal. If the key is already present
// the index is unchanged and the first ordinal is returned with dup true.
func (p *Primary) Insert(key string, ordinal int) (first int, dup bool) {
	if prev, ok := p.slots[key]; ok {
		return prev, true
	}
	p.slots[key] = ordinal
	return ordinal, false
}

// Lookup returns the ordinal stored under the key.
func (p *Primary) Lookup(key string) (int, bool) {
	ordinal, ok := p.slots[key]
	return ordinal, ok
}

// Len returns the number of keys in the index.
func (p *Primary) Len() int {
	return len(p.slots)
}

// Secondary maps one field's values to the ordinals of the entries carrying
// them, in insertion order.
type Secondary struct {
	slots map[string][]int
}

// NewSecondary builds an empty secondary index.
func NewSecondary() *Secondary {
	return &Secondary{slots: make(map[string][]int)}
}

// Insert appends the ordinal under the value.
func (s *Secondary) Insert(value string, ordinal int) {
	s.slots[value] = append(s.slots[value], ordinal)
}

// Lookup returns the ordinals stored under the value, in insertion order.
// The returned slice is shared; callers must not mutate it.
func (s *Secondary) Lookup(value string) []int {
	return s.slots[value]
}
