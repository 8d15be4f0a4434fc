package index

// Conflict records a later entry repeating an earlier entry's unique-group
// values. The first occurrence keeps the values; the later ordinal is the one
// flagged.
type Conflict struct {
	Fields  []string
	Values  []string
	First   int
	Ordinal int
}

// Unique tracks one declared unique field group across a load. Duplicates do
// not fail the load; they accumulate as conflicts for validation to surface.
type Unique struct {
	fields    []string
	seen      map[string]int
	conflicts []Conflict
}

// NewUnique builds a tracker for the given field group.
func NewUnique(fields []string) *Unique {
	return &Unique{
		fields: fields,
		seen:   make(map[string]int),
	}
}

// Fields returns the field group the tracker watches.
func (u *Unique) Fields() []string {
	return u.fields
}

// Observe records the group's values for an entry ordinal. A repeat of
// earlier values is stored as a conflict against the later ordinal. Entries
// missing a group field must not be observed.
func (u *Unique) Observe(values []string, ordinal int) {
	key := Key(values...)
	if first, ok := u.seen[key]; ok {
		u.conflicts = append(u.conflicts, Conflict{
			Fields:  u.fields,
			Values:  values,
			First:   first,
			Ordinal: ordinal,
		})
		return
	}
	u.seen[key] = ordinal
}

// Conflicts returns the recorded conflicts in observation order.
func (u *Unique) Conflicts() []Conflict {
	return u.conflicts
}
