package bibleorgsys

import "maps"

// FieldID identifies a field within a catalog entry.
type FieldID string

// RawEntry is one parsed record handed to Load: a mapping from field to
// lexical value. Parsing source markup into raw entries is the caller's
// concern.
type RawEntry map[FieldID]string

// Entry is one loaded catalog record. Entries are immutable once loaded and
// owned by their catalog; replacing data means loading a new catalog.
type Entry struct {
	key     string
	ordinal int
	fields  map[FieldID]string
}

// Key returns the entry's primary key value.
func (e *Entry) Key() string {
	return e.key
}

// Ordinal returns the entry's zero-based position in load order.
func (e *Entry) Ordinal() int {
	return e.ordinal
}

// Field returns the value of the named field and whether it is present.
func (e *Entry) Field(field FieldID) (string, bool) {
	value, ok := e.fields[field]
	return value, ok
}

// Fields returns a copy of the entry's field mapping.
func (e *Entry) Fields() map[FieldID]string {
	return maps.Clone(e.fields)
}
