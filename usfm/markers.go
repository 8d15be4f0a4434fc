package usfm

import (
	bibleorgsys "github.com/alerque/BibleOrgSys"
)

// MarkerSet wraps a loaded marker catalog with typed property queries.
// Markers are stored and matched without a leading backslash. The zero
// value is not usable; build one with New or Load.
type MarkerSet struct {
	catalog *bibleorgsys.Catalog
}

// New builds a MarkerSet from raw entries.
func New(raw []bibleorgsys.RawEntry, opts ...bibleorgsys.Option) (*MarkerSet, error) {
	catalog, err := bibleorgsys.Load(schema, raw, opts...)
	if err != nil {
		return nil, err
	}
	return &MarkerSet{catalog: catalog}, nil
}

// Catalog returns the underlying catalog.
func (m *MarkerSet) Catalog() *bibleorgsys.Catalog {
	return m.catalog
}

// Len returns the number of markers in the set.
func (m *MarkerSet) Len() int {
	return m.catalog.Len()
}

// Validate checks every entry and the set-wide invariants.
func (m *MarkerSet) Validate(opts ...bibleorgsys.Option) (*bibleorgsys.Report, error) {
	return bibleorgsys.Validate(m.catalog, schema, opts...)
}

// IsValid reports whether the marker is in the set.
func (m *MarkerSet) IsValid(marker string) bool {
	_, ok := m.catalog.Lookup(marker)
	return ok
}

func (m *MarkerSet) field(marker string, field bibleorgsys.FieldID) (string, bool) {
	entry, ok := m.catalog.Lookup(marker)
	if !ok {
		return "", false
	}
	return entry.Field(field)
}

func (m *MarkerSet) is(marker string, field bibleorgsys.FieldID, value string) bool {
	got, ok := m.field(marker, field)
	return ok && got == value
}

// EnglishName returns the marker's English name.
func (m *MarkerSet) EnglishName(marker string) (string, bool) {
	return m.field(marker, "nameEnglish")
}

// Description returns the marker's description, when one exists.
func (m *MarkerSet) Description(marker string) (string, bool) {
	return m.field(marker, "description")
}

// OccursIn returns the context label the marker occurs in.
func (m *MarkerSet) OccursIn(marker string) (string, bool) {
	return m.field(marker, "occursIn")
}

// IsNewline reports whether the marker starts a new line. Unknown markers
// report false, as with every property query.
func (m *MarkerSet) IsNewline(marker string) bool {
	return m.is(marker, "level", "Newline")
}

// IsInternal reports whether the marker is an internal character marker.
func (m *MarkerSet) IsInternal(marker string) bool {
	return m.is(marker, "level", "Internal")
}

// IsNoteMarker reports whether the marker belongs to footnote or
// cross-reference content.
func (m *MarkerSet) IsNoteMarker(marker string) bool {
	return m.is(marker, "level", "Note")
}

// IsCompulsory reports whether every book must carry the marker.
func (m *MarkerSet) IsCompulsory(marker string) bool {
	return m.is(marker, "compulsory", "Yes")
}

// IsNumberable reports whether the marker takes a numeric suffix.
func (m *MarkerSet) IsNumberable(marker string) bool {
	return m.is(marker, "numberable", "Yes")
}

// Nests reports whether the marker may nest inside character markers.
func (m *MarkerSet) Nests(marker string) bool {
	return m.is(marker, "nests", "Yes")
}

// IsPrinted reports whether the marker's content appears in printed output.
func (m *MarkerSet) IsPrinted(marker string) bool {
	return m.is(marker, "printed", "Yes")
}

// HasContent returns the marker's content expectation: Always, Sometimes,
// or Never.
func (m *MarkerSet) HasContent(marker string) (string, bool) {
	return m.field(marker, "hasContent")
}

// Closure returns how the marker is closed: No, Always, or Optional.
func (m *MarkerSet) Closure(marker string) (string, bool) {
	return m.field(marker, "closed")
}

// MarkersOccurringIn returns the markers whose context label matches
// exactly, in catalog order.
func (m *MarkerSet) MarkersOccurringIn(context string) []string {
	entries := m.catalog.LookupBy("occursIn", context)
	if len(entries) == 0 {
		return nil
	}
	markers := make([]string, 0, len(entries))
	for _, entry := range entries {
		markers = append(markers, entry.Key())
	}
	return markers
}
