package iso639

import (
	bibleorgsys "github.com/alerque/BibleOrgSys"
	"github.com/alerque/BibleOrgSys/internal/fold"
)

// Languages wraps a loaded language registry catalog with typed lookups.
// The zero value is not usable; build one with New or Load.
type Languages struct {
	catalog *bibleorgsys.Catalog
	byName  map[string]string
}

// New builds a Languages registry from raw entries.
func New(raw []bibleorgsys.RawEntry, opts ...bibleorgsys.Option) (*Languages, error) {
	catalog, err := bibleorgsys.Load(schema, raw, opts...)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]string, catalog.Len())
	for entry := range catalog.All() {
		name, ok := entry.Field("name")
		if !ok {
			continue
		}
		key := fold.Key(name)
		if _, taken := byName[key]; !taken {
			byName[key] = entry.Key()
		}
	}

	return &Languages{catalog: catalog, byName: byName}, nil
}

// Catalog returns the underlying catalog.
func (l *Languages) Catalog() *bibleorgsys.Catalog {
	return l.catalog
}

// Len returns the number of registered languages.
func (l *Languages) Len() int {
	return l.catalog.Len()
}

// Validate checks every entry and the registry-wide invariants.
func (l *Languages) Validate(opts ...bibleorgsys.Option) (*bibleorgsys.Report, error) {
	return bibleorgsys.Validate(l.catalog, schema, opts...)
}

// IsValid reports whether the code is a registered language identifier.
// Matching is case-sensitive: "eng" is a code, "Eng" is not.
func (l *Languages) IsValid(code string) bool {
	_, ok := l.catalog.Lookup(code)
	return ok
}

func (l *Languages) field(code string, field bibleorgsys.FieldID) (string, bool) {
	entry, ok := l.catalog.Lookup(code)
	if !ok {
		return "", false
	}
	return entry.Field(field)
}

// Name returns the language name for a code.
func (l *Languages) Name(code string) (string, bool) {
	return l.field(code, "name")
}

// ReferenceName returns the reference name for a code.
func (l *Languages) ReferenceName(code string) (string, bool) {
	return l.field(code, "reference_name")
}

// Scope returns the scope tag for a code: I individual, M macrolanguage,
// S special.
func (l *Languages) Scope(code string) (string, bool) {
	return l.field(code, "scope")
}

// Type returns the type tag for a code: A ancient, C constructed,
// E extinct, H historical, L living, S special.
func (l *Languages) Type(code string) (string, bool) {
	return l.field(code, "type")
}

// Part1 returns the two-letter ISO 639-1 code, when one exists.
func (l *Languages) Part1(code string) (string, bool) {
	return l.field(code, "part1_code")
}

// Part2 returns the three-letter ISO 639-2 code, when one exists.
func (l *Languages) Part2(code string) (string, bool) {
	return l.field(code, "part2_code")
}

// ByPart1 resolves a two-letter code back to the language identifier.
func (l *Languages) ByPart1(part1 string) (string, bool) {
	matches := l.catalog.LookupBy("part1_code", part1)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Key(), true
}

// ByPart2 resolves a three-letter ISO 639-2 code back to the language
// identifier.
func (l *Languages) ByPart2(part2 string) (string, bool) {
	matches := l.catalog.LookupBy("part2_code", part2)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Key(), true
}

// CodeForName resolves a language name to its identifier. Matching is
// case-insensitive; a code is not a name, so CodeForName("eng") fails.
func (l *Languages) CodeForName(name string) (string, bool) {
	code, ok := l.byName[fold.Key(name)]
	return code, ok
}

// NamesMatching returns the names containing the fragment, case-insensitive,
// in registry order.
func (l *Languages) NamesMatching(fragment string) []string {
	var matches []string
	for entry := range l.catalog.All() {
		name, ok := entry.Field("name")
		if !ok {
			continue
		}
		if fold.Contains(name, fragment) {
			matches = append(matches, name)
		}
	}
	return matches
}
