package bookorder

import (
	"slices"
	"strconv"

	bibleorgsys "github.com/alerque/BibleOrgSys"
	boserrors "github.com/alerque/BibleOrgSys/errors"
	"github.com/alerque/BibleOrgSys/internal/xiter"
)

// System is one named book ordering: a catalog of position entries plus
// position lookups in both directions. Positions need not be contiguous.
// The zero value is not usable; build one with New or LoadSystem.
type System struct {
	name    string
	catalog *bibleorgsys.Catalog
	byPos   map[int]string
	byBook  map[string]int
	order   []int
}

// New builds a System from raw entries. Entries whose position does not
// parse as an integer load but stay out of the position lookups; Validate
// reports them. A position claimed by an earlier entry keeps its first
// book; later claimants stay out of the lookups.
func New(name string, raw []bibleorgsys.RawEntry, opts ...bibleorgsys.Option) (*System, error) {
	catalog, err := bibleorgsys.Load(schema, raw, opts...)
	if err != nil {
		return nil, err
	}

	s := &System{
		name:    name,
		catalog: catalog,
		byPos:   make(map[int]string, catalog.Len()),
		byBook:  make(map[string]int, catalog.Len()),
	}
	for entry := range catalog.All() {
		position, err := strconv.Atoi(entry.Key())
		if err != nil {
			continue
		}
		book, ok := entry.Field("book")
		if !ok {
			continue
		}
		if _, taken := s.byPos[position]; taken {
			continue
		}
		s.byPos[position] = book
		s.order = append(s.order, position)
		if _, taken := s.byBook[book]; !taken {
			s.byBook[book] = position
		}
	}
	slices.Sort(s.order)

	return s, nil
}

// Name returns the ordering system name.
func (s *System) Name() string {
	return s.name
}

// Catalog returns the underlying catalog.
func (s *System) Catalog() *bibleorgsys.Catalog {
	return s.catalog
}

// Len returns the number of books in the system.
func (s *System) Len() int {
	return s.catalog.Len()
}

// Validate checks every entry and the system-wide invariants.
func (s *System) Validate(opts ...bibleorgsys.Option) (*bibleorgsys.Report, error) {
	return bibleorgsys.Validate(s.catalog, schema, opts...)
}

// BookAt returns the book code at a position.
func (s *System) BookAt(position int) (string, bool) {
	book, ok := s.byPos[position]
	return book, ok
}

// PositionOf returns the position of a book code.
func (s *System) PositionOf(book string) (int, bool) {
	position, ok := s.byBook[book]
	return position, ok
}

// Contains reports whether the system includes the book code.
func (s *System) Contains(book string) bool {
	_, ok := s.byBook[book]
	return ok
}

// Books returns the book codes in position order.
func (s *System) Books() []string {
	books := make([]string, 0, len(s.order))
	for _, position := range s.order {
		books = append(books, s.byPos[position])
	}
	return books
}

// Systems is a collection of ordering systems keyed by name.
type Systems struct {
	byName map[string]*System
}

// NewSystems builds a collection from systems. A repeated name is a
// configuration error.
func NewSystems(systems ...*System) (*Systems, error) {
	byName := make(map[string]*System, len(systems))
	for _, system := range systems {
		if _, taken := byName[system.Name()]; taken {
			return nil, boserrors.NewConfigError("build systems", "ordering system already added: %s", system.Name())
		}
		byName[system.Name()] = system
	}
	return &Systems{byName: byName}, nil
}

// Names returns the system names in sorted order.
func (s *Systems) Names() []string {
	return xiter.Collect(xiter.SortedKeys(s.byName))
}

// System returns the named ordering system.
func (s *Systems) System(name string) (*System, bool) {
	system, ok := s.byName[name]
	return system, ok
}

// Len returns the number of systems in the collection.
func (s *Systems) Len() int {
	return len(s.byName)
}
