package bibleorgsys

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	boserrors "github.com/alerque/BibleOrgSys/errors"
	"github.com/alerque/BibleOrgSys/internal/index"
	"github.com/alerque/BibleOrgSys/internal/xiter"
)

// Catalog is an immutable, indexed collection of entries of one entity kind.
// Catalogs are built once by Load and safe for concurrent readers.
type Catalog struct {
	entity    string
	id        string
	key       FieldID
	fields    []FieldID
	entries   []*Entry
	primary   *index.Primary
	secondary map[FieldID]*index.Secondary
	uniques   []*index.Unique
}

// Load builds a catalog from raw entries under the given schema. Indexes are
// built incrementally: the primary index rejects duplicates, failing the
// whole load with no partial catalog; unique-group duplicates are recorded
// for validation and do not fail the load. An entry without a primary key
// value also fails the load.
func Load(schema *Schema, raw []RawEntry, opts ...Option) (*Catalog, error) {
	if schema == nil {
		return nil, boserrors.NewConfigError("load catalog", "schema must not be nil")
	}
	cfg := applyOptions(opts)
	catalogID := cfg.catalogID
	if catalogID == "" {
		catalogID = uuid.NewString()
	}
	start := time.Now()

	c := &Catalog{
		entity:    schema.entity,
		id:        catalogID,
		key:       schema.key,
		fields:    slices.Clone(schema.fields),
		entries:   make([]*Entry, 0, len(raw)),
		primary:   index.NewPrimary(len(raw)),
		secondary: make(map[FieldID]*index.Secondary, len(schema.lookups)),
	}
	for _, field := range schema.lookups {
		c.secondary[field] = index.NewSecondary()
	}
	for _, group := range schema.uniques {
		fields := make([]string, len(group))
		for i, field := range group {
			fields[i] = string(field)
		}
		c.uniques = append(c.uniques, index.NewUnique(fields))
	}

	for i, r := range raw {
		key, ok := r[schema.key]
		if !ok || key == "" {
			return nil, fmt.Errorf("load %s catalog: entry %d: %w %q", schema.entity, i, boserrors.ErrMissingKey, schema.key)
		}
		if first, dup := c.primary.Insert(key, i); dup {
			return nil, fmt.Errorf("load %s catalog: entry %d: %w: %q first used by entry %d", schema.entity, i, boserrors.ErrDuplicateKey, key, first)
		}

		entry := &Entry{
			key:     key,
			ordinal: i,
			fields:  maps.Clone(map[FieldID]string(r)),
		}
		c.entries = append(c.entries, entry)

		for _, field := range schema.lookups {
			if value, ok := r[field]; ok {
				c.secondary[field].Insert(value, i)
			}
		}
		for gi, group := range schema.uniques {
			values := make([]string, 0, len(group))
			for _, field := range group {
				value, ok := r[field]
				if !ok {
					break
				}
				values = append(values, value)
			}
			if len(values) == len(group) {
				c.uniques[gi].Observe(values, i)
			}
		}
	}

	cfg.logger.Infof("loaded %s catalog %s: %d entries in %s", c.entity, c.id, len(c.entries), time.Since(start))
	return c, nil
}

// Entity returns the entity name the catalog holds.
func (c *Catalog) Entity() string {
	return c.entity
}

// ID returns the catalog instance id.
func (c *Catalog) ID() string {
	return c.id
}

// Key returns the primary key field.
func (c *Catalog) Key() FieldID {
	return c.key
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup returns the entry stored under the primary key value.
func (c *Catalog) Lookup(key string) (*Entry, bool) {
	ordinal, ok := c.primary.Lookup(key)
	if !ok {
		return nil, false
	}
	return c.entries[ordinal], true
}

// LookupBy returns the entries carrying the value in the given field, in
// insertion order. Only fields declared as lookups on the loading schema are
// indexed; others return nil.
func (c *Catalog) LookupBy(field FieldID, value string) []*Entry {
	idx, ok := c.secondary[field]
	if !ok {
		return nil
	}
	ordinals := idx.Lookup(value)
	if len(ordinals) == 0 {
		return nil
	}
	entries := make([]*Entry, len(ordinals))
	for i, ordinal := range ordinals {
		entries[i] = c.entries[ordinal]
	}
	return entries
}

// All returns the entries in insertion order. Each call yields a fresh,
// restartable sequence.
func (c *Catalog) All() iter.Seq[*Entry] {
	return xiter.Slice(c.entries)
}
