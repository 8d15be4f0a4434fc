package bibleorgsys

import (
	"fmt"
	"slices"
	"strings"

	boserrors "github.com/alerque/BibleOrgSys/errors"
)

// Cardinality bounds the total entry count of a catalog. A Max of zero
// leaves the count unbounded above.
type Cardinality struct {
	Min int
	Max int
}

// SchemaOption configures schema construction.
type SchemaOption interface{ apply(*schemaConfig) }

type schemaConfig struct {
	uniques [][]FieldID
	lookups []FieldID
	card    Cardinality
}

type schemaOptionFunc func(*schemaConfig)

func (f schemaOptionFunc) apply(cfg *schemaConfig) {
	if cfg == nil {
		return
	}
	f(cfg)
}

// WithUniqueKey declares one field group whose values must be unique across
// all entries. Call once per group.
func WithUniqueKey(fields ...FieldID) SchemaOption {
	return schemaOptionFunc(func(cfg *schemaConfig) {
		cfg.uniques = append(cfg.uniques, fields)
	})
}

// WithLookups declares the fields served by secondary indexes.
func WithLookups(fields ...FieldID) SchemaOption {
	return schemaOptionFunc(func(cfg *schemaConfig) {
		cfg.lookups = append(cfg.lookups, fields...)
	})
}

// WithCardinality bounds the catalog entry count.
func WithCardinality(minEntries, maxEntries int) SchemaOption {
	return schemaOptionFunc(func(cfg *schemaConfig) {
		cfg.card = Cardinality{Min: minEntries, Max: maxEntries}
	})
}

// Schema is the declarative rule set for one catalog entity. Schemas are
// immutable after construction and safe for concurrent use.
type Schema struct {
	entity  string
	key     FieldID
	rules   []compiledRule
	fields  []FieldID
	uniques [][]FieldID
	lookups []FieldID
	card    Cardinality
}

// NewSchema builds a schema for the named entity. The key field is the
// primary key; it must be covered by a rule. Inconsistent rule parameters,
// unique groups or lookups naming undeclared fields, and inverted
// cardinality bounds are configuration errors.
func NewSchema(entity string, key FieldID, schemaRules []Rule, opts ...SchemaOption) (*Schema, error) {
	var cfg schemaConfig
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	if entity == "" {
		return nil, boserrors.NewConfigError("build schema", "entity name must not be empty")
	}
	if key == "" {
		return nil, boserrors.NewConfigError("build schema", "%s: primary key field must not be empty", entity)
	}
	if len(schemaRules) == 0 {
		return nil, boserrors.NewConfigError("build schema", "%s: at least one rule is required", entity)
	}

	s := &Schema{
		entity:  entity,
		key:     key,
		rules:   make([]compiledRule, 0, len(schemaRules)),
		uniques: cfg.uniques,
		lookups: cfg.lookups,
		card:    cfg.card,
	}

	declared := make(map[FieldID]struct{}, len(schemaRules))
	for i, rule := range schemaRules {
		if rule.field == "" {
			return nil, boserrors.NewConfigError("build schema", "%s: rule %d has no field", entity, i)
		}
		compiled, err := rule.compile()
		if err != nil {
			return nil, boserrors.NewConfigError("build schema", "%s: field %q: %v", entity, rule.field, err)
		}
		s.rules = append(s.rules, compiled)
		if _, ok := declared[rule.field]; !ok {
			declared[rule.field] = struct{}{}
			s.fields = append(s.fields, rule.field)
		}
	}

	if _, ok := declared[key]; !ok {
		return nil, boserrors.NewConfigError("build schema", "%s: primary key %q has no rule", entity, key)
	}

	for _, group := range s.uniques {
		if len(group) == 0 {
			return nil, boserrors.NewConfigError("build schema", "%s: unique key group must not be empty", entity)
		}
		seen := make(map[FieldID]struct{}, len(group))
		for _, field := range group {
			if _, ok := declared[field]; !ok {
				return nil, boserrors.NewConfigError("build schema", "%s: unique key field %q has no rule", entity, field)
			}
			if _, dup := seen[field]; dup {
				return nil, boserrors.NewConfigError("build schema", "%s: unique key field %q repeated in group", entity, field)
			}
			seen[field] = struct{}{}
		}
	}

	seen := make(map[FieldID]struct{}, len(s.lookups))
	for _, field := range s.lookups {
		if _, ok := declared[field]; !ok {
			return nil, boserrors.NewConfigError("build schema", "%s: lookup field %q has no rule", entity, field)
		}
		if _, dup := seen[field]; dup {
			return nil, boserrors.NewConfigError("build schema", "%s: lookup field %q repeated", entity, field)
		}
		seen[field] = struct{}{}
	}

	if s.card.Min < 0 || s.card.Max < 0 {
		return nil, boserrors.NewConfigError("build schema", "%s: cardinality bounds must not be negative", entity)
	}
	if s.card.Max != 0 && s.card.Max < s.card.Min {
		return nil, boserrors.NewConfigError("build schema", "%s: cardinality maximum %d is below minimum %d", entity, s.card.Max, s.card.Min)
	}

	return s, nil
}

// MustSchema builds a schema and panics on a configuration error. Intended
// for package-level schema tables.
func MustSchema(entity string, key FieldID, schemaRules []Rule, opts ...SchemaOption) *Schema {
	s, err := NewSchema(entity, key, schemaRules, opts...)
	if err != nil {
		panic(fmt.Sprintf("bibleorgsys: %v", err))
	}
	return s
}

// Entity returns the entity name the schema describes.
func (s *Schema) Entity() string {
	return s.entity
}

// Key returns the primary key field.
func (s *Schema) Key() FieldID {
	return s.key
}

// Fields returns the declared fields in rule declaration order.
func (s *Schema) Fields() []FieldID {
	return slices.Clone(s.fields)
}

// UniqueKeys returns the declared unique field groups.
func (s *Schema) UniqueKeys() [][]FieldID {
	groups := make([][]FieldID, len(s.uniques))
	for i, group := range s.uniques {
		groups[i] = slices.Clone(group)
	}
	return groups
}

// Lookups returns the fields served by secondary indexes.
func (s *Schema) Lookups() []FieldID {
	return slices.Clone(s.lookups)
}

// ValidateEntry applies every rule to the entry in declaration order and
// returns the violations found. A valid entry yields none.
func (s *Schema) ValidateEntry(e *Entry) []boserrors.Violation {
	var violations []boserrors.Violation
	for _, rule := range s.rules {
		value, ok := e.Field(rule.field)
		if !ok {
			if rule.required {
				v := boserrors.NewViolationf(boserrors.ErrFieldMissing, e.Key(), string(rule.field), "required field %s is absent", rule.field)
				v.Ordinal = e.Ordinal()
				violations = append(violations, v)
			}
			continue
		}
		if err := rule.checker.Validate(value); err != nil {
			v := boserrors.NewViolation(rule.code, err.Error(), e.Key(), string(rule.field))
			v.Ordinal = e.Ordinal()
			v.Actual = value
			v.Expected = rule.expected
			violations = append(violations, v)
		}
	}
	return violations
}

// validateCatalog checks catalog-wide invariants: declared unique groups
// (every later duplicate is flagged, the first occurrence wins) and
// cardinality bounds.
func (s *Schema) validateCatalog(c *Catalog) []boserrors.Violation {
	var violations []boserrors.Violation
	for _, tracker := range c.uniques {
		for _, conflict := range tracker.Conflicts() {
			later := c.entries[conflict.Ordinal]
			first := c.entries[conflict.First]
			field := strings.Join(conflict.Fields, "+")
			value := strings.Join(conflict.Values, "+")
			v := boserrors.NewViolationf(boserrors.ErrUniqueKey, later.Key(), field,
				"%s %q already used by entry %q", field, value, first.Key())
			v.Ordinal = later.Ordinal()
			v.Actual = value
			violations = append(violations, v)
		}
	}

	if n := len(c.entries); n < s.card.Min {
		violations = append(violations, boserrors.NewViolationf(boserrors.ErrCardinality, "", "",
			"catalog has %d entries, minimum is %d", n, s.card.Min))
	} else if s.card.Max != 0 && n > s.card.Max {
		violations = append(violations, boserrors.NewViolationf(boserrors.ErrCardinality, "", "",
			"catalog has %d entries, maximum is %d", n, s.card.Max))
	}

	return violations
}
