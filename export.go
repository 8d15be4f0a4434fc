package bibleorgsys

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// orderedEntry marshals an entry's fields in schema declaration order,
// skipping absent fields.
type orderedEntry struct {
	fields []FieldID
	entry  *Entry
}

// MarshalJSON writes the fields as one JSON object in declared order.
func (o orderedEntry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, field := range o.fields {
		value, ok := o.entry.Field(field)
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		name, err := json.Marshal(string(field))
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		val, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o orderedEntry) mapSlice() yaml.MapSlice {
	doc := make(yaml.MapSlice, 0, len(o.fields))
	for _, field := range o.fields {
		value, ok := o.entry.Field(field)
		if !ok {
			continue
		}
		doc = append(doc, yaml.MapItem{Key: string(field), Value: value})
	}
	return doc
}

type catalogDoc struct {
	Entity  string         `json:"entity"`
	Count   int            `json:"count"`
	Entries []orderedEntry `json:"entries"`
}

func (c *Catalog) exportDoc() catalogDoc {
	entries := make([]orderedEntry, len(c.entries))
	for i, entry := range c.entries {
		entries[i] = orderedEntry{fields: c.fields, entry: entry}
	}
	return catalogDoc{Entity: c.entity, Count: len(c.entries), Entries: entries}
}

// WriteJSON writes the catalog as indented JSON: entity, entry count, and
// the entries in insertion order with fields in schema declaration order.
func (c *Catalog) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c.exportDoc()); err != nil {
		return fmt.Errorf("export %s catalog: %w", c.entity, err)
	}
	return nil
}

// WriteYAML writes the catalog as YAML with the same shape and ordering as
// WriteJSON.
func (c *Catalog) WriteYAML(w io.Writer) error {
	entries := make([]yaml.MapSlice, len(c.entries))
	for i, entry := range c.entries {
		entries[i] = orderedEntry{fields: c.fields, entry: entry}.mapSlice()
	}
	doc := yaml.MapSlice{
		{Key: "entity", Value: c.entity},
		{Key: "count", Value: len(c.entries)},
		{Key: "entries", Value: entries},
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("export %s catalog: %w", c.entity, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("export %s catalog: %w", c.entity, err)
	}
	return nil
}

type violationDoc struct {
	Code     string   `json:"code" yaml:"code"`
	Message  string   `json:"message" yaml:"message"`
	Key      string   `json:"key,omitempty" yaml:"key,omitempty"`
	Field    string   `json:"field,omitempty" yaml:"field,omitempty"`
	Actual   string   `json:"actual,omitempty" yaml:"actual,omitempty"`
	Expected []string `json:"expected,omitempty" yaml:"expected,omitempty"`
}

type reportDoc struct {
	RunID      string         `json:"run_id" yaml:"run_id"`
	Entity     string         `json:"entity" yaml:"entity"`
	Violations []violationDoc `json:"violations" yaml:"violations"`
}

func (r *Report) exportDoc() reportDoc {
	violations := make([]violationDoc, 0, len(r.Violations))
	for _, v := range r.Violations {
		violations = append(violations, violationDoc{
			Code:     string(v.Code),
			Message:  v.Message,
			Key:      v.Key,
			Field:    v.Field,
			Actual:   v.Actual,
			Expected: v.Expected,
		})
	}
	return reportDoc{RunID: r.RunID, Entity: r.Entity, Violations: violations}
}

// WriteJSON writes the report as indented JSON with violations in report
// order.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.exportDoc()); err != nil {
		return fmt.Errorf("export %s report: %w", r.Entity, err)
	}
	return nil
}

// WriteYAML writes the report as YAML with the same shape as WriteJSON.
func (r *Report) WriteYAML(w io.Writer) error {
	data, err := yaml.Marshal(r.exportDoc())
	if err != nil {
		return fmt.Errorf("export %s report: %w", r.Entity, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("export %s report: %w", r.Entity, err)
	}
	return nil
}
