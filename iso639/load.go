package iso639

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"path"

	"github.com/goccy/go-yaml"

	bibleorgsys "github.com/alerque/BibleOrgSys"
)

// The XML form follows the ISO 639-3 code table distribution: one
// iso_639_3_entry element per language with the fields as attributes.
type xmlEntries struct {
	XMLName xml.Name   `xml:"iso_639_3_entries"`
	Entries []xmlEntry `xml:"iso_639_3_entry"`
}

type xmlEntry struct {
	ID            string `xml:"id,attr"`
	Part1Code     string `xml:"part1_code,attr"`
	Part2Code     string `xml:"part2_code,attr"`
	Status        string `xml:"status,attr"`
	Scope         string `xml:"scope,attr"`
	Type          string `xml:"type,attr"`
	ReferenceName string `xml:"reference_name,attr"`
	Name          string `xml:"name,attr"`
	InvertedName  string `xml:"inverted_name,attr"`
	CommonName    string `xml:"common_name,attr"`
}

func (e xmlEntry) raw() bibleorgsys.RawEntry {
	raw := bibleorgsys.RawEntry{}
	set := func(field bibleorgsys.FieldID, value string) {
		if value != "" {
			raw[field] = value
		}
	}
	set("id", e.ID)
	set("part1_code", e.Part1Code)
	set("part2_code", e.Part2Code)
	set("status", e.Status)
	set("scope", e.Scope)
	set("type", e.Type)
	set("reference_name", e.ReferenceName)
	set("name", e.Name)
	set("inverted_name", e.InvertedName)
	set("common_name", e.CommonName)
	return raw
}

type yamlEntries struct {
	Entries []map[string]string `yaml:"entries"`
}

// Load reads a language registry from an XML or YAML code table, chosen by
// file extension, and builds the Languages wrapper.
func Load(fsys fs.FS, name string, opts ...bibleorgsys.Option) (*Languages, error) {
	raw, err := ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return New(raw, opts...)
}

// ReadFile parses an XML or YAML code table into raw entries without
// loading them.
func ReadFile(fsys fs.FS, name string) ([]bibleorgsys.RawEntry, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read language table %s: %w", name, err)
	}

	switch path.Ext(name) {
	case ".xml":
		var doc xmlEntries
		if err := xml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse language table %s: %w", name, err)
		}
		raw := make([]bibleorgsys.RawEntry, 0, len(doc.Entries))
		for _, entry := range doc.Entries {
			raw = append(raw, entry.raw())
		}
		return raw, nil
	case ".yaml", ".yml":
		var doc yamlEntries
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse language table %s: %w", name, err)
		}
		raw := make([]bibleorgsys.RawEntry, 0, len(doc.Entries))
		for _, fields := range doc.Entries {
			entry := make(bibleorgsys.RawEntry, len(fields))
			for field, value := range fields {
				if value != "" {
					entry[bibleorgsys.FieldID(field)] = value
				}
			}
			raw = append(raw, entry)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("read language table %s: unsupported extension %q", name, path.Ext(name))
	}
}
