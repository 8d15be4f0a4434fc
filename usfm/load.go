package usfm

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"path"

	"github.com/goccy/go-yaml"

	bibleorgsys "github.com/alerque/BibleOrgSys"
)

// The XML form carries one USFMMarker element per marker with the fields
// as child elements.
type xmlMarkers struct {
	XMLName xml.Name    `xml:"USFMMarkers"`
	Markers []xmlMarker `xml:"USFMMarker"`
}

type xmlMarker struct {
	Marker      string `xml:"marker"`
	NameEnglish string `xml:"nameEnglish"`
	Compulsory  string `xml:"compulsory"`
	Level       string `xml:"level"`
	Numberable  string `xml:"numberable"`
	Nests       string `xml:"nests"`
	HasContent  string `xml:"hasContent"`
	Printed     string `xml:"printed"`
	Closed      string `xml:"closed"`
	OccursIn    string `xml:"occursIn"`
	Description string `xml:"description"`
}

func (m xmlMarker) raw() bibleorgsys.RawEntry {
	raw := bibleorgsys.RawEntry{}
	set := func(field bibleorgsys.FieldID, value string) {
		if value != "" {
			raw[field] = value
		}
	}
	set("marker", m.Marker)
	set("nameEnglish", m.NameEnglish)
	set("compulsory", m.Compulsory)
	set("level", m.Level)
	set("numberable", m.Numberable)
	set("nests", m.Nests)
	set("hasContent", m.HasContent)
	set("printed", m.Printed)
	set("closed", m.Closed)
	set("occursIn", m.OccursIn)
	set("description", m.Description)
	return raw
}

type yamlMarkers struct {
	Markers []map[string]string `yaml:"markers"`
}

// Load reads a marker catalog from an XML or YAML table, chosen by file
// extension, and builds the MarkerSet wrapper.
func Load(fsys fs.FS, name string, opts ...bibleorgsys.Option) (*MarkerSet, error) {
	raw, err := ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return New(raw, opts...)
}

// ReadFile parses an XML or YAML marker table into raw entries without
// loading them.
func ReadFile(fsys fs.FS, name string) ([]bibleorgsys.RawEntry, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read marker table %s: %w", name, err)
	}

	switch path.Ext(name) {
	case ".xml":
		var doc xmlMarkers
		if err := xml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse marker table %s: %w", name, err)
		}
		raw := make([]bibleorgsys.RawEntry, 0, len(doc.Markers))
		for _, marker := range doc.Markers {
			raw = append(raw, marker.raw())
		}
		return raw, nil
	case ".yaml", ".yml":
		var doc yamlMarkers
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse marker table %s: %w", name, err)
		}
		raw := make([]bibleorgsys.RawEntry, 0, len(doc.Markers))
		for _, fields := range doc.Markers {
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
		return nil, fmt.Errorf("read marker table %s: unsupported extension %q", name, path.Ext(name))
	}
}
