package bookorder

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	bibleorgsys "github.com/alerque/BibleOrgSys"
)

// The XML form carries one book element per position with the position as
// an attribute and the book code as text.
type xmlSystem struct {
	XMLName xml.Name  `xml:"BibleBookOrderSystem"`
	Books   []xmlBook `xml:"book"`
}

type xmlBook struct {
	ID   string `xml:"id,attr"`
	Code string `xml:",chardata"`
}

func (b xmlBook) raw() bibleorgsys.RawEntry {
	raw := bibleorgsys.RawEntry{}
	if b.ID != "" {
		id := b.ID
		// Canonicalize parseable ids so equivalent spellings ("040", "+40")
		// share one primary key, as the integer-typed YAML form does.
		if n, err := strconv.Atoi(id); err == nil {
			id = strconv.Itoa(n)
		}
		raw["id"] = id
	}
	if code := strings.TrimSpace(b.Code); code != "" {
		raw["book"] = code
	}
	return raw
}

type yamlSystem struct {
	Books []yamlBook `yaml:"books"`
}

type yamlBook struct {
	ID   int    `yaml:"id"`
	Book string `yaml:"book"`
}

func (b yamlBook) raw() bibleorgsys.RawEntry {
	raw := bibleorgsys.RawEntry{}
	if b.ID != 0 {
		raw["id"] = strconv.Itoa(b.ID)
	}
	if b.Book != "" {
		raw["book"] = b.Book
	}
	return raw
}

// LoadSystem reads one ordering table from an XML or YAML file, chosen by
// file extension, and builds the named System.
func LoadSystem(fsys fs.FS, name, system string, opts ...bibleorgsys.Option) (*System, error) {
	raw, err := ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return New(system, raw, opts...)
}

// LoadDir reads every BibleBookOrder_*.xml table under dir into a Systems
// collection. Each system is named after its file: BibleBookOrder_KJV.xml
// becomes "KJV".
func LoadDir(fsys fs.FS, dir string, opts ...bibleorgsys.Option) (*Systems, error) {
	names, err := fs.Glob(fsys, path.Join(dir, "BibleBookOrder_*.xml"))
	if err != nil {
		return nil, fmt.Errorf("scan book order tables in %s: %w", dir, err)
	}

	systems := make([]*System, 0, len(names))
	for _, name := range names {
		system, err := LoadSystem(fsys, name, systemName(name), opts...)
		if err != nil {
			return nil, err
		}
		systems = append(systems, system)
	}
	return NewSystems(systems...)
}

func systemName(name string) string {
	base := path.Base(name)
	base = strings.TrimSuffix(base, path.Ext(base))
	return strings.TrimPrefix(base, "BibleBookOrder_")
}

// ReadFile parses an XML or YAML ordering table into raw entries without
// loading them.
func ReadFile(fsys fs.FS, name string) ([]bibleorgsys.RawEntry, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read book order table %s: %w", name, err)
	}

	switch path.Ext(name) {
	case ".xml":
		var doc xmlSystem
		if err := xml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse book order table %s: %w", name, err)
		}
		raw := make([]bibleorgsys.RawEntry, 0, len(doc.Books))
		for _, book := range doc.Books {
			raw = append(raw, book.raw())
		}
		return raw, nil
	case ".yaml", ".yml":
		var doc yamlSystem
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse book order table %s: %w", name, err)
		}
		raw := make([]bibleorgsys.RawEntry, 0, len(doc.Books))
		for _, book := range doc.Books {
			raw = append(raw, book.raw())
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("read book order table %s: unsupported extension %q", name, path.Ext(name))
	}
}
