// Package iso639 provides the ISO 639-3 language registry catalog: its
// schema, file loaders, and a typed query wrapper over the loaded entries.
package iso639

import (
	bibleorgsys "github.com/alerque/BibleOrgSys"
)

// EntityName identifies the language registry schema in the registry.
const EntityName = "iso-639-3-language"

var schema = bibleorgsys.MustSchema(EntityName, "id",
	[]bibleorgsys.Rule{
		bibleorgsys.FixedLength("id", 3).Required(),
		bibleorgsys.FixedLength("part1_code", 2),
		bibleorgsys.FixedLength("part2_code", 3),
		bibleorgsys.Enumeration("status", "Active", "Retired").Required(),
		bibleorgsys.Enumeration("scope", "I", "M", "S").Required(),
		bibleorgsys.Enumeration("type", "A", "C", "E", "H", "L", "S").Required(),
		bibleorgsys.MinMaxLength("reference_name", 1, 150).Required(),
		bibleorgsys.MinMaxLength("name", 1, 150).Required(),
		bibleorgsys.MinMaxLength("inverted_name", 1, 150),
		bibleorgsys.MinMaxLength("common_name", 1, 150),
	},
	bibleorgsys.WithUniqueKey("part1_code"),
	bibleorgsys.WithUniqueKey("part2_code"),
	bibleorgsys.WithLookups("part1_code", "part2_code", "name"),
	bibleorgsys.WithCardinality(1, 0),
)

func init() {
	bibleorgsys.RegisterSchema(schema)
}

// Schema returns the language registry schema.
func Schema() *bibleorgsys.Schema {
	return schema
}
