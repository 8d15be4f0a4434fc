// Package usfm provides the USFM marker catalog: the marker schema, file
// loaders, and a typed wrapper answering marker property queries.
package usfm

import (
	bibleorgsys "github.com/alerque/BibleOrgSys"
)

// EntityName identifies the marker schema in the registry.
const EntityName = "usfm-marker"

var schema = bibleorgsys.MustSchema(EntityName, "marker",
	[]bibleorgsys.Rule{
		bibleorgsys.MinMaxLength("marker", 1, 6).Required(),
		bibleorgsys.MinMaxLength("nameEnglish", 5, 60).Required(),
		bibleorgsys.Enumeration("compulsory", "Yes", "No").Required(),
		bibleorgsys.Enumeration("level", "Newline", "Internal", "Note").Required(),
		bibleorgsys.Enumeration("numberable", "Yes", "No").Required(),
		bibleorgsys.Enumeration("nests", "Yes", "No").Required(),
		bibleorgsys.Enumeration("hasContent", "Always", "Sometimes", "Never").Required(),
		bibleorgsys.Enumeration("printed", "Yes", "No").Required(),
		bibleorgsys.Enumeration("closed", "No", "Always", "Optional").Required(),
		bibleorgsys.MinMaxLength("occursIn", 4, 25).Required(),
		bibleorgsys.MinMaxLength("description", 5, 520),
	},
	bibleorgsys.WithLookups("occursIn"),
	bibleorgsys.WithCardinality(1, 0),
)

func init() {
	bibleorgsys.RegisterSchema(schema)
}

// Schema returns the marker schema.
func Schema() *bibleorgsys.Schema {
	return schema
}
