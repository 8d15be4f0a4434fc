// Package bookorder provides book ordering system catalogs: the entry
// schema, file loaders for the ordering tables, and a typed wrapper that
// answers position and membership queries for one named system.
package bookorder

import (
	bibleorgsys "github.com/alerque/BibleOrgSys"
)

// EntityName identifies the book order schema in the registry.
const EntityName = "book-order"

var schema = bibleorgsys.MustSchema(EntityName, "id",
	[]bibleorgsys.Rule{
		bibleorgsys.NumericRange("id", 1, 120).Required(),
		bibleorgsys.FixedLength("book", 3).Required(),
		bibleorgsys.Pattern("book", "[A-Z][A-Z0-9]{2}").Required(),
	},
	bibleorgsys.WithUniqueKey("book"),
	bibleorgsys.WithLookups("book"),
	bibleorgsys.WithCardinality(1, 120),
)

func init() {
	bibleorgsys.RegisterSchema(schema)
}

// Schema returns the book order schema.
func Schema() *bibleorgsys.Schema {
	return schema
}
