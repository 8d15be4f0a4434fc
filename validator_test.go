package bibleorgsys_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"

	bibleorgsys "github.com/alerque/BibleOrgSys"
	boserrors "github.com/alerque/BibleOrgSys/errors"
)

func TestValidateCleanCatalog(t *testing.T) {
	schema := languageSchema(t)
	catalog, err := bibleorgsys.Load(schema, languageEntries())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	report, err := bibleorgsys.Validate(catalog, schema)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !report.Ok() {
		t.Fatalf("Ok() = false, violations = %v", report.Violations)
	}
	if report.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", report.Len())
	}
	if report.Err() != nil {
		t.Fatalf("Err() = %v, want nil", report.Err())
	}
	if report.RunID == "" {
		t.Fatal("RunID = empty, want generated id")
	}
	if report.Entity != "language" {
		t.Fatalf("Entity = %q, want %q", report.Entity, "language")
	}
}

func TestValidateFieldViolations(t *testing.T) {
	schema := languageSchema(t)
	raw := []bibleorgsys.RawEntry{
		{"id": "en", "status": "active", "name": "English"},
		{"id": "deu", "status": "Active"},
	}
	catalog, err := bibleorgsys.Load(schema, raw)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	report, err := bibleorgsys.Validate(catalog, schema)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	var got []string
	for _, v := range report.Violations {
		got = append(got, v.Code+" "+v.Key+"."+v.Field)
	}
	want := []string{
		"length-exact en.id",
		"enumeration en.status",
		"field-missing deu.name",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("violation order mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateEnumerationIsCaseSensitive(t *testing.T) {
	schema := languageSchema(t)

	tests := []struct {
		status string
		ok     bool
	}{
		{"Active", true},
		{"active", false},
		{"ACTIVE", false},
		{"Retired", true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			raw := []bibleorgsys.RawEntry{
				{"id": "eng", "status": tt.status, "name": "English"},
			}
			catalog, err := bibleorgsys.Load(schema, raw)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			report, err := bibleorgsys.Validate(catalog, schema)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if report.Ok() != tt.ok {
				t.Fatalf("Ok() = %v, want %v (violations %v)", report.Ok(), tt.ok, report.Violations)
			}
		})
	}
}

func TestValidateUniqueKeyFlagsLaterEntry(t *testing.T) {
	schema := languageSchema(t)
	raw := []bibleorgsys.RawEntry{
		{"id": "eng", "part1_code": "en", "status": "Active", "name": "English"},
		{"id": "fra", "part1_code": "en", "status": "Active", "name": "French"},
	}
	catalog, err := bibleorgsys.Load(schema, raw)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	report, err := bibleorgsys.Validate(catalog, schema)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if report.Len() != 1 {
		t.Fatalf("Len() = %d, want exactly 1, violations = %v", report.Len(), report.Violations)
	}

	v := report.Violations[0]
	if v.Code != string(boserrors.ErrUniqueKey) {
		t.Fatalf("Code = %q, want %q", v.Code, boserrors.ErrUniqueKey)
	}
	if v.Key != "fra" {
		t.Fatalf("Key = %q, want the later entry %q", v.Key, "fra")
	}
	if v.Field != "part1_code" {
		t.Fatalf("Field = %q, want %q", v.Field, "part1_code")
	}
}

func TestValidateNumericRangeBounds(t *testing.T) {
	schema, err := bibleorgsys.NewSchema("book-order", "id",
		[]bibleorgsys.Rule{
			bibleorgsys.NumericRange("id", 1, 120).Required(),
			bibleorgsys.FixedLength("book", 3).Required(),
		},
		bibleorgsys.WithUniqueKey("book"),
	)
	if err != nil {
		t.Fatalf("NewSchema() error = %v", err)
	}

	tests := []struct {
		id string
		ok bool
	}{
		{"1", true},
		{"120", true},
		{"0", false},
		{"121", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			raw := []bibleorgsys.RawEntry{
				{"id": tt.id, "book": "GEN"},
			}
			catalog, err := bibleorgsys.Load(schema, raw)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			report, err := bibleorgsys.Validate(catalog, schema)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if report.Ok() != tt.ok {
				t.Fatalf("Ok() = %v, want %v (violations %v)", report.Ok(), tt.ok, report.Violations)
			}
		})
	}
}

func TestValidateCardinality(t *testing.T) {
	schema, err := bibleorgsys.NewSchema("book-order", "id",
		[]bibleorgsys.Rule{
			bibleorgsys.NumericRange("id", 1, 120).Required(),
		},
		bibleorgsys.WithCardinality(2, 3),
	)
	if err != nil {
		t.Fatalf("NewSchema() error = %v", err)
	}

	tests := []struct {
		name    string
		entries int
		ok      bool
	}{
		{"below minimum", 1, false},
		{"at minimum", 2, true},
		{"at maximum", 3, true},
		{"above maximum", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := make([]bibleorgsys.RawEntry, tt.entries)
			for i := range raw {
				raw[i] = bibleorgsys.RawEntry{"id": string(rune('1' + i))}
			}
			catalog, err := bibleorgsys.Load(schema, raw)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			report, err := bibleorgsys.Validate(catalog, schema)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if report.Ok() != tt.ok {
				t.Fatalf("Ok() = %v, want %v (violations %v)", report.Ok(), tt.ok, report.Violations)
			}
			if !tt.ok && report.Violations[0].Code != string(boserrors.ErrCardinality) {
				t.Fatalf("Code = %q, want %q", report.Violations[0].Code, boserrors.ErrCardinality)
			}
		})
	}
}

func TestValidateEntityMismatchIsConfigError(t *testing.T) {
	schema := languageSchema(t)
	catalog, err := bibleorgsys.Load(schema, languageEntries())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	other, err := bibleorgsys.NewSchema("marker", "marker",
		[]bibleorgsys.Rule{bibleorgsys.MinMaxLength("marker", 1, 6).Required()},
	)
	if err != nil {
		t.Fatalf("NewSchema() error = %v", err)
	}

	report, err := bibleorgsys.Validate(catalog, other)
	if err == nil {
		t.Fatal("Validate() error = nil, want config error")
	}
	if report != nil {
		t.Fatal("Validate() report != nil, want nil on config error")
	}
	cfg, ok := boserrors.AsConfig(err)
	if !ok {
		t.Fatalf("Validate() error = %v, want ConfigError", err)
	}
	if cfg.Op != "validate catalog" {
		t.Fatalf("Op = %q, want %q", cfg.Op, "validate catalog")
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	schema := languageSchema(t)
	raw := []bibleorgsys.RawEntry{
		{"id": "eng", "part1_code": "en", "status": "Active", "name": "English"},
		{"id": "fra", "part1_code": "en", "status": "active", "name": ""},
	}
	catalog, err := bibleorgsys.Load(schema, raw)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	validator := bibleorgsys.NewValidator()
	first, err := validator.Run(catalog, schema, bibleorgsys.WithRunID("run-1"))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	second, err := validator.Run(catalog, schema, bibleorgsys.WithRunID("run-1"))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if diff := cmp.Diff(first.Violations, second.Violations); diff != "" {
		t.Fatalf("repeated Run() mismatch (-first +second):\n%s", diff)
	}
}

func TestReportErrCombinesViolations(t *testing.T) {
	schema := languageSchema(t)
	raw := []bibleorgsys.RawEntry{
		{"id": "en", "status": "Active", "name": "English"},
		{"id": "deu", "status": "dormant", "name": "German"},
	}
	catalog, err := bibleorgsys.Load(schema, raw)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	report, err := bibleorgsys.Validate(catalog, schema)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	combined := report.Err()
	if combined == nil {
		t.Fatal("Err() = nil, want combined error")
	}
	if got, want := len(multierr.Errors(combined)), report.Len(); got != want {
		t.Fatalf("multierr.Errors() len = %d, want %d", got, want)
	}
}

func TestValidateWithRunID(t *testing.T) {
	schema := languageSchema(t)
	catalog, err := bibleorgsys.Load(schema, languageEntries())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	report, err := bibleorgsys.Validate(catalog, schema, bibleorgsys.WithRunID("nightly-7"))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if report.RunID != "nightly-7" {
		t.Fatalf("RunID = %q, want %q", report.RunID, "nightly-7")
	}
}

func TestRunWithNilLogger(t *testing.T) {
	schema := languageSchema(t)
	catalog, err := bibleorgsys.Load(schema, languageEntries(), bibleorgsys.WithLogger(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	report, err := bibleorgsys.NewValidator().Run(catalog, schema, bibleorgsys.WithLogger(nil))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !report.Ok() {
		t.Fatalf("Ok() = false, violations = %v", report.Violations)
	}
}
