package bookorder_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	bibleorgsys "github.com/alerque/BibleOrgSys"
	"github.com/alerque/BibleOrgSys/bookorder"
	boserrors "github.com/alerque/BibleOrgSys/errors"
)

func orderEntries() []bibleorgsys.RawEntry {
	return []bibleorgsys.RawEntry{
		{"id": "40", "book": "MAT"},
		{"id": "1", "book": "GEN"},
		{"id": "2", "book": "EXO"},
		{"id": "9", "book": "SA1"},
		{"id": "66", "book": "REV"},
	}
}

func order(t *testing.T) *bookorder.System {
	t.Helper()
	system, err := bookorder.New("TestOrder", orderEntries())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return system
}

func TestBookAt(t *testing.T) {
	system := order(t)

	tests := []struct {
		position int
		want     string
	}{
		{1, "GEN"},
		{9, "SA1"},
		{40, "MAT"},
		{66, "REV"},
	}
	for _, tt := range tests {
		got, ok := system.BookAt(tt.position)
		if !ok || got != tt.want {
			t.Fatalf("BookAt(%d) = %q, %v, want %q, true", tt.position, got, ok, tt.want)
		}
	}

	if _, ok := system.BookAt(3); ok {
		t.Fatal("BookAt(3) ok = true, want false for an unused position")
	}
}

func TestPositionOf(t *testing.T) {
	system := order(t)

	if position, ok := system.PositionOf("GEN"); !ok || position != 1 {
		t.Fatalf("PositionOf(GEN) = %d, %v, want 1, true", position, ok)
	}
	if position, ok := system.PositionOf("MAT"); !ok || position != 40 {
		t.Fatalf("PositionOf(MAT) = %d, %v, want 40, true", position, ok)
	}
	if _, ok := system.PositionOf("XYZ"); ok {
		t.Fatal("PositionOf(XYZ) ok = true, want false")
	}

	if !system.Contains("SA1") {
		t.Fatal("Contains(SA1) = false, want true")
	}
	if system.Contains("1SA") {
		t.Fatal("Contains(1SA) = true, want false")
	}
}

func TestBooksInPositionOrder(t *testing.T) {
	system := order(t)

	want := []string{"GEN", "EXO", "SA1", "MAT", "REV"}
	if diff := cmp.Diff(want, system.Books()); diff != "" {
		t.Fatalf("Books() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateCleanSystem(t *testing.T) {
	system := order(t)

	if got, want := system.Len(), 5; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if system.Name() != "TestOrder" {
		t.Fatalf("Name() = %q, want %q", system.Name(), "TestOrder")
	}

	report, err := system.Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !report.Ok() {
		t.Fatalf("Ok() = false, violations = %v", report.Violations)
	}
}

func TestValidatePositionBounds(t *testing.T) {
	system, err := bookorder.New("Bounds", []bibleorgsys.RawEntry{
		{"id": "0", "book": "AAA"},
		{"id": "1", "book": "GEN"},
		{"id": "120", "book": "REV"},
		{"id": "121", "book": "BBB"},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	report, err := system.Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if report.Len() != 2 {
		t.Fatalf("Len() = %d, want 2, violations = %v", report.Len(), report.Violations)
	}
	for _, v := range report.Violations {
		if v.Code != string(boserrors.ErrNumericRange) {
			t.Fatalf("Code = %q, want %q", v.Code, boserrors.ErrNumericRange)
		}
	}
	if report.Violations[0].Key != "0" || report.Violations[1].Key != "121" {
		t.Fatalf("violation keys = %q, %q, want 0, 121", report.Violations[0].Key, report.Violations[1].Key)
	}
}

func TestValidateBookCodeShape(t *testing.T) {
	system, err := bookorder.New("Shape", []bibleorgsys.RawEntry{
		{"id": "1", "book": "GEN"},
		{"id": "2", "book": "1SA"},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	report, err := system.Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if report.Len() != 1 {
		t.Fatalf("Len() = %d, want 1, violations = %v", report.Len(), report.Violations)
	}
	v := report.Violations[0]
	if v.Code != string(boserrors.ErrPattern) || v.Key != "2" {
		t.Fatalf("violation = %v, want pattern violation for entry 2", v)
	}
}

func TestValidateDuplicateBook(t *testing.T) {
	system, err := bookorder.New("Dup", []bibleorgsys.RawEntry{
		{"id": "1", "book": "GEN"},
		{"id": "2", "book": "GEN"},
	})
	if err != nil {
		t.Fatalf("New() error = %v, duplicate book codes should load", err)
	}

	report, err := system.Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if report.Len() != 1 {
		t.Fatalf("Len() = %d, want 1, violations = %v", report.Len(), report.Violations)
	}
	v := report.Violations[0]
	if v.Code != string(boserrors.ErrUniqueKey) || v.Key != "2" {
		t.Fatalf("violation = %v, want unique-key violation for entry 2", v)
	}
}

func TestDuplicatePositionFailsLoad(t *testing.T) {
	_, err := bookorder.New("DupPos", []bibleorgsys.RawEntry{
		{"id": "1", "book": "GEN"},
		{"id": "1", "book": "EXO"},
	})
	if !errors.Is(err, boserrors.ErrDuplicateKey) {
		t.Fatalf("New() error = %v, want ErrDuplicateKey", err)
	}
}

func TestAliasedPositionKeepsFirstBook(t *testing.T) {
	system, err := bookorder.New("Aliased", []bibleorgsys.RawEntry{
		{"id": "40", "book": "MAT"},
		{"id": "040", "book": "XYZ"},
	})
	if err != nil {
		t.Fatalf("New() error = %v, distinct keys should load", err)
	}

	if diff := cmp.Diff([]string{"MAT"}, system.Books()); diff != "" {
		t.Fatalf("Books() mismatch (-want +got):\n%s", diff)
	}
	if book, ok := system.BookAt(40); !ok || book != "MAT" {
		t.Fatalf("BookAt(40) = %q, %v, want MAT, true", book, ok)
	}
	if _, ok := system.PositionOf("XYZ"); ok {
		t.Fatal("PositionOf(XYZ) ok = true, want false")
	}
}

func TestSystemsCollection(t *testing.T) {
	first, err := bookorder.New("KJV", orderEntries())
	if err != nil {
		t.Fatalf("New(KJV) error = %v", err)
	}
	second, err := bookorder.New("Luther", orderEntries())
	if err != nil {
		t.Fatalf("New(Luther) error = %v", err)
	}

	systems, err := bookorder.NewSystems(second, first)
	if err != nil {
		t.Fatalf("NewSystems() error = %v", err)
	}
	if diff := cmp.Diff([]string{"KJV", "Luther"}, systems.Names()); diff != "" {
		t.Fatalf("Names() mismatch (-want +got):\n%s", diff)
	}
	if got, ok := systems.System("KJV"); !ok || got != first {
		t.Fatal("System(KJV) did not return the added system")
	}
	if _, ok := systems.System("Vulgate"); ok {
		t.Fatal("System(Vulgate) ok = true, want false")
	}

	_, err = bookorder.NewSystems(first, first)
	if _, ok := boserrors.AsConfig(err); !ok {
		t.Fatalf("NewSystems(dup) error = %v, want a configuration error", err)
	}
}

func TestSchemaIsRegistered(t *testing.T) {
	s, ok := bibleorgsys.SchemaFor(bookorder.EntityName)
	if !ok {
		t.Fatalf("SchemaFor(%q) ok = false, want true", bookorder.EntityName)
	}
	if s != bookorder.Schema() {
		t.Fatal("SchemaFor() returned a different schema than Schema()")
	}
}
