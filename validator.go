package bibleorgsys

import (
	"github.com/google/uuid"

	boserrors "github.com/alerque/BibleOrgSys/errors"
)

// Validator applies a schema to a catalog and collects every violation
// found. A validator is stateless and reusable; data problems never abort a
// run.
type Validator struct {
	cfg config
}

// NewValidator builds a validator. Options set here apply to every run.
func NewValidator(opts ...Option) *Validator {
	return &Validator{cfg: applyOptions(opts)}
}

// Run validates the catalog against the schema: every entry in catalog
// order, rules in declaration order, then catalog-wide invariants. The
// report is complete and deterministic; rerunning on an unchanged pair
// produces identical contents. The only error is a configuration mismatch
// between catalog and schema.
func (v *Validator) Run(catalog *Catalog, schema *Schema, opts ...Option) (*Report, error) {
	cfg := v.cfg
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	cfg.fillDefaults()

	if catalog == nil {
		return nil, boserrors.NewConfigError("validate catalog", "catalog must not be nil")
	}
	if schema == nil {
		return nil, boserrors.NewConfigError("validate catalog", "schema must not be nil")
	}
	if catalog.entity != schema.entity {
		return nil, boserrors.NewConfigError("validate catalog", "catalog entity %q does not match schema entity %q", catalog.entity, schema.entity)
	}

	runID := cfg.runID
	if runID == "" {
		runID = uuid.NewString()
	}

	var violations []boserrors.Violation
	for _, entry := range catalog.entries {
		violations = append(violations, schema.ValidateEntry(entry)...)
	}
	violations = append(violations, schema.validateCatalog(catalog)...)

	cfg.logger.Infof("validated %s catalog %s: run %s found %d violations", catalog.entity, catalog.id, runID, len(violations))
	return &Report{RunID: runID, Entity: catalog.entity, Violations: violations}, nil
}

// Validate runs a default validator over the catalog and schema.
func Validate(catalog *Catalog, schema *Schema, opts ...Option) (*Report, error) {
	return NewValidator(opts...).Run(catalog, schema)
}
