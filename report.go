package bibleorgsys

import (
	"go.uber.org/multierr"

	boserrors "github.com/alerque/BibleOrgSys/errors"
)

// Report is the outcome of one validation run: every violation found, in
// (entry order, rule order) with catalog-wide violations last. Reports are
// fresh per run and not mutated after construction.
type Report struct {
	RunID      string
	Entity     string
	Violations []boserrors.Violation
}

// Ok reports whether the run found no violations.
func (r *Report) Ok() bool {
	return len(r.Violations) == 0
}

// Len returns the number of violations.
func (r *Report) Len() int {
	return len(r.Violations)
}

// Err returns the violations combined into a single error, or nil when the
// report is clean. Individual violations are recoverable with
// multierr.Errors.
func (r *Report) Err() error {
	if len(r.Violations) == 0 {
		return nil
	}
	errs := make([]error, len(r.Violations))
	for i := range r.Violations {
		errs[i] = &r.Violations[i]
	}
	return multierr.Combine(errs...)
}
