package bibleorgsys

import (
	boserrors "github.com/alerque/BibleOrgSys/errors"
	"github.com/alerque/BibleOrgSys/internal/rules"
)

type ruleKind uint8

const (
	kindFixedLength ruleKind = iota
	kindMinMaxLength
	kindEnumeration
	kindNumericRange
	kindPattern
)

func (k ruleKind) String() string {
	switch k {
	case kindFixedLength:
		return "FixedLength"
	case kindMinMaxLength:
		return "MinMaxLength"
	case kindEnumeration:
		return "Enumeration"
	case kindNumericRange:
		return "NumericRange"
	case kindPattern:
		return "Pattern"
	default:
		return "unknown"
	}
}

func (k ruleKind) code() boserrors.Code {
	switch k {
	case kindFixedLength:
		return boserrors.ErrLengthExact
	case kindMinMaxLength:
		return boserrors.ErrLengthRange
	case kindEnumeration:
		return boserrors.ErrEnumeration
	case kindNumericRange:
		return boserrors.ErrNumericRange
	default:
		return boserrors.ErrPattern
	}
}

// Rule is one declarative constraint on one field. Rules are built through
// the kind constructors and attached to a schema; parameters are checked when
// the schema is built. The zero Rule is not valid.
type Rule struct {
	field    FieldID
	kind     ruleKind
	required bool

	length   int
	min, max int
	values   []string
	expr     string
}

// FixedLength constrains the field to exactly n characters.
func FixedLength(field FieldID, n int) Rule {
	return Rule{field: field, kind: kindFixedLength, length: n}
}

// MinMaxLength constrains the field length to [minLen, maxLen] characters.
// A maxLen of zero leaves the length unbounded above.
func MinMaxLength(field FieldID, minLen, maxLen int) Rule {
	return Rule{field: field, kind: kindMinMaxLength, min: minLen, max: maxLen}
}

// Enumeration constrains the field to a closed, case-sensitive value set.
func Enumeration(field FieldID, values ...string) Rule {
	return Rule{field: field, kind: kindEnumeration, values: values}
}

// NumericRange constrains the field to a decimal integer in [minVal, maxVal].
func NumericRange(field FieldID, minVal, maxVal int) Rule {
	return Rule{field: field, kind: kindNumericRange, min: minVal, max: maxVal}
}

// Pattern constrains the field to match a regular expression over the whole
// value.
func Pattern(field FieldID, expr string) Rule {
	return Rule{field: field, kind: kindPattern, expr: expr}
}

// Required marks the field as mandatory: an absent field is a violation. An
// absent optional field skips the rule.
func (r Rule) Required() Rule {
	r.required = true
	return r
}

// Field returns the field the rule constrains.
func (r Rule) Field() FieldID {
	return r.field
}

// compiledRule pairs a rule with its built checker and the violation code its
// failures carry.
type compiledRule struct {
	field    FieldID
	required bool
	code     boserrors.Code
	expected []string
	checker  rules.Checker
}

func (r Rule) compile() (compiledRule, error) {
	var (
		checker rules.Checker
		err     error
	)
	switch r.kind {
	case kindFixedLength:
		checker, err = rules.NewFixedLength(r.length)
	case kindMinMaxLength:
		checker, err = rules.NewLengthRange(r.min, r.max)
	case kindEnumeration:
		checker, err = rules.NewEnumeration(r.values)
	case kindNumericRange:
		checker, err = rules.NewNumericRange(r.min, r.max)
	case kindPattern:
		checker, err = rules.NewPattern(r.expr)
	}
	if err != nil {
		return compiledRule{}, err
	}

	compiled := compiledRule{
		field:    r.field,
		required: r.required,
		code:     r.kind.code(),
		checker:  checker,
	}
	if r.kind == kindEnumeration {
		compiled.expected = r.values
	}
	return compiled, nil
}
