package validator

import (
	"errors"
	"reflect"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Violation describes a single failed rule with translation support.
type Violation struct {
	Code           string
	Params         Params
	Message        string
	TranslationKey string
}

// String renders the violation as "code: {params}".
func (v Violation) String() string {
	return v.Code + ": " + v.Params.String()
}

// Rule represents a single validation rule bound to a value.
type Rule struct {
	Check func() bool
	Error Violation
}

// Record is implemented by every type that can be validated. Rules returns
// the record's field table in declaration order; the order is the order in
// which failures are reported.
//
//	func (a Address) Rules() validator.Fields {
//	    return validator.Fields{
//	        validator.Field("street", validator.Length(a.Street, 2, 10)),
//	        validator.Field("street_no", validator.Range(a.StreetNo, 1)),
//	    }
//	}
type Record interface {
	Rules() Fields
}

// Fields is a record's ordered rule table.
type Fields []FieldRules

type fieldKind uint8

const (
	kindScalar fieldKind = iota
	kindNested
	kindEach
)

// FieldRules is one row of a rule table: a field name plus either scalar
// rules, a nested record, or a list of records.
type FieldRules struct {
	name   string
	kind   fieldKind
	rules  []Rule
	nested Record
	items  []Record
}

// Name returns the field name the row reports under.
func (f FieldRules) Name() string {
	return f.name
}

// Field declares scalar rules for a field. All rules are evaluated, in order.
func Field(name string, rules ...Rule) FieldRules {
	return FieldRules{name: name, kind: kindScalar, rules: rules}
}

// Nested delegates validation of a field to the record's own rules.
// A nil record is skipped.
func Nested(name string, rec Record) FieldRules {
	return FieldRules{name: name, kind: kindNested, nested: rec}
}

// Each validates every element of a list field. Failures are keyed by the
// 0-based element index.
func Each[T Record](name string, items []T) FieldRules {
	recs := make([]Record, len(items))
	for i, item := range items {
		recs[i] = item
	}
	return FieldRules{name: name, kind: kindEach, items: recs}
}

// Validate applies the record's rule table and returns nil when every rule
// passes, or a *StructNode holding only the failed branches.
func Validate(rec Record) error {
	if node := validateRecord(rec); node != nil {
		return node
	}
	return nil
}

func validateRecord(rec Record) *StructNode {
	if isNilRecord(rec) {
		return nil
	}

	var node StructNode
	for _, f := range rec.Rules() {
		if child := f.validate(); child != nil {
			node.Fields = append(node.Fields, StructField{Name: f.name, Node: child})
		}
	}

	if len(node.Fields) == 0 {
		return nil
	}
	return &node
}

// validate returns nil (an untyped nil interface) when the field passes.
func (f FieldRules) validate() Node {
	switch f.kind {
	case kindScalar:
		var violations []Violation
		for _, rule := range f.rules {
			if !rule.Check() {
				violations = append(violations, rule.Error)
			}
		}
		if len(violations) > 0 {
			return &FieldNode{Violations: violations}
		}

	case kindNested:
		if child := validateRecord(f.nested); child != nil {
			return child
		}

	case kindEach:
		var list ListNode
		for i, item := range f.items {
			if child := validateRecord(item); child != nil {
				list.Items = append(list.Items, ListItem{Index: i, Node: child})
			}
		}
		if len(list.Items) > 0 {
			return &list
		}
	}

	return nil
}

func isNilRecord(rec Record) bool {
	if rec == nil {
		return true
	}
	rv := reflect.ValueOf(rec)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// ExtractValidationErrors extracts the validation tree from an error.
func ExtractValidationErrors(err error) *StructNode {
	if err == nil {
		return nil
	}

	var node *StructNode
	if errors.As(err, &node) {
		return node
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
