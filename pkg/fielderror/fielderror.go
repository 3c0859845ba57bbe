package fielderror

import (
	"strings"

	"github.com/dmitrymomot/reqvalidate/pkg/binder"
	"github.com/dmitrymomot/reqvalidate/pkg/validator"
)

// FieldError is the externally visible unit of a failed request: one field
// path and its messages, in report order.
type FieldError struct {
	Field       string   `json:"field"`
	FieldErrors []string `json:"field_errors"`
}

const (
	summarySeparator = " | "
	messageSeparator = ", "
)

// Option configures flattening.
type Option func(*flattener)

// WithoutListSummaries omits the joined summary entry emitted for list
// elements with nested structure.
func WithoutListSummaries() Option {
	return func(f *flattener) { f.summaries = false }
}

type flattener struct {
	summaries bool
	out       []FieldError
}

// Flatten converts a decode failure or a validation tree found in err's
// chain into field errors. It returns nil for any other error.
func Flatten(err error, opts ...Option) []FieldError {
	if err == nil {
		return nil
	}
	if de := binder.ExtractDecodeError(err); de != nil {
		return FromDecode(de)
	}
	if root := validator.ExtractValidationErrors(err); root != nil {
		return FromValidation(root, opts...)
	}
	return nil
}

// FromDecode returns the single entry describing a decode failure.
func FromDecode(de *binder.DecodeError) []FieldError {
	return []FieldError{{
		Field:       de.Path.String(),
		FieldErrors: []string{de.Message},
	}}
}

// FromValidation walks the tree depth-first in declaration order.
func FromValidation(root *validator.StructNode, opts ...Option) []FieldError {
	f := &flattener{summaries: true}
	for _, opt := range opts {
		opt(f)
	}
	if root != nil {
		f.walk(root, "")
	}
	return f.out
}

func (f *flattener) walk(n validator.Node, path string) {
	switch n := n.(type) {
	case *validator.FieldNode:
		f.out = append(f.out, FieldError{Field: path, FieldErrors: violationMessages(n.Violations)})

	case *validator.StructNode:
		for _, field := range n.Fields {
			f.walk(field.Node, validator.JoinField(path, field.Name))
		}

	case *validator.ListNode:
		for _, item := range n.Items {
			itemPath := validator.JoinIndex(path, item.Index)
			if _, scalar := item.Node.(*validator.FieldNode); !scalar && f.summaries {
				f.out = append(f.out, FieldError{Field: itemPath, FieldErrors: []string{summarize(item.Node)}})
			}
			f.walk(item.Node, itemPath)
		}
	}
}

// summarize joins the leaves below n as "path: errors: m1, m2 | ...", with
// paths relative to n.
func summarize(n validator.Node) string {
	var parts []string
	for _, leaf := range leaves(n, "") {
		parts = append(parts, leaf.Field+": errors: "+strings.Join(leaf.FieldErrors, messageSeparator))
	}
	return strings.Join(parts, summarySeparator)
}

func leaves(n validator.Node, path string) []FieldError {
	f := &flattener{summaries: false}
	f.walk(n, path)
	return f.out
}

func violationMessages(violations []validator.Violation) []string {
	messages := make([]string, len(violations))
	for i, v := range violations {
		messages[i] = v.String()
	}
	return messages
}
