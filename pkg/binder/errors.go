package binder

import (
	"errors"
	"strconv"
	"strings"
)

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToReadBody     = errors.New("failed to read request body")
	ErrBodyTooLarge         = errors.New("request body too large")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrInvalidTarget        = errors.New("decode target must be a non-nil pointer")
)

// BodyError reports a failure to receive or deserialize the request body
// before any path information is available. Op is one of the package
// sentinels; Cause is the underlying error, if any.
type BodyError struct {
	Op    error
	Cause error
}

func (e *BodyError) Error() string {
	if e.Cause == nil {
		return e.Op.Error()
	}
	return e.Op.Error() + ": " + e.Cause.Error()
}

func (e *BodyError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Op}
	}
	return []error{e.Op, e.Cause}
}

// Segment is a single step of a decode path: either a struct/map field name
// or a 0-based array index.
type Segment struct {
	Field string
	Index int
}

// FieldSegment returns a named path segment.
func FieldSegment(name string) Segment {
	return Segment{Field: name, Index: -1}
}

// IndexSegment returns an array index path segment.
func IndexSegment(i int) Segment {
	return Segment{Index: i}
}

// IsIndex reports whether the segment addresses an array element.
func (s Segment) IsIndex() bool {
	return s.Index >= 0
}

func (s Segment) String() string {
	if s.IsIndex() {
		return strconv.Itoa(s.Index)
	}
	return s.Field
}

// Path is the ordered chain of segments from the document root to a value.
type Path []Segment

// String renders the path as "address.street_no" or "pets[2].name".
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if s.IsIndex() {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.Index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.Field)
	}
	return b.String()
}

// Strings returns the raw segments, e.g. ["pets", "2", "name"].
func (p Path) Strings() []string {
	out := make([]string, len(p))
	for i, s := range p {
		out[i] = s.String()
	}
	return out
}

// DecodeError is returned by DecodeJSON when the input cannot be coerced
// into the target shape. Path is empty for failures that are not tied to a
// particular value (syntax errors, top-level type mismatches).
type DecodeError struct {
	Path    Path
	Message string
}

func (e *DecodeError) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return e.Path.String() + ": " + e.Message
}

// Is lets errors.Is(err, ErrFailedToParseJSON) match decode failures.
func (e *DecodeError) Is(target error) bool {
	return target == ErrFailedToParseJSON
}

// ExtractDecodeError returns the DecodeError wrapped in err, or nil.
func ExtractDecodeError(err error) *DecodeError {
	var de *DecodeError
	if errors.As(err, &de) {
		return de
	}
	return nil
}
