package binder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

const msgEOF = "EOF while parsing a value"

// DecodeOption configures DecodeJSON.
type DecodeOption func(*decoder)

// WithDisallowUnknownFields makes object keys that do not map to a struct
// field a decode failure. By default unknown keys are ignored.
func WithDisallowUnknownFields() DecodeOption {
	return func(d *decoder) { d.disallowUnknown = true }
}

// DecodeJSON decodes data into v, which must be a non-nil pointer. The Go
// type behind v is the shape the document must match.
//
// On failure the returned error is a *DecodeError whose Path points at the
// exact value that could not be decoded, e.g. "pets[2].name". Struct fields
// are visited in declaration order, so the same input always fails at the
// same path.
func DecodeJSON(data []byte, v any, opts ...DecodeOption) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrInvalidTarget
	}

	tree, err := parseTree(data)
	if err != nil {
		return err
	}

	d := &decoder{}
	for _, opt := range opts {
		opt(d)
	}

	// Decode into a scratch value so a failed decode leaves v untouched.
	target := reflect.New(rv.Elem().Type()).Elem()
	if err := d.value(tree, target); err != nil {
		return err
	}
	rv.Elem().Set(target)
	return nil
}

// parseTree turns raw bytes into a tree of map[string]any, []any,
// json.Number, string, bool and nil.
func parseTree(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &DecodeError{Message: msgEOF}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, syntaxFailure(data, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, &DecodeError{Message: "trailing characters after JSON value"}
	}

	return tree, nil
}

// syntaxFailure reports running out of input as EOF; the parser itself
// describes that case as an invalid NUL character.
func syntaxFailure(data []byte, err error) *DecodeError {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &DecodeError{Message: msgEOF}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		if truncated(data, syntaxErr) {
			return &DecodeError{Message: msgEOF}
		}
		return &DecodeError{Message: fmt.Sprintf("%s at offset %d", syntaxErr.Error(), syntaxErr.Offset)}
	}
	if endOfInput(err.Error()) {
		return &DecodeError{Message: msgEOF}
	}
	return &DecodeError{Message: err.Error()}
}

func truncated(data []byte, err *json.SyntaxError) bool {
	if err.Offset >= int64(len(bytes.TrimRight(data, " \t\r\n"))) {
		return true
	}
	return endOfInput(err.Error())
}

func endOfInput(msg string) bool {
	return strings.ContainsRune(msg, 0) ||
		strings.Contains(msg, `\x00`) ||
		strings.Contains(msg, `\u0000`) ||
		strings.Contains(msg, "unexpected end of JSON input")
}

type decoder struct {
	disallowUnknown bool
	path            Path
}

func (d *decoder) fail(format string, args ...any) error {
	return &DecodeError{
		Path:    slices.Clone(d.path),
		Message: fmt.Sprintf(format, args...),
	}
}

func (d *decoder) invalidType(node any, t reflect.Type) error {
	return d.fail("invalid type: %s, expected %s", describe(node), expected(t))
}

func (d *decoder) push(s Segment) { d.path = append(d.path, s) }
func (d *decoder) pop()           { d.path = d.path[:len(d.path)-1] }

var unmarshalerType = reflect.TypeFor[json.Unmarshaler]()

func (d *decoder) value(node any, rv reflect.Value) error {
	t := rv.Type()

	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return d.unmarshaler(node, rv)
	}

	switch t.Kind() {
	case reflect.Pointer:
		if node == nil {
			rv.SetZero()
			return nil
		}
		elem := reflect.New(t.Elem())
		if err := d.value(node, elem.Elem()); err != nil {
			return err
		}
		rv.Set(elem)
		return nil

	case reflect.Interface:
		if node == nil {
			rv.SetZero()
			return nil
		}
		nv := reflect.ValueOf(node)
		if !nv.Type().AssignableTo(t) {
			return d.invalidType(node, t)
		}
		rv.Set(nv)
		return nil

	case reflect.Struct:
		obj, ok := node.(map[string]any)
		if !ok {
			return d.invalidType(node, t)
		}
		return d.object(obj, rv)

	case reflect.Slice:
		return d.slice(node, rv)

	case reflect.Array:
		return d.array(node, rv)

	case reflect.Map:
		return d.mapping(node, rv)

	case reflect.String:
		s, ok := node.(string)
		if !ok {
			return d.invalidType(node, t)
		}
		rv.SetString(s)
		return nil

	case reflect.Bool:
		b, ok := node.(bool)
		if !ok {
			return d.invalidType(node, t)
		}
		rv.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return d.integer(node, rv)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return d.unsigned(node, rv)

	case reflect.Float32, reflect.Float64:
		return d.float(node, rv)
	}

	return d.fail("unsupported type %s", t)
}

func (d *decoder) object(obj map[string]any, rv reflect.Value) error {
	t := rv.Type()
	known := make(map[string]struct{}, t.NumField())

	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, optional, skip := parseFieldTag(sf)
		if skip {
			continue
		}
		known[name] = struct{}{}

		node, present := obj[name]
		if !present {
			if optional || sf.Type.Kind() == reflect.Pointer {
				continue
			}
			return d.fail("missing field `%s`", name)
		}

		d.push(FieldSegment(name))
		if err := d.value(node, rv.Field(i)); err != nil {
			return err
		}
		d.pop()
	}

	if d.disallowUnknown {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			if _, ok := known[k]; !ok {
				keys = append(keys, k)
			}
		}
		if len(keys) > 0 {
			slices.Sort(keys)
			return d.fail("unknown field `%s`", keys[0])
		}
	}

	return nil
}

func (d *decoder) slice(node any, rv reflect.Value) error {
	items, ok := node.([]any)
	if !ok {
		return d.invalidType(node, rv.Type())
	}

	out := reflect.MakeSlice(rv.Type(), len(items), len(items))
	for i, item := range items {
		d.push(IndexSegment(i))
		if err := d.value(item, out.Index(i)); err != nil {
			return err
		}
		d.pop()
	}
	rv.Set(out)
	return nil
}

func (d *decoder) array(node any, rv reflect.Value) error {
	items, ok := node.([]any)
	if !ok {
		return d.invalidType(node, rv.Type())
	}
	if len(items) != rv.Len() {
		return d.fail("invalid length %d, expected an array of length %d", len(items), rv.Len())
	}

	for i, item := range items {
		d.push(IndexSegment(i))
		if err := d.value(item, rv.Index(i)); err != nil {
			return err
		}
		d.pop()
	}
	return nil
}

func (d *decoder) mapping(node any, rv reflect.Value) error {
	t := rv.Type()
	if t.Key().Kind() != reflect.String {
		return d.fail("unsupported map key type %s", t.Key())
	}

	obj, ok := node.(map[string]any)
	if !ok {
		return d.invalidType(node, t)
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := reflect.MakeMapWithSize(t, len(obj))
	for _, k := range keys {
		elem := reflect.New(t.Elem()).Elem()
		d.push(FieldSegment(k))
		if err := d.value(obj[k], elem); err != nil {
			return err
		}
		d.pop()
		out.SetMapIndex(reflect.ValueOf(k).Convert(t.Key()), elem)
	}
	rv.Set(out)
	return nil
}

func (d *decoder) integer(node any, rv reflect.Value) error {
	num, ok := node.(json.Number)
	if !ok || isFloatLiteral(num) {
		return d.invalidType(node, rv.Type())
	}

	n, err := strconv.ParseInt(string(num), 10, rv.Type().Bits())
	if err != nil {
		return d.fail("invalid value: integer `%s`, expected %s", num, expected(rv.Type()))
	}
	rv.SetInt(n)
	return nil
}

func (d *decoder) unsigned(node any, rv reflect.Value) error {
	num, ok := node.(json.Number)
	if !ok || isFloatLiteral(num) {
		return d.invalidType(node, rv.Type())
	}

	n, err := strconv.ParseUint(string(num), 10, rv.Type().Bits())
	if err != nil {
		return d.fail("invalid value: integer `%s`, expected %s", num, expected(rv.Type()))
	}
	rv.SetUint(n)
	return nil
}

func (d *decoder) float(node any, rv reflect.Value) error {
	num, ok := node.(json.Number)
	if !ok {
		return d.invalidType(node, rv.Type())
	}

	f, err := strconv.ParseFloat(string(num), rv.Type().Bits())
	if err != nil {
		return d.fail("invalid value: floating point `%s`, expected %s", num, expected(rv.Type()))
	}
	rv.SetFloat(f)
	return nil
}

func (d *decoder) unmarshaler(node any, rv reflect.Value) error {
	raw, err := json.Marshal(node)
	if err != nil {
		return d.fail("%v", err)
	}
	u := rv.Addr().Interface().(json.Unmarshaler)
	if err := u.UnmarshalJSON(raw); err != nil {
		return d.fail("invalid value: %s, %v", describe(node), err)
	}
	return nil
}

func isFloatLiteral(n json.Number) bool {
	return strings.ContainsAny(string(n), ".eE")
}

// describe names what was found in the document.
func describe(node any) string {
	switch v := node.(type) {
	case nil:
		return "null"
	case string:
		return "string " + strconv.Quote(v)
	case bool:
		return fmt.Sprintf("boolean `%t`", v)
	case json.Number:
		if isFloatLiteral(v) {
			return fmt.Sprintf("floating point `%s`", v)
		}
		return fmt.Sprintf("integer `%s`", v)
	case map[string]any:
		return "map"
	case []any:
		return "sequence"
	}
	return fmt.Sprintf("%T", node)
}

// expected names what the target type accepts.
func expected(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Struct:
		if t.Name() == "" {
			return "a struct"
		}
		return "struct " + t.Name()
	case reflect.Slice, reflect.Array:
		return "a sequence"
	case reflect.Map:
		return "a map"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "unsigned integer (" + t.Kind().String() + ")"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer (" + t.Kind().String() + ")"
	case reflect.Float32, reflect.Float64:
		return "floating point (" + t.Kind().String() + ")"
	case reflect.Pointer:
		return expected(t.Elem())
	}
	return t.String()
}
