package binder

import (
	"reflect"
	"strings"
)

// parseFieldTag reads the json tag of a struct field and returns the document
// key, whether the field may be absent (omitempty) and whether to skip it.
func parseFieldTag(field reflect.StructField) (name string, optional bool, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}

	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}

	for opt := range strings.SplitSeq(opts, ",") {
		if opt == "omitempty" || opt == "omitzero" {
			optional = true
		}
	}

	return name, optional, false
}
