// Package binder turns raw JSON request bodies into typed Go values and
// reports exactly where decoding broke.
//
// The package has two layers:
//
//   - DecodeJSON decodes a byte slice into a struct, walking the target type
//     as the shape description. When a value cannot be coerced (wrong type,
//     missing field, out-of-range number, malformed syntax) it returns a
//     *DecodeError carrying the full path to the offending value, such as
//     "address.street_no" or "pets[2].name".
//   - JSON and JSONPath are HTTP binders with the signature
//     func(*http.Request, any) error. They check the content type, enforce a
//     1MB body limit and then decode. Transport failures are returned as
//     *BodyError; JSONPath additionally returns *DecodeError for shape
//     mismatches.
//
// # Basic Usage
//
//	type Address struct {
//	    Street   string `json:"street"`
//	    StreetNo uint   `json:"street_no"`
//	}
//
//	var addr Address
//	err := binder.DecodeJSON([]byte(`{"street":"Main","street_no":"x"}`), &addr)
//	if de := binder.ExtractDecodeError(err); de != nil {
//	    fmt.Println(de.Path)    // street_no
//	    fmt.Println(de.Error()) // street_no: invalid type: string "x", expected unsigned integer (uint)
//	}
//
// # Field Rules
//
// Field names come from the json struct tag and fall back to the Go field
// name. Fields tagged "-" are skipped. A field may be absent from the
// document when it is a pointer or tagged omitempty; otherwise absence is a
// "missing field" failure. Unknown keys are ignored unless
// WithDisallowUnknownFields is given.
//
// # Error Handling
//
//   - ErrUnsupportedMediaType: Content-Type is not application/json
//   - ErrMissingContentType: no Content-Type header
//   - ErrFailedToReadBody: the body could not be read
//   - ErrBodyTooLarge: the body exceeds DefaultMaxJSONSize
//   - ErrFailedToParseJSON: the body is not valid JSON for the target
//
// All of them are reachable with errors.Is through *BodyError, and
// *DecodeError also matches ErrFailedToParseJSON.
package binder
