package binder

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// JSON creates a plain JSON binder. It decodes with the same rules as
// DecodeJSON but drops the field path: failures are returned as *BodyError
// wrapping ErrFailedToParseJSON, with the decode message as the cause.
//
// Example:
//
//	http.HandleFunc("/users", handler.Wrap(createUser,
//		handler.WithBinder[handler.Context, CreateUserRequest](binder.JSON()),
//	))
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		body, err := readJSONBody(r)
		if err != nil {
			return err
		}

		if err := DecodeJSON(body, v); err != nil {
			if de := ExtractDecodeError(err); de != nil {
				return &BodyError{Op: ErrFailedToParseJSON, Cause: errors.New(de.Message)}
			}
			return err
		}
		return nil
	}
}

// JSONPath creates a JSON binder that reports the exact path of any decoding
// failure. Transport problems are returned as *BodyError, shape mismatches as
// *DecodeError.
//
// Example:
//
//	http.HandleFunc("/users", handler.Wrap(createUser,
//		handler.WithBinder[handler.Context, CreateUserRequest](binder.JSONPath()),
//	))
func JSONPath(opts ...DecodeOption) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		body, err := readJSONBody(r)
		if err != nil {
			return err
		}
		return DecodeJSON(body, v, opts...)
	}
}

// readJSONBody checks the request metadata and reads the whole body.
func readJSONBody(r *http.Request) ([]byte, error) {
	if err := r.Context().Err(); err != nil {
		return nil, &BodyError{Op: ErrFailedToReadBody, Cause: err}
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, &BodyError{Op: ErrMissingContentType}
	}

	// Extract media type without parameters
	mediaType, _, _ := strings.Cut(contentType, ";")
	mediaType = strings.TrimSpace(mediaType)
	if !strings.EqualFold(mediaType, "application/json") {
		return nil, &BodyError{
			Op:    ErrUnsupportedMediaType,
			Cause: fmt.Errorf("got %s, expected application/json", mediaType),
		}
	}

	if r.Body == nil {
		return nil, &BodyError{Op: ErrFailedToReadBody, Cause: errors.New("empty body")}
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
	if err != nil {
		return nil, &BodyError{Op: ErrFailedToReadBody, Cause: err}
	}
	if len(body) > DefaultMaxJSONSize {
		return nil, &BodyError{
			Op:    ErrBodyTooLarge,
			Cause: fmt.Errorf("request body too large (max %d bytes)", DefaultMaxJSONSize),
		}
	}

	return body, nil
}
