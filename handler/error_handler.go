package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/reqvalidate/pkg/binder"
	"github.com/dmitrymomot/reqvalidate/pkg/fielderror"
	"github.com/dmitrymomot/reqvalidate/pkg/logger"
	"github.com/dmitrymomot/reqvalidate/pkg/validator"
)

const (
	MessageFieldErrors    = "field errors"
	MessageDecodePrefix   = "JSON path error: "
	MessageBadRequest     = "Bad Request"
	MessageInternalServer = "Internal Server Error"
)

// ErrorResponse is the body of every failed request. Errors is serialized as
// null when there are no field errors.
type ErrorResponse struct {
	Message string                  `json:"message"`
	Errors  []fielderror.FieldError `json:"errors"`
}

// MapError classifies err into a status code and response body:
//
//	HTTPError                  its code, status text
//	*binder.DecodeError        400, "JSON path error: <path>: <message>"
//	*validator.StructNode      400, "field errors" plus the flattened list
//	*binder.BodyError          400, the cause's text or "Bad Request"
//	anything else              500, "Internal Server Error"
//
// Only the validation case carries field errors.
func MapError(err error) (int, ErrorResponse) {
	var (
		httpErr   HTTPError
		decodeErr *binder.DecodeError
		bodyErr   *binder.BodyError
	)

	switch {
	case err == nil:
		return ErrInternalServerError.Code, ErrorResponse{Message: MessageInternalServer}

	case errors.As(err, &httpErr):
		msg := http.StatusText(httpErr.Code)
		if msg == "" {
			msg = httpErr.Key
		}
		return httpErr.Code, ErrorResponse{Message: msg}

	case errors.As(err, &decodeErr):
		return http.StatusBadRequest, ErrorResponse{Message: MessageDecodePrefix + decodeErr.Error()}

	case validator.IsValidationError(err):
		return http.StatusBadRequest, ErrorResponse{
			Message: MessageFieldErrors,
			Errors:  fielderror.Flatten(err),
		}

	case errors.As(err, &bodyErr):
		if bodyErr.Cause != nil {
			return http.StatusBadRequest, ErrorResponse{Message: bodyErr.Cause.Error()}
		}
		return http.StatusBadRequest, ErrorResponse{Message: MessageBadRequest}
	}

	return ErrInternalServerError.Code, ErrorResponse{Message: MessageInternalServer}
}

func logLevel(status int) slog.Level {
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler writes MapError's result as JSON and logs the failure:
// client errors at warn, everything else at error. The original error only
// ever reaches the log. Records are logged with the request context, so a
// logger built with requestid.LogExtractor tags them with the request id.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		status, body := MapError(err)

		log.LogAttrs(r.Context(), logLevel(status), "request failed",
			logger.Error(err),
			logger.StatusCode(status),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.FieldCount(len(body.Errors)),
		)
		for _, fe := range body.Errors {
			log.LogAttrs(r.Context(), slog.LevelDebug, "field rejected",
				logger.Field(fe.Field),
				slog.Any("field_errors", fe.FieldErrors),
			)
		}

		if werr := writeJSON(ctx.ResponseWriter(), status, body); werr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to write error response",
				logger.Error(werr),
			)
		}
	}
}

// NotFound renders routing misses with the error envelope.
func NotFound(log *slog.Logger) http.HandlerFunc {
	h := NewErrorHandler(log)
	return func(w http.ResponseWriter, r *http.Request) {
		h(NewContext(w, r), ErrNotFound)
	}
}

// MethodNotAllowed renders 405s with the error envelope.
func MethodNotAllowed(log *slog.Logger) http.HandlerFunc {
	h := NewErrorHandler(log)
	return func(w http.ResponseWriter, r *http.Request) {
		h(NewContext(w, r), ErrMethodNotAllowed)
	}
}

// writeJSON writes nothing when v cannot be encoded.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}
