package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqvalidate/handler"
	"github.com/dmitrymomot/reqvalidate/pkg/binder"
	"github.com/dmitrymomot/reqvalidate/pkg/fielderror"
	"github.com/dmitrymomot/reqvalidate/pkg/logger"
	"github.com/dmitrymomot/reqvalidate/pkg/requestid"
	"github.com/dmitrymomot/reqvalidate/pkg/validator"
)

type pet struct {
	Name string `json:"name"`
}

func (p pet) Rules() validator.Fields {
	return validator.Fields{validator.Field("name", validator.Length(p.Name, 3, 20))}
}

type owner struct {
	Email string `json:"email"`
	Pets  []pet  `json:"pets"`
}

func (o owner) Rules() validator.Fields {
	return validator.Fields{
		validator.Field("email", validator.Email(o.Email)),
		validator.Each("pets", o.Pets),
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	decodeErr := &binder.DecodeError{
		Path:    binder.Path{binder.FieldSegment("address"), binder.FieldSegment("street_no")},
		Message: "invalid type: string \"x\", expected unsigned integer (uint)",
	}
	validationErr := validator.Validate(owner{Email: "bad", Pets: []pet{{Name: "Rex"}}})
	require.Error(t, validationErr)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantErrors []fielderror.FieldError
	}{
		{
			name:       "not found",
			err:        handler.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Not Found",
		},
		{
			name:       "method not allowed",
			err:        handler.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantMsg:    "Method Not Allowed",
		},
		{
			name:       "unknown status code falls back to key",
			err:        handler.HTTPError{Code: 499, Key: "client_closed"},
			wantStatus: 499,
			wantMsg:    "client_closed",
		},
		{
			name:       "decode failure",
			err:        decodeErr,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "JSON path error: address.street_no: invalid type: string \"x\", expected unsigned integer (uint)",
		},
		{
			name:       "decode failure without path",
			err:        fmt.Errorf("bind: %w", &binder.DecodeError{Message: "EOF while parsing a value"}),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "JSON path error: EOF while parsing a value",
		},
		{
			name:       "validation failure",
			err:        validationErr,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "field errors",
			wantErrors: []fielderror.FieldError{{Field: "email", FieldErrors: []string{`email: {"value":"bad"}`}}},
		},
		{
			name:       "body failure with cause",
			err:        &binder.BodyError{Op: binder.ErrUnsupportedMediaType, Cause: errors.New("got text/plain, expected application/json")},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "got text/plain, expected application/json",
		},
		{
			name:       "body failure without cause",
			err:        &binder.BodyError{Op: binder.ErrMissingContentType},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Bad Request",
		},
		{
			name:       "internal server error sentinel",
			err:        handler.ErrInternalServerError,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal Server Error",
		},
		{
			name:       "unclassified",
			err:        errors.New("database exploded"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal Server Error",
		},
		{
			name:       "nil",
			err:        nil,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status, body := handler.MapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Equal(t, tt.wantErrors, body.Errors)
		})
	}
}

func TestErrorResponse_NullErrors(t *testing.T) {
	t.Parallel()

	_, body := handler.MapError(handler.ErrNotFound)
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Not Found","errors":null}`, string(raw))
	assert.Contains(t, string(raw), `"errors":null`)
}

type logEntry map[string]any

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return logger.New(
		logger.WithOutput(buf),
		logger.WithLevel(slog.LevelDebug),
		logger.WithContextExtractors(requestid.LogExtractor()),
	), buf
}

func entries(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()
	var out []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		out = append(out, e)
	}
	return out
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("unclassified error is logged but not exposed", func(t *testing.T) {
		t.Parallel()
		log, buf := captureLogger()
		h := handler.NewErrorHandler(log)

		r := httptest.NewRequest(http.MethodPost, "/create-basic", nil)
		r = r.WithContext(requestid.WithContext(r.Context(), "req-42"))
		w := httptest.NewRecorder()

		h(handler.NewContext(w, r), errors.New("secret connection string"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"message":"Internal Server Error","errors":null}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "secret")

		logs := entries(t, buf)
		require.Len(t, logs, 1)
		assert.Equal(t, "ERROR", logs[0]["level"])
		assert.Equal(t, "secret connection string", logs[0]["error"])
		assert.Equal(t, "req-42", logs[0]["request_id"])
		assert.Equal(t, float64(500), logs[0]["status_code"])
		assert.Equal(t, "POST", logs[0]["method"])
		assert.Equal(t, "/create-basic", logs[0]["path"])
		assert.Equal(t, "error_handler", logs[0]["component"])
	})

	t.Run("validation failure is logged at warn with field details", func(t *testing.T) {
		t.Parallel()
		log, buf := captureLogger()
		h := handler.NewErrorHandler(log)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/create-validator", nil)
		h(handler.NewContext(w, r), validator.Validate(owner{Email: "bad", Pets: []pet{{Name: "ab"}}}))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body handler.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "field errors", body.Message)
		require.Len(t, body.Errors, 3)
		assert.Equal(t, "email", body.Errors[0].Field)
		assert.Equal(t, "pets[0]", body.Errors[1].Field)
		assert.Equal(t, "pets[0].name", body.Errors[2].Field)

		logs := entries(t, buf)
		require.Len(t, logs, 4)
		assert.Equal(t, "WARN", logs[0]["level"])
		assert.Equal(t, float64(3), logs[0]["field_count"])
		assert.Equal(t, "DEBUG", logs[1]["level"])
		assert.Equal(t, "email", logs[1]["field"])
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		t.Parallel()
		h := handler.NewErrorHandler(nil)
		w := httptest.NewRecorder()
		h(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrBadRequest)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Bad Request","errors":null}`, w.Body.String())
	})
}

func TestRoutingHandlers(t *testing.T) {
	t.Parallel()

	log, _ := captureLogger()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		handler.NotFound(log)(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Not Found","errors":null}`, w.Body.String())
	})

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		handler.MethodNotAllowed(log)(w, httptest.NewRequest(http.MethodGet, "/create-path", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.JSONEq(t, `{"message":"Method Not Allowed","errors":null}`, w.Body.String())
	})
}
