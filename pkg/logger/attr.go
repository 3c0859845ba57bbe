package logger

import (
	"log/slog"
	"time"
)

// Error returns an empty Attr for a nil error, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID returns an empty Attr for an empty id.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

func Method(method string) slog.Attr {
	return slog.String("method", method)
}

func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Field names the request field a record is about, e.g. "pets[0].name".
func Field(path string) slog.Attr {
	return slog.String("field", path)
}

// FieldCount records how many field errors a response carried.
func FieldCount(n int) slog.Attr {
	return slog.Int("field_count", n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
