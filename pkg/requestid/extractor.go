package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/reqvalidate/pkg/logger"
)

// LogExtractor adds the request id to every record logged with a request
// context.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := FromContext(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return logger.RequestID(id), true
	}
}
