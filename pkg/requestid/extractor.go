package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/resxkit/pkg/logger"
)

// LoggerExtractor adds request_id to every record logged with a request context.
// Pass it to logger.WithContextExtractors.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}
