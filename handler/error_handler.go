package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/resxkit/pkg/i18n"
	"github.com/dmitrymomot/resxkit/pkg/logger"
	"github.com/dmitrymomot/resxkit/pkg/requestid"
)

// ErrorsSection is the resource section holding translated error messages,
// keyed by ErrorDetail.Code.
const ErrorsSection = "errors"

// ErrorHandlerOption configures NewErrorHandler.
type ErrorHandlerOption func(*errorHandler)

type errorHandler struct {
	log        *slog.Logger
	translator *i18n.Translator
}

// WithTranslator localizes error messages from the ErrorsSection resources.
// Codes without a translation keep their default message.
func WithTranslator(tr *i18n.Translator) ErrorHandlerOption {
	return func(h *errorHandler) { h.translator = tr }
}

// NewErrorHandler renders failures as JSON envelopes and logs them:
// client errors at warn level, server errors at error level.
func NewErrorHandler(log *slog.Logger, opts ...ErrorHandlerOption) ErrorHandler[Context] {
	h := &errorHandler{log: log}
	if h.log == nil {
		h.log = logger.Discard()
	}
	for _, opt := range opts {
		opt(h)
	}

	return func(ctx Context, err error) {
		status, detail := ErrorToDetail(err)
		r := ctx.Request()

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		h.log.LogAttrs(r.Context(), level, "Request failed",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if h.translator != nil {
			if msg, ok := h.translator.Lookup(ctx.Lang(), ErrorsSection, detail.Code); ok && msg != "" {
				detail.Message = msg
			}
		}

		resp := jsonResponse{status: status, body: JSONResponse{Error: detail}}
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			h.log.ErrorContext(r.Context(), "Failed to render error response", logger.Error(renderErr))
		}
	}
}
