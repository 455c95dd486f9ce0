// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New builds a slog.Handler (text or JSON, chosen by Format) and, when
// ContextExtractor callbacks are registered, wraps it with WrapHandler so they
// run on every record. Attribute helpers in attr.go keep key names consistent across
// the service: Field, Rule, Lang and Section describe validation and resource
// lookups, RequestID and Error cover the request path.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "resxd"),
//		logger.WithContextValue("request_id", requestIDKey),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "malformed rule argument",
//		logger.Field("Age"),
//		logger.Rule(validator.Range),
//		logger.Error(err),
//	)
//
// Config carries APP_ENV, APP_NAME and LOG_LEVEL for use with pkg/config.
package logger
