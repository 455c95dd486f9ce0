// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware keeps a client supplied X-Request-ID when it is made of at most
// 128 letters, digits, "-" or "_", and otherwise generates a UUIDv7. The ID is
// echoed in the response header and available through FromContext.
// LoggerExtractor feeds it into structured logs:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
