// Package logger builds *slog.Logger instances configured with functional
// options and decorated with context extractors.
//
// New picks a text or JSON handler, attaches static attributes and wraps the
// result in LogHandlerDecorator, which adds attributes pulled from the context
// of every *Context logging call (for example the request id).
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "fittrack-api"),
//		logger.WithLevelName("warn"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "dropped dangerous key",
//		logger.Source("body"),
//		logger.Key("$where"),
//	)
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Helpers that take optional values (Error, RequestID, KeyPath, Code) return
// an empty slog.Attr for zero input, which slog omits.
package logger
