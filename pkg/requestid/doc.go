// Package requestid correlates log lines and audit events that belong to the
// same HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header or generates a UUID,
// stores it in the request context and echoes it on the response:
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// FromContext returns the stored ID and has the shape expected by
// audit.WithRequestIDExtractor.
package requestid
