package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/fittrack/modules/preview"
	"github.com/dmitrymomot/fittrack/pkg/clientip"
	"github.com/dmitrymomot/fittrack/pkg/httpserver"
	"github.com/dmitrymomot/fittrack/pkg/inputguard"
	"github.com/dmitrymomot/fittrack/pkg/requestid"
)

type routerDeps struct {
	log          *slog.Logger
	auditor      inputguard.Auditor
	guard        inputguard.Config
	resolver     *clientip.Resolver
	readyTimeout time.Duration
	checks       map[string]httpserver.Check
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		requestid.Middleware,
		clientip.MiddlewareWith(d.resolver),
		middleware.Recoverer,
	)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(d.log, d.readyTimeout, d.checks))

	guard := inputguard.Pipeline(
		inputguard.WithLogger(d.log),
		inputguard.WithAuditor(d.auditor),
		inputguard.WithConfig(d.guard),
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/sanitizer", preview.Router(guard))
	})

	return r
}
