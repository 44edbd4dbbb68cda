package main

import (
	"time"

	"github.com/dmitrymomot/fittrack/pkg/audit"
	"github.com/dmitrymomot/fittrack/pkg/environment"
	"github.com/dmitrymomot/fittrack/pkg/httpserver"
	"github.com/dmitrymomot/fittrack/pkg/inputguard"
	"github.com/dmitrymomot/fittrack/pkg/mongo"
)

type appConfig struct {
	Env          environment.Environment `env:"APP_ENV" envDefault:"development"`
	ServiceName  string                  `env:"SERVICE_NAME" envDefault:"fittrack-api"`
	LogLevel     string                  `env:"LOG_LEVEL"`
	ProxyHeaders []string                `env:"TRUSTED_PROXY_HEADERS" envSeparator:"," envDefault:"CF-Connecting-IP,X-Forwarded-For,X-Real-IP"`
	ReadyTimeout time.Duration           `env:"READINESS_TIMEOUT" envDefault:"2s"`

	HTTP       httpserver.Config
	Mongo      mongo.Config
	Audit      audit.Config
	InputGuard inputguard.Config
}
