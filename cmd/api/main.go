package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/fittrack/pkg/audit"
	"github.com/dmitrymomot/fittrack/pkg/clientip"
	"github.com/dmitrymomot/fittrack/pkg/config"
	"github.com/dmitrymomot/fittrack/pkg/httpserver"
	"github.com/dmitrymomot/fittrack/pkg/logger"
	"github.com/dmitrymomot/fittrack/pkg/mongo"
	"github.com/dmitrymomot/fittrack/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("api stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		logOpts = append(logOpts, logger.WithLevelName(cfg.LogLevel))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	storages := audit.MultiStorage{audit.NewLogStorage(log)}
	checks := map[string]httpserver.Check{}

	if cfg.Mongo.Enabled() {
		db, err := mongo.NewWithDatabase(ctx, cfg.Mongo)
		switch {
		case err != nil && cfg.Env.IsProduction():
			return err
		case err != nil:
			log.WarnContext(ctx, "mongo unavailable, audit events go to logs only", logger.Error(err))
		default:
			mongoStorage := audit.NewMongoStorage(db, cfg.Audit.Collection)
			if err := mongoStorage.EnsureIndexes(ctx, cfg.Audit.Retention); err != nil {
				log.WarnContext(ctx, "failed to create audit indexes", logger.Error(err))
			}
			storages = append(storages, mongoStorage)
			checks["mongo"] = mongo.Healthcheck(db.Client())
			defer func() {
				if err := db.Client().Disconnect(context.WithoutCancel(ctx)); err != nil {
					log.ErrorContext(ctx, "failed to disconnect mongo", logger.Error(err))
				}
			}()
		}
	}

	auditLog := audit.NewLogger(storages, append(cfg.Audit.Options(),
		audit.WithLogger(log),
		audit.WithRequestIDExtractor(requestid.FromContext),
	)...)

	router := newRouter(routerDeps{
		log:          log,
		auditor:      auditLog,
		guard:        cfg.InputGuard,
		resolver:     clientip.NewResolver(cfg.ProxyHeaders...),
		readyTimeout: cfg.ReadyTimeout,
		checks:       checks,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStopHook(auditLog.Close),
	)
	return srv.Run(ctx, router)
}
