// Package mongo opens MongoDB connections from environment configuration.
//
// The connection is optional for the API: when MONGODB_URL is empty the
// service runs with log-only audit storage and no database readiness probe.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	if cfg.Enabled() {
//		db, err := mongo.NewWithDatabase(ctx, cfg)
//		if err != nil {
//			return err
//		}
//		defer db.Client().Disconnect(context.Background())
//	}
//
// New retries the initial connect and ping, so a database that comes up a few
// seconds after the API does not fail the deployment. Failures wrap
// ErrFailedToConnectToMongo together with the last driver error.
package mongo
