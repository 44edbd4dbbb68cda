// Package audit records security events such as blocked injection attempts
// without slowing down the request that triggered them.
//
// Logger.Record is fire-and-forget: events are queued and a background worker
// writes them to a Storage in batches, using a context detached from the
// request. When the queue is full, the logger is closed or the storage fails,
// events are written to the fallback storage (a LogStorage by default), so an
// event is never silently lost.
//
//	storage := audit.MultiStorage{
//		audit.NewLogStorage(log),
//		audit.NewMongoStorage(db, audit.DefaultCollection),
//	}
//	auditLog := audit.NewLogger(storage,
//		audit.WithLogger(log),
//		audit.WithRequestIDExtractor(requestid.FromContext),
//	)
//	defer auditLog.Close(context.Background())
//
//	auditLog.Record(ctx, audit.Event{
//		Action: audit.ActionInjectionBlocked,
//		Code:   "INVALID_INPUT",
//		IP:     clientip.GetIPFromContext(ctx),
//	})
//
// MongoStorage.EnsureIndexes can add a TTL index so old events expire.
package audit
