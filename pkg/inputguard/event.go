package inputguard

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/fittrack/pkg/audit"
	"github.com/dmitrymomot/fittrack/pkg/clientip"
	"github.com/dmitrymomot/fittrack/pkg/requestid"
)

func newEvent(r *http.Request, action, code, source, keyPath string) audit.Event {
	ip := clientip.GetIPFromContext(r.Context())
	if ip == "" {
		ip = clientip.GetIP(r)
	}
	return audit.Event{
		Action:    action,
		Code:      code,
		RequestID: requestid.FromContext(r.Context()),
		IP:        ip,
		UserAgent: r.UserAgent(),
		Method:    r.Method,
		Path:      r.URL.Path,
		Source:    source,
		KeyPath:   keyPath,
		CreatedAt: time.Now().UTC(),
	}
}
