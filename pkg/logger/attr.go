package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Service records the service name under "service".
func Service(name string) slog.Attr {
	return slog.String("service", name)
}

// ClientIP records the client address under "client_ip".
func ClientIP(ip string) slog.Attr {
	return slog.String("client_ip", ip)
}

// UserAgent records the raw User-Agent header under "user_agent".
func UserAgent(ua string) slog.Attr {
	return slog.String("user_agent", ua)
}

// Method records the HTTP method under "method".
func Method(m string) slog.Attr {
	return slog.String("method", m)
}

// Path records the request path under "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Source records which request input (body, query, params) an entry refers to.
func Source(s string) slog.Attr {
	return slog.String("source", s)
}

// Key records a mapping key under "key".
func Key(k string) slog.Attr {
	return slog.String("key", k)
}

// KeyPath records a dotted location inside a payload under "key_path".
func KeyPath(p string) slog.Attr {
	if p == "" {
		return slog.Attr{}
	}
	return slog.String("key_path", p)
}

// Code records a machine-readable rejection code under "code".
func Code(c string) slog.Attr {
	if c == "" {
		return slog.Attr{}
	}
	return slog.String("code", c)
}

// Timestamp records t under "timestamp" in UTC.
func Timestamp(t time.Time) slog.Attr {
	return slog.Time("timestamp", t.UTC())
}

// Count records a number of items under "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
