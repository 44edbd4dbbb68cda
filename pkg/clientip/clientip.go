package clientip

import (
	"net"
	"net/http"
	"strings"
)

// DefaultHeaders is the header priority used by GetIP.
var DefaultHeaders = []string{
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver extracts the client address from a request by checking the
// configured headers in order and falling back to RemoteAddr.
type Resolver struct {
	headers []string
}

// NewResolver returns a Resolver trusting the given headers in priority order.
// With no headers it only uses RemoteAddr, which is the right choice when the
// service is exposed without a reverse proxy.
func NewResolver(headers ...string) *Resolver {
	return &Resolver{headers: headers}
}

var defaultResolver = NewResolver(DefaultHeaders...)

// GetIP returns the client's IP address using DefaultHeaders.
// It returns an empty string if no valid address can be found.
func GetIP(r *http.Request) string {
	return defaultResolver.Resolve(r)
}

// Resolve returns the normalized client IP for r, or an empty string.
func (res *Resolver) Resolve(r *http.Request) string {
	for _, name := range res.headers {
		value := r.Header.Get(name)
		if value == "" {
			continue
		}
		// Forwarded lists hold the original client first.
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
