// Package clientip resolves the originating client address of an HTTP
// request when the service runs behind reverse proxies.
//
// GetIP checks DefaultHeaders in order (CF-Connecting-IP, X-Forwarded-For,
// X-Real-IP) and falls back to RemoteAddr. For comma-separated headers the
// first valid address wins. Deployments with a different proxy chain build
// their own Resolver:
//
//	res := clientip.NewResolver("X-Forwarded-For")
//	r.Use(clientip.MiddlewareWith(res))
//
// The middleware stores the address in the request context, where
// GetIPFromContext and LoggerExtractor pick it up. An empty string means no
// valid address was found.
package clientip
