package clientip

import "net/http"

// Middleware stores the client IP resolved with GetIP in the request context.
func Middleware(next http.Handler) http.Handler {
	return MiddlewareWith(defaultResolver)(next)
}

// MiddlewareWith is like Middleware but uses the given Resolver.
func MiddlewareWith(res *Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := SetIPToContext(r.Context(), res.Resolve(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
