package controller

import (
	"net/http"
	"slices"
)

const (
	corsAllowHeaders  = "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Request-Id"
	corsExposeHeaders = "Location, X-Request-Id"
	corsAllowMethods  = "POST, OPTIONS, GET, DELETE"
)

// WithCORS returns a middleware that sets CORS headers on every response and
// short-circuits OPTIONS preflight requests with 204 No Content.
//
// An empty allowedOrigins, or one containing "*", allows any origin without
// credentials. Otherwise the request Origin is echoed back, with credentials
// allowed, only when it is listed; other origins get no CORS headers.
func WithCORS(next http.Handler, allowedOrigins ...string) http.Handler {
	wildcard := len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		switch origin := r.Header.Get("Origin"); {
		case wildcard:
			h.Set("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(allowedOrigins, origin):
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")
		default:
			h.Add("Vary", "Origin")
		}
		if h.Get("Access-Control-Allow-Origin") != "" {
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Expose-Headers", corsExposeHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		}

		// handle preflight requests quickly
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
