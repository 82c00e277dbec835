package middleware

import (
	"net/http"

	"ticket-booking/pkg/utils"
)

// CORS allows the configured frontend/backend origins. With nothing
// configured every origin is allowed, matching local development use.
func CORS(config utils.CORSConfig) func(http.Handler) http.Handler {
	allowed := map[string]bool{}
	if config.FrontendURL != "" && config.FrontendURL != "*" {
		allowed[config.FrontendURL] = true
	}
	if config.BackendURL != "" && config.BackendURL != "*" {
		allowed[config.BackendURL] = true
	}
	allowAll := len(allowed) == 0

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			switch {
			case allowAll:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && allowed[origin]:
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
