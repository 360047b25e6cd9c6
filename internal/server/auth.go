package server

import (
	"net/http"
	"strings"
)

// APIKeyMiddleware guards routes with a shared secret, accepted via the
// X-API-Key header or an Authorization bearer token. An empty configured key
// disables the check entirely — the gateway is open by default, which is a
// deliberate operational choice that deployments must opt out of by setting
// API_KEY.
func APIKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				next.ServeHTTP(w, r)
				return
			}
			if presentedKey(r) != apiKey {
				// Generic message; no hint about which part failed.
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func presentedKey(r *http.Request) string {
	if key := r.Header.Get("X-API-Key"); key != "" {
		return key
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
