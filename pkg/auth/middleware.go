package auth

import (
	"encoding/json"
	"net/http"
	"strings"
)

// RequireAuth verifies the Authorization bearer token and attaches the
// resulting identity to the request context. The three failure modes map to
// distinct responses: absent header and malformed header are 401, a token
// the provider rejects is 403.
func RequireAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := strings.TrimSpace(r.Header.Get("Authorization"))
			if header == "" {
				writeAuthError(w, http.StatusUnauthorized, "No token provided")
				return
			}

			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(header, bearerPrefix) {
				writeAuthError(w, http.StatusUnauthorized, "Malformed authorization header")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
			if token == "" {
				writeAuthError(w, http.StatusUnauthorized, "Malformed authorization header")
				return
			}

			identity, err := verifier.Verify(r.Context(), token)
			if err != nil {
				writeAuthError(w, http.StatusForbidden, "Invalid token")
				return
			}

			ctx := WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
