package auth

import (
	"net/http"
	"strings"
)

// AdminRole is the role claim that grants access to the admin area.
const AdminRole = "admin"

// RequireAdmin gates a route behind admin privileges. The identity passes
// when it carries the admin role claim, or when its email is in the
// configured allow-list (fallback for providers without role claims).
//
// A missing identity means the middleware chain is misordered, which is an
// internal error rather than an authentication failure.
func RequireAdmin(adminEmails []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			allowed[email] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				writeAuthError(w, http.StatusInternalServerError, "Error checking admin status")
				return
			}

			if !isAdmin(identity, allowed) {
				writeAuthError(w, http.StatusForbidden, "Access denied. Admin privileges required.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isAdmin(identity Identity, allowed map[string]struct{}) bool {
	if identity.HasRole(AdminRole) {
		return true
	}
	_, ok := allowed[strings.ToLower(identity.Email)]
	return ok
}
