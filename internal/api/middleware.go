package api

import (
	"net/http"

	"salonbooking/internal/admin"
	"salonbooking/internal/auth"
	"salonbooking/pkg/config"
)

// AdminAuth guards the admin API.
//
// Contract:
// - Caller must present a valid session token, either as `Authorization: Bearer <token>`
//   or via the session cookie set by the login handler.
// - Middleware loads the admin record from DB and attaches it to context.
func AdminAuth(cfg config.Config, admins *admin.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, err := auth.AdminUsernameFromRequest(r, cfg.SessionSecret)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "admin session required")
				return
			}

			a, err := admins.FindByUsername(r.Context(), username)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unknown admin")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), a)))
		})
	}
}
