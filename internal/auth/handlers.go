package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"salonbooking/internal/admin"
	"salonbooking/pkg/config"
)

type Handlers struct {
	Cfg    config.Config
	Admins *admin.Repository
}

// Login verifies admin credentials from a login form and sets the session cookie.
func (h Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		http.Error(w, "missing username or password", http.StatusBadRequest)
		return
	}

	a, err := h.Admins.FindByUsername(r.Context(), username)
	if err != nil || !a.VerifyPassword(password) {
		// Same response for unknown user and wrong password.
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := SignSessionToken(a.Username, h.Cfg.SessionSecret, time.Now())
	if err != nil {
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.Cfg.AppEnv == "prod",
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": "OK",
		"token":   token,
	})
}

// Session reports the logged-in admin; the router guards it with admin auth.
func (h Handlers) Session(w http.ResponseWriter, r *http.Request) {
	username, _ := AdminUsernameFromRequest(r, h.Cfg.SessionSecret)
	a, err := h.Admins.FindByUsername(r.Context(), username)
	if err != nil {
		http.Error(w, "admin session not found", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"username": a.Username,
		"email":    a.Email,
	})
}

func (h Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"message": "Logged out successfully"})
}

// AdminUsernameFromRequest extracts and verifies the session token from either
// the Authorization header or the session cookie.
func AdminUsernameFromRequest(r *http.Request, secret string) (string, error) {
	authz := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return VerifySessionToken(strings.TrimSpace(authz[7:]), secret)
	}
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return "", err
	}
	return VerifySessionToken(c.Value, secret)
}
