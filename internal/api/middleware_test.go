package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"salonbooking/internal/admin"
	"salonbooking/internal/auth"
	"salonbooking/pkg/config"
)

func TestAdminAuth_MissingToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	cfg := config.Config{SessionSecret: "secret"}
	handler := AdminAuth(cfg, admin.NewRepository(mock))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/services", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminAuth_ValidTokenLoadsAdmin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT admin_id, username, password_hash").
		WithArgs("admin").
		WillReturnRows(pgxmock.NewRows([]string{"admin_id", "username", "password_hash", "email"}).
			AddRow(int64(1), "admin", "$2a$10$hash", "owner@salon.test"))

	cfg := config.Config{SessionSecret: "secret"}
	token, err := auth.SignSessionToken("admin", cfg.SessionSecret, time.Now())
	require.NoError(t, err)

	var seen *admin.Admin
	handler := AdminAuth(cfg, admin.NewRepository(mock))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = AdminFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/services", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	require.Equal(t, "admin", seen.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminAuth_UnknownAdmin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT admin_id, username, password_hash").
		WithArgs("ghost").
		WillReturnError(errNoRows{})

	cfg := config.Config{SessionSecret: "secret"}
	token, err := auth.SignSessionToken("ghost", cfg.SessionSecret, time.Now())
	require.NoError(t, err)

	handler := AdminAuth(cfg, admin.NewRepository(mock))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/services", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

type errNoRows struct{}

func (errNoRows) Error() string { return "no rows in result set" }
