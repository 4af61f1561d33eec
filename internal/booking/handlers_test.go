package booking

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func submitForm(t *testing.T, h Handlers, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	return rec
}

func TestCreate_PersistsBookingInOneTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectQuery("SELECT client_id FROM clients").
		WithArgs("Walk-in").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("INSERT INTO clients").
		WithArgs("Walk-in", "Client").
		WillReturnRows(pgxmock.NewRows([]string{"client_id"}).AddRow(int64(1)))
	mock.ExpectQuery("INSERT INTO services").
		WithArgs("Coloring", 120).
		WillReturnRows(pgxmock.NewRows([]string{"service_id"}).AddRow(int64(7)))
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(int64(1), int64(7), "2025-12-04", "09:00:00", StatusScheduled, "Coloring").
		WillReturnRows(pgxmock.NewRows([]string{"booking_id"}).AddRow(int64(3)))
	mock.ExpectCommit()

	h := Handlers{DB: mock, Bookings: NewRepository(mock)}
	rec := submitForm(t, h, url.Values{
		"booking_type":         {"Coloring"},
		"appointment_datetime": {"2025-12-04 9:00 AM"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusSeeOther, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("Location = %q, want /login", loc)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreate_ReusesExistingServiceAndClient(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectQuery("SELECT client_id FROM clients").
		WithArgs("Walk-in").
		WillReturnRows(pgxmock.NewRows([]string{"client_id"}).AddRow(int64(4)))
	// The upsert resolves an existing name to its row; no second row appears.
	mock.ExpectQuery("INSERT INTO services").
		WithArgs("Coloring", 120).
		WillReturnRows(pgxmock.NewRows([]string{"service_id"}).AddRow(int64(7)))
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(int64(4), int64(7), "2025-12-04", "11:15:00", StatusScheduled, "Coloring").
		WillReturnRows(pgxmock.NewRows([]string{"booking_id"}).AddRow(int64(9)))
	mock.ExpectCommit()

	h := Handlers{DB: mock, Bookings: NewRepository(mock)}
	rec := submitForm(t, h, url.Values{
		"booking_type":         {"Coloring"},
		"appointment_datetime": {"2025-12-04 11:15 AM"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreate_MalformedDatetimeWritesNothing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	// No expectations: the database must never be touched.
	h := Handlers{DB: mock, Bookings: NewRepository(mock)}
	rec := submitForm(t, h, url.Values{
		"booking_type":         {"Coloring"},
		"appointment_datetime": {"next tuesday at nine"},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreate_InsertFailureRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectBeginTx(pgx.TxOptions{})
	mock.ExpectQuery("SELECT client_id FROM clients").
		WithArgs("Walk-in").
		WillReturnRows(pgxmock.NewRows([]string{"client_id"}).AddRow(int64(4)))
	mock.ExpectQuery("INSERT INTO services").
		WithArgs("Coloring", 120).
		WillReturnRows(pgxmock.NewRows([]string{"service_id"}).AddRow(int64(7)))
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(fmt.Errorf("insert or update on table \"bookings\" violates foreign key constraint"))
	mock.ExpectRollback()

	h := Handlers{DB: mock, Bookings: NewRepository(mock)}
	rec := submitForm(t, h, url.Values{
		"booking_type":         {"Coloring"},
		"appointment_datetime": {"2025-12-04 9:00 AM"},
	})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreate_MissingFields(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	h := Handlers{DB: mock, Bookings: NewRepository(mock)}
	rec := submitForm(t, h, url.Values{"booking_type": {"Coloring"}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
