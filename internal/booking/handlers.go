package booking

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"salonbooking/internal/api"
	"salonbooking/internal/client"
	"salonbooking/internal/service"
	"salonbooking/pkg/db"
)

type Handlers struct {
	DB       db.Pool
	Bookings *Repository
}

// Create accepts the confirmation form from the booking page and persists the
// appointment. The service is resolved (or created) by its label, the client
// falls back to the walk-in placeholder, and everything happens in one
// transaction so a failure leaves no partial row behind.
func (h Handlers) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid form")
		return
	}

	bookingType := strings.TrimSpace(r.PostFormValue("booking_type"))
	apptStr := r.PostFormValue("appointment_datetime")
	if bookingType == "" || apptStr == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "booking_type and appointment_datetime are required")
		return
	}

	date, timeOfDay, err := ParseAppointment(apptStr)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		clientID, err := client.FindOrCreateWalkIn(r.Context(), tx)
		if err != nil {
			return err
		}
		serviceID, err := service.FindOrCreateByName(r.Context(), tx, bookingType, service.DefaultDurationMinutes)
		if err != nil {
			return err
		}
		_, err = Insert(r.Context(), tx, clientID, serviceID, date, timeOfDay, StatusScheduled, bookingType)
		return err
	})
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to save booking")
		return
	}

	// The frontend continues on the login page after a confirmed booking.
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h Handlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Bookings.PublicList(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []PublicItem{}
	}
	api.WriteJSON(w, http.StatusOK, items)
}

func (h Handlers) AdminList(w http.ResponseWriter, r *http.Request) {
	items, err := h.Bookings.AdminList(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if items == nil {
		items = []AdminItem{}
	}
	api.WriteJSON(w, http.StatusOK, items)
}

type UpdateRequest struct {
	BookingDate *string `json:"booking_date"`
	BookingTime *string `json:"booking_time"`
	Status      *string `json:"status"`
}

func (h Handlers) AdminPatch(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid id")
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	if req.BookingDate != nil {
		if _, err := time.Parse("2006-01-02", *req.BookingDate); err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "booking_date must be YYYY-MM-DD")
			return
		}
	}
	if req.BookingTime != nil {
		if _, err := time.Parse("15:04", *req.BookingTime); err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "booking_time must be HH:MM")
			return
		}
	}
	var status *Status
	if req.Status != nil {
		st, err := ParseStatus(*req.Status)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid status")
			return
		}
		status = &st
	}

	if err := h.Bookings.Update(r.Context(), id, req.BookingDate, req.BookingTime, status); err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "booking not found")
		return
	}

	item, err := h.Bookings.AdminGet(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, item)
}
