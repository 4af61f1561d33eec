package service

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"salonbooking/internal/api"
	"salonbooking/internal/availability"
	"salonbooking/pkg/config"
	"salonbooking/pkg/db"
)

type Handlers struct {
	Cfg          config.Config
	DB           db.Pool
	Services     *Repository
	Availability *availability.Repository
}

// Detail is a service plus its open dates, the shape the dashboard works with.
type Detail struct {
	Service
	Availability []availability.Entry `json:"availability"`
}

func (h Handlers) detail(r *http.Request, s Service) (Detail, error) {
	entries, err := h.Availability.ListByService(r.Context(), s.ID)
	if err != nil {
		return Detail{}, err
	}
	if entries == nil {
		entries = []availability.Entry{}
	}
	return Detail{Service: s, Availability: entries}, nil
}

func (h Handlers) AdminList(w http.ResponseWriter, r *http.Request) {
	services, err := h.Services.List(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	out := []Detail{}
	for _, s := range services {
		d, err := h.detail(r, s)
		if err != nil {
			api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
			return
		}
		out = append(out, d)
	}
	api.WriteJSON(w, http.StatusOK, out)
}

// AdminCreate accepts a multipart form: name, duration_minutes, optional
// description, price, availability_dates (JSON list of ISO dates), image.
func (h Handlers) AdminCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid form")
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	if name == "" {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "name is required")
		return
	}
	durationMinutes, err := strconv.Atoi(r.PostFormValue("duration_minutes"))
	if err != nil || durationMinutes <= 0 {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "duration_minutes must be a positive integer")
		return
	}

	var price decimal.NullDecimal
	if p := strings.TrimSpace(r.PostFormValue("price")); p != "" {
		d, err := decimal.NewFromString(p)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "price must be a number")
			return
		}
		price = decimal.NullDecimal{Decimal: d, Valid: true}
	}

	var dates []string
	if raw := strings.TrimSpace(r.PostFormValue("availability_dates")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &dates); err != nil {
			api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "availability_dates must be a JSON list of ISO dates")
			return
		}
	}

	svc, err := h.Services.Create(r.Context(), name, r.PostFormValue("description"), durationMinutes, price)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to create service")
		return
	}

	if _, fh, err := r.FormFile("image"); err == nil {
		imagePath, err := h.saveImage(fh)
		if err == nil {
			if err := h.Services.SetImagePath(r.Context(), svc.ID, imagePath); err == nil {
				svc.ImagePath = imagePath
			}
		}
	}

	if len(dates) > 0 {
		err := db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
			return availability.Replace(r.Context(), tx, svc.ID, dates, 1)
		})
		if err != nil {
			api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to save availability")
			return
		}
	}

	d, err := h.detail(r, *svc)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, d)
}

type UpdateRequest struct {
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	DurationMinutes *int             `json:"duration_minutes"`
	Price           *decimal.Decimal `json:"price"`
}

func (h Handlers) AdminPatch(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}
	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "duration_minutes must be a positive integer")
		return
	}

	svc, err := h.Services.Update(r.Context(), id, req.Name, req.Description, req.DurationMinutes, req.Price)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "service not found")
		return
	}

	d, err := h.detail(r, *svc)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, d)
}

type AvailabilityRequest struct {
	Dates []string `json:"dates"`
	Slots int      `json:"slots"`
}

// AdminSetAvailability replaces the open-date set for a service.
func (h Handlers) AdminSetAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	svc, err := h.Services.GetByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "service not found")
		return
	}

	var req AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid json")
		return
	}

	err = db.WithTx(r.Context(), h.DB, func(tx pgx.Tx) error {
		return availability.Replace(r.Context(), tx, svc.ID, req.Dates, req.Slots)
	})
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to save availability")
		return
	}

	d, err := h.detail(r, *svc)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, d)
}

func (h Handlers) AdminUploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}

	svc, err := h.Services.GetByID(r.Context(), id)
	if err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "service not found")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid form")
		return
	}
	_, fh, err := r.FormFile("image")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "image is required")
		return
	}

	imagePath, err := h.saveImage(fh)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to store image")
		return
	}
	if err := h.Services.SetImagePath(r.Context(), svc.ID, imagePath); err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	svc.ImagePath = imagePath

	d, err := h.detail(r, *svc)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	api.WriteJSON(w, http.StatusOK, d)
}

func (h Handlers) AdminDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r)
	if !ok {
		return
	}
	if err := h.Services.Delete(r.Context(), id); err != nil {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "service not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PublicList feeds the booking page: every service plus the combined
// date -> start times map.
func (h Handlers) PublicList(w http.ResponseWriter, r *http.Request) {
	services, err := h.Services.List(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	if services == nil {
		services = []Service{}
	}

	dates, err := h.Availability.OpenDates(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"services":        services,
		"available_times": availability.BuildSchedule(dates),
	})
}

func (h Handlers) urlID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "VALIDATION_FAILED", "invalid id")
		return 0, false
	}
	return id, true
}

func (h Handlers) saveImage(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(h.Cfg.UploadDir, 0o755); err != nil {
		return "", err
	}

	filename := strings.ReplaceAll(uuid.NewString(), "-", "") + filepath.Ext(fh.Filename)
	dst, err := os.Create(filepath.Join(h.Cfg.UploadDir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/" + path.Join(filepath.ToSlash(h.Cfg.UploadDir), filename), nil
}
