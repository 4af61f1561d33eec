package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"salonbooking/internal/admin"
	"salonbooking/internal/api"
	"salonbooking/internal/auth"
	"salonbooking/internal/availability"
	"salonbooking/internal/booking"
	"salonbooking/internal/service"
	"salonbooking/pkg/config"
	"salonbooking/pkg/db"
)

type Dependencies struct {
	Cfg config.Config
	DB  db.Pool
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	adminRepo := admin.NewRepository(deps.DB)
	availabilityRepo := availability.NewRepository(deps.DB)
	serviceRepo := service.NewRepository(deps.DB)
	bookingRepo := booking.NewRepository(deps.DB)

	authHandlers := auth.Handlers{Cfg: deps.Cfg, Admins: adminRepo}
	serviceHandlers := service.Handlers{
		Cfg:          deps.Cfg,
		DB:           deps.DB,
		Services:     serviceRepo,
		Availability: availabilityRepo,
	}
	bookingHandlers := booking.Handlers{DB: deps.DB, Bookings: bookingRepo}

	// Uploaded service images.
	fs := http.StripPrefix("/static/", http.FileServer(http.Dir("static")))
	r.Get("/static/*", fs.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		// Public booking API; callable from the separate booking frontend.
		r.Group(func(r chi.Router) {
			r.Use(api.CORSMiddleware(api.CORSOptions{
				AllowedOrigins: deps.Cfg.AllowedOrigins,
				AllowedMethods: []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders: []string{"Content-Type"},
				MaxAgeSeconds:  600,
			}))

			r.Get("/services", serviceHandlers.PublicList)
			r.Get("/bookings", bookingHandlers.List)
			r.Post("/bookings", bookingHandlers.Create)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", authHandlers.Login)

			// Everything else requires a live admin session.
			r.Group(func(r chi.Router) {
				r.Use(api.AdminAuth(deps.Cfg, adminRepo))

				r.Get("/session", authHandlers.Session)
				r.Post("/logout", authHandlers.Logout)

				r.Get("/services", serviceHandlers.AdminList)
				r.Post("/services", serviceHandlers.AdminCreate)
				r.Patch("/services/{id}", serviceHandlers.AdminPatch)
				r.Delete("/services/{id}", serviceHandlers.AdminDelete)
				r.Post("/services/{id}/availability", serviceHandlers.AdminSetAvailability)
				r.Post("/services/{id}/image", serviceHandlers.AdminUploadImage)

				r.Get("/bookings", bookingHandlers.AdminList)
				r.Patch("/bookings/{id}", bookingHandlers.AdminPatch)
			})
		})
	})

	return r
}
