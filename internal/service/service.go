package service

import "github.com/shopspring/decimal"

// DefaultDurationMinutes is used when a booking references a service name that
// does not exist yet and the row is created on the fly.
const DefaultDurationMinutes = 120

type Service struct {
	ID              int64               `json:"service_id"`
	Name            string              `json:"name"`
	Description     string              `json:"description,omitempty"`
	DurationMinutes int                 `json:"duration_minutes"`
	Price           decimal.NullDecimal `json:"price"`
	ImagePath       string              `json:"image_path,omitempty"`
}
