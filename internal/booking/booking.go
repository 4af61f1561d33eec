package booking

import "fmt"

type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %s", s)
	}
}

type Booking struct {
	ID          int64  `json:"booking_id"`
	ClientID    int64  `json:"client_id"`
	ServiceID   int64  `json:"service_id"`
	Date        string `json:"booking_date"`
	Time        string `json:"booking_time"`
	Status      Status `json:"status"`
	BookingType string `json:"booking_type,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
