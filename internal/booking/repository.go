package booking

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"salonbooking/pkg/db"
)

// PublicItem is the shape of the open booking list.
type PublicItem struct {
	ID          int64  `json:"booking_id"`
	BookingType string `json:"booking_type,omitempty"`
	Date        string `json:"booking_date"`
	Time        string `json:"booking_time"`
	Status      Status `json:"status"`
}

// AdminItem joins a booking with its client and service for the dashboard.
type AdminItem struct {
	ID          int64        `json:"booking_id"`
	Date        string       `json:"booking_date"`
	Time        string       `json:"booking_time"`
	Status      Status       `json:"status"`
	BookingType string       `json:"booking_type,omitempty"`
	Client      ClientBrief  `json:"client"`
	Service     ServiceBrief `json:"service"`
}

type ClientBrief struct {
	ID        int64  `json:"client_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type ServiceBrief struct {
	ID              int64               `json:"service_id"`
	Name            string              `json:"name"`
	DurationMinutes int                 `json:"duration_minutes"`
	Price           decimal.NullDecimal `json:"price"`
}

type Repository struct {
	db db.Pool
}

func NewRepository(pool db.Pool) *Repository {
	return &Repository{db: pool}
}

func (r *Repository) PublicList(ctx context.Context) ([]PublicItem, error) {
	const q = `
SELECT booking_id, COALESCE(booking_type, ''), booking_date::text, booking_time::text, status
FROM bookings
ORDER BY booking_id
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PublicItem
	for rows.Next() {
		var b PublicItem
		if err := rows.Scan(&b.ID, &b.BookingType, &b.Date, &b.Time, &b.Status); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

const adminItemColumns = `
b.booking_id, b.booking_date::text, b.booking_time::text, b.status, COALESCE(b.booking_type, ''),
c.client_id, c.first_name, c.last_name, COALESCE(c.email, ''), COALESCE(c.phone, ''),
s.service_id, s.name, s.duration_minutes, s.price`

func (r *Repository) AdminList(ctx context.Context) ([]AdminItem, error) {
	const q = `
SELECT ` + adminItemColumns + `
FROM bookings b
JOIN clients c ON c.client_id = b.client_id
JOIN services s ON s.service_id = b.service_id
ORDER BY b.booking_date, b.booking_time
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AdminItem
	for rows.Next() {
		var it AdminItem
		if err := scanAdminItem(rows, &it); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repository) AdminGet(ctx context.Context, id int64) (*AdminItem, error) {
	const q = `
SELECT ` + adminItemColumns + `
FROM bookings b
JOIN clients c ON c.client_id = b.client_id
JOIN services s ON s.service_id = b.service_id
WHERE b.booking_id = $1
`
	var it AdminItem
	if err := scanAdminItem(r.db.QueryRow(ctx, q, id), &it); err != nil {
		return nil, err
	}
	return &it, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAdminItem(row scanner, it *AdminItem) error {
	return row.Scan(
		&it.ID, &it.Date, &it.Time, &it.Status, &it.BookingType,
		&it.Client.ID, &it.Client.FirstName, &it.Client.LastName, &it.Client.Email, &it.Client.Phone,
		&it.Service.ID, &it.Service.Name, &it.Service.DurationMinutes, &it.Service.Price,
	)
}

// Update applies a partial admin edit; nil fields keep their current value.
func (r *Repository) Update(ctx context.Context, id int64, date, timeOfDay *string, status *Status) error {
	const q = `
UPDATE bookings
SET booking_date = COALESCE($1::date, booking_date),
    booking_time = COALESCE($2::time, booking_time),
    status = COALESCE($3, status)
WHERE booking_id = $4
`
	tag, err := r.db.Exec(ctx, q, date, timeOfDay, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Insert adds the booking row inside the submission transaction.
func Insert(ctx context.Context, tx pgx.Tx, clientID, serviceID int64, date, timeOfDay string, status Status, bookingType string) (int64, error) {
	const q = `
INSERT INTO bookings (client_id, service_id, booking_date, booking_time, status, booking_type)
VALUES ($1, $2, $3::date, $4::time, $5, NULLIF($6, ''))
RETURNING booking_id
`
	var id int64
	if err := tx.QueryRow(ctx, q, clientID, serviceID, date, timeOfDay, status, bookingType).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
