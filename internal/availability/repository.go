package availability

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"salonbooking/pkg/db"
)

type Entry struct {
	ID        int64  `json:"availability_id"`
	ServiceID int64  `json:"-"`
	Date      string `json:"date"`
	Slots     int    `json:"slots"`
}

type Repository struct {
	db db.Pool
}

func NewRepository(pool db.Pool) *Repository {
	return &Repository{db: pool}
}

func (r *Repository) ListByService(ctx context.Context, serviceID int64) ([]Entry, error) {
	const q = `
SELECT availability_id, service_id, available_date::text, slots
FROM service_availability
WHERE service_id = $1
ORDER BY available_date
`
	rows, err := r.db.Query(ctx, q, serviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.ServiceID, &e.Date, &e.Slots); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// OpenDates returns every date any service is available on, ordered.
func (r *Repository) OpenDates(ctx context.Context) ([]string, error) {
	const q = `
SELECT DISTINCT available_date::text
FROM service_availability
ORDER BY available_date::text
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Replace swaps the full availability set for a service: the previous dates
// are removed and the given ones inserted, all in the caller's transaction.
func Replace(ctx context.Context, tx pgx.Tx, serviceID int64, dates []string, slots int) error {
	if slots <= 0 {
		slots = 1
	}
	const del = `DELETE FROM service_availability WHERE service_id = $1`
	if _, err := tx.Exec(ctx, del, serviceID); err != nil {
		return err
	}
	const ins = `
INSERT INTO service_availability (service_id, available_date, slots)
VALUES ($1, $2::date, $3)
ON CONFLICT (service_id, available_date) DO UPDATE SET slots = EXCLUDED.slots
`
	for _, d := range dates {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			// Mirror the lenient original: unparseable dates are skipped.
			continue
		}
		if _, err := tx.Exec(ctx, ins, serviceID, d, slots); err != nil {
			return err
		}
	}
	return nil
}
