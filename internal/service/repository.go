package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"salonbooking/pkg/db"
)

type Repository struct {
	db db.Pool
}

func NewRepository(pool db.Pool) *Repository {
	return &Repository{db: pool}
}

func (r *Repository) List(ctx context.Context) ([]Service, error) {
	const q = `
SELECT service_id, name, COALESCE(description, ''), duration_minutes, price, COALESCE(image_path, '')
FROM services
ORDER BY service_id
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Service
	for rows.Next() {
		var s Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.DurationMinutes, &s.Price, &s.ImagePath); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Service, error) {
	const q = `
SELECT service_id, name, COALESCE(description, ''), duration_minutes, price, COALESCE(image_path, '')
FROM services
WHERE service_id = $1
`
	var s Service
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.DurationMinutes, &s.Price, &s.ImagePath,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, name, description string, durationMinutes int, price decimal.NullDecimal) (*Service, error) {
	const q = `
INSERT INTO services (name, description, duration_minutes, price)
VALUES ($1, NULLIF($2, ''), $3, $4)
RETURNING service_id, name, COALESCE(description, ''), duration_minutes, price, COALESCE(image_path, '')
`
	var s Service
	if err := r.db.QueryRow(ctx, q, name, description, durationMinutes, price).Scan(
		&s.ID, &s.Name, &s.Description, &s.DurationMinutes, &s.Price, &s.ImagePath,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// Update applies a partial update; nil fields keep their current value.
func (r *Repository) Update(ctx context.Context, id int64, name, description *string, durationMinutes *int, price *decimal.Decimal) (*Service, error) {
	const q = `
UPDATE services
SET name = COALESCE($1, name),
    description = COALESCE($2, description),
    duration_minutes = COALESCE($3, duration_minutes),
    price = COALESCE($4, price)
WHERE service_id = $5
RETURNING service_id, name, COALESCE(description, ''), duration_minutes, price, COALESCE(image_path, '')
`
	var s Service
	if err := r.db.QueryRow(ctx, q, name, description, durationMinutes, price, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.DurationMinutes, &s.Price, &s.ImagePath,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) SetImagePath(ctx context.Context, id int64, imagePath string) error {
	const q = `UPDATE services SET image_path = $1 WHERE service_id = $2`
	tag, err := r.db.Exec(ctx, q, imagePath, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM services WHERE service_id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// FindOrCreateByName resolves a service name to its id inside the booking
// transaction, creating the row with a default duration when absent. The
// upsert relies on the UNIQUE constraint on name, so two submissions with the
// same label can never produce two rows.
func FindOrCreateByName(ctx context.Context, tx pgx.Tx, name string, durationMinutes int) (int64, error) {
	const q = `
INSERT INTO services (name, duration_minutes)
VALUES ($1, $2)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING service_id
`
	var id int64
	if err := tx.QueryRow(ctx, q, name, durationMinutes).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
