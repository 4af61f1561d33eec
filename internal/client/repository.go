package client

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"salonbooking/pkg/db"
)

type Repository struct {
	db db.Pool
}

func NewRepository(pool db.Pool) *Repository {
	return &Repository{db: pool}
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*Client, error) {
	const q = `
SELECT client_id, first_name, last_name, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(google_id, '')
FROM clients
WHERE email = $1
`
	c := &Client{}
	if err := r.db.QueryRow(ctx, q, email).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.Email, &c.GoogleID,
	); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repository) Create(ctx context.Context, firstName, lastName, phone, email, googleID string) (*Client, error) {
	const q = `
INSERT INTO clients (first_name, last_name, phone, email, google_id)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
RETURNING client_id, first_name, last_name, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(google_id, '')
`
	c := &Client{}
	if err := r.db.QueryRow(ctx, q, firstName, lastName, phone, email, googleID).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.Email, &c.GoogleID,
	); err != nil {
		return nil, err
	}
	return c, nil
}

// FindOrCreateWalkIn resolves the placeholder client used for anonymous
// bookings, creating it on first use. Runs inside the submission transaction.
func FindOrCreateWalkIn(ctx context.Context, tx pgx.Tx) (int64, error) {
	const qFind = `SELECT client_id FROM clients WHERE first_name = $1 LIMIT 1`
	var id int64
	err := tx.QueryRow(ctx, qFind, walkInFirstName).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	const qIns = `INSERT INTO clients (first_name, last_name) VALUES ($1, $2) RETURNING client_id`
	if err := tx.QueryRow(ctx, qIns, walkInFirstName, walkInLastName).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
