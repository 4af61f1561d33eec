package admin

import (
	"context"

	"salonbooking/pkg/db"
)

type Repository struct {
	db db.Pool
}

func NewRepository(pool db.Pool) *Repository {
	return &Repository{db: pool}
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*Admin, error) {
	const q = `
SELECT admin_id, username, password_hash, COALESCE(email, '')
FROM admins
WHERE username = $1
`
	a := &Admin{}
	if err := r.db.QueryRow(ctx, q, username).Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.Email,
	); err != nil {
		return nil, err
	}
	return a, nil
}

// Upsert is used by the seed tool; a fresh hash replaces any existing one.
func (r *Repository) Upsert(ctx context.Context, username, passwordHash, email string) (*Admin, error) {
	const q = `
INSERT INTO admins (username, password_hash, email)
VALUES ($1, $2, NULLIF($3, ''))
ON CONFLICT (username) DO UPDATE SET
  password_hash = EXCLUDED.password_hash,
  email = EXCLUDED.email
RETURNING admin_id, username, password_hash, COALESCE(email, '')
`
	a := &Admin{}
	if err := r.db.QueryRow(ctx, q, username, passwordHash, email).Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.Email,
	); err != nil {
		return nil, err
	}
	return a, nil
}
