package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lemonteaau/the-wild-oasis-website/internal/model"
)

// GuestRepo provides access to the guests table.
type GuestRepo struct{ DB *sql.DB }

func NewGuestRepo(db *sql.DB) *GuestRepo { return &GuestRepo{DB: db} }

// GetByEmail fetches a guest by normalized email.
func (r *GuestRepo) GetByEmail(ctx context.Context, email string) (model.Guest, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var g model.Guest
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,full_name,nationality,country_flag,national_id,created_at FROM guests WHERE email=? LIMIT 1",
		email).Scan(&g.ID, &g.Email, &g.FullName, &g.Nationality, &g.CountryFlag, &g.NationalID, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Guest{}, ErrGuestNotFound
	}
	return g, err
}

// GetByID fetches a guest by id.
func (r *GuestRepo) GetByID(ctx context.Context, id int64) (model.Guest, error) {
	var g model.Guest
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,full_name,nationality,country_flag,national_id,created_at FROM guests WHERE id=? LIMIT 1",
		id).Scan(&g.ID, &g.Email, &g.FullName, &g.Nationality, &g.CountryFlag, &g.NationalID, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Guest{}, ErrGuestNotFound
	}
	return g, err
}

// Create inserts a bare guest record on first sign-in and returns its ID.
// Profile fields stay empty until the guest updates them.
func (r *GuestRepo) Create(ctx context.Context, email, fullName string) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO guests (email, full_name) VALUES (?,?)",
		email, fullName)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateProfile writes the check-in profile fields of a single guest.
// MySQL reports zero affected rows when the values are unchanged, so no
// row-count check is made here.
func (r *GuestRepo) UpdateProfile(ctx context.Context, id int64, nationality, countryFlag, nationalID string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE guests SET nationality=?, country_flag=?, national_id=? WHERE id=?",
		nationality, countryFlag, nationalID, id)
	return err
}
