package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lemonteaau/the-wild-oasis-website/internal/model"
)

// CabinRepo provides read access to the cabins table.  Cabin management is
// owned by the staff application; this service never writes here.
type CabinRepo struct{ DB *sql.DB }

func NewCabinRepo(db *sql.DB) *CabinRepo { return &CabinRepo{DB: db} }

// GetByID fetches a cabin by id.
func (r *CabinRepo) GetByID(ctx context.Context, id int64) (model.Cabin, error) {
	var cb model.Cabin
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,max_capacity,regular_price,discount,description,image FROM cabins WHERE id=? LIMIT 1",
		id).Scan(&cb.ID, &cb.Name, &cb.MaxCapacity, &cb.RegularPrice, &cb.Discount, &cb.Description, &cb.Image)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Cabin{}, ErrCabinNotFound
	}
	return cb, err
}

// List returns all cabins ordered by name.
func (r *CabinRepo) List(ctx context.Context) ([]model.Cabin, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,max_capacity,regular_price,discount,description,image FROM cabins ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Cabin, 0)
	for rows.Next() {
		var cb model.Cabin
		if err := rows.Scan(&cb.ID, &cb.Name, &cb.MaxCapacity, &cb.RegularPrice, &cb.Discount, &cb.Description, &cb.Image); err != nil {
			return nil, err
		}
		out = append(out, cb)
	}
	return out, rows.Err()
}
