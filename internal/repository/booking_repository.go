package repository

import (
	"context"
	"database/sql"

	"github.com/lemonteaau/the-wild-oasis-website/internal/model"
)

// BookingRepo provides access to the bookings table.  Every mutation is a
// single-row statement; atomicity is left to the database.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

const bookingColumns = "id,guest_id,cabin_id,start_date,end_date,num_nights,num_guests," +
	"cabin_price,extras_price,total_price,status,has_breakfast,is_paid,observations,created_at"

func scanBooking(row interface{ Scan(...any) error }, b *model.Booking) error {
	return row.Scan(&b.ID, &b.GuestID, &b.CabinID, &b.StartDate, &b.EndDate, &b.NumNights,
		&b.NumGuests, &b.CabinPrice, &b.ExtrasPrice, &b.TotalPrice, &b.Status,
		&b.HasBreakfast, &b.IsPaid, &b.Observations, &b.CreatedAt)
}

// ListByGuest returns every booking owned by the given guest, newest first.
// The full set feeds both the reservations view and the ownership check on
// update/delete.
func (r *BookingRepo) ListByGuest(ctx context.Context, guestID int64) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE guest_id=? ORDER BY start_date DESC",
		guestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Create inserts a booking and fills in its generated ID.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO bookings
		 (guest_id, cabin_id, start_date, end_date, num_nights, num_guests,
		  cabin_price, extras_price, total_price, status, has_breakfast, is_paid, observations)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.GuestID, b.CabinID, b.StartDate, b.EndDate, b.NumNights, b.NumGuests,
		b.CabinPrice, b.ExtrasPrice, b.TotalPrice, b.Status, b.HasBreakfast, b.IsPaid, b.Observations)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

// UpdateGuestFields writes the only two columns a guest may change after
// creation.  All other columns are deliberately absent from the statement.
func (r *BookingRepo) UpdateGuestFields(ctx context.Context, id int64, numGuests int, observations string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE bookings SET num_guests=?, observations=? WHERE id=?",
		numGuests, observations, id)
	return err
}

// Delete removes a booking by id.  ErrBookingNotFound is returned when no
// row matched.
func (r *BookingRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM bookings WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookingNotFound
	}
	return nil
}
