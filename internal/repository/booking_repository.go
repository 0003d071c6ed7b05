package repository

import (
	"context"
	"fmt"

	"go-event-booking/internal/model"
	apperrors "go-event-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	ListByUser(ctx context.Context, userID, limit, offset int) ([]*model.BookingWithEvent, error)
	CountByUser(ctx context.Context, userID int) (int, error)
	BookedSeats(ctx context.Context, eventID int) (int, error)
	HasBooking(ctx context.Context, eventID, userID int) (bool, error)

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error)
	ExistsForEvent(ctx context.Context, tx pgx.Tx, eventID, userID int) (bool, error)
	FindByIDAndUserWithLock(ctx context.Context, tx pgx.Tx, id, userID int) (*model.Booking, error)
	UpdateSeats(ctx context.Context, tx pgx.Tx, id, seats int) (*model.Booking, error)
	Delete(ctx context.Context, tx pgx.Tx, id int) error
	DeleteByEventID(ctx context.Context, tx pgx.Tx, eventID int) error
	DeleteByEventLocation(ctx context.Context, tx pgx.Tx, ownerID int, location string) error
}

type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{
		pool: pool,
	}
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error) {
	query := `
		INSERT INTO bookings (event_id, user_id, seats)
		VALUES ($1, $2, $3)
		RETURNING id, event_id, user_id, seats, created_at
	`

	err := tx.QueryRow(ctx, query,
		booking.EventID, booking.UserID, booking.Seats,
	).Scan(
		&booking.ID,
		&booking.EventID,
		&booking.UserID,
		&booking.Seats,
		&booking.CreatedAt,
	)

	if err != nil {
		// UNIQUE (event_id, user_id) is the authoritative duplicate guard.
		if isUniqueViolation(err) {
			return nil, apperrors.ErrAlreadyBooked
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

func (r *BookingRepositoryImpl) ExistsForEvent(ctx context.Context, tx pgx.Tx, eventID, userID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE event_id = $1 AND user_id = $2
		)
	`

	var exists bool
	err := tx.QueryRow(ctx, query, eventID, userID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *BookingRepositoryImpl) FindByIDAndUserWithLock(ctx context.Context, tx pgx.Tx, id, userID int) (*model.Booking, error) {
	query := `
		SELECT id, event_id, user_id, seats, created_at
		FROM bookings
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`

	var booking model.Booking
	err := tx.QueryRow(ctx, query, id, userID).Scan(
		&booking.ID,
		&booking.EventID,
		&booking.UserID,
		&booking.Seats,
		&booking.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

func (r *BookingRepositoryImpl) UpdateSeats(ctx context.Context, tx pgx.Tx, id, seats int) (*model.Booking, error) {
	query := `
		UPDATE bookings
		SET seats = $1
		WHERE id = $2
		RETURNING id, event_id, user_id, seats, created_at
	`

	var booking model.Booking
	err := tx.QueryRow(ctx, query, seats, id).Scan(
		&booking.ID,
		&booking.EventID,
		&booking.UserID,
		&booking.Seats,
		&booking.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking seats: %w", err)
	}

	return &booking, nil
}

func (r *BookingRepositoryImpl) Delete(ctx context.Context, tx pgx.Tx, id int) error {
	query := `
		DELETE FROM bookings
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepositoryImpl) DeleteByEventID(ctx context.Context, tx pgx.Tx, eventID int) error {
	query := `
		DELETE FROM bookings
		WHERE event_id = $1
	`

	_, err := tx.Exec(ctx, query, eventID)
	return err
}

func (r *BookingRepositoryImpl) DeleteByEventLocation(ctx context.Context, tx pgx.Tx, ownerID int, location string) error {
	query := `
		DELETE FROM bookings
		WHERE event_id IN (
			SELECT id FROM events
			WHERE location = $1 AND user_id = $2
		)
	`

	_, err := tx.Exec(ctx, query, location, ownerID)
	return err
}

func (r *BookingRepositoryImpl) ListByUser(ctx context.Context, userID, limit, offset int) ([]*model.BookingWithEvent, error) {
	query := `
		SELECT b.id, b.event_id, b.user_id, b.seats, b.created_at,
		       e.title, e.date, e.location, u.name
		FROM bookings b
		JOIN events e ON e.id = b.event_id
		JOIN users u ON u.id = e.user_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*model.BookingWithEvent, 0)
	for rows.Next() {
		var b model.BookingWithEvent
		err := rows.Scan(
			&b.ID,
			&b.EventID,
			&b.UserID,
			&b.Seats,
			&b.CreatedAt,
			&b.EventTitle,
			&b.EventDate,
			&b.EventLocation,
			&b.OrganizerName,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingRepositoryImpl) CountByUser(ctx context.Context, userID int) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *BookingRepositoryImpl) BookedSeats(ctx context.Context, eventID int) (int, error) {
	query := `
		SELECT COALESCE(SUM(seats), 0)
		FROM bookings
		WHERE event_id = $1
	`

	var total int
	err := r.pool.QueryRow(ctx, query, eventID).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *BookingRepositoryImpl) HasBooking(ctx context.Context, eventID, userID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE event_id = $1 AND user_id = $2
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, eventID, userID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}
