package service

import (
	"context"

	"go-event-booking/internal/model"
	"go-event-booking/internal/repository"
	apperrors "go-event-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingService interface {
	Create(ctx context.Context, userID int, req model.CreateBookingRequest) (*model.Booking, error)
	Update(ctx context.Context, bookingID, userID int, req model.UpdateBookingRequest) (*model.Booking, error)
	Cancel(ctx context.Context, bookingID, userID int) error
	List(ctx context.Context, userID int, page model.PageQuery) ([]*model.BookingWithEvent, model.Pagination, error)
}

type BookingServiceImpl struct {
	pool       *pgxpool.Pool
	repository repository.BookingRepository
	eventRepo  repository.EventRepository
}

func NewBookingService(
	pool *pgxpool.Pool,
	bookingRepository repository.BookingRepository,
	eventRepository repository.EventRepository,
) BookingService {
	return &BookingServiceImpl{
		pool:       pool,
		repository: bookingRepository,
		eventRepo:  eventRepository,
	}
}

// Create reserves seats on an event. The whole check-then-act sequence runs in
// one transaction with the event row locked, so two requests racing for the
// last seats serialize on the row lock and available_seats never goes negative.
func (s *BookingServiceImpl) Create(ctx context.Context, userID int, req model.CreateBookingRequest) (*model.Booking, error) {
	if req.Seats <= 0 {
		return nil, apperrors.ErrInvalidSeatCount
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	event, err := s.eventRepo.FindByIDWithLock(ctx, tx, req.EventID)
	if err != nil {
		return nil, err
	}

	// Early duplicate check for the clearer error; the unique constraint on
	// (event_id, user_id) remains the authoritative guard.
	exists, err := s.repository.ExistsForEvent(ctx, tx, req.EventID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyBooked
	}

	if event.AvailableSeats < req.Seats {
		return nil, apperrors.ErrInsufficientSeats
	}

	booking := &model.Booking{
		EventID: req.EventID,
		UserID:  userID,
		Seats:   req.Seats,
	}

	created, err := s.repository.Create(ctx, tx, booking)
	if err != nil {
		return nil, err
	}

	if err := s.eventRepo.DecrementSeats(ctx, tx, event.ID, req.Seats); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// Update changes a booking's seat count and adjusts the event's availability
// by the delta: growing the booking consumes seats, shrinking restores them.
func (s *BookingServiceImpl) Update(ctx context.Context, bookingID, userID int, req model.UpdateBookingRequest) (*model.Booking, error) {
	if req.Seats <= 0 {
		return nil, apperrors.ErrInvalidSeatCount
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	booking, err := s.repository.FindByIDAndUserWithLock(ctx, tx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	delta := req.Seats - booking.Seats
	if delta == 0 {
		if err := tx.Commit(ctx); err != nil {
			return nil, err
		}
		return booking, nil
	}

	if _, err := s.eventRepo.FindByIDWithLock(ctx, tx, booking.EventID); err != nil {
		return nil, err
	}

	updated, err := s.repository.UpdateSeats(ctx, tx, bookingID, req.Seats)
	if err != nil {
		return nil, err
	}

	if delta > 0 {
		err = s.eventRepo.DecrementSeats(ctx, tx, booking.EventID, delta)
	} else {
		err = s.eventRepo.RestoreSeats(ctx, tx, booking.EventID, -delta)
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}

// Cancel removes a booking and restores its seats onto the event.
func (s *BookingServiceImpl) Cancel(ctx context.Context, bookingID, userID int) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	booking, err := s.repository.FindByIDAndUserWithLock(ctx, tx, bookingID, userID)
	if err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, tx, booking.ID); err != nil {
		return err
	}

	if err := s.eventRepo.RestoreSeats(ctx, tx, booking.EventID, booking.Seats); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *BookingServiceImpl) List(ctx context.Context, userID int, page model.PageQuery) ([]*model.BookingWithEvent, model.Pagination, error) {
	page.Normalize()

	total, err := s.repository.CountByUser(ctx, userID)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	offset := (page.Page - 1) * page.Limit
	bookings, err := s.repository.ListByUser(ctx, userID, page.Limit, offset)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	return bookings, model.NewPagination(page.Page, page.Limit, total), nil
}
