package service

import (
	"context"

	"go-event-booking/internal/model"
	"go-event-booking/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventService interface {
	Create(ctx context.Context, ownerID int, req model.CreateEventRequest) (*model.Event, error)
	List(ctx context.Context, page model.PageQuery) ([]*model.Event, model.Pagination, error)
	Get(ctx context.Context, eventID, requesterID int) (*model.EventWithBookingStatus, error)
	Update(ctx context.Context, eventID, ownerID int, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, eventID, ownerID int) error

	ListRooms(ctx context.Context) ([]*model.LocationStats, error)
	RenameRoom(ctx context.Context, ownerID int, req model.RenameRoomRequest) (int, error)
	DeleteRoom(ctx context.Context, ownerID int, location string) (int, error)
}

type EventServiceImpl struct {
	pool        *pgxpool.Pool
	repo        repository.EventRepository
	bookingRepo repository.BookingRepository
}

func NewEventService(
	pool *pgxpool.Pool,
	eventRepository repository.EventRepository,
	bookingRepository repository.BookingRepository,
) EventService {
	return &EventServiceImpl{
		pool:        pool,
		repo:        eventRepository,
		bookingRepo: bookingRepository,
	}
}

func (s *EventServiceImpl) Create(ctx context.Context, ownerID int, req model.CreateEventRequest) (*model.Event, error) {
	event := &model.Event{
		Title:          req.Title,
		Description:    req.Description,
		Date:           req.Date,
		Location:       req.Location,
		AvailableSeats: req.AvailableSeats,
		UserID:         ownerID,
	}
	return s.repo.Create(ctx, event)
}

func (s *EventServiceImpl) List(ctx context.Context, page model.PageQuery) ([]*model.Event, model.Pagination, error) {
	page.Normalize()

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	offset := (page.Page - 1) * page.Limit
	events, err := s.repo.List(ctx, page.Limit, offset)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	return events, model.NewPagination(page.Page, page.Limit, total), nil
}

// Get returns the event together with the aggregate booked seats and whether
// the requester already holds a booking on it.
func (s *EventServiceImpl) Get(ctx context.Context, eventID, requesterID int) (*model.EventWithBookingStatus, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	booked, err := s.bookingRepo.BookedSeats(ctx, eventID)
	if err != nil {
		return nil, err
	}

	hasBooking, err := s.bookingRepo.HasBooking(ctx, eventID, requesterID)
	if err != nil {
		return nil, err
	}

	return &model.EventWithBookingStatus{
		Event:          *event,
		BookedSeats:    booked,
		UserHasBooking: hasBooking,
	}, nil
}

func (s *EventServiceImpl) Update(ctx context.Context, eventID, ownerID int, params model.UpdateEventParams) (*model.Event, error) {
	return s.repo.Update(ctx, eventID, ownerID, params)
}

// Delete removes an event and all of its bookings in one transaction. The
// ownership predicate sits on the event delete itself, so the bookings are
// only gone once the owner check has held and the transaction commits.
func (s *EventServiceImpl) Delete(ctx context.Context, eventID, ownerID int) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := s.bookingRepo.DeleteByEventID(ctx, tx, eventID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, tx, eventID, ownerID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *EventServiceImpl) ListRooms(ctx context.Context) ([]*model.LocationStats, error) {
	return s.repo.ListLocations(ctx)
}

func (s *EventServiceImpl) RenameRoom(ctx context.Context, ownerID int, req model.RenameRoomRequest) (int, error) {
	return s.repo.RenameLocation(ctx, ownerID, req.From, req.To)
}

// DeleteRoom drops every event the owner has at a location, cascading their
// bookings, in one transaction.
func (s *EventServiceImpl) DeleteRoom(ctx context.Context, ownerID int, location string) (int, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	if err := s.bookingRepo.DeleteByEventLocation(ctx, tx, ownerID, location); err != nil {
		return 0, err
	}

	deleted, err := s.repo.DeleteByLocation(ctx, tx, ownerID, location)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
