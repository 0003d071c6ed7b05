// Package mocks provides hand-written testify mocks for the repository
// interfaces, for use in service unit tests.
package mocks

import (
	"context"

	"go-event-booking/internal/model"
	"go-event-booking/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type UserRepositoryMock struct {
	mock.Mock
}

func NewUserRepositoryMock() *UserRepositoryMock {
	return &UserRepositoryMock{}
}

func (m *UserRepositoryMock) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepositoryMock) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepositoryMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepositoryMock) Update(ctx context.Context, id int, params repository.UpdateUserParams) (*model.User, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type EventRepositoryMock struct {
	mock.Mock
}

func NewEventRepositoryMock() *EventRepositoryMock {
	return &EventRepositoryMock{}
}

func (m *EventRepositoryMock) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventRepositoryMock) List(ctx context.Context, limit, offset int) ([]*model.Event, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *EventRepositoryMock) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *EventRepositoryMock) FindByID(ctx context.Context, id int) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventRepositoryMock) Update(ctx context.Context, id, ownerID int, params model.UpdateEventParams) (*model.Event, error) {
	args := m.Called(ctx, id, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventRepositoryMock) ListLocations(ctx context.Context) ([]*model.LocationStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.LocationStats), args.Error(1)
}

func (m *EventRepositoryMock) RenameLocation(ctx context.Context, ownerID int, from, to string) (int, error) {
	args := m.Called(ctx, ownerID, from, to)
	return args.Int(0), args.Error(1)
}

func (m *EventRepositoryMock) FindByIDWithLock(ctx context.Context, tx pgx.Tx, id int) (*model.Event, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventRepositoryMock) DecrementSeats(ctx context.Context, tx pgx.Tx, id int, seats int) error {
	args := m.Called(ctx, tx, id, seats)
	return args.Error(0)
}

func (m *EventRepositoryMock) RestoreSeats(ctx context.Context, tx pgx.Tx, id int, seats int) error {
	args := m.Called(ctx, tx, id, seats)
	return args.Error(0)
}

func (m *EventRepositoryMock) Delete(ctx context.Context, tx pgx.Tx, id, ownerID int) error {
	args := m.Called(ctx, tx, id, ownerID)
	return args.Error(0)
}

func (m *EventRepositoryMock) DeleteByLocation(ctx context.Context, tx pgx.Tx, ownerID int, location string) (int, error) {
	args := m.Called(ctx, tx, ownerID, location)
	return args.Int(0), args.Error(1)
}

type BookingRepositoryMock struct {
	mock.Mock
}

func NewBookingRepositoryMock() *BookingRepositoryMock {
	return &BookingRepositoryMock{}
}

func (m *BookingRepositoryMock) ListByUser(ctx context.Context, userID, limit, offset int) ([]*model.BookingWithEvent, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.BookingWithEvent), args.Error(1)
}

func (m *BookingRepositoryMock) CountByUser(ctx context.Context, userID int) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *BookingRepositoryMock) BookedSeats(ctx context.Context, eventID int) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

func (m *BookingRepositoryMock) HasBooking(ctx context.Context, eventID, userID int) (bool, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *BookingRepositoryMock) Create(ctx context.Context, tx pgx.Tx, booking *model.Booking) (*model.Booking, error) {
	args := m.Called(ctx, tx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) ExistsForEvent(ctx context.Context, tx pgx.Tx, eventID, userID int) (bool, error) {
	args := m.Called(ctx, tx, eventID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *BookingRepositoryMock) FindByIDAndUserWithLock(ctx context.Context, tx pgx.Tx, id, userID int) (*model.Booking, error) {
	args := m.Called(ctx, tx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) UpdateSeats(ctx context.Context, tx pgx.Tx, id, seats int) (*model.Booking, error) {
	args := m.Called(ctx, tx, id, seats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingRepositoryMock) Delete(ctx context.Context, tx pgx.Tx, id int) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *BookingRepositoryMock) DeleteByEventID(ctx context.Context, tx pgx.Tx, eventID int) error {
	args := m.Called(ctx, tx, eventID)
	return args.Error(0)
}

func (m *BookingRepositoryMock) DeleteByEventLocation(ctx context.Context, tx pgx.Tx, ownerID int, location string) error {
	args := m.Called(ctx, tx, ownerID, location)
	return args.Error(0)
}

type StatsRepositoryMock struct {
	mock.Mock
}

func NewStatsRepositoryMock() *StatsRepositoryMock {
	return &StatsRepositoryMock{}
}

func (m *StatsRepositoryMock) EventsByOwner(ctx context.Context, ownerID int) ([]*model.Event, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *StatsRepositoryMock) CountEventsByOwner(ctx context.Context, ownerID int) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *StatsRepositoryMock) UpcomingEvents(ctx context.Context, userID, limit int) ([]*model.Event, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *StatsRepositoryMock) LocationTallies(ctx context.Context, ownerID int) ([]*model.LocationStats, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.LocationStats), args.Error(1)
}
