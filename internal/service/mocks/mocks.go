// Package mocks provides hand-written testify mocks for the service
// interfaces, for use in handler tests.
package mocks

import (
	"context"

	"go-event-booking/internal/model"
	"go-event-booking/internal/service"

	"github.com/stretchr/testify/mock"
)

type AuthServiceMock struct {
	mock.Mock
}

func NewAuthServiceMock() *AuthServiceMock {
	return &AuthServiceMock{}
}

func (m *AuthServiceMock) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *AuthServiceMock) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResponse), args.Error(1)
}

type EventServiceMock struct {
	mock.Mock
}

func NewEventServiceMock() *EventServiceMock {
	return &EventServiceMock{}
}

func (m *EventServiceMock) Create(ctx context.Context, ownerID int, req model.CreateEventRequest) (*model.Event, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) List(ctx context.Context, page model.PageQuery) ([]*model.Event, model.Pagination, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(model.Pagination), args.Error(2)
	}
	return args.Get(0).([]*model.Event), args.Get(1).(model.Pagination), args.Error(2)
}

func (m *EventServiceMock) Get(ctx context.Context, eventID, requesterID int) (*model.EventWithBookingStatus, error) {
	args := m.Called(ctx, eventID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventWithBookingStatus), args.Error(1)
}

func (m *EventServiceMock) Update(ctx context.Context, eventID, ownerID int, params model.UpdateEventParams) (*model.Event, error) {
	args := m.Called(ctx, eventID, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) Delete(ctx context.Context, eventID, ownerID int) error {
	args := m.Called(ctx, eventID, ownerID)
	return args.Error(0)
}

func (m *EventServiceMock) ListRooms(ctx context.Context) ([]*model.LocationStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.LocationStats), args.Error(1)
}

func (m *EventServiceMock) RenameRoom(ctx context.Context, ownerID int, req model.RenameRoomRequest) (int, error) {
	args := m.Called(ctx, ownerID, req)
	return args.Int(0), args.Error(1)
}

func (m *EventServiceMock) DeleteRoom(ctx context.Context, ownerID int, location string) (int, error) {
	args := m.Called(ctx, ownerID, location)
	return args.Int(0), args.Error(1)
}

type BookingServiceMock struct {
	mock.Mock
}

func NewBookingServiceMock() *BookingServiceMock {
	return &BookingServiceMock{}
}

func (m *BookingServiceMock) Create(ctx context.Context, userID int, req model.CreateBookingRequest) (*model.Booking, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingServiceMock) Update(ctx context.Context, bookingID, userID int, req model.UpdateBookingRequest) (*model.Booking, error) {
	args := m.Called(ctx, bookingID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingServiceMock) Cancel(ctx context.Context, bookingID, userID int) error {
	args := m.Called(ctx, bookingID, userID)
	return args.Error(0)
}

func (m *BookingServiceMock) List(ctx context.Context, userID int, page model.PageQuery) ([]*model.BookingWithEvent, model.Pagination, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(model.Pagination), args.Error(2)
	}
	return args.Get(0).([]*model.BookingWithEvent), args.Get(1).(model.Pagination), args.Error(2)
}

type UserServiceMock struct {
	mock.Mock
}

func NewUserServiceMock() *UserServiceMock {
	return &UserServiceMock{}
}

func (m *UserServiceMock) GetProfile(ctx context.Context, userID int) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *UserServiceMock) UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (*model.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserServiceMock) GetDashboard(ctx context.Context, userID int) (*service.Dashboard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}
