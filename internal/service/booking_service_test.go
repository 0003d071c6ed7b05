package service

import (
	"context"
	"testing"

	"go-event-booking/internal/model"
	"go-event-booking/internal/repository/mocks"
	apperrors "go-event-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingService_Create_SeatValidation(t *testing.T) {
	bookingRepo := mocks.NewBookingRepositoryMock()
	eventRepo := mocks.NewEventRepositoryMock()
	svc := NewBookingService(nil, bookingRepo, eventRepo)

	tests := []struct {
		name  string
		seats int
	}{
		{"zero seats", 0},
		{"negative seats", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 1, model.CreateBookingRequest{
				EventID: 1,
				Seats:   tt.seats,
			})
			assert.ErrorIs(t, err, apperrors.ErrInvalidSeatCount)
		})
	}

	// the request must be rejected before anything touches the database
	bookingRepo.AssertNotCalled(t, "Create")
	eventRepo.AssertNotCalled(t, "FindByIDWithLock")
}

func TestBookingService_Update_SeatValidation(t *testing.T) {
	bookingRepo := mocks.NewBookingRepositoryMock()
	eventRepo := mocks.NewEventRepositoryMock()
	svc := NewBookingService(nil, bookingRepo, eventRepo)

	_, err := svc.Update(context.Background(), 5, 1, model.UpdateBookingRequest{Seats: 0})
	assert.ErrorIs(t, err, apperrors.ErrInvalidSeatCount)

	bookingRepo.AssertNotCalled(t, "FindByIDAndUserWithLock")
}

func TestBookingService_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		bookingRepo := mocks.NewBookingRepositoryMock()
		eventRepo := mocks.NewEventRepositoryMock()
		svc := NewBookingService(nil, bookingRepo, eventRepo)

		rows := []*model.BookingWithEvent{
			{Booking: model.Booking{ID: 3, EventID: 1, UserID: 7, Seats: 2}, EventTitle: "Concert"},
		}
		bookingRepo.On("CountByUser", mock.Anything, 7).Return(11, nil)
		bookingRepo.On("ListByUser", mock.Anything, 7, 10, 10).Return(rows, nil)

		got, pagination, err := svc.List(context.Background(), 7, model.PageQuery{Page: 2})

		require.NoError(t, err)
		assert.Equal(t, rows, got)
		assert.Equal(t, model.Pagination{Page: 2, Limit: 10, Total: 11, TotalPages: 2}, pagination)
		bookingRepo.AssertExpectations(t)
	})

	t.Run("Success - defaults applied", func(t *testing.T) {
		bookingRepo := mocks.NewBookingRepositoryMock()
		eventRepo := mocks.NewEventRepositoryMock()
		svc := NewBookingService(nil, bookingRepo, eventRepo)

		bookingRepo.On("CountByUser", mock.Anything, 7).Return(0, nil)
		bookingRepo.On("ListByUser", mock.Anything, 7, 10, 0).
			Return([]*model.BookingWithEvent{}, nil)

		_, pagination, err := svc.List(context.Background(), 7, model.PageQuery{Page: -1, Limit: 0})

		require.NoError(t, err)
		assert.Equal(t, model.Pagination{Page: 1, Limit: 10, Total: 0, TotalPages: 0}, pagination)
	})
}
