package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-event-booking/internal/model"
	"go-event-booking/internal/service/mocks"
	apperrors "go-event-booking/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupEventHandler(userID int) (*gin.Engine, *mocks.EventServiceMock) {
	svc := mocks.NewEventServiceMock()
	r := newTestRouter()
	NewEventHandler(svc, nil).RegisterRoutes(r, fakeAuth(userID), nil)
	return r, svc
}

func TestEventHandler_List(t *testing.T) {
	r, svc := setupEventHandler(7)

	events := []*model.Event{{ID: 1, Title: "Expo"}, {ID: 2, Title: "Concert"}}
	svc.On("List", mock.Anything, model.PageQuery{Page: 2, Limit: 5}).
		Return(events, model.Pagination{Page: 2, Limit: 5, Total: 12, TotalPages: 3}, nil)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/events?page=2&limit=5", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Events     []*model.Event   `json:"events"`
		Pagination model.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Events, 2)
	assert.Equal(t, 12, body.Pagination.Total)
	assert.Equal(t, 3, body.Pagination.TotalPages)
}

func TestEventHandler_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, svc := setupEventHandler(7)

		svc.On("Get", mock.Anything, 4, 7).Return(&model.EventWithBookingStatus{
			Event:          model.Event{ID: 4, Title: "Expo", AvailableSeats: 20},
			BookedSeats:    30,
			UserHasBooking: true,
		}, nil)

		w := serve(r, httptest.NewRequest(http.MethodGet, "/api/events/4", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"booked_seats":30`)
		assert.Contains(t, w.Body.String(), `"user_has_booking":true`)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		r, svc := setupEventHandler(7)

		svc.On("Get", mock.Anything, 99, 7).Return(nil, apperrors.ErrEventNotFound)

		w := serve(r, httptest.NewRequest(http.MethodGet, "/api/events/99", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - non-numeric id", func(t *testing.T) {
		r, svc := setupEventHandler(7)

		w := serve(r, httptest.NewRequest(http.MethodGet, "/api/events/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Get")
	})
}

func TestEventHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, svc := setupEventHandler(7)

		svc.On("Create", mock.Anything, 7, mock.MatchedBy(func(req model.CreateEventRequest) bool {
			return req.Title == "Expo" && req.AvailableSeats == 100
		})).Return(&model.Event{ID: 1, Title: "Expo", AvailableSeats: 100, UserID: 7}, nil)

		w := serve(r, jsonRequest(t, http.MethodPost, "/api/events", gin.H{
			"title":           "Expo",
			"date":            time.Now().Add(24 * time.Hour),
			"location":        "Main Hall",
			"available_seats": 100,
		}))

		assert.Equal(t, http.StatusCreated, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Failed - negative seats rejected by binding", func(t *testing.T) {
		r, svc := setupEventHandler(7)

		w := serve(r, jsonRequest(t, http.MethodPost, "/api/events", gin.H{
			"title":           "Expo",
			"date":            time.Now().Add(24 * time.Hour),
			"location":        "Main Hall",
			"available_seats": -5,
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - missing title", func(t *testing.T) {
		r, svc := setupEventHandler(7)

		w := serve(r, jsonRequest(t, http.MethodPost, "/api/events", gin.H{
			"date":     time.Now().Add(24 * time.Hour),
			"location": "Main Hall",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Create")
	})
}

func TestEventHandler_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, svc := setupEventHandler(7)

		svc.On("Update", mock.Anything, 4, 7, mock.MatchedBy(func(p model.UpdateEventParams) bool {
			return p.Title != nil && *p.Title == "Renamed" && p.Location == nil
		})).Return(&model.Event{ID: 4, Title: "Renamed", UserID: 7}, nil)

		w := serve(r, jsonRequest(t, http.MethodPut, "/api/events/4", gin.H{"title": "Renamed"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Renamed")
	})

	t.Run("Failed - someone else's event looks like not found", func(t *testing.T) {
		r, svc := setupEventHandler(8)

		svc.On("Update", mock.Anything, 4, 8, mock.Anything).
			Return(nil, apperrors.ErrEventNotFound)

		w := serve(r, jsonRequest(t, http.MethodPut, "/api/events/4", gin.H{"title": "Hijacked"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEventHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, svc := setupEventHandler(7)

		svc.On("Delete", mock.Anything, 4, 7).Return(nil)

		w := serve(r, httptest.NewRequest(http.MethodDelete, "/api/events/4", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Event deleted")
	})

	t.Run("Failed - not found", func(t *testing.T) {
		r, svc := setupEventHandler(7)

		svc.On("Delete", mock.Anything, 99, 7).Return(apperrors.ErrEventNotFound)

		w := serve(r, httptest.NewRequest(http.MethodDelete, "/api/events/99", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
