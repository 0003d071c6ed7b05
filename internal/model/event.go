package model

import "time"

// Event 活動模型
type Event struct {
	ID             int       `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Description    *string   `json:"description,omitempty" db:"description"`
	Date           time.Time `json:"date" db:"date"`
	Location       string    `json:"location" db:"location"`
	AvailableSeats int       `json:"available_seats" db:"available_seats"`
	UserID         int       `json:"user_id" db:"user_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// CreateEventRequest 建立活動請求
type CreateEventRequest struct {
	Title          string    `json:"title" binding:"required"`
	Description    *string   `json:"description"`
	Date           time.Time `json:"date" binding:"required"`
	Location       string    `json:"location" binding:"required"`
	AvailableSeats int       `json:"available_seats" binding:"gte=0"`
}

// UpdateEventParams carries the updatable columns; nil means keep.
type UpdateEventParams struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Date           *time.Time `json:"date"`
	Location       *string    `json:"location"`
	AvailableSeats *int       `json:"available_seats" binding:"omitempty,gte=0"`
}

// EventWithBookingStatus augments an event with the aggregate booked seats
// and whether the requesting user already holds a booking.
type EventWithBookingStatus struct {
	Event
	BookedSeats    int  `json:"booked_seats"`
	UserHasBooking bool `json:"user_has_booking"`
}

// LocationStats 場地統計. A "room" is the derived grouping of events that
// share a location string.
type LocationStats struct {
	Location       string `json:"location" db:"location"`
	Events         int    `json:"events" db:"events"`
	UpcomingEvents int    `json:"upcoming_events" db:"upcoming_events"`
}

// RenameRoomRequest 場地改名請求
type RenameRoomRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}
