package model

import "time"

// Booking 訂位模型. At most one row exists per (event_id, user_id), enforced
// by a unique constraint.
type Booking struct {
	ID        int       `json:"id" db:"id"`
	EventID   int       `json:"event_id" db:"event_id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Seats     int       `json:"seats" db:"seats"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateBookingRequest 建立訂位請求. Seats is validated in the service so a
// non-positive count maps to its own error instead of a generic binding error.
type CreateBookingRequest struct {
	EventID int `json:"event_id" binding:"required"`
	Seats   int `json:"seats"`
}

// UpdateBookingRequest 調整訂位請求
type UpdateBookingRequest struct {
	Seats int `json:"seats"`
}

// BookingWithEvent joins a booking with its event and the event's organizer
// for display.
type BookingWithEvent struct {
	Booking
	EventTitle    string    `json:"event_title" db:"event_title"`
	EventDate     time.Time `json:"event_date" db:"event_date"`
	EventLocation string    `json:"event_location" db:"event_location"`
	OrganizerName string    `json:"organizer_name" db:"organizer_name"`
}
