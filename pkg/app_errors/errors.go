package apperrors

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyBooked      = errors.New("event already booked by user")
	ErrInsufficientSeats  = errors.New("insufficient available seats")
	ErrInvalidSeatCount   = errors.New("seat count must be positive")
	ErrInvalidInput       = errors.New("invalid input")
)
