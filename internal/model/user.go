package model

import "time"

// User 帳號模型. The password column only ever holds a bcrypt hash and is
// never serialized.
type User struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RegisterRequest 註冊請求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest 登入請求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登入回應
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// UpdateProfileRequest carries the fields a user may change; nil means keep.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

// Profile is the read-only composition served by GET /api/profile.
type Profile struct {
	User     *User               `json:"user"`
	Events   []*Event            `json:"events"`
	Bookings []*BookingWithEvent `json:"bookings"`
}
