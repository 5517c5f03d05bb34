package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is one monitoring run: from "start detection" to "stop detection".
type Session struct {
	ID        int        `json:"id"`
	UserID    int        `json:"user_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes,omitempty"`
}

// Event records one alarm or yawn transition within a session.
type Event struct {
	ID        int       `json:"id"`
	SessionID int       `json:"session_id"`
	EventType string    `json:"event_type"`
	EAR       float64   `json:"ear"`
	MAR       float64   `json:"mar"`
	Timestamp time.Time `json:"timestamp"`
}

// AlertContact is the persisted SMS recipient for a user.
type AlertContact struct {
	UserID      int       `json:"user_id"`
	PhoneNumber string    `json:"phone_number"`
	Enabled     bool      `json:"enabled"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateSessionRequest struct {
	Notes string `json:"notes,omitempty"`
}

type UpdateAlertContactRequest struct {
	PhoneNumber string `json:"phone_number"`
	Enabled     *bool  `json:"enabled,omitempty"`
}
