package models

import "time"

// Session is a signed-in device. The access token carries its ID so that a
// deleted session invalidates outstanding tokens.
type Session struct {
	ID           string
	UserID       string
	RefreshToken string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}
