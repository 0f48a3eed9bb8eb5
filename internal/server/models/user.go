// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account known to the identity service.
type User struct {
	ID            string
	Email         string
	DisplayName   string
	PasswordHash  string
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
