package models

import "time"

type Profile struct {
	UserID      string
	DisplayName string
	Email       string
	Bio         *string
	TeachSkills []string
	LearnSkills []string
	Role        string
	Avatar      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
