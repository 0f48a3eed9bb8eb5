package models

import "time"

const (
	CourseStatusDraft     = "draft"
	CourseStatusPublished = "published"
	CourseStatusArchived  = "archived"
)

type Course struct {
	ID              string
	Title           string
	Description     string
	InstructorID    string
	InstructorName  string
	Category        string
	Level           string
	Price           *float64
	Thumbnail       *string
	Status          string
	Tags            []string
	EnrollmentCount int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Enrollment struct {
	ID         string
	UserID     string
	CourseID   string
	EnrolledAt time.Time
	Progress   int32
}
