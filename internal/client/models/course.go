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

// NewCourse is what an instructor submits; the server fills in the rest.
type NewCourse struct {
	Title       string
	Description string
	Category    string
	Level       string
	Price       *float64
	Thumbnail   *string
	Status      string
	Tags        []string
}

type Enrollment struct {
	ID         string
	UserID     string
	CourseID   string
	EnrolledAt time.Time
	Progress   int32
}

// Completed reports whether the enrollment reached 100%.
func (e *Enrollment) Completed() bool {
	return e.Progress >= 100
}

// UploadTicket is a presigned upload slot returned by the storage service.
type UploadTicket struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}
