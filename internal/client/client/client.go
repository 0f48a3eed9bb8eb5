package client

import (
	"context"

	"github.com/dmitrijs2005/teachloop/internal/client/models"
)

// Client is the full backend surface used by the CLI.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	CreateAccount(ctx context.Context, email, password, displayName string) (*models.Principal, error)
	StartSession(ctx context.Context, email, password string) error
	EndSession(ctx context.Context) error
	CurrentPrincipal(ctx context.Context) (*models.Principal, error)

	CreateProfile(ctx context.Context, principalID string, fields models.ProfileFields) (*models.Profile, error)
	GetProfile(ctx context.Context, principalID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, principalID string, patch models.ProfilePatch) (*models.Profile, error)

	CreateCourse(ctx context.Context, in models.NewCourse) (*models.Course, error)
	ListCourses(ctx context.Context, limit, offset int) ([]*models.Course, int64, error)
	GetCourse(ctx context.Context, courseID string) (*models.Course, error)
	ListInstructorCourses(ctx context.Context, instructorID string) ([]*models.Course, error)

	Enroll(ctx context.Context, courseID string) (*models.Enrollment, error)
	ListEnrollments(ctx context.Context) ([]*models.Enrollment, error)
	ListCourseEnrollments(ctx context.Context, courseID string) ([]*models.Enrollment, error)
	UpdateProgress(ctx context.Context, enrollmentID string, progress int32) (*models.Enrollment, error)

	CreateUploadURL(ctx context.Context, bucket, contentType string) (*models.UploadTicket, error)
	CreateDownloadURL(ctx context.Context, bucket, key string) (string, error)
	DeleteFile(ctx context.Context, bucket, key string) error
}
