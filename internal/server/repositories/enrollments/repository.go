// Package enrollments persists course enrollments.
package enrollments

import (
	"context"

	"github.com/dmitrijs2005/teachloop/internal/server/models"
)

type Repository interface {
	// Create enrolls a user; a second enrollment in the same course yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, e *models.Enrollment) (*models.Enrollment, error)
	Get(ctx context.Context, id string) (*models.Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Enrollment, error)
	ListByCourse(ctx context.Context, courseID string) ([]*models.Enrollment, error)
	UpdateProgress(ctx context.Context, id string, progress int32) (*models.Enrollment, error)
}
