// Package courses persists the course catalogue.
package courses

import (
	"context"

	"github.com/dmitrijs2005/teachloop/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Course) (*models.Course, error)
	Get(ctx context.Context, id string) (*models.Course, error)
	// List returns one page of courses, newest first, and the total count.
	List(ctx context.Context, limit, offset int) ([]*models.Course, int64, error)
	ListByInstructor(ctx context.Context, instructorID string) ([]*models.Course, error)
	IncrementEnrollmentCount(ctx context.Context, id string) error
}
