// Package profiles persists application profiles keyed by user id.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/teachloop/internal/server/models"
)

type Repository interface {
	// Create inserts a profile. A second profile for the same user yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, p *models.Profile) (*models.Profile, error)
	Get(ctx context.Context, userID string) (*models.Profile, error)
	// Update overwrites every mutable column of an existing profile.
	Update(ctx context.Context, p *models.Profile) (*models.Profile, error)
}
