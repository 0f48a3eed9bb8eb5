// Package sessions declares the server-side repository contract for signed-in
// sessions and their refresh tokens.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/teachloop/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking sessions.
type Repository interface {
	// Create stores a new session. ID, UserID, RefreshToken and ExpiresAt must be set.
	Create(ctx context.Context, s *models.Session) error

	// Get returns the session with the given ID or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*models.Session, error)

	// FindByRefreshToken looks up a session by its opaque refresh token.
	FindByRefreshToken(ctx context.Context, token string) (*models.Session, error)

	// Delete removes a session. Deleting a non-existent session is not an error.
	Delete(ctx context.Context, id string) error
}
