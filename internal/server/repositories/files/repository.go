// Package files tracks objects handed out for upload to object storage.
package files

import (
	"context"

	"github.com/dmitrijs2005/teachloop/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, f *models.StoredFile) error
	Get(ctx context.Context, bucket, key string) (*models.StoredFile, error)
	// Delete removes the record; exactly one row must match.
	Delete(ctx context.Context, bucket, key string) error
}
