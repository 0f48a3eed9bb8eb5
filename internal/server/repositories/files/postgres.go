package files

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/teachloop/internal/common"
	"github.com/dmitrijs2005/teachloop/internal/dbx"
	"github.com/dmitrijs2005/teachloop/internal/server/models"
)

// PostgresRepository implements file records over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, f *models.StoredFile) error {
	query := `
		INSERT INTO stored_files (bucket, key, owner_id, content_type)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, f.Bucket, f.Key, f.OwnerID, f.ContentType); err != nil {
		if errors.Is(dbx.Classify(err), common.ErrorAlreadyExists) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, bucket, key string) (*models.StoredFile, error) {
	query := `SELECT bucket, key, owner_id, content_type, created_at FROM stored_files
		WHERE bucket = $1 AND key = $2`

	f := &models.StoredFile{}
	if err := r.db.QueryRowContext(ctx, query, bucket, key).Scan(&f.Bucket, &f.Key, &f.OwnerID, &f.ContentType, &f.CreatedAt); err != nil {
		if errors.Is(dbx.Classify(err), common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select file: %w", err)
	}
	return f, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, bucket, key string) error {
	query := `DELETE FROM stored_files WHERE bucket = $1 AND key = $2`
	result, err := r.db.ExecContext(ctx, query, bucket, key)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	ra, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	switch ra {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("wrong rows affected count: %d", ra)
	}
}
