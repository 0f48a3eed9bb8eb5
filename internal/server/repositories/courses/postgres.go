package courses

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/teachloop/internal/common"
	"github.com/dmitrijs2005/teachloop/internal/dbx"
	"github.com/dmitrijs2005/teachloop/internal/server/models"
)

// PostgresRepository implements course storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const courseColumns = `id, title, description, instructor_id, instructor_name, category, level,
	price, thumbnail, status, tags, enrollment_count, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanCourse(s scanner) (*models.Course, error) {
	c := &models.Course{}
	var tags []byte
	if err := s.Scan(
		&c.ID, &c.Title, &c.Description, &c.InstructorID, &c.InstructorName, &c.Category, &c.Level,
		&c.Price, &c.Thumbnail, &c.Status, &tags, &c.EnrollmentCount, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.Tags = []string{}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &c.Tags); err != nil {
			return nil, fmt.Errorf("decode tags: %w", err)
		}
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Course) (*models.Course, error) {
	if c.Tags == nil {
		c.Tags = []string{}
	}
	tags, err := json.Marshal(c.Tags)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO courses (title, description, instructor_id, instructor_name, category, level, price, thumbnail, status, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, enrollment_count, created_at, updated_at
	`
	err = r.db.QueryRowContext(ctx, query,
		c.Title, c.Description, c.InstructorID, c.InstructorName, c.Category, c.Level,
		c.Price, c.Thumbnail, c.Status, tags).
		Scan(&c.ID, &c.EnrollmentCount, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	c, err := scanCourse(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(dbx.Classify(err), common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) List(ctx context.Context, limit, offset int) ([]*models.Course, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM courses`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}

	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	result, err := r.selectMany(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *PostgresRepository) ListByInstructor(ctx context.Context, instructorID string) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE instructor_id = $1 ORDER BY created_at DESC`
	return r.selectMany(ctx, query, instructorID)
}

func (r *PostgresRepository) selectMany(ctx context.Context, query string, args ...any) ([]*models.Course, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select courses: %w", err)
	}
	defer rows.Close()

	result := []*models.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) IncrementEnrollmentCount(ctx context.Context, id string) error {
	query := `UPDATE courses SET enrollment_count = enrollment_count + 1, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
