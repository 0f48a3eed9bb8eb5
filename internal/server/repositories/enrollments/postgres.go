package enrollments

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/teachloop/internal/common"
	"github.com/dmitrijs2005/teachloop/internal/dbx"
	"github.com/dmitrijs2005/teachloop/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Enrollment) (*models.Enrollment, error) {
	query := `
		INSERT INTO enrollments (user_id, course_id, progress)
		VALUES ($1, $2, $3)
		RETURNING id, enrolled_at
	`
	err := r.db.QueryRowContext(ctx, query, e.UserID, e.CourseID, e.Progress).Scan(&e.ID, &e.EnrolledAt)
	if err != nil {
		if errors.Is(dbx.Classify(err), common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Enrollment, error) {
	query := `SELECT id, user_id, course_id, enrolled_at, progress FROM enrollments WHERE id = $1`

	e := &models.Enrollment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.UserID, &e.CourseID, &e.EnrolledAt, &e.Progress)
	if err != nil {
		if errors.Is(dbx.Classify(err), common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Enrollment, error) {
	query := `SELECT id, user_id, course_id, enrolled_at, progress FROM enrollments
		WHERE user_id = $1 ORDER BY enrolled_at DESC`
	return r.selectMany(ctx, query, userID)
}

func (r *PostgresRepository) ListByCourse(ctx context.Context, courseID string) ([]*models.Enrollment, error) {
	query := `SELECT id, user_id, course_id, enrolled_at, progress FROM enrollments
		WHERE course_id = $1 ORDER BY enrolled_at DESC`
	return r.selectMany(ctx, query, courseID)
}

func (r *PostgresRepository) selectMany(ctx context.Context, query string, arg any) ([]*models.Enrollment, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to select enrollments: %w", err)
	}
	defer rows.Close()

	result := []*models.Enrollment{}
	for rows.Next() {
		var e models.Enrollment
		if err := rows.Scan(&e.ID, &e.UserID, &e.CourseID, &e.EnrolledAt, &e.Progress); err != nil {
			return nil, err
		}
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) UpdateProgress(ctx context.Context, id string, progress int32) (*models.Enrollment, error) {
	query := `UPDATE enrollments SET progress = $2 WHERE id = $1
		RETURNING id, user_id, course_id, enrolled_at, progress`

	e := &models.Enrollment{}
	err := r.db.QueryRowContext(ctx, query, id, progress).Scan(&e.ID, &e.UserID, &e.CourseID, &e.EnrolledAt, &e.Progress)
	if err != nil {
		if errors.Is(dbx.Classify(err), common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}
