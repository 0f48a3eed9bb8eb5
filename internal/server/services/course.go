package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/teachloop/internal/common"
	"github.com/dmitrijs2005/teachloop/internal/dbx"
	"github.com/dmitrijs2005/teachloop/internal/server/models"
	"github.com/dmitrijs2005/teachloop/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/teachloop/internal/server/validation"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// NewCourse is the caller-supplied part of a course.
type NewCourse struct {
	Title       string   `json:"title" validate:"notblank,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	Category    string   `json:"category" validate:"notblank,max=100"`
	Level       string   `json:"level" validate:"notblank,max=50"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0"`
	Thumbnail   *string  `json:"thumbnail"`
	Status      string   `json:"status" validate:"omitempty,oneof=draft published archived"`
	Tags        []string `json:"tags" validate:"max=20,dive,notblank"`
}

type progressUpdate struct {
	Progress int32 `json:"progress" validate:"gte=0,lte=100"`
}

// CourseService manages the course catalogue and enrollments.
type CourseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCourseService(db *sql.DB, m repomanager.RepositoryManager) *CourseService {
	return &CourseService{db: db, repomanager: m}
}

// CreateCourse publishes a course owned by instructorID. The instructor name
// is taken from their profile, falling back to the account display name.
func (s *CourseService) CreateCourse(ctx context.Context, instructorID string, in NewCourse) (*models.Course, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	name, err := s.instructorName(ctx, instructorID)
	if err != nil {
		return nil, err
	}

	c := &models.Course{
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		InstructorID:   instructorID,
		InstructorName: name,
		Category:       strings.TrimSpace(in.Category),
		Level:          strings.TrimSpace(in.Level),
		Price:          in.Price,
		Thumbnail:      in.Thumbnail,
		Status:         in.Status,
		Tags:           in.Tags,
	}
	if c.Status == "" {
		c.Status = models.CourseStatusDraft
	}

	created, err := s.repomanager.Courses(s.db).Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	return created, nil
}

func (s *CourseService) instructorName(ctx context.Context, userID string) (string, error) {
	p, err := s.repomanager.Profiles(s.db).Get(ctx, userID)
	if err == nil {
		return p.DisplayName, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return "", fmt.Errorf("error loading profile: %w", err)
	}

	u, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("error loading user: %w", err)
	}
	return u.DisplayName, nil
}

// ListCourses returns a page of courses, newest first. A non-positive limit
// means DefaultPageSize; limits above MaxPageSize are capped.
func (s *CourseService) ListCourses(ctx context.Context, limit, offset int) ([]*models.Course, int64, error) {
	if offset < 0 {
		return nil, 0, fmt.Errorf("%w: offset must not be negative", common.ErrorValidation)
	}
	switch {
	case limit <= 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}

	list, total, err := s.repomanager.Courses(s.db).List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing courses: %w", err)
	}
	return list, total, nil
}

func (s *CourseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	c, err := s.repomanager.Courses(s.db).Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading course: %w", err)
	}
	return c, nil
}

func (s *CourseService) ListInstructorCourses(ctx context.Context, instructorID string) ([]*models.Course, error) {
	list, err := s.repomanager.Courses(s.db).ListByInstructor(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	return list, nil
}

// Enroll creates an enrollment with zero progress and bumps the course's
// enrollment count in one transaction.
func (s *CourseService) Enroll(ctx context.Context, userID, courseID string) (*models.Enrollment, error) {
	var created *models.Enrollment
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Courses(tx).Get(ctx, courseID); err != nil {
			return err
		}

		var err error
		created, err = s.repomanager.Enrollments(tx).Create(ctx, &models.Enrollment{UserID: userID, CourseID: courseID})
		if err != nil {
			return err
		}
		return s.repomanager.Courses(tx).IncrementEnrollmentCount(ctx, courseID)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error enrolling: %w", err)
	}
	return created, nil
}

// ListEnrollments returns the enrollments of userID. Callers may only list
// their own.
func (s *CourseService) ListEnrollments(ctx context.Context, callerID, userID string) ([]*models.Enrollment, error) {
	if userID == "" {
		userID = callerID
	}
	if userID != callerID {
		return nil, common.ErrorForbidden
	}

	list, err := s.repomanager.Enrollments(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	return list, nil
}

// ListCourseEnrollments returns the students of a course; only its
// instructor may ask.
func (s *CourseService) ListCourseEnrollments(ctx context.Context, callerID, courseID string) ([]*models.Enrollment, error) {
	c, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if c.InstructorID != callerID {
		return nil, common.ErrorForbidden
	}

	list, err := s.repomanager.Enrollments(s.db).ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	return list, nil
}

// UpdateProgress sets the progress of the caller's own enrollment.
func (s *CourseService) UpdateProgress(ctx context.Context, callerID, enrollmentID string, progress int32) (*models.Enrollment, error) {
	if err := validation.Struct(progressUpdate{Progress: progress}); err != nil {
		return nil, err
	}

	repo := s.repomanager.Enrollments(s.db)
	e, err := repo.Get(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading enrollment: %w", err)
	}
	if e.UserID != callerID {
		return nil, common.ErrorForbidden
	}

	updated, err := repo.UpdateProgress(ctx, enrollmentID, progress)
	if err != nil {
		return nil, fmt.Errorf("error updating progress: %w", err)
	}
	return updated, nil
}
