package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/teachloop/internal/client/client"
	"github.com/dmitrijs2005/teachloop/internal/client/models"
)

// CategoryAll matches every course.
const CategoryAll = "All"

// Categories are the filters offered when browsing.
var Categories = []string{CategoryAll, "Programming", "Design", "Data Science", "Marketing"}

const browsePageSize = 100

// Filter narrows a course listing. Search matches title, description or any
// tag, case-insensitively; an empty Category or CategoryAll matches all.
type Filter struct {
	Search   string
	Category string
}

func (f Filter) Match(c *models.Course) bool {
	if f.Category != "" && f.Category != CategoryAll && !strings.EqualFold(f.Category, c.Category) {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Title), q) || strings.Contains(strings.ToLower(c.Description), q) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// LearningItem is one of the caller's enrollments with its course. Course is
// nil when the course no longer exists.
type LearningItem struct {
	Enrollment *models.Enrollment
	Course     *models.Course
}

// CourseService drives the catalogue and the learner's own courses.
//
// Browse keeps the fetched catalogue so that Enroll can bump the shown
// enrollment count without another listing.
type CourseService interface {
	Browse(ctx context.Context, f Filter) ([]*models.Course, error)
	Enroll(ctx context.Context, courseID string) (*models.Enrollment, error)
	Learning(ctx context.Context) ([]LearningItem, error)
	// TrackProgress records progress (0..100) on the caller's enrollment in
	// courseID.
	TrackProgress(ctx context.Context, courseID string, progress int32) (*models.Enrollment, error)
}

type courseService struct {
	client client.Client

	mu    sync.Mutex
	cache map[string]*models.Course
}

func NewCourseService(client client.Client) CourseService {
	return &courseService{client: client, cache: map[string]*models.Course{}}
}

func (s *courseService) Browse(ctx context.Context, f Filter) ([]*models.Course, error) {
	var all []*models.Course
	for {
		page, total, err := s.client.ListCourses(ctx, browsePageSize, len(all))
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) == 0 || int64(len(all)) >= total {
			break
		}
	}

	s.mu.Lock()
	s.cache = make(map[string]*models.Course, len(all))
	for _, c := range all {
		s.cache[c.ID] = c
	}
	s.mu.Unlock()

	out := make([]*models.Course, 0, len(all))
	for _, c := range all {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *courseService) Enroll(ctx context.Context, courseID string) (*models.Enrollment, error) {
	e, err := s.client.Enroll(ctx, courseID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if c, ok := s.cache[courseID]; ok {
		c.EnrollmentCount++
	}
	s.mu.Unlock()

	return e, nil
}

func (s *courseService) course(ctx context.Context, id string) (*models.Course, error) {
	s.mu.Lock()
	c, ok := s.cache[id]
	s.mu.Unlock()
	if ok {
		return c, nil
	}

	c, err := s.client.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[id] = c
	s.mu.Unlock()
	return c, nil
}

func (s *courseService) Learning(ctx context.Context) ([]LearningItem, error) {
	list, err := s.client.ListEnrollments(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]LearningItem, 0, len(list))
	for _, e := range list {
		c, err := s.course(ctx, e.CourseID)
		if err != nil && !errors.Is(err, client.ErrNotFound) {
			return nil, err
		}
		items = append(items, LearningItem{Enrollment: e, Course: c})
	}
	return items, nil
}

func (s *courseService) TrackProgress(ctx context.Context, courseID string, progress int32) (*models.Enrollment, error) {
	if progress < 0 || progress > 100 {
		return nil, fmt.Errorf("%w: progress must be between 0 and 100", client.ErrInvalidArgument)
	}

	list, err := s.client.ListEnrollments(ctx)
	if err != nil {
		return nil, err
	}

	for _, e := range list {
		if e.CourseID == courseID {
			return s.client.UpdateProgress(ctx, e.ID, progress)
		}
	}
	return nil, fmt.Errorf("%w: not enrolled in %s", client.ErrNotFound, courseID)
}
