package services

import (
	"context"

	"github.com/dmitrijs2005/teachloop/internal/client/client"
	"github.com/dmitrijs2005/teachloop/internal/client/models"
)

// TeachingService manages the courses the signed-in user teaches.
type TeachingService interface {
	MyCourses(ctx context.Context) ([]*models.Course, error)
	CreateCourse(ctx context.Context, in models.NewCourse) (*models.Course, error)
}

type teachingService struct {
	client  client.Client
	session Session
}

func NewTeachingService(client client.Client, session Session) TeachingService {
	return &teachingService{client: client, session: session}
}

func (s *teachingService) MyCourses(ctx context.Context) ([]*models.Course, error) {
	id, err := principalID(s.session)
	if err != nil {
		return nil, err
	}
	return s.client.ListInstructorCourses(ctx, id)
}

func (s *teachingService) CreateCourse(ctx context.Context, in models.NewCourse) (*models.Course, error) {
	if _, err := principalID(s.session); err != nil {
		return nil, err
	}
	return s.client.CreateCourse(ctx, in)
}
