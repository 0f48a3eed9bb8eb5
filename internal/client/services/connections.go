package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/dmitrijs2005/teachloop/internal/client/client"
)

const (
	StudentActive    = "Active"
	StudentCompleted = "Completed"
)

// Student is one enrollment in a course the caller teaches.
type Student struct {
	UserID      string
	Name        string
	CourseID    string
	CourseTitle string
	Progress    int32
	Status      string
	EnrolledAt  time.Time
}

// Teacher is an instructor of at least one course the caller is enrolled in.
type Teacher struct {
	InstructorID string
	Name         string
	Courses      []string
}

type ConnectionsService interface {
	Students(ctx context.Context) ([]Student, error)
	Teachers(ctx context.Context) ([]Teacher, error)
}

type connectionsService struct {
	client  client.Client
	session Session
}

func NewConnectionsService(client client.Client, session Session) ConnectionsService {
	return &connectionsService{client: client, session: session}
}

// Students lists enrollments across the caller's courses, newest course
// first. Names come from profiles; a student without one shows their id.
func (s *connectionsService) Students(ctx context.Context) ([]Student, error) {
	id, err := principalID(s.session)
	if err != nil {
		return nil, err
	}

	courses, err := s.client.ListInstructorCourses(ctx, id)
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	var out []Student
	for _, c := range courses {
		list, err := s.client.ListCourseEnrollments(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		for _, e := range list {
			name, ok := names[e.UserID]
			if !ok {
				name = s.displayName(ctx, e.UserID)
				names[e.UserID] = name
			}

			status := StudentActive
			if e.Completed() {
				status = StudentCompleted
			}
			out = append(out, Student{
				UserID:      e.UserID,
				Name:        name,
				CourseID:    c.ID,
				CourseTitle: c.Title,
				Progress:    e.Progress,
				Status:      status,
				EnrolledAt:  e.EnrolledAt,
			})
		}
	}
	return out, nil
}

func (s *connectionsService) displayName(ctx context.Context, userID string) string {
	p, err := s.client.GetProfile(ctx, userID)
	if err != nil || p.DisplayName == "" {
		return userID
	}
	return p.DisplayName
}

// Teachers groups the caller's enrolled courses by instructor, sorted by
// name. Courses that no longer exist are skipped.
func (s *connectionsService) Teachers(ctx context.Context) ([]Teacher, error) {
	if _, err := principalID(s.session); err != nil {
		return nil, err
	}

	list, err := s.client.ListEnrollments(ctx)
	if err != nil {
		return nil, err
	}

	byID := map[string]*Teacher{}
	for _, e := range list {
		c, err := s.client.GetCourse(ctx, e.CourseID)
		if errors.Is(err, client.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		t, ok := byID[c.InstructorID]
		if !ok {
			t = &Teacher{InstructorID: c.InstructorID, Name: c.InstructorName}
			byID[c.InstructorID] = t
		}
		t.Courses = append(t.Courses, c.Title)
	}

	out := make([]Teacher, 0, len(byID))
	for _, t := range byID {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].InstructorID < out[j].InstructorID
	})
	return out, nil
}

// distinctStudents counts different users among students.
func distinctStudents(students []Student) int {
	seen := map[string]struct{}{}
	for _, s := range students {
		seen[s.UserID] = struct{}{}
	}
	return len(seen)
}
