package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/teachloop/internal/client/client"
	"github.com/dmitrijs2005/teachloop/internal/client/models"
	"github.com/dmitrijs2005/teachloop/internal/client/session"
	"github.com/dmitrijs2005/teachloop/internal/logging"
)

// fakeClient is an in-memory client.Client. The caller is always me.
type fakeClient struct {
	mu sync.Mutex

	me          string
	courses     []*models.Course // newest first
	enrollments []*models.Enrollment
	profiles    map[string]*models.Profile

	listCalls   int
	getCourse   map[string]int
	listErr     error
	enrollErr   error
	uploadErr   error
	lastUpload  [2]string
	downloadKey string
	deleted     []string
	deleteErr   error
}

var _ client.Client = (*fakeClient)(nil)

func newFakeClient(me string) *fakeClient {
	return &fakeClient{me: me, profiles: map[string]*models.Profile{}, getCourse: map[string]int{}}
}

func (f *fakeClient) addCourse(c *models.Course) *models.Course {
	f.courses = append([]*models.Course{c}, f.courses...)
	return c
}

func (f *fakeClient) addEnrollment(userID, courseID string, progress int32) {
	f.enrollments = append(f.enrollments, &models.Enrollment{
		ID:       fmt.Sprintf("e%d", len(f.enrollments)+1),
		UserID:   userID,
		CourseID: courseID,
		Progress: progress,
	})
}

func (f *fakeClient) Close() error               { return nil }
func (f *fakeClient) Ping(context.Context) error { return nil }

func (f *fakeClient) CreateAccount(context.Context, string, string, string) (*models.Principal, error) {
	return nil, client.ErrUnavailable
}
func (f *fakeClient) StartSession(context.Context, string, string) error {
	return client.ErrUnavailable
}
func (f *fakeClient) EndSession(context.Context) error { return nil }
func (f *fakeClient) CurrentPrincipal(context.Context) (*models.Principal, error) {
	return &models.Principal{ID: f.me}, nil
}

func (f *fakeClient) CreateProfile(_ context.Context, id string, fields models.ProfileFields) (*models.Profile, error) {
	p := &models.Profile{PrincipalID: id, DisplayName: fields.DisplayName}
	f.profiles[id] = p
	return p, nil
}

func (f *fakeClient) GetProfile(_ context.Context, id string) (*models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, client.ErrNotFound
	}
	return p, nil
}

func (f *fakeClient) UpdateProfile(context.Context, string, models.ProfilePatch) (*models.Profile, error) {
	return nil, client.ErrUnavailable
}

func (f *fakeClient) CreateCourse(_ context.Context, in models.NewCourse) (*models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := &models.Course{
		ID:           fmt.Sprintf("c%d", len(f.courses)+1),
		Title:        in.Title,
		Category:     in.Category,
		InstructorID: f.me,
		Status:       in.Status,
	}
	f.courses = append([]*models.Course{c}, f.courses...)
	return c, nil
}

func (f *fakeClient) ListCourses(_ context.Context, limit, offset int) ([]*models.Course, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	total := int64(len(f.courses))
	if offset >= len(f.courses) {
		return nil, total, nil
	}
	end := min(offset+limit, len(f.courses))
	out := make([]*models.Course, 0, end-offset)
	for _, c := range f.courses[offset:end] {
		cp := *c
		out = append(out, &cp)
	}
	return out, total, nil
}

func (f *fakeClient) GetCourse(_ context.Context, id string) (*models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCourse[id]++
	for _, c := range f.courses {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: course not found", client.ErrNotFound)
}

func (f *fakeClient) ListInstructorCourses(_ context.Context, id string) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range f.courses {
		if c.InstructorID == id {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClient) Enroll(_ context.Context, courseID string) (*models.Enrollment, error) {
	if f.enrollErr != nil {
		return nil, f.enrollErr
	}
	f.addEnrollment(f.me, courseID, 0)
	return f.enrollments[len(f.enrollments)-1], nil
}

func (f *fakeClient) ListEnrollments(context.Context) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, e := range f.enrollments {
		if e.UserID == f.me {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeClient) ListCourseEnrollments(_ context.Context, courseID string) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, e := range f.enrollments {
		if e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeClient) UpdateProgress(_ context.Context, id string, progress int32) (*models.Enrollment, error) {
	for _, e := range f.enrollments {
		if e.ID == id && e.UserID == f.me {
			e.Progress = progress
			return e, nil
		}
	}
	return nil, client.ErrNotFound
}

func (f *fakeClient) CreateUploadURL(_ context.Context, bucket, contentType string) (*models.UploadTicket, error) {
	f.lastUpload = [2]string{bucket, contentType}
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &models.UploadTicket{Key: f.me + "/avatar-1", URL: "http://s3.local/" + bucket + "/" + f.me + "/avatar-1"}, nil
}

func (f *fakeClient) CreateDownloadURL(_ context.Context, bucket, key string) (string, error) {
	f.downloadKey = key
	return "http://s3.local/" + bucket + "/" + key + "?sig", nil
}

func (f *fakeClient) DeleteFile(_ context.Context, bucket, key string) error {
	f.deleted = append(f.deleted, bucket+"/"+key)
	return f.deleteErr
}

// fakeSession serves a fixed identity and records profile patches.
type fakeSession struct {
	identity  *session.Identity
	patches   []models.ProfilePatch
	updateErr error
}

func signedIn(id string) *fakeSession {
	return &fakeSession{identity: &session.Identity{PrincipalID: id, DisplayName: "Me"}}
}

func (s *fakeSession) Snapshot() session.Snapshot {
	if s.identity == nil {
		return session.Snapshot{State: session.Anonymous, Settled: true}
	}
	return session.Snapshot{State: session.Authenticated, Settled: true, Identity: s.identity.Clone()}
}

func (s *fakeSession) UpdateProfile(_ context.Context, p models.ProfilePatch) (session.Result, error) {
	s.patches = append(s.patches, p)
	if s.updateErr != nil {
		return session.Result{Outcome: session.Failed}, s.updateErr
	}
	if p.Avatar != nil {
		v := *p.Avatar
		s.identity.Avatar = &v
	}
	return session.Result{Outcome: session.Succeeded}, nil
}

type logEntry struct {
	msg  string
	args []any
}

// recLogger keeps warnings and drops everything else.
type recLogger struct {
	warns []logEntry
}

func (l *recLogger) Debug(context.Context, string, ...any) {}
func (l *recLogger) Info(context.Context, string, ...any)  {}
func (l *recLogger) Warn(_ context.Context, msg string, args ...any) {
	l.warns = append(l.warns, logEntry{msg, args})
}
func (l *recLogger) Error(context.Context, string, ...any) {}
func (l *recLogger) With(...any) logging.Logger            { return l }
