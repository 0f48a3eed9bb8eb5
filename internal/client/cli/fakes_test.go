package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/teachloop/internal/client/config"
	"github.com/dmitrijs2005/teachloop/internal/client/models"
	"github.com/dmitrijs2005/teachloop/internal/client/services"
	"github.com/dmitrijs2005/teachloop/internal/client/session"
	"github.com/dmitrijs2005/teachloop/internal/logging"
)

type fakeController struct {
	snap  session.Snapshot
	res   session.Result
	err   error
	next  *session.Identity
	calls []string

	email, password, name string
	patch                 models.ProfilePatch
}

func (f *fakeController) Snapshot() session.Snapshot { return f.snap }

func (f *fakeController) settle(op string) (session.Result, error) {
	f.calls = append(f.calls, op)
	if f.err != nil {
		return session.Result{Op: op, Outcome: session.Failed}, f.err
	}
	res := f.res
	if res.Op == "" {
		res = session.Result{Op: op, Outcome: session.Succeeded}
	}
	return res, nil
}

func (f *fakeController) Bootstrap(ctx context.Context) (session.Result, error) {
	res, err := f.settle("bootstrap")
	if err == nil && f.next != nil {
		f.snap = session.Snapshot{State: session.Authenticated, Settled: true, Identity: f.next}
	}
	return res, err
}

func (f *fakeController) Login(ctx context.Context, email, password string) (session.Result, error) {
	f.email, f.password = email, password
	res, err := f.settle("login")
	if err == nil {
		f.snap = session.Snapshot{State: session.Authenticated, Settled: true, Identity: f.next}
	}
	return res, err
}

func (f *fakeController) Signup(ctx context.Context, email, password, displayName string) (session.Result, error) {
	f.email, f.password, f.name = email, password, displayName
	res, err := f.settle("signup")
	if err == nil {
		f.snap = session.Snapshot{State: session.Authenticated, Settled: true, Identity: f.next}
	}
	return res, err
}

func (f *fakeController) Logout(ctx context.Context) (session.Result, error) {
	res, err := f.settle("logout")
	if err == nil {
		f.snap = session.Snapshot{State: session.Anonymous, Settled: true}
	}
	return res, err
}

func (f *fakeController) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (session.Result, error) {
	f.patch = patch
	return f.settle("update-profile")
}

type fakeCourses struct {
	list     []*models.Course
	filter   services.Filter
	enrolled []string
	learning []services.LearningItem
	err      error
}

func (f *fakeCourses) Browse(ctx context.Context, flt services.Filter) ([]*models.Course, error) {
	f.filter = flt
	return f.list, f.err
}

func (f *fakeCourses) Enroll(ctx context.Context, courseID string) (*models.Enrollment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.enrolled = append(f.enrolled, courseID)
	return &models.Enrollment{ID: "e-" + courseID, CourseID: courseID}, nil
}

func (f *fakeCourses) Learning(ctx context.Context) ([]services.LearningItem, error) {
	return f.learning, f.err
}

func (f *fakeCourses) TrackProgress(ctx context.Context, courseID string, progress int32) (*models.Enrollment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Enrollment{ID: "e-" + courseID, CourseID: courseID, Progress: progress}, nil
}

type fakeTeaching struct {
	mine    []*models.Course
	created []models.NewCourse
	err     error
}

func (f *fakeTeaching) MyCourses(ctx context.Context) ([]*models.Course, error) {
	return f.mine, f.err
}

func (f *fakeTeaching) CreateCourse(ctx context.Context, in models.NewCourse) (*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, in)
	return &models.Course{ID: "c-new", Title: in.Title, Status: in.Status}, nil
}

type fakeConnections struct {
	students []services.Student
	teachers []services.Teacher
	err      error
}

func (f *fakeConnections) Students(ctx context.Context) ([]services.Student, error) {
	return f.students, f.err
}

func (f *fakeConnections) Teachers(ctx context.Context) ([]services.Teacher, error) {
	return f.teachers, f.err
}

type fakeProgress struct {
	o   *services.Overview
	err error
}

func (f *fakeProgress) Overview(ctx context.Context) (*services.Overview, error) {
	return f.o, f.err
}

type fakeProfiles struct {
	uploaded string
	url      string
	err      error
}

func (f *fakeProfiles) UploadAvatar(ctx context.Context, path string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploaded = path
	return "u1/avatar", nil
}

func (f *fakeProfiles) AvatarURL(ctx context.Context) (string, error) {
	return f.url, f.err
}

type fakeOnline struct {
	mu      sync.Mutex
	online  bool
	checks  int
	pingErr error
}

func (f *fakeOnline) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeOnline) Online(ctx context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checks++
	return f.online
}

func (f *fakeOnline) set(v bool) {
	f.mu.Lock()
	f.online = v
	f.mu.Unlock()
}

type testApp struct {
	*App
	out         *bytes.Buffer
	ctrl        *fakeController
	courses     *fakeCourses
	teaching    *fakeTeaching
	connections *fakeConnections
	progress    *fakeProgress
	profiles    *fakeProfiles
	health      *fakeOnline
}

// newTestApp builds an App over fakes; input feeds the line prompts.
func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()
	ta := &testApp{
		out:         &bytes.Buffer{},
		ctrl:        &fakeController{snap: session.Snapshot{State: session.Anonymous, Settled: true}},
		courses:     &fakeCourses{},
		teaching:    &fakeTeaching{},
		connections: &fakeConnections{},
		progress:    &fakeProgress{},
		profiles:    &fakeProfiles{},
		health:      &fakeOnline{},
	}
	ta.App = &App{
		config:      &config.Config{},
		logger:      logging.Nop{},
		session:     ta.ctrl,
		courses:     ta.courses,
		teaching:    ta.teaching,
		connections: ta.connections,
		progress:    ta.progress,
		profiles:    ta.profiles,
		health:      ta.health,
		mode:        ModeOffline,
		reader:      bufio.NewReader(strings.NewReader(input)),
		out:         ta.out,
	}
	return ta
}

func (ta *testApp) signIn(id *session.Identity) {
	ta.ctrl.snap = session.Snapshot{State: session.Authenticated, Settled: true, Identity: id}
}

// stubPasswords makes getPassword return the given answers in order.
func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })

	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if len(answers) == 0 {
			return nil, io.EOF
		}
		pw := []byte(answers[0])
		answers = answers[1:]
		return pw, nil
	}
}

func strPtr(s string) *string { return &s }
