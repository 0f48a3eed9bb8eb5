package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/teachloop/internal/common"
	"github.com/dmitrijs2005/teachloop/internal/dbx"
	"github.com/dmitrijs2005/teachloop/internal/server/config"
	"github.com/dmitrijs2005/teachloop/internal/server/models"
	"github.com/dmitrijs2005/teachloop/internal/server/repositories/courses"
	"github.com/dmitrijs2005/teachloop/internal/server/repositories/enrollments"
	"github.com/dmitrijs2005/teachloop/internal/server/repositories/files"
	"github.com/dmitrijs2005/teachloop/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/teachloop/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/teachloop/internal/server/repositories/users"
	_ "modernc.org/sqlite"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// newTxDB returns an empty in-memory database. Services only need it to
// open and commit transactions; the fakes ignore the DBTX they are bound to.
func newTxDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
		S3Region:                     "us-east-1",
		S3RootUser:                   "minioadmin",
		S3RootPassword:               "minioadmin",
		S3BaseEndpoint:               "http://127.0.0.1:9000",
		S3MaterialsBucket:            "materials",
		S3PicturesBucket:             "pictures",
		PresignValidityDuration:      15 * time.Minute,
	}
}

type memStore struct {
	mu sync.Mutex
	n  int

	users       map[string]*models.User
	sessions    map[string]*models.Session
	profiles    map[string]*models.Profile
	courses     map[string]*models.Course
	enrollments map[string]*models.Enrollment
	files       map[string]*models.StoredFile

	usersErr       error
	sessionsErr    error
	profilesErr    error
	coursesErr     error
	enrollmentsErr error
	filesErr       error
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[string]*models.User{},
		sessions:    map[string]*models.Session{},
		profiles:    map[string]*models.Profile{},
		courses:     map[string]*models.Course{},
		enrollments: map[string]*models.Enrollment{},
		files:       map[string]*models.StoredFile{},
	}
}

func (m *memStore) nextID(prefix string) string {
	m.n++
	return fmt.Sprintf("%s-%d", prefix, m.n)
}

type fakeRepoManager struct{ s *memStore }

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return memUsers{f.s} }
func (f *fakeRepoManager) Sessions(dbx.DBTX) sessions.Repository        { return memSessions{f.s} }
func (f *fakeRepoManager) Profiles(dbx.DBTX) profiles.Repository        { return memProfiles{f.s} }
func (f *fakeRepoManager) Courses(dbx.DBTX) courses.Repository          { return memCourses{f.s} }
func (f *fakeRepoManager) Enrollments(dbx.DBTX) enrollments.Repository  { return memEnrollments{f.s} }
func (f *fakeRepoManager) Files(dbx.DBTX) files.Repository              { return memFiles{f.s} }

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.usersErr != nil {
		return nil, r.s.usersErr
	}
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.ID = r.s.nextID("u")
	u.CreatedAt, u.UpdatedAt = time.Now(), time.Now()
	cp := *u
	r.s.users[u.ID] = &cp
	return u, nil
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.usersErr != nil {
		return nil, r.s.usersErr
	}
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.usersErr != nil {
		return nil, r.s.usersErr
	}
	u, ok := r.s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

type memSessions struct{ s *memStore }

func (r memSessions) Create(_ context.Context, sess *models.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.sessionsErr != nil {
		return r.s.sessionsErr
	}
	cp := *sess
	r.s.sessions[sess.ID] = &cp
	return nil
}

func (r memSessions) Get(_ context.Context, id string) (*models.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.sessionsErr != nil {
		return nil, r.s.sessionsErr
	}
	sess, ok := r.s.sessions[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *sess
	return &cp, nil
}

func (r memSessions) FindByRefreshToken(_ context.Context, token string) (*models.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.sessionsErr != nil {
		return nil, r.s.sessionsErr
	}
	for _, sess := range r.s.sessions {
		if sess.RefreshToken == token {
			cp := *sess
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memSessions) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.sessionsErr != nil {
		return r.s.sessionsErr
	}
	delete(r.s.sessions, id)
	return nil
}

type memProfiles struct{ s *memStore }

func (r memProfiles) Create(_ context.Context, p *models.Profile) (*models.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.profilesErr != nil {
		return nil, r.s.profilesErr
	}
	if _, ok := r.s.profiles[p.UserID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	if p.TeachSkills == nil {
		p.TeachSkills = []string{}
	}
	if p.LearnSkills == nil {
		p.LearnSkills = []string{}
	}
	p.CreatedAt, p.UpdatedAt = time.Now(), time.Now()
	cp := *p
	r.s.profiles[p.UserID] = &cp
	return p, nil
}

func (r memProfiles) Get(_ context.Context, userID string) (*models.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.profilesErr != nil {
		return nil, r.s.profilesErr
	}
	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *p
	return &cp, nil
}

func (r memProfiles) Update(_ context.Context, p *models.Profile) (*models.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.profilesErr != nil {
		return nil, r.s.profilesErr
	}
	if _, ok := r.s.profiles[p.UserID]; !ok {
		return nil, common.ErrorNotFound
	}
	p.UpdatedAt = time.Now()
	cp := *p
	r.s.profiles[p.UserID] = &cp
	return p, nil
}

type memCourses struct{ s *memStore }

func (r memCourses) Create(_ context.Context, c *models.Course) (*models.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.coursesErr != nil {
		return nil, r.s.coursesErr
	}
	c.ID = r.s.nextID("c")
	// strictly increasing so newest-first ordering is deterministic
	c.CreatedAt = time.Unix(int64(r.s.n), 0)
	c.UpdatedAt = c.CreatedAt
	cp := *c
	r.s.courses[c.ID] = &cp
	return c, nil
}

func (r memCourses) Get(_ context.Context, id string) (*models.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.coursesErr != nil {
		return nil, r.s.coursesErr
	}
	c, ok := r.s.courses[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (r memCourses) sorted(filter func(*models.Course) bool) []*models.Course {
	out := []*models.Course{}
	for _, c := range r.s.courses {
		if filter(c) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r memCourses) List(_ context.Context, limit, offset int) ([]*models.Course, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.coursesErr != nil {
		return nil, 0, r.s.coursesErr
	}
	all := r.sorted(func(*models.Course) bool { return true })
	total := int64(len(all))
	if offset >= len(all) {
		return []*models.Course{}, total, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], total, nil
}

func (r memCourses) ListByInstructor(_ context.Context, instructorID string) ([]*models.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.coursesErr != nil {
		return nil, r.s.coursesErr
	}
	return r.sorted(func(c *models.Course) bool { return c.InstructorID == instructorID }), nil
}

func (r memCourses) IncrementEnrollmentCount(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.coursesErr != nil {
		return r.s.coursesErr
	}
	c, ok := r.s.courses[id]
	if !ok {
		return common.ErrorNotFound
	}
	c.EnrollmentCount++
	return nil
}

type memEnrollments struct{ s *memStore }

func (r memEnrollments) Create(_ context.Context, e *models.Enrollment) (*models.Enrollment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.enrollmentsErr != nil {
		return nil, r.s.enrollmentsErr
	}
	for _, existing := range r.s.enrollments {
		if existing.UserID == e.UserID && existing.CourseID == e.CourseID {
			return nil, common.ErrorAlreadyExists
		}
	}
	e.ID = r.s.nextID("e")
	e.EnrolledAt = time.Unix(int64(r.s.n), 0)
	cp := *e
	r.s.enrollments[e.ID] = &cp
	return e, nil
}

func (r memEnrollments) Get(_ context.Context, id string) (*models.Enrollment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.enrollmentsErr != nil {
		return nil, r.s.enrollmentsErr
	}
	e, ok := r.s.enrollments[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *e
	return &cp, nil
}

func (r memEnrollments) list(filter func(*models.Enrollment) bool) []*models.Enrollment {
	out := []*models.Enrollment{}
	for _, e := range r.s.enrollments {
		if filter(e) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EnrolledAt.After(out[j].EnrolledAt) })
	return out
}

func (r memEnrollments) ListByUser(_ context.Context, userID string) ([]*models.Enrollment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.enrollmentsErr != nil {
		return nil, r.s.enrollmentsErr
	}
	return r.list(func(e *models.Enrollment) bool { return e.UserID == userID }), nil
}

func (r memEnrollments) ListByCourse(_ context.Context, courseID string) ([]*models.Enrollment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.enrollmentsErr != nil {
		return nil, r.s.enrollmentsErr
	}
	return r.list(func(e *models.Enrollment) bool { return e.CourseID == courseID }), nil
}

func (r memEnrollments) UpdateProgress(_ context.Context, id string, progress int32) (*models.Enrollment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.enrollmentsErr != nil {
		return nil, r.s.enrollmentsErr
	}
	e, ok := r.s.enrollments[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	e.Progress = progress
	cp := *e
	return &cp, nil
}

type memFiles struct{ s *memStore }

func fileKey(bucket, key string) string { return bucket + "|" + key }

func (r memFiles) Create(_ context.Context, f *models.StoredFile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.filesErr != nil {
		return r.s.filesErr
	}
	cp := *f
	cp.CreatedAt = time.Now()
	r.s.files[fileKey(f.Bucket, f.Key)] = &cp
	return nil
}

func (r memFiles) Get(_ context.Context, bucket, key string) (*models.StoredFile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.filesErr != nil {
		return nil, r.s.filesErr
	}
	f, ok := r.s.files[fileKey(bucket, key)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *f
	return &cp, nil
}

func (r memFiles) Delete(_ context.Context, bucket, key string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.filesErr != nil {
		return r.s.filesErr
	}
	if _, ok := r.s.files[fileKey(bucket, key)]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.files, fileKey(bucket, key))
	return nil
}
