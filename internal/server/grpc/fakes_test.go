package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/teachloop/internal/common"
	"github.com/dmitrijs2005/teachloop/internal/server/models"
	"github.com/dmitrijs2005/teachloop/internal/server/services"
)

type fakeAccounts struct {
	user      *models.User
	tokens    *services.TokenPair
	err       error
	authErr   error
	ended     []string
	lastEmail string
}

func (f *fakeAccounts) CreateAccount(_ context.Context, email, _, displayName string) (*models.User, error) {
	f.lastEmail = email
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: "u-1", Email: email, DisplayName: displayName}, nil
}

func (f *fakeAccounts) StartSession(_ context.Context, email, _ string) (*services.TokenPair, error) {
	f.lastEmail = email
	if f.err != nil {
		return nil, f.err
	}
	return f.tokens, nil
}

func (f *fakeAccounts) RefreshSession(context.Context, string) (*services.TokenPair, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tokens, nil
}

func (f *fakeAccounts) EndSession(_ context.Context, sessionID string) error {
	f.ended = append(f.ended, sessionID)
	return f.err
}

func (f *fakeAccounts) Authenticate(_ context.Context, token string) (string, string, error) {
	if f.authErr != nil {
		return "", "", f.authErr
	}
	if token != "good" {
		return "", "", common.ErrInvalidToken
	}
	return "u-1", "s-1", nil
}

func (f *fakeAccounts) CurrentPrincipal(_ context.Context, userID string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.user != nil {
		return f.user, nil
	}
	return &models.User{ID: userID, DisplayName: "Ann", Email: "ann@example.com"}, nil
}

type fakeProfiles struct {
	err       error
	lastCall  string
	lastPatch services.ProfilePatch
}

func (f *fakeProfiles) CreateProfile(_ context.Context, callerID, userID string, in services.ProfileFields) (*models.Profile, error) {
	f.lastCall = callerID + ">" + userID
	if f.err != nil {
		return nil, f.err
	}
	return &models.Profile{UserID: userID, DisplayName: in.DisplayName, Role: common.DefaultRole}, nil
}

func (f *fakeProfiles) GetProfile(_ context.Context, userID string) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Profile{UserID: userID, DisplayName: "Ann"}, nil
}

func (f *fakeProfiles) UpdateProfile(_ context.Context, callerID, userID string, patch services.ProfilePatch) (*models.Profile, error) {
	f.lastCall = callerID + ">" + userID
	f.lastPatch = patch
	if f.err != nil {
		return nil, f.err
	}
	p := &models.Profile{UserID: userID, DisplayName: "Ann"}
	patch.Apply(p)
	return p, nil
}

type fakeCourses struct {
	err          error
	limit        int
	offset       int
	lastCaller   string
	lastCourse   services.NewCourse
	lastProgress int32
}

func (f *fakeCourses) CreateCourse(_ context.Context, instructorID string, in services.NewCourse) (*models.Course, error) {
	f.lastCaller, f.lastCourse = instructorID, in
	if f.err != nil {
		return nil, f.err
	}
	return &models.Course{ID: "c-1", Title: in.Title, InstructorID: instructorID, Status: models.CourseStatusDraft}, nil
}

func (f *fakeCourses) ListCourses(_ context.Context, limit, offset int) ([]*models.Course, int64, error) {
	f.limit, f.offset = limit, offset
	if f.err != nil {
		return nil, 0, f.err
	}
	return []*models.Course{{ID: "c-2", Title: "B"}, {ID: "c-1", Title: "A"}}, 7, nil
}

func (f *fakeCourses) GetCourse(_ context.Context, id string) (*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Course{ID: id}, nil
}

func (f *fakeCourses) ListInstructorCourses(_ context.Context, instructorID string) ([]*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*models.Course{{ID: "c-1", InstructorID: instructorID}}, nil
}

func (f *fakeCourses) Enroll(_ context.Context, userID, courseID string) (*models.Enrollment, error) {
	f.lastCaller = userID
	if f.err != nil {
		return nil, f.err
	}
	return &models.Enrollment{ID: "e-1", UserID: userID, CourseID: courseID, EnrolledAt: time.Now()}, nil
}

func (f *fakeCourses) ListEnrollments(_ context.Context, callerID, _ string) ([]*models.Enrollment, error) {
	f.lastCaller = callerID
	if f.err != nil {
		return nil, f.err
	}
	return []*models.Enrollment{{ID: "e-1", UserID: callerID}}, nil
}

func (f *fakeCourses) ListCourseEnrollments(_ context.Context, callerID, courseID string) ([]*models.Enrollment, error) {
	f.lastCaller = callerID
	if f.err != nil {
		return nil, f.err
	}
	return []*models.Enrollment{{ID: "e-1", CourseID: courseID}}, nil
}

func (f *fakeCourses) UpdateProgress(_ context.Context, callerID, enrollmentID string, progress int32) (*models.Enrollment, error) {
	f.lastCaller, f.lastProgress = callerID, progress
	if f.err != nil {
		return nil, f.err
	}
	return &models.Enrollment{ID: enrollmentID, UserID: callerID, Progress: progress}, nil
}

type fakeStorage struct {
	err        error
	lastCaller string
}

func (f *fakeStorage) CreateUploadURL(_ context.Context, ownerID, bucket, _ string) (*services.PresignedURL, error) {
	f.lastCaller = ownerID
	if f.err != nil {
		return nil, f.err
	}
	return &services.PresignedURL{Key: ownerID + "/k", URL: "http://signed/" + bucket}, nil
}

func (f *fakeStorage) CreateDownloadURL(_ context.Context, bucket, key string) (*services.PresignedURL, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &services.PresignedURL{Key: key, URL: "http://signed/" + bucket + "/" + key}, nil
}

func (f *fakeStorage) DeleteFile(_ context.Context, callerID, _, _ string) error {
	f.lastCaller = callerID
	return f.err
}
