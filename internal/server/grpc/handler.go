package grpc

import (
	"context"

	"github.com/dmitrijs2005/teachloop/internal/api"
	"github.com/dmitrijs2005/teachloop/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) CreateAccount(ctx context.Context, req *api.CreateAccountRequest) (*api.PrincipalResponse, error) {
	u, err := s.accounts.CreateAccount(ctx, req.Email, req.Password, req.DisplayName)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	s.logger.Info(ctx, "Account created", "principal_id", u.ID)
	return &api.PrincipalResponse{Principal: toAPIPrincipal(u)}, nil
}

func (s *GRPCServer) StartSession(ctx context.Context, req *api.StartSessionRequest) (*api.SessionResponse, error) {
	tokens, err := s.accounts.StartSession(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.SessionResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken, ExpiresAt: tokens.ExpiresAt}, nil
}

func (s *GRPCServer) RefreshSession(ctx context.Context, req *api.RefreshSessionRequest) (*api.SessionResponse, error) {
	tokens, err := s.accounts.RefreshSession(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.SessionResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken, ExpiresAt: tokens.ExpiresAt}, nil
}

func (s *GRPCServer) EndSession(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	_, sessionID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.accounts.EndSession(ctx, sessionID); err != nil {
		return nil, s.fail(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) CurrentPrincipal(ctx context.Context, _ *emptypb.Empty) (*api.PrincipalResponse, error) {
	userID, _, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.accounts.CurrentPrincipal(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.PrincipalResponse{Principal: toAPIPrincipal(u)}, nil
}

func (s *GRPCServer) CreateProfile(ctx context.Context, req *api.CreateProfileRequest) (*api.ProfileResponse, error) {
	userID, _, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if req.Fields == nil {
		return nil, status.Error(codes.InvalidArgument, "profile fields are required")
	}

	p, err := s.profiles.CreateProfile(ctx, userID, req.PrincipalID, fromAPIFields(req.Fields))
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.ProfileResponse{Profile: toAPIProfile(p)}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *api.GetProfileRequest) (*api.ProfileResponse, error) {
	p, err := s.profiles.GetProfile(ctx, req.PrincipalID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.ProfileResponse{Profile: toAPIProfile(p)}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *api.UpdateProfileRequest) (*api.ProfileResponse, error) {
	userID, _, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.profiles.UpdateProfile(ctx, userID, req.PrincipalID, fromAPIPatch(req.Patch))
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.ProfileResponse{Profile: toAPIProfile(p)}, nil
}

func (s *GRPCServer) CreateCourse(ctx context.Context, req *api.CreateCourseRequest) (*api.CourseResponse, error) {
	userID, _, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.courses.CreateCourse(ctx, userID, services.NewCourse{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Level:       req.Level,
		Price:       req.Price,
		Thumbnail:   req.Thumbnail,
		Status:      req.Status,
		Tags:        req.Tags,
	})
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.CourseResponse{Course: toAPICourse(c)}, nil
}

func (s *GRPCServer) ListCourses(ctx context.Context, req *api.ListCoursesRequest) (*api.CoursesResponse, error) {
	list, total, err := s.courses.ListCourses(ctx, int(req.Limit), int(req.Offset))
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.CoursesResponse{Courses: toAPICourses(list), Total: total}, nil
}

func (s *GRPCServer) GetCourse(ctx context.Context, req *api.GetCourseRequest) (*api.CourseResponse, error) {
	c, err := s.courses.GetCourse(ctx, req.CourseID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.CourseResponse{Course: toAPICourse(c)}, nil
}

func (s *GRPCServer) ListInstructorCourses(ctx context.Context, req *api.ListInstructorCoursesRequest) (*api.CoursesResponse, error) {
	list, err := s.courses.ListInstructorCourses(ctx, req.InstructorID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.CoursesResponse{Courses: toAPICourses(list), Total: int64(len(list))}, nil
}

func (s *GRPCServer) Enroll(ctx context.Context, req *api.EnrollRequest) (*api.EnrollmentResponse, error) {
	userID, _, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.courses.Enroll(ctx, userID, req.CourseID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.EnrollmentResponse{Enrollment: toAPIEnrollment(e)}, nil
}

func (s *GRPCServer) ListEnrollments(ctx context.Context, req *api.ListEnrollmentsRequest) (*api.EnrollmentsResponse, error) {
	userID, _, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.courses.ListEnrollments(ctx, userID, req.UserID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.EnrollmentsResponse{Enrollments: toAPIEnrollments(list)}, nil
}

func (s *GRPCServer) ListCourseEnrollments(ctx context.Context, req *api.ListCourseEnrollmentsRequest) (*api.EnrollmentsResponse, error) {
	userID, _, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.courses.ListCourseEnrollments(ctx, userID, req.CourseID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.EnrollmentsResponse{Enrollments: toAPIEnrollments(list)}, nil
}

func (s *GRPCServer) UpdateProgress(ctx context.Context, req *api.UpdateProgressRequest) (*api.EnrollmentResponse, error) {
	userID, _, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.courses.UpdateProgress(ctx, userID, req.EnrollmentID, req.Progress)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.EnrollmentResponse{Enrollment: toAPIEnrollment(e)}, nil
}

func (s *GRPCServer) CreateUploadURL(ctx context.Context, req *api.UploadURLRequest) (*api.UploadURLResponse, error) {
	userID, _, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.storage.CreateUploadURL(ctx, userID, req.Bucket, req.ContentType)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.UploadURLResponse{Key: u.Key, URL: u.URL, ExpiresAt: u.ExpiresAt}, nil
}

func (s *GRPCServer) CreateDownloadURL(ctx context.Context, req *api.FileRequest) (*api.DownloadURLResponse, error) {
	u, err := s.storage.CreateDownloadURL(ctx, req.Bucket, req.Key)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &api.DownloadURLResponse{URL: u.URL, ExpiresAt: u.ExpiresAt}, nil
}

func (s *GRPCServer) DeleteFile(ctx context.Context, req *api.FileRequest) (*emptypb.Empty, error) {
	userID, _, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.storage.DeleteFile(ctx, userID, req.Bucket, req.Key); err != nil {
		return nil, s.fail(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

// caller returns the authenticated principal of the call.
func (s *GRPCServer) caller(ctx context.Context) (userID, sessionID string, err error) {
	userID, sessionID, ok := principalFrom(ctx)
	if !ok {
		return "", "", status.Error(codes.Unauthenticated, "missing token")
	}
	return userID, sessionID, nil
}
