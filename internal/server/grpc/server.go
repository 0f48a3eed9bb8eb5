// Package grpc exposes the TeachLoop services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/teachloop/internal/api"
	"github.com/dmitrijs2005/teachloop/internal/logging"
	"github.com/dmitrijs2005/teachloop/internal/server/models"
	"github.com/dmitrijs2005/teachloop/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type Accounts interface {
	CreateAccount(ctx context.Context, email, password, displayName string) (*models.User, error)
	StartSession(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshSession(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	EndSession(ctx context.Context, sessionID string) error
	Authenticate(ctx context.Context, accessToken string) (userID, sessionID string, err error)
	CurrentPrincipal(ctx context.Context, userID string) (*models.User, error)
}

type Profiles interface {
	CreateProfile(ctx context.Context, callerID, userID string, f services.ProfileFields) (*models.Profile, error)
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, callerID, userID string, patch services.ProfilePatch) (*models.Profile, error)
}

type Courses interface {
	CreateCourse(ctx context.Context, instructorID string, in services.NewCourse) (*models.Course, error)
	ListCourses(ctx context.Context, limit, offset int) ([]*models.Course, int64, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	ListInstructorCourses(ctx context.Context, instructorID string) ([]*models.Course, error)
	Enroll(ctx context.Context, userID, courseID string) (*models.Enrollment, error)
	ListEnrollments(ctx context.Context, callerID, userID string) ([]*models.Enrollment, error)
	ListCourseEnrollments(ctx context.Context, callerID, courseID string) ([]*models.Enrollment, error)
	UpdateProgress(ctx context.Context, callerID, enrollmentID string, progress int32) (*models.Enrollment, error)
}

type Storage interface {
	CreateUploadURL(ctx context.Context, ownerID, bucket, contentType string) (*services.PresignedURL, error)
	CreateDownloadURL(ctx context.Context, bucket, key string) (*services.PresignedURL, error)
	DeleteFile(ctx context.Context, callerID, bucket, key string) error
}

type GRPCServer struct {
	api.UnimplementedTeachLoopServer
	address  string
	accounts Accounts
	profiles Profiles
	courses  Courses
	storage  Storage
	health   *health.Server
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as Accounts, ps Profiles, cs Courses, ss Storage) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		accounts: as,
		profiles: ps,
		courses:  cs,
		storage:  ss,
		health:   health.NewServer(),
	}
}

// NewServer builds a grpc.Server with the TeachLoop and health services
// registered. Run uses it; tests serve it over bufconn.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	)

	api.RegisterTeachLoopServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
