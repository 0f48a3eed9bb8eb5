package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/teachloop/internal/api"
	"github.com/dmitrijs2005/teachloop/internal/client/models"
	"github.com/dmitrijs2005/teachloop/internal/common"
	"github.com/dmitrijs2005/teachloop/internal/logging"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type GRPCClient struct {
	endpointURL string
	dialOptions []grpc.DialOption
	conn        *grpc.ClientConn
	client      api.TeachLoopClient
	health      healthpb.HealthClient
	store       TokenStore
	callTimeout time.Duration
	logger      logging.Logger

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

type Option func(*GRPCClient)

// WithCallTimeout bounds every call; zero disables the bound.
func WithCallTimeout(d time.Duration) Option {
	return func(c *GRPCClient) { c.callTimeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *GRPCClient) { c.logger = l.With("module", "grpc_client") }
}

// WithDialOptions appends extra dial options (tests use a bufconn dialer).
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *GRPCClient) { c.dialOptions = append(c.dialOptions, opts...) }
}

// NewTeachLoopClient connects to endpointURL and resumes the session stored
// in store, if any.
func NewTeachLoopClient(ctx context.Context, endpointURL string, store TokenStore, opts ...Option) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, store: store, logger: logging.Nop{}}
	for _, o := range opts {
		o(c)
	}

	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}

	tokens, err := store.Load(ctx)
	if err != nil {
		_ = c.conn.Close()
		return nil, fmt.Errorf("loading session tokens: %w", err)
	}
	c.setTokens(tokens)

	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(api.CodecName)),
	}, s.dialOptions...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = api.NewTeachLoopClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) tokens() Tokens {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Tokens{Access: s.accessToken, Refresh: s.refreshToken}
}

func (s *GRPCClient) setTokens(t Tokens) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = t.Access, t.Refresh
}

// HasSession reports whether an access token is held.
func (s *GRPCClient) HasSession() bool {
	return s.tokens().Access != ""
}

func (s *GRPCClient) saveTokens(ctx context.Context, t Tokens) error {
	s.setTokens(t)
	if err := s.store.Save(ctx, t); err != nil {
		return fmt.Errorf("saving session tokens: %w", err)
	}
	return nil
}

func (s *GRPCClient) clearTokens(ctx context.Context) {
	s.setTokens(Tokens{})
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Warn(ctx, "clearing session tokens", "error", err)
	}
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated {
		return false
	}
	return st.Message() == api.TokenExpiredMessage || api.ReasonOf(err) == api.ReasonTokenExpired
}

// accessTokenInterceptor attaches the access token and, when the server
// reports it expired, refreshes the pair once and re-invokes the call.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	tokens := s.tokens()
	err := invoker(withAccessToken(ctx, tokens.Access), method, req, reply, cc, opts...)

	if err == nil || method == api.TeachLoop_RefreshSession_FullMethodName {
		return err
	}
	if !isTokenExpired(err) || tokens.Refresh == "" {
		return err
	}

	resp, rerr := s.client.RefreshSession(withAccessToken(ctx, ""), &api.RefreshSessionRequest{RefreshToken: tokens.Refresh})
	if rerr != nil {
		if status.Code(rerr) == codes.Unauthenticated {
			s.clearTokens(ctx)
		}
		return err
	}

	if serr := s.saveTokens(ctx, Tokens{Access: resp.AccessToken, Refresh: resp.RefreshToken}); serr != nil {
		s.logger.Warn(ctx, "token refresh not persisted", "error", serr)
	}

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

func (s *GRPCClient) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.callTimeout)
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrUnavailable
		}
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrPermissionDenied, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

// Online asks the server's health service whether TeachLoop is serving.
func (s *GRPCClient) Online(ctx context.Context) bool {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: api.ServiceName})
	return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
}

func (s *GRPCClient) CreateAccount(ctx context.Context, email, password, displayName string) (*models.Principal, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.CreateAccount(ctx, &api.CreateAccountRequest{Email: email, Password: password, DisplayName: displayName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromAPIPrincipal(resp.Principal), nil
}

// StartSession signs in and persists the token pair.
func (s *GRPCClient) StartSession(ctx context.Context, email, password string) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.StartSession(ctx, &api.StartSessionRequest{Email: email, Password: password})
	if err != nil {
		return s.mapError(err)
	}

	return s.saveTokens(ctx, Tokens{Access: resp.AccessToken, Refresh: resp.RefreshToken})
}

// EndSession signs out. Local tokens are dropped on success and when the
// server no longer recognises the session.
func (s *GRPCClient) EndSession(ctx context.Context) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	if !s.HasSession() {
		return nil
	}

	_, err := s.client.EndSession(ctx, &emptypb.Empty{})
	if err != nil && status.Code(err) != codes.Unauthenticated {
		return s.mapError(err)
	}

	s.clearTokens(ctx)
	return nil
}

// CurrentPrincipal returns the signed-in principal, or (nil, nil) when there
// is no session or the server rejected the stored one.
func (s *GRPCClient) CurrentPrincipal(ctx context.Context) (*models.Principal, error) {
	if !s.HasSession() {
		return nil, nil
	}

	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.CurrentPrincipal(ctx, &emptypb.Empty{})
	if err != nil {
		if status.Code(err) == codes.Unauthenticated {
			s.clearTokens(ctx)
			return nil, nil
		}
		return nil, s.mapError(err)
	}
	return fromAPIPrincipal(resp.Principal), nil
}

func (s *GRPCClient) CreateProfile(ctx context.Context, principalID string, fields models.ProfileFields) (*models.Profile, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.CreateProfile(ctx, &api.CreateProfileRequest{PrincipalID: principalID, Fields: toAPIFields(fields)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromAPIProfile(resp.Profile), nil
}

func (s *GRPCClient) GetProfile(ctx context.Context, principalID string) (*models.Profile, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.GetProfile(ctx, &api.GetProfileRequest{PrincipalID: principalID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromAPIProfile(resp.Profile), nil
}

func (s *GRPCClient) UpdateProfile(ctx context.Context, principalID string, patch models.ProfilePatch) (*models.Profile, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.UpdateProfile(ctx, &api.UpdateProfileRequest{PrincipalID: principalID, Patch: toAPIPatch(patch)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromAPIProfile(resp.Profile), nil
}

func (s *GRPCClient) CreateCourse(ctx context.Context, in models.NewCourse) (*models.Course, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.CreateCourse(ctx, &api.CreateCourseRequest{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Level:       in.Level,
		Price:       in.Price,
		Thumbnail:   in.Thumbnail,
		Status:      in.Status,
		Tags:        in.Tags,
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromAPICourse(resp.Course), nil
}

func (s *GRPCClient) ListCourses(ctx context.Context, limit, offset int) ([]*models.Course, int64, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ListCourses(ctx, &api.ListCoursesRequest{Limit: int32(limit), Offset: int32(offset)})
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	return fromAPICourses(resp.Courses), resp.Total, nil
}

func (s *GRPCClient) GetCourse(ctx context.Context, courseID string) (*models.Course, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.GetCourse(ctx, &api.GetCourseRequest{CourseID: courseID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromAPICourse(resp.Course), nil
}

func (s *GRPCClient) ListInstructorCourses(ctx context.Context, instructorID string) ([]*models.Course, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ListInstructorCourses(ctx, &api.ListInstructorCoursesRequest{InstructorID: instructorID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromAPICourses(resp.Courses), nil
}

func (s *GRPCClient) Enroll(ctx context.Context, courseID string) (*models.Enrollment, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.Enroll(ctx, &api.EnrollRequest{CourseID: courseID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromAPIEnrollment(resp.Enrollment), nil
}

// ListEnrollments returns the caller's own enrollments.
func (s *GRPCClient) ListEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ListEnrollments(ctx, &api.ListEnrollmentsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromAPIEnrollments(resp.Enrollments), nil
}

func (s *GRPCClient) ListCourseEnrollments(ctx context.Context, courseID string) ([]*models.Enrollment, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ListCourseEnrollments(ctx, &api.ListCourseEnrollmentsRequest{CourseID: courseID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromAPIEnrollments(resp.Enrollments), nil
}

func (s *GRPCClient) UpdateProgress(ctx context.Context, enrollmentID string, progress int32) (*models.Enrollment, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.UpdateProgress(ctx, &api.UpdateProgressRequest{EnrollmentID: enrollmentID, Progress: progress})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromAPIEnrollment(resp.Enrollment), nil
}

func (s *GRPCClient) CreateUploadURL(ctx context.Context, bucket, contentType string) (*models.UploadTicket, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.CreateUploadURL(ctx, &api.UploadURLRequest{Bucket: bucket, ContentType: contentType})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.UploadTicket{Key: resp.Key, URL: resp.URL, ExpiresAt: resp.ExpiresAt}, nil
}

func (s *GRPCClient) CreateDownloadURL(ctx context.Context, bucket, key string) (string, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.CreateDownloadURL(ctx, &api.FileRequest{Bucket: bucket, Key: key})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.URL, nil
}

func (s *GRPCClient) DeleteFile(ctx context.Context, bucket, key string) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	if _, err := s.client.DeleteFile(ctx, &api.FileRequest{Bucket: bucket, Key: key}); err != nil {
		return s.mapError(err)
	}
	return nil
}
