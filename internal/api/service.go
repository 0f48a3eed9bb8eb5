package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "teachloop.v1.TeachLoop"

const (
	TeachLoop_Ping_FullMethodName                  = "/teachloop.v1.TeachLoop/Ping"
	TeachLoop_CreateAccount_FullMethodName         = "/teachloop.v1.TeachLoop/CreateAccount"
	TeachLoop_StartSession_FullMethodName          = "/teachloop.v1.TeachLoop/StartSession"
	TeachLoop_RefreshSession_FullMethodName        = "/teachloop.v1.TeachLoop/RefreshSession"
	TeachLoop_EndSession_FullMethodName            = "/teachloop.v1.TeachLoop/EndSession"
	TeachLoop_CurrentPrincipal_FullMethodName      = "/teachloop.v1.TeachLoop/CurrentPrincipal"
	TeachLoop_CreateProfile_FullMethodName         = "/teachloop.v1.TeachLoop/CreateProfile"
	TeachLoop_GetProfile_FullMethodName            = "/teachloop.v1.TeachLoop/GetProfile"
	TeachLoop_UpdateProfile_FullMethodName         = "/teachloop.v1.TeachLoop/UpdateProfile"
	TeachLoop_CreateCourse_FullMethodName          = "/teachloop.v1.TeachLoop/CreateCourse"
	TeachLoop_ListCourses_FullMethodName           = "/teachloop.v1.TeachLoop/ListCourses"
	TeachLoop_GetCourse_FullMethodName             = "/teachloop.v1.TeachLoop/GetCourse"
	TeachLoop_ListInstructorCourses_FullMethodName = "/teachloop.v1.TeachLoop/ListInstructorCourses"
	TeachLoop_Enroll_FullMethodName                = "/teachloop.v1.TeachLoop/Enroll"
	TeachLoop_ListEnrollments_FullMethodName       = "/teachloop.v1.TeachLoop/ListEnrollments"
	TeachLoop_ListCourseEnrollments_FullMethodName = "/teachloop.v1.TeachLoop/ListCourseEnrollments"
	TeachLoop_UpdateProgress_FullMethodName        = "/teachloop.v1.TeachLoop/UpdateProgress"
	TeachLoop_CreateUploadURL_FullMethodName       = "/teachloop.v1.TeachLoop/CreateUploadURL"
	TeachLoop_CreateDownloadURL_FullMethodName     = "/teachloop.v1.TeachLoop/CreateDownloadURL"
	TeachLoop_DeleteFile_FullMethodName            = "/teachloop.v1.TeachLoop/DeleteFile"
)

// TeachLoopClient is the client API for the TeachLoop service.
type TeachLoopClient interface {
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error)

	CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*PrincipalResponse, error)
	StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	RefreshSession(ctx context.Context, in *RefreshSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	EndSession(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	CurrentPrincipal(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PrincipalResponse, error)

	CreateProfile(ctx context.Context, in *CreateProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error)
	GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error)

	CreateCourse(ctx context.Context, in *CreateCourseRequest, opts ...grpc.CallOption) (*CourseResponse, error)
	ListCourses(ctx context.Context, in *ListCoursesRequest, opts ...grpc.CallOption) (*CoursesResponse, error)
	GetCourse(ctx context.Context, in *GetCourseRequest, opts ...grpc.CallOption) (*CourseResponse, error)
	ListInstructorCourses(ctx context.Context, in *ListInstructorCoursesRequest, opts ...grpc.CallOption) (*CoursesResponse, error)

	Enroll(ctx context.Context, in *EnrollRequest, opts ...grpc.CallOption) (*EnrollmentResponse, error)
	ListEnrollments(ctx context.Context, in *ListEnrollmentsRequest, opts ...grpc.CallOption) (*EnrollmentsResponse, error)
	ListCourseEnrollments(ctx context.Context, in *ListCourseEnrollmentsRequest, opts ...grpc.CallOption) (*EnrollmentsResponse, error)
	UpdateProgress(ctx context.Context, in *UpdateProgressRequest, opts ...grpc.CallOption) (*EnrollmentResponse, error)

	CreateUploadURL(ctx context.Context, in *UploadURLRequest, opts ...grpc.CallOption) (*UploadURLResponse, error)
	CreateDownloadURL(ctx context.Context, in *FileRequest, opts ...grpc.CallOption) (*DownloadURLResponse, error)
	DeleteFile(ctx context.Context, in *FileRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type teachLoopClient struct {
	cc grpc.ClientConnInterface
}

func NewTeachLoopClient(cc grpc.ClientConnInterface) TeachLoopClient {
	return &teachLoopClient{cc}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *teachLoopClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[emptypb.Empty, PingResponse](ctx, c.cc, TeachLoop_Ping_FullMethodName, in, opts)
}

func (c *teachLoopClient) CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*PrincipalResponse, error) {
	return invoke[CreateAccountRequest, PrincipalResponse](ctx, c.cc, TeachLoop_CreateAccount_FullMethodName, in, opts)
}

func (c *teachLoopClient) StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[StartSessionRequest, SessionResponse](ctx, c.cc, TeachLoop_StartSession_FullMethodName, in, opts)
}

func (c *teachLoopClient) RefreshSession(ctx context.Context, in *RefreshSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[RefreshSessionRequest, SessionResponse](ctx, c.cc, TeachLoop_RefreshSession_FullMethodName, in, opts)
}

func (c *teachLoopClient) EndSession(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty, emptypb.Empty](ctx, c.cc, TeachLoop_EndSession_FullMethodName, in, opts)
}

func (c *teachLoopClient) CurrentPrincipal(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PrincipalResponse, error) {
	return invoke[emptypb.Empty, PrincipalResponse](ctx, c.cc, TeachLoop_CurrentPrincipal_FullMethodName, in, opts)
}

func (c *teachLoopClient) CreateProfile(ctx context.Context, in *CreateProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[CreateProfileRequest, ProfileResponse](ctx, c.cc, TeachLoop_CreateProfile_FullMethodName, in, opts)
}

func (c *teachLoopClient) GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[GetProfileRequest, ProfileResponse](ctx, c.cc, TeachLoop_GetProfile_FullMethodName, in, opts)
}

func (c *teachLoopClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[UpdateProfileRequest, ProfileResponse](ctx, c.cc, TeachLoop_UpdateProfile_FullMethodName, in, opts)
}

func (c *teachLoopClient) CreateCourse(ctx context.Context, in *CreateCourseRequest, opts ...grpc.CallOption) (*CourseResponse, error) {
	return invoke[CreateCourseRequest, CourseResponse](ctx, c.cc, TeachLoop_CreateCourse_FullMethodName, in, opts)
}

func (c *teachLoopClient) ListCourses(ctx context.Context, in *ListCoursesRequest, opts ...grpc.CallOption) (*CoursesResponse, error) {
	return invoke[ListCoursesRequest, CoursesResponse](ctx, c.cc, TeachLoop_ListCourses_FullMethodName, in, opts)
}

func (c *teachLoopClient) GetCourse(ctx context.Context, in *GetCourseRequest, opts ...grpc.CallOption) (*CourseResponse, error) {
	return invoke[GetCourseRequest, CourseResponse](ctx, c.cc, TeachLoop_GetCourse_FullMethodName, in, opts)
}

func (c *teachLoopClient) ListInstructorCourses(ctx context.Context, in *ListInstructorCoursesRequest, opts ...grpc.CallOption) (*CoursesResponse, error) {
	return invoke[ListInstructorCoursesRequest, CoursesResponse](ctx, c.cc, TeachLoop_ListInstructorCourses_FullMethodName, in, opts)
}

func (c *teachLoopClient) Enroll(ctx context.Context, in *EnrollRequest, opts ...grpc.CallOption) (*EnrollmentResponse, error) {
	return invoke[EnrollRequest, EnrollmentResponse](ctx, c.cc, TeachLoop_Enroll_FullMethodName, in, opts)
}

func (c *teachLoopClient) ListEnrollments(ctx context.Context, in *ListEnrollmentsRequest, opts ...grpc.CallOption) (*EnrollmentsResponse, error) {
	return invoke[ListEnrollmentsRequest, EnrollmentsResponse](ctx, c.cc, TeachLoop_ListEnrollments_FullMethodName, in, opts)
}

func (c *teachLoopClient) ListCourseEnrollments(ctx context.Context, in *ListCourseEnrollmentsRequest, opts ...grpc.CallOption) (*EnrollmentsResponse, error) {
	return invoke[ListCourseEnrollmentsRequest, EnrollmentsResponse](ctx, c.cc, TeachLoop_ListCourseEnrollments_FullMethodName, in, opts)
}

func (c *teachLoopClient) UpdateProgress(ctx context.Context, in *UpdateProgressRequest, opts ...grpc.CallOption) (*EnrollmentResponse, error) {
	return invoke[UpdateProgressRequest, EnrollmentResponse](ctx, c.cc, TeachLoop_UpdateProgress_FullMethodName, in, opts)
}

func (c *teachLoopClient) CreateUploadURL(ctx context.Context, in *UploadURLRequest, opts ...grpc.CallOption) (*UploadURLResponse, error) {
	return invoke[UploadURLRequest, UploadURLResponse](ctx, c.cc, TeachLoop_CreateUploadURL_FullMethodName, in, opts)
}

func (c *teachLoopClient) CreateDownloadURL(ctx context.Context, in *FileRequest, opts ...grpc.CallOption) (*DownloadURLResponse, error) {
	return invoke[FileRequest, DownloadURLResponse](ctx, c.cc, TeachLoop_CreateDownloadURL_FullMethodName, in, opts)
}

func (c *teachLoopClient) DeleteFile(ctx context.Context, in *FileRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[FileRequest, emptypb.Empty](ctx, c.cc, TeachLoop_DeleteFile_FullMethodName, in, opts)
}

// TeachLoopServer is the server API for the TeachLoop service.
type TeachLoopServer interface {
	Ping(context.Context, *emptypb.Empty) (*PingResponse, error)

	CreateAccount(context.Context, *CreateAccountRequest) (*PrincipalResponse, error)
	StartSession(context.Context, *StartSessionRequest) (*SessionResponse, error)
	RefreshSession(context.Context, *RefreshSessionRequest) (*SessionResponse, error)
	EndSession(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	CurrentPrincipal(context.Context, *emptypb.Empty) (*PrincipalResponse, error)

	CreateProfile(context.Context, *CreateProfileRequest) (*ProfileResponse, error)
	GetProfile(context.Context, *GetProfileRequest) (*ProfileResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*ProfileResponse, error)

	CreateCourse(context.Context, *CreateCourseRequest) (*CourseResponse, error)
	ListCourses(context.Context, *ListCoursesRequest) (*CoursesResponse, error)
	GetCourse(context.Context, *GetCourseRequest) (*CourseResponse, error)
	ListInstructorCourses(context.Context, *ListInstructorCoursesRequest) (*CoursesResponse, error)

	Enroll(context.Context, *EnrollRequest) (*EnrollmentResponse, error)
	ListEnrollments(context.Context, *ListEnrollmentsRequest) (*EnrollmentsResponse, error)
	ListCourseEnrollments(context.Context, *ListCourseEnrollmentsRequest) (*EnrollmentsResponse, error)
	UpdateProgress(context.Context, *UpdateProgressRequest) (*EnrollmentResponse, error)

	CreateUploadURL(context.Context, *UploadURLRequest) (*UploadURLResponse, error)
	CreateDownloadURL(context.Context, *FileRequest) (*DownloadURLResponse, error)
	DeleteFile(context.Context, *FileRequest) (*emptypb.Empty, error)
}

// UnimplementedTeachLoopServer answers every method with codes.Unimplemented.
// Embed it by value to stay forward compatible.
type UnimplementedTeachLoopServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedTeachLoopServer) Ping(context.Context, *emptypb.Empty) (*PingResponse, error) {
	return nil, unimplemented("Ping")
}
func (UnimplementedTeachLoopServer) CreateAccount(context.Context, *CreateAccountRequest) (*PrincipalResponse, error) {
	return nil, unimplemented("CreateAccount")
}
func (UnimplementedTeachLoopServer) StartSession(context.Context, *StartSessionRequest) (*SessionResponse, error) {
	return nil, unimplemented("StartSession")
}
func (UnimplementedTeachLoopServer) RefreshSession(context.Context, *RefreshSessionRequest) (*SessionResponse, error) {
	return nil, unimplemented("RefreshSession")
}
func (UnimplementedTeachLoopServer) EndSession(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, unimplemented("EndSession")
}
func (UnimplementedTeachLoopServer) CurrentPrincipal(context.Context, *emptypb.Empty) (*PrincipalResponse, error) {
	return nil, unimplemented("CurrentPrincipal")
}
func (UnimplementedTeachLoopServer) CreateProfile(context.Context, *CreateProfileRequest) (*ProfileResponse, error) {
	return nil, unimplemented("CreateProfile")
}
func (UnimplementedTeachLoopServer) GetProfile(context.Context, *GetProfileRequest) (*ProfileResponse, error) {
	return nil, unimplemented("GetProfile")
}
func (UnimplementedTeachLoopServer) UpdateProfile(context.Context, *UpdateProfileRequest) (*ProfileResponse, error) {
	return nil, unimplemented("UpdateProfile")
}
func (UnimplementedTeachLoopServer) CreateCourse(context.Context, *CreateCourseRequest) (*CourseResponse, error) {
	return nil, unimplemented("CreateCourse")
}
func (UnimplementedTeachLoopServer) ListCourses(context.Context, *ListCoursesRequest) (*CoursesResponse, error) {
	return nil, unimplemented("ListCourses")
}
func (UnimplementedTeachLoopServer) GetCourse(context.Context, *GetCourseRequest) (*CourseResponse, error) {
	return nil, unimplemented("GetCourse")
}
func (UnimplementedTeachLoopServer) ListInstructorCourses(context.Context, *ListInstructorCoursesRequest) (*CoursesResponse, error) {
	return nil, unimplemented("ListInstructorCourses")
}
func (UnimplementedTeachLoopServer) Enroll(context.Context, *EnrollRequest) (*EnrollmentResponse, error) {
	return nil, unimplemented("Enroll")
}
func (UnimplementedTeachLoopServer) ListEnrollments(context.Context, *ListEnrollmentsRequest) (*EnrollmentsResponse, error) {
	return nil, unimplemented("ListEnrollments")
}
func (UnimplementedTeachLoopServer) ListCourseEnrollments(context.Context, *ListCourseEnrollmentsRequest) (*EnrollmentsResponse, error) {
	return nil, unimplemented("ListCourseEnrollments")
}
func (UnimplementedTeachLoopServer) UpdateProgress(context.Context, *UpdateProgressRequest) (*EnrollmentResponse, error) {
	return nil, unimplemented("UpdateProgress")
}
func (UnimplementedTeachLoopServer) CreateUploadURL(context.Context, *UploadURLRequest) (*UploadURLResponse, error) {
	return nil, unimplemented("CreateUploadURL")
}
func (UnimplementedTeachLoopServer) CreateDownloadURL(context.Context, *FileRequest) (*DownloadURLResponse, error) {
	return nil, unimplemented("CreateDownloadURL")
}
func (UnimplementedTeachLoopServer) DeleteFile(context.Context, *FileRequest) (*emptypb.Empty, error) {
	return nil, unimplemented("DeleteFile")
}

func RegisterTeachLoopServer(s grpc.ServiceRegistrar, srv TeachLoopServer) {
	s.RegisterService(&TeachLoop_ServiceDesc, srv)
}

type methodHandler = func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error)

// unaryHandler adapts a typed server method to grpc's untyped method handler,
// routing through the interceptor chain the same way generated code does.
func unaryHandler[Req any, Resp any](fullMethod string, call func(TeachLoopServer, context.Context, *Req) (*Resp, error)) methodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TeachLoopServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TeachLoopServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// TeachLoop_ServiceDesc is the grpc.ServiceDesc for the TeachLoop service.
var TeachLoop_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TeachLoopServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unaryHandler(TeachLoop_Ping_FullMethodName, TeachLoopServer.Ping)},
		{MethodName: "CreateAccount", Handler: unaryHandler(TeachLoop_CreateAccount_FullMethodName, TeachLoopServer.CreateAccount)},
		{MethodName: "StartSession", Handler: unaryHandler(TeachLoop_StartSession_FullMethodName, TeachLoopServer.StartSession)},
		{MethodName: "RefreshSession", Handler: unaryHandler(TeachLoop_RefreshSession_FullMethodName, TeachLoopServer.RefreshSession)},
		{MethodName: "EndSession", Handler: unaryHandler(TeachLoop_EndSession_FullMethodName, TeachLoopServer.EndSession)},
		{MethodName: "CurrentPrincipal", Handler: unaryHandler(TeachLoop_CurrentPrincipal_FullMethodName, TeachLoopServer.CurrentPrincipal)},
		{MethodName: "CreateProfile", Handler: unaryHandler(TeachLoop_CreateProfile_FullMethodName, TeachLoopServer.CreateProfile)},
		{MethodName: "GetProfile", Handler: unaryHandler(TeachLoop_GetProfile_FullMethodName, TeachLoopServer.GetProfile)},
		{MethodName: "UpdateProfile", Handler: unaryHandler(TeachLoop_UpdateProfile_FullMethodName, TeachLoopServer.UpdateProfile)},
		{MethodName: "CreateCourse", Handler: unaryHandler(TeachLoop_CreateCourse_FullMethodName, TeachLoopServer.CreateCourse)},
		{MethodName: "ListCourses", Handler: unaryHandler(TeachLoop_ListCourses_FullMethodName, TeachLoopServer.ListCourses)},
		{MethodName: "GetCourse", Handler: unaryHandler(TeachLoop_GetCourse_FullMethodName, TeachLoopServer.GetCourse)},
		{MethodName: "ListInstructorCourses", Handler: unaryHandler(TeachLoop_ListInstructorCourses_FullMethodName, TeachLoopServer.ListInstructorCourses)},
		{MethodName: "Enroll", Handler: unaryHandler(TeachLoop_Enroll_FullMethodName, TeachLoopServer.Enroll)},
		{MethodName: "ListEnrollments", Handler: unaryHandler(TeachLoop_ListEnrollments_FullMethodName, TeachLoopServer.ListEnrollments)},
		{MethodName: "ListCourseEnrollments", Handler: unaryHandler(TeachLoop_ListCourseEnrollments_FullMethodName, TeachLoopServer.ListCourseEnrollments)},
		{MethodName: "UpdateProgress", Handler: unaryHandler(TeachLoop_UpdateProgress_FullMethodName, TeachLoopServer.UpdateProgress)},
		{MethodName: "CreateUploadURL", Handler: unaryHandler(TeachLoop_CreateUploadURL_FullMethodName, TeachLoopServer.CreateUploadURL)},
		{MethodName: "CreateDownloadURL", Handler: unaryHandler(TeachLoop_CreateDownloadURL_FullMethodName, TeachLoopServer.CreateDownloadURL)},
		{MethodName: "DeleteFile", Handler: unaryHandler(TeachLoop_DeleteFile_FullMethodName, TeachLoopServer.DeleteFile)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "teachloop/v1/teachloop.proto",
}
