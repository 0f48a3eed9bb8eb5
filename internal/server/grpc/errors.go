package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/teachloop/internal/api"
	"github.com/dmitrijs2005/teachloop/internal/common"
	"github.com/dmitrijs2005/teachloop/internal/dbx"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fail converts a service error into a status error carrying an
// errdetails.ErrorInfo reason. Unclassified errors are logged and hidden
// behind codes.Internal.
func (s *GRPCServer) fail(ctx context.Context, err error) error {
	var (
		code   codes.Code
		reason string
		msg    string
	)

	switch {
	case errors.Is(err, common.ErrorValidation):
		code, reason, msg = codes.InvalidArgument, api.ReasonValidationFailed, err.Error()
	case errors.Is(err, common.ErrorAlreadyExists):
		code, reason, msg = codes.AlreadyExists, api.ReasonAlreadyExists, "already exists"
	case errors.Is(err, common.ErrorNotFound):
		code, reason, msg = codes.NotFound, api.ReasonNotFound, "not found"
	case errors.Is(err, common.ErrorUnauthorized):
		code, reason, msg = codes.Unauthenticated, api.ReasonInvalidCredentials, "invalid credentials"
	case errors.Is(err, common.ErrorForbidden):
		code, reason, msg = codes.PermissionDenied, api.ReasonPermissionDenied, "permission denied"
	case errors.Is(err, common.ErrTokenExpired):
		code, reason, msg = codes.Unauthenticated, api.ReasonTokenExpired, api.TokenExpiredMessage
	case errors.Is(err, common.ErrRefreshTokenExpired),
		errors.Is(err, common.ErrSessionEnded),
		errors.Is(err, common.ErrInvalidToken):
		code, reason, msg = codes.Unauthenticated, api.ReasonSessionInvalid, err.Error()
	case dbx.IsInvalidInput(err):
		code, reason, msg = codes.InvalidArgument, api.ReasonValidationFailed, "malformed id"
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		s.logger.Error(ctx, "internal error", "error", err)
		return status.Error(codes.Internal, "internal error")
	}

	st := status.New(code, msg)
	if withInfo, derr := st.WithDetails(&errdetails.ErrorInfo{Reason: reason, Domain: api.ErrorDomain}); derr == nil {
		st = withInfo
	}
	return st.Err()
}
