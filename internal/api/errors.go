package api

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// ErrorDomain is the errdetails.ErrorInfo domain of every TeachLoop error.
const ErrorDomain = "teachloop"

// ErrorInfo reasons attached to error statuses.
const (
	ReasonInvalidCredentials = "INVALID_CREDENTIALS"
	ReasonValidationFailed   = "VALIDATION_FAILED"
	ReasonAlreadyExists      = "ALREADY_EXISTS"
	ReasonNotFound           = "NOT_FOUND"
	ReasonPermissionDenied   = "PERMISSION_DENIED"
	ReasonTokenExpired       = "TOKEN_EXPIRED"
	ReasonSessionInvalid     = "SESSION_INVALID"
)

// TokenExpiredMessage is the status message of an Unauthenticated error
// caused by an expired access token. Clients refresh on it.
const TokenExpiredMessage = "token expired"

// ReasonOf returns the ErrorInfo reason attached to a status error, or ""
// when there is none.
func ReasonOf(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info.GetReason()
		}
	}
	return ""
}
