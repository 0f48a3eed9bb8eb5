package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/teachloop/internal/api"
	"github.com/dmitrijs2005/teachloop/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	userIDKey    ctxKey = "userID"
	sessionIDKey ctxKey = "sessionID"
)

// publicMethods are served without an access token.
var publicMethods = map[string]bool{
	api.TeachLoop_Ping_FullMethodName:           true,
	api.TeachLoop_CreateAccount_FullMethodName:  true,
	api.TeachLoop_StartSession_FullMethodName:   true,
	api.TeachLoop_RefreshSession_FullMethodName: true,
}

func withPrincipal(ctx context.Context, userID, sessionID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// principalFrom returns the ids stored by accessTokenInterceptor.
func principalFrom(ctx context.Context) (userID, sessionID string, ok bool) {
	userID, _ = ctx.Value(userIDKey).(string)
	sessionID, _ = ctx.Value(sessionIDKey).(string)
	return userID, sessionID, userID != "" && sessionID != ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if publicMethods[info.FullMethod] || !strings.HasPrefix(info.FullMethod, "/"+api.ServiceName+"/") {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, sessionID, err := s.accounts.Authenticate(ctx, accessToken)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	return handler(withPrincipal(ctx, userID, sessionID), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	switch code {
	case codes.OK:
		s.logger.Info(ctx, "request served", args...)
	case codes.Internal, codes.Unknown:
		s.logger.Error(ctx, "request failed", args...)
	default:
		s.logger.Warn(ctx, "request rejected", args...)
	}
	return resp, err
}
