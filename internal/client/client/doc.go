// Package client talks to the TeachLoop backend.
//
// GRPCClient implements the identity and profile contracts consumed by the
// session controller, plus courses, enrollments and storage. It injects the
// access token on every call, refreshes an expired token once through
// RefreshSession, persists the token pair in the local sqlite database so a
// new process can resume the session, and maps gRPC status codes to the
// sentinel errors in errors.go.
//
// InitDatabase opens the local database and applies the embedded goose
// migrations.
package client
