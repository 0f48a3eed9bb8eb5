package client

import "errors"

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrAlreadyExists    = errors.New("already exists")
	ErrNotFound         = errors.New("not found")
)
