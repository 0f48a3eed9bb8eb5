package session

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/teachloop/internal/client/client"
)

// Kind classifies a failed operation for the view layer.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidCredentials
	KindMalformedRequest
	KindAccountConflict
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidCredentials:
		return "invalid credentials"
	case KindMalformedRequest:
		return "malformed request"
	case KindAccountConflict:
		return "account conflict"
	case KindNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// ErrNotAuthenticated is returned by operations that need a signed-in user.
var ErrNotAuthenticated = errors.New("not signed in")

// errNoPrincipal means the identity service reported no session right after
// one was started.
var errNoPrincipal = errors.New("no active session")

// Error is a classified failure of step Op.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf classifies err. Errors already classified keep their kind.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}

	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return KindInvalidCredentials
	case errors.Is(err, client.ErrInvalidArgument):
		return KindMalformedRequest
	case errors.Is(err, client.ErrAlreadyExists):
		return KindAccountConflict
	case errors.Is(err, client.ErrNotFound):
		return KindNotFound
	default:
		return KindUnknown
	}
}

func classify(op string, err error) *Error {
	var se *Error
	if errors.As(err, &se) {
		return se
	}
	return &Error{Kind: KindOf(err), Op: op, Err: err}
}
