package cli

import (
	"errors"

	"github.com/dmitrijs2005/teachloop/internal/client/client"
	"github.com/dmitrijs2005/teachloop/internal/client/session"
)

var (
	errPasswordTooShort = errors.New("password must be at least 8 characters")
	errPasswordMismatch = errors.New("passwords do not match")
	errEmptyInput       = errors.New("value is required")
)

// describe turns a command error into the message shown to the user.
// Classified session errors get fixed wording; everything else is shown
// with the server's message.
func describe(err error) string {
	var se *session.Error
	if errors.As(err, &se) {
		switch se.Kind {
		case session.KindInvalidCredentials:
			return "invalid email or password"
		case session.KindAccountConflict:
			return "an account with this email already exists"
		case session.KindMalformedRequest:
			return se.Err.Error()
		case session.KindNotFound:
			return "profile not found"
		}
	}

	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, session.ErrNotAuthenticated):
		return "please log in first"
	case errors.Is(err, client.ErrPermissionDenied):
		return "you are not allowed to do that"
	}
	return err.Error()
}
