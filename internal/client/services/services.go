// Package services contains the application services behind the TeachLoop
// client views: course browsing and enrollment, teaching, connections,
// progress and the profile avatar. They are thin layers over client.Client
// that need the signed-in principal from the session controller.
package services

import (
	"github.com/dmitrijs2005/teachloop/internal/client/session"
)

// Session is the part of the session controller the services read.
type Session interface {
	Snapshot() session.Snapshot
}

// principalID returns the signed-in principal or session.ErrNotAuthenticated.
func principalID(s Session) (string, error) {
	id := s.Snapshot().Identity
	if id == nil {
		return "", session.ErrNotAuthenticated
	}
	return id.PrincipalID, nil
}
