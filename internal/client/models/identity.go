// Package models holds the client-side records exchanged with the TeachLoop
// backend.
package models

import "time"

// Principal is the account record owned by the identity service.
type Principal struct {
	ID            string
	DisplayName   string
	Email         string
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Profile is the application-level record keyed by principal id.
// Bio and Avatar are nil when unset.
type Profile struct {
	PrincipalID string
	DisplayName string
	Email       string
	Bio         *string
	TeachSkills []string
	LearnSkills []string
	Role        string
	Avatar      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProfileFields are the values a profile is created with.
type ProfileFields struct {
	DisplayName string
	Email       string
	Bio         *string
	TeachSkills []string
	LearnSkills []string
	Role        string
	Avatar      *string
}

// ProfilePatch is a partial profile update; nil fields are left untouched.
type ProfilePatch struct {
	DisplayName *string
	Email       *string
	Bio         *string
	TeachSkills *[]string
	LearnSkills *[]string
	Role        *string
	Avatar      *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p.DisplayName == nil && p.Email == nil && p.Bio == nil &&
		p.TeachSkills == nil && p.LearnSkills == nil && p.Role == nil && p.Avatar == nil
}
