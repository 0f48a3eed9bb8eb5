package session

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/teachloop/internal/client/models"
)

// Identity is the signed-in user as the rest of the client sees it: the
// principal's fields overlaid with the profile's. Profile-only fields stay
// at their zero value (nil for Bio and Avatar) when no profile was merged.
type Identity struct {
	PrincipalID   string
	DisplayName   string
	Email         string
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	HasProfile  bool
	Bio         *string
	TeachSkills []string
	LearnSkills []string
	Role        string
	Avatar      *string
}

// merge builds an Identity from p, letting profile values win on overlap.
// A nil profile yields the principal-only view.
func merge(p *models.Principal, prof *models.Profile) *Identity {
	id := &Identity{
		PrincipalID:   p.ID,
		DisplayName:   p.DisplayName,
		Email:         p.Email,
		EmailVerified: p.EmailVerified,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if prof == nil {
		return id
	}

	id.HasProfile = true
	id.DisplayName = prof.DisplayName
	id.Email = prof.Email
	id.Bio = cloneString(prof.Bio)
	id.TeachSkills = slices.Clone(prof.TeachSkills)
	id.LearnSkills = slices.Clone(prof.LearnSkills)
	id.Role = prof.Role
	id.Avatar = cloneString(prof.Avatar)
	if !prof.CreatedAt.IsZero() {
		id.CreatedAt = prof.CreatedAt
	}
	if !prof.UpdatedAt.IsZero() {
		id.UpdatedAt = prof.UpdatedAt
	}
	return id
}

// withPatch returns a copy of id with the patch fields applied.
func (id *Identity) withPatch(p models.ProfilePatch) *Identity {
	out := id.Clone()
	if p.DisplayName != nil {
		out.DisplayName = *p.DisplayName
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Bio != nil {
		out.Bio = cloneString(p.Bio)
	}
	if p.TeachSkills != nil {
		out.TeachSkills = slices.Clone(*p.TeachSkills)
	}
	if p.LearnSkills != nil {
		out.LearnSkills = slices.Clone(*p.LearnSkills)
	}
	if p.Role != nil {
		out.Role = *p.Role
	}
	if p.Avatar != nil {
		out.Avatar = cloneString(p.Avatar)
	}
	return out
}

// Clone returns a deep copy; nil stays nil.
func (id *Identity) Clone() *Identity {
	if id == nil {
		return nil
	}
	out := *id
	out.Bio = cloneString(id.Bio)
	out.Avatar = cloneString(id.Avatar)
	out.TeachSkills = slices.Clone(id.TeachSkills)
	out.LearnSkills = slices.Clone(id.LearnSkills)
	return &out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
