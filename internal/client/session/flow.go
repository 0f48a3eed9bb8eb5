package session

import (
	"context"

	"github.com/dmitrijs2005/teachloop/internal/client/models"
)

// flow carries the values produced by one pipeline run.
type flow struct {
	c *Controller

	email       string
	password    string
	displayName string

	principal *models.Principal
	profile   *models.Profile

	// stop ends the pipeline early without failing it.
	stop bool
}

func (f *flow) createAccount(ctx context.Context) error {
	_, err := f.c.identity.CreateAccount(ctx, f.email, f.password, f.displayName)
	return err
}

func (f *flow) startSession(ctx context.Context) error {
	return f.c.identity.StartSession(ctx, f.email, f.password)
}

// fetchPrincipal allows "no session": the run stops with no principal.
func (f *flow) fetchPrincipal(ctx context.Context) error {
	p, err := f.c.identity.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	f.principal = p
	f.stop = p == nil
	return nil
}

// requirePrincipal is fetchPrincipal for flows that just opened a session.
func (f *flow) requirePrincipal(ctx context.Context) error {
	p, err := f.c.identity.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	if p == nil {
		return errNoPrincipal
	}
	f.principal = p
	return nil
}

func (f *flow) createProfile(ctx context.Context) error {
	_, err := f.c.profiles.CreateProfile(ctx, f.principal.ID, defaultProfileFields(f.principal, f.displayName))
	return err
}

// fetchProfile loads the profile of the current principal. On failure the
// profile stays nil so the identity is principal-only.
func (f *flow) fetchProfile(ctx context.Context) error {
	f.profile = nil
	prof, err := f.c.profiles.GetProfile(ctx, f.principal.ID)
	if err != nil {
		return err
	}
	f.profile = prof
	return nil
}

// defaultProfileFields are what a new account's profile starts with.
func defaultProfileFields(p *models.Principal, displayName string) models.ProfileFields {
	if displayName == "" {
		displayName = p.DisplayName
	}
	bio := ""
	return models.ProfileFields{
		DisplayName: displayName,
		Email:       p.Email,
		Bio:         &bio,
		TeachSkills: []string{},
		LearnSkills: []string{},
		Role:        DefaultRole,
	}
}
