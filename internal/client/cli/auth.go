package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/teachloop/internal/client/session"
	"github.com/dmitrijs2005/teachloop/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

const minPasswordLength = 8

// Signup asks for email, display name and a confirmed password, then
// creates the account through the session controller.
//
// The password rules are checked here, before anything is sent. The
// password byte slices are wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email: %w", errEmptyInput)
	}

	name, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("display name: %w", errEmptyInput)
	}

	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if len(password) < minPasswordLength {
		return errPasswordTooShort
	}

	confirm, err := getPassword(a.out, "Confirm password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(password, confirm) {
		return errPasswordMismatch
	}

	res, err := a.session.Signup(ctx, email, string(password), name)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome to TeachLoop, %s!\n", a.currentName())
	if step, ok := res.Step(session.StepCreateProfile); ok && step.Err != nil {
		fmt.Fprintln(a.out, "Your account is ready, but the profile could not be created.")
	} else if res.Outcome == session.Degraded {
		fmt.Fprintln(a.out, "Your profile could not be loaded; some details are missing.")
	}
	return nil
}

// Login prompts for credentials and signs in. On failure the current state
// is kept.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s.\n", a.currentName())
	if res.Outcome == session.Degraded {
		fmt.Fprintln(a.out, "Your profile could not be loaded; some details are missing.")
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if _, err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the merged identity. The avatar line carries a download
// link when one can be signed.
func (a *App) Whoami(ctx context.Context) error {
	id := a.session.Snapshot().Identity
	if id == nil {
		return session.ErrNotAuthenticated
	}

	fmt.Fprintf(a.out, "Name:     %s\n", id.DisplayName)
	fmt.Fprintf(a.out, "Email:    %s\n", id.Email)
	fmt.Fprintf(a.out, "ID:       %s\n", id.PrincipalID)
	if !id.HasProfile {
		fmt.Fprintln(a.out, "Profile:  not available")
		return nil
	}

	fmt.Fprintf(a.out, "Role:     %s\n", id.Role)
	fmt.Fprintf(a.out, "Bio:      %s\n", orDash(deref(id.Bio)))
	fmt.Fprintf(a.out, "Teaches:  %s\n", orDash(strings.Join(id.TeachSkills, ", ")))
	fmt.Fprintf(a.out, "Learning: %s\n", orDash(strings.Join(id.LearnSkills, ", ")))

	if id.Avatar != nil && *id.Avatar != "" {
		url, err := a.profiles.AvatarURL(ctx)
		if err != nil {
			a.logger.Warn(ctx, "avatar link unavailable", "error", err)
			url = *id.Avatar
		}
		fmt.Fprintf(a.out, "Avatar:   %s\n", url)
	}
	return nil
}

func (a *App) currentName() string {
	id := a.session.Snapshot().Identity
	if id == nil {
		return ""
	}
	return displayName(id)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
