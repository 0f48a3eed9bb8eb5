package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/teachloop/internal/client/models"
	"github.com/dmitrijs2005/teachloop/internal/client/session"
)

// EditProfile walks through bio and skills. An empty answer keeps the
// current value and "-" clears it. Only changed fields are sent.
func (a *App) EditProfile(ctx context.Context) error {
	id := a.session.Snapshot().Identity
	if id == nil {
		return session.ErrNotAuthenticated
	}

	fmt.Fprintln(a.out, "Leave a field empty to keep it, enter '-' to clear it.")

	bio, err := getSimpleText(a.reader, fmt.Sprintf("Bio [%s]", deref(id.Bio)), a.out)
	if err != nil {
		return err
	}
	teach, err := getSimpleText(a.reader, fmt.Sprintf("Skills you teach, comma separated [%s]", strings.Join(id.TeachSkills, ", ")), a.out)
	if err != nil {
		return err
	}
	learn, err := getSimpleText(a.reader, fmt.Sprintf("Skills you want to learn, comma separated [%s]", strings.Join(id.LearnSkills, ", ")), a.out)
	if err != nil {
		return err
	}

	var patch models.ProfilePatch
	switch bio {
	case "":
	case "-":
		empty := ""
		patch.Bio = &empty
	default:
		patch.Bio = &bio
	}
	if teach != "" {
		skills := parseList(teach)
		patch.TeachSkills = &skills
	}
	if learn != "" {
		skills := parseList(learn)
		patch.LearnSkills = &skills
	}

	if patch.IsEmpty() {
		fmt.Fprintln(a.out, "Nothing to change.")
		return nil
	}

	if _, err := a.session.UpdateProfile(ctx, patch); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

func (a *App) Avatar(ctx context.Context, path string) error {
	key, err := a.profiles.UploadAvatar(ctx, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Avatar updated (%s).\n", key)
	return nil
}
