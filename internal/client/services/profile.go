package services

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/teachloop/internal/client/client"
	"github.com/dmitrijs2005/teachloop/internal/client/models"
	"github.com/dmitrijs2005/teachloop/internal/client/session"
	"github.com/dmitrijs2005/teachloop/internal/filex"
	"github.com/dmitrijs2005/teachloop/internal/logging"
	"github.com/dmitrijs2005/teachloop/internal/netx"
)

const (
	PicturesBucket = "profile-pictures"
	MaxAvatarSize  = 5 << 20
)

// putPresigned is replaced in tests.
var putPresigned = netx.PutPresigned

// ProfileEditor is the session controller surface used for profile edits.
type ProfileEditor interface {
	Session
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) (session.Result, error)
}

type ProfileService interface {
	// UploadAvatar stores the image at path and makes it the avatar of the
	// signed-in user, removing the picture it replaces. It returns the
	// object key.
	UploadAvatar(ctx context.Context, path string) (string, error)
	// AvatarURL returns a download URL for the current avatar, or "" when
	// there is none.
	AvatarURL(ctx context.Context) (string, error)
}

type profileService struct {
	client  client.Client
	session ProfileEditor
	http    *http.Client
	logger  logging.Logger
}

func NewProfileService(client client.Client, session ProfileEditor, httpClient *http.Client, logger logging.Logger) ProfileService {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &profileService{client: client, session: session, http: httpClient, logger: logger}
}

func (s *profileService) UploadAvatar(ctx context.Context, path string) (string, error) {
	if _, err := principalID(s.session); err != nil {
		return "", err
	}

	data, err := filex.ReadLimited(path, MaxAvatarSize)
	if err != nil {
		return "", err
	}

	ct := contentType(path, data)
	if !strings.HasPrefix(ct, "image/") {
		return "", fmt.Errorf("%s is not an image (%s)", filepath.Base(path), ct)
	}

	ticket, err := s.client.CreateUploadURL(ctx, PicturesBucket, ct)
	if err != nil {
		return "", err
	}

	if err := putPresigned(ctx, s.http, ticket.URL, ct, data); err != nil {
		return "", err
	}

	var previous string
	if id := s.session.Snapshot().Identity; id != nil && id.Avatar != nil {
		previous = *id.Avatar
	}

	key := ticket.Key
	if _, err := s.session.UpdateProfile(ctx, models.ProfilePatch{Avatar: &key}); err != nil {
		s.deleteQuietly(ctx, key)
		return "", err
	}

	// A failed delete only leaves the old picture behind.
	if previous != "" && previous != key {
		s.deleteQuietly(ctx, previous)
	}
	return key, nil
}

// deleteQuietly removes a picture the profile no longer points at.
func (s *profileService) deleteQuietly(ctx context.Context, key string) {
	if err := s.client.DeleteFile(ctx, PicturesBucket, key); err != nil {
		s.logger.Warn(ctx, "removing unused avatar", "bucket", PicturesBucket, "key", key, "error", err)
	}
}

func (s *profileService) AvatarURL(ctx context.Context) (string, error) {
	id := s.session.Snapshot().Identity
	if id == nil {
		return "", session.ErrNotAuthenticated
	}
	if id.Avatar == nil || *id.Avatar == "" {
		return "", nil
	}
	return s.client.CreateDownloadURL(ctx, PicturesBucket, *id.Avatar)
}

// contentType guesses from the extension first, then from the bytes.
func contentType(path string, data []byte) string {
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	if mt, _, err := mime.ParseMediaType(ct); err == nil {
		return mt
	}
	return ct
}
