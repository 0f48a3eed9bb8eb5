// Package services contains server-side business logic. This file implements
// AccountService: account creation, sessions backed by refresh tokens, and
// access-token verification.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/teachloop/internal/common"
	"github.com/dmitrijs2005/teachloop/internal/cryptox"
	"github.com/dmitrijs2005/teachloop/internal/dbx"
	"github.com/dmitrijs2005/teachloop/internal/server/auth"
	"github.com/dmitrijs2005/teachloop/internal/server/config"
	"github.com/dmitrijs2005/teachloop/internal/server/models"
	"github.com/dmitrijs2005/teachloop/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/teachloop/internal/server/validation"
	"github.com/google/uuid"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

type newAccount struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"min=8"`
	DisplayName string `json:"displayName" validate:"notblank,max=100"`
}

type loginCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AccountService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	passwordParams               cryptox.Params
	now                          func() time.Time
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AccountService {
	return &AccountService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		passwordParams:               cryptox.DefaultParams,
		now:                          time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateAccount registers a new principal. Malformed input yields
// common.ErrorValidation and a taken email common.ErrorAlreadyExists.
func (s *AccountService) CreateAccount(ctx context.Context, email, password, displayName string) (*models.User, error) {
	in := newAccount{Email: normalizeEmail(email), Password: password, DisplayName: strings.TrimSpace(displayName)}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        in.Email,
		DisplayName:  in.DisplayName,
		PasswordHash: cryptox.HashPassword([]byte(password), s.passwordParams),
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// StartSession verifies credentials and opens a session. Unknown emails and
// wrong passwords are indistinguishable: both yield common.ErrorUnauthorized.
func (s *AccountService) StartSession(ctx context.Context, email, password string) (*TokenPair, error) {
	in := loginCredentials{Email: normalizeEmail(email), Password: password}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	ok, err := cryptox.VerifyPassword(user.PasswordHash, []byte(password))
	if err != nil {
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	return s.openSession(ctx, user.ID, s.db)
}

// RefreshSession rotates a refresh token: the old session is deleted and a
// new one opened in the same transaction. Expired tokens yield
// common.ErrRefreshTokenExpired; unknown ones common.ErrorUnauthorized.
func (s *AccountService) RefreshSession(ctx context.Context, refreshToken string) (*TokenPair, error) {
	session, err := s.repomanager.Sessions(s.db).FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if session.ExpiresAt.Before(s.now()) {
		_ = s.repomanager.Sessions(s.db).Delete(ctx, session.ID)
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Sessions(tx).Delete(ctx, session.ID); err != nil {
			return fmt.Errorf("error deleting session: %w", err)
		}
		var openErr error
		pair, openErr = s.openSession(ctx, session.UserID, tx)
		return openErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// EndSession deletes the session; its access tokens stop authenticating.
func (s *AccountService) EndSession(ctx context.Context, sessionID string) error {
	if err := s.repomanager.Sessions(s.db).Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("error ending session: %w", err)
	}
	return nil
}

// Authenticate verifies an access token and checks that its session is
// still open. It returns the user and session ids.
func (s *AccountService) Authenticate(ctx context.Context, accessToken string) (string, string, error) {
	claims, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		return "", "", err
	}

	if _, err := s.repomanager.Sessions(s.db).Get(ctx, claims.SessionID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", "", common.ErrSessionEnded
		}
		return "", "", common.ErrorInternal
	}
	return claims.UserID, claims.SessionID, nil
}

// CurrentPrincipal returns the account behind an authenticated call.
func (s *AccountService) CurrentPrincipal(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	return u, nil
}

func (s *AccountService) openSession(ctx context.Context, userID string, db dbx.DBTX) (*TokenPair, error) {
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}

	session := &models.Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		RefreshToken: refresh,
		ExpiresAt:    s.now().Add(s.refreshTokenValidityDuration),
	}
	if err := s.repomanager.Sessions(db).Create(ctx, session); err != nil {
		return nil, common.ErrorInternal
	}

	access, err := auth.GenerateToken(userID, session.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    s.now().Add(s.accessTokenValidityDuration),
	}, nil
}
