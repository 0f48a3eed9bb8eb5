package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/teachloop/internal/common"
	"github.com/dmitrijs2005/teachloop/internal/dbx"
	"github.com/dmitrijs2005/teachloop/internal/server/models"
	"github.com/dmitrijs2005/teachloop/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/teachloop/internal/server/validation"
)

// ProfileFields are the values a profile is created with.
type ProfileFields struct {
	DisplayName string   `json:"displayName" validate:"notblank,max=100"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Bio         *string  `json:"bio" validate:"omitempty,max=2000"`
	TeachSkills []string `json:"teachSkills" validate:"max=50,dive,notblank"`
	LearnSkills []string `json:"learnSkills" validate:"max=50,dive,notblank"`
	Role        string   `json:"role" validate:"omitempty,max=32"`
	Avatar      *string  `json:"avatar"`
}

// ProfilePatch is a partial update; nil fields are left untouched.
type ProfilePatch struct {
	DisplayName *string   `json:"displayName" validate:"omitnil,notblank,max=100"`
	Email       *string   `json:"email" validate:"omitnil,email"`
	Bio         *string   `json:"bio" validate:"omitnil,max=2000"`
	TeachSkills *[]string `json:"teachSkills" validate:"omitnil,max=50,dive,notblank"`
	LearnSkills *[]string `json:"learnSkills" validate:"omitnil,max=50,dive,notblank"`
	Role        *string   `json:"role" validate:"omitnil,notblank,max=32"`
	Avatar      *string   `json:"avatar"`
}

// Apply copies the non-nil fields of the patch onto p.
func (pp ProfilePatch) Apply(p *models.Profile) {
	if pp.DisplayName != nil {
		p.DisplayName = *pp.DisplayName
	}
	if pp.Email != nil {
		p.Email = *pp.Email
	}
	if pp.Bio != nil {
		p.Bio = pp.Bio
	}
	if pp.TeachSkills != nil {
		p.TeachSkills = append([]string{}, (*pp.TeachSkills)...)
	}
	if pp.LearnSkills != nil {
		p.LearnSkills = append([]string{}, (*pp.LearnSkills)...)
	}
	if pp.Role != nil {
		p.Role = *pp.Role
	}
	if pp.Avatar != nil {
		p.Avatar = pp.Avatar
	}
}

// ProfileService stores one profile per principal. Only the owner may create
// or change a profile; any authenticated caller may read one.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{db: db, repomanager: m}
}

func (s *ProfileService) CreateProfile(ctx context.Context, callerID, userID string, f ProfileFields) (*models.Profile, error) {
	if callerID != userID {
		return nil, common.ErrorForbidden
	}
	if err := validation.Struct(f); err != nil {
		return nil, err
	}

	p := &models.Profile{
		UserID:      userID,
		DisplayName: strings.TrimSpace(f.DisplayName),
		Email:       f.Email,
		Bio:         f.Bio,
		TeachSkills: f.TeachSkills,
		LearnSkills: f.LearnSkills,
		Role:        f.Role,
		Avatar:      f.Avatar,
	}
	if p.Role == "" {
		p.Role = common.DefaultRole
	}

	created, err := s.repomanager.Profiles(s.db).Create(ctx, p)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating profile: %w", err)
	}
	return created, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	p, err := s.repomanager.Profiles(s.db).Get(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error loading profile: %w", err)
	}
	return p, nil
}

// UpdateProfile applies patch to an existing profile. A missing profile is
// common.ErrorNotFound; profiles are only ever created by CreateProfile.
func (s *ProfileService) UpdateProfile(ctx context.Context, callerID, userID string, patch ProfilePatch) (*models.Profile, error) {
	if callerID != userID {
		return nil, common.ErrorForbidden
	}
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}

	var updated *models.Profile
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Profiles(tx)
		p, err := repo.Get(ctx, userID)
		if err != nil {
			return err
		}
		patch.Apply(p)
		updated, err = repo.Update(ctx, p)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return updated, nil
}
