package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/teachloop/internal/common"
	"github.com/dmitrijs2005/teachloop/internal/dbx"
	"github.com/dmitrijs2005/teachloop/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// skills are stored as jsonb arrays; nil encodes as [] so the column never
// holds null.
func encodeSkills(s []string) ([]byte, error) {
	if s == nil {
		s = []string{}
	}
	return json.Marshal(s)
}

func decodeSkills(b []byte) ([]string, error) {
	s := []string{}
	if len(b) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	teach, err := encodeSkills(p.TeachSkills)
	if err != nil {
		return nil, err
	}
	learn, err := encodeSkills(p.LearnSkills)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO profiles (user_id, display_name, email, bio, teach_skills, learn_skills, role, avatar)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`
	err = r.db.QueryRowContext(ctx, query,
		p.UserID, p.DisplayName, p.Email, p.Bio, teach, learn, p.Role, p.Avatar).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(dbx.Classify(err), common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if p.TeachSkills == nil {
		p.TeachSkills = []string{}
	}
	if p.LearnSkills == nil {
		p.LearnSkills = []string{}
	}
	return p, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	query := `
		SELECT user_id, display_name, email, bio, teach_skills, learn_skills, role, avatar, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	p := &models.Profile{}
	var teach, learn []byte
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.DisplayName, &p.Email, &p.Bio, &teach, &learn, &p.Role, &p.Avatar, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(dbx.Classify(err), common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if p.TeachSkills, err = decodeSkills(teach); err != nil {
		return nil, err
	}
	if p.LearnSkills, err = decodeSkills(learn); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	teach, err := encodeSkills(p.TeachSkills)
	if err != nil {
		return nil, err
	}
	learn, err := encodeSkills(p.LearnSkills)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE profiles
		SET display_name = $2, email = $3, bio = $4, teach_skills = $5, learn_skills = $6,
			role = $7, avatar = $8, updated_at = now()
		WHERE user_id = $1
		RETURNING updated_at
	`
	err = r.db.QueryRowContext(ctx, query,
		p.UserID, p.DisplayName, p.Email, p.Bio, teach, learn, p.Role, p.Avatar).
		Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(dbx.Classify(err), common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}
