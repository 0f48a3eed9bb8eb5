package client

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/teachloop/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/teachloop/internal/dbx"
)

const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// Tokens is the session token pair.
type Tokens struct {
	Access  string
	Refresh string
}

// TokenStore persists the session tokens between runs.
type TokenStore interface {
	Load(ctx context.Context) (Tokens, error)
	Save(ctx context.Context, t Tokens) error
	Clear(ctx context.Context) error
}

// MetadataTokenStore keeps the tokens in the local metadata table.
type MetadataTokenStore struct {
	db *sql.DB
}

func NewMetadataTokenStore(db *sql.DB) *MetadataTokenStore {
	return &MetadataTokenStore{db: db}
}

func (s *MetadataTokenStore) Load(ctx context.Context) (Tokens, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	access, err := repo.Get(ctx, accessTokenKey)
	if err != nil {
		return Tokens{}, err
	}
	refresh, err := repo.Get(ctx, refreshTokenKey)
	if err != nil {
		return Tokens{}, err
	}
	return Tokens{Access: string(access), Refresh: string(refresh)}, nil
}

// Save replaces both tokens in one transaction.
func (s *MetadataTokenStore) Save(ctx context.Context, t Tokens) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, accessTokenKey, []byte(t.Access)); err != nil {
			return err
		}
		return repo.Set(ctx, refreshTokenKey, []byte(t.Refresh))
	})
}

func (s *MetadataTokenStore) Clear(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, accessTokenKey, refreshTokenKey)
}
