// Package dbx holds the small database/sql abstractions shared by the
// postgres repositories on the server and the sqlite repositories on the
// client.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/teachloop/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	// uniqueViolation is the SQLSTATE postgres reports for a duplicate key.
	uniqueViolation = "23505"
	// invalidTextRepresentation is reported when a parameter cannot be parsed
	// as its column type, e.g. "abc" for a uuid.
	invalidTextRepresentation = "22P02"
)

// DBTX is the subset of database/sql used by repositories.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction. It commits when fn returns nil and
// rolls back on error or panic; panics are re-raised after the rollback.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    return repos.Enrollments(tx).Create(ctx, e)
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(ctx, tx)
}

// IsUniqueViolation reports whether err is a postgres duplicate-key error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// IsInvalidInput reports whether postgres rejected a parameter it could not
// parse, such as a malformed uuid.
func IsInvalidInput(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation
}

// Classify turns driver errors into the shared sentinels repositories return:
// sql.ErrNoRows becomes common.ErrorNotFound, a unique violation becomes
// common.ErrorAlreadyExists and an unparsable parameter becomes
// common.ErrorValidation. Other errors are returned unchanged.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return common.ErrorNotFound
	case IsUniqueViolation(err):
		return common.ErrorAlreadyExists
	case IsInvalidInput(err):
		return fmt.Errorf("%w: malformed value", common.ErrorValidation)
	default:
		return err
	}
}
