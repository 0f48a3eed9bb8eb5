// Package repomanager vends repositories bound to a connection or
// transaction and owns the schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/teachloop/internal/dbx"
	"github.com/dmitrijs2005/teachloop/internal/server/repositories/courses"
	"github.com/dmitrijs2005/teachloop/internal/server/repositories/enrollments"
	"github.com/dmitrijs2005/teachloop/internal/server/repositories/files"
	"github.com/dmitrijs2005/teachloop/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/teachloop/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/teachloop/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	Courses(db dbx.DBTX) courses.Repository
	Enrollments(db dbx.DBTX) enrollments.Repository
	Files(db dbx.DBTX) files.Repository
}
