package repomanager

import (
	"context"
	"database/sql"

	"github.com/talentumplus/talentum/internal/dbx"
	"github.com/talentumplus/talentum/internal/server/repositories/applications"
	"github.com/talentumplus/talentum/internal/server/repositories/connections"
	"github.com/talentumplus/talentum/internal/server/repositories/courses"
	"github.com/talentumplus/talentum/internal/server/repositories/enrollments"
	"github.com/talentumplus/talentum/internal/server/repositories/offers"
	"github.com/talentumplus/talentum/internal/server/repositories/processes"
	"github.com/talentumplus/talentum/internal/server/repositories/profiles"
	"github.com/talentumplus/talentum/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	Courses(db dbx.DBTX) courses.Repository
	Enrollments(db dbx.DBTX) enrollments.Repository
	Offers(db dbx.DBTX) offers.Repository
	Applications(db dbx.DBTX) applications.Repository
	Processes(db dbx.DBTX) processes.Repository
	Connections(db dbx.DBTX) connections.Repository
}
