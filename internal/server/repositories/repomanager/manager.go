package repomanager

import (
	"context"
	"database/sql"

	"github.com/fahmiks/portfolio-api/internal/dbx"
	"github.com/fahmiks/portfolio-api/internal/server/repositories/categories"
	"github.com/fahmiks/portfolio-api/internal/server/repositories/certificates"
	"github.com/fahmiks/portfolio-api/internal/server/repositories/levels"
	"github.com/fahmiks/portfolio-api/internal/server/repositories/projects"
	"github.com/fahmiks/portfolio-api/internal/server/repositories/skills"
	"github.com/fahmiks/portfolio-api/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Projects(db dbx.DBTX) projects.Repository
	Skills(db dbx.DBTX) skills.Repository
	Certificates(db dbx.DBTX) certificates.Repository
	Categories(db dbx.DBTX) categories.Repository
	Levels(db dbx.DBTX) levels.Repository
}
