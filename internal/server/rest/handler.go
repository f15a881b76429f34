package rest

import (
	"database/sql"

	"github.com/fahmiks/portfolio-api/internal/logging"
	"github.com/fahmiks/portfolio-api/internal/server/services"
)

// Handler groups the HTTP handlers for the portfolio API. Dependencies are
// injected via the constructor, no global state.
type Handler struct {
	db           *sql.DB
	logger       logging.Logger
	auth         *services.AuthService
	projects     *services.ProjectService
	skills       *services.SkillService
	certificates *services.CertificateService
	categories   *services.CategoryService
	levels       *services.LevelService
	users        *services.UserService
	contact      *services.ContactService
}

func NewHandler(
	db *sql.DB,
	logger logging.Logger,
	auth *services.AuthService,
	projects *services.ProjectService,
	skills *services.SkillService,
	certificates *services.CertificateService,
	categories *services.CategoryService,
	levels *services.LevelService,
	users *services.UserService,
	contact *services.ContactService,
) *Handler {
	return &Handler{
		db:           db,
		logger:       logger.With("module", "rest"),
		auth:         auth,
		projects:     projects,
		skills:       skills,
		certificates: certificates,
		categories:   categories,
		levels:       levels,
		users:        users,
		contact:      contact,
	}
}
