package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/fahmiks/portfolio-api/internal/common"
	"github.com/fahmiks/portfolio-api/internal/dbx"
	"github.com/fahmiks/portfolio-api/internal/logging"
	"github.com/fahmiks/portfolio-api/internal/server/assets"
	"github.com/fahmiks/portfolio-api/internal/server/models"
	categoriesrepo "github.com/fahmiks/portfolio-api/internal/server/repositories/categories"
	certificatesrepo "github.com/fahmiks/portfolio-api/internal/server/repositories/certificates"
	levelsrepo "github.com/fahmiks/portfolio-api/internal/server/repositories/levels"
	projectsrepo "github.com/fahmiks/portfolio-api/internal/server/repositories/projects"
	skillsrepo "github.com/fahmiks/portfolio-api/internal/server/repositories/skills"
	usersrepo "github.com/fahmiks/portfolio-api/internal/server/repositories/users"
)

// --- helpers ---

func testLifecycle(t *testing.T, store *fakeObjectStore) *assets.Lifecycle {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return assets.NewLifecycle(store, logger)
}

// fakeObjectStore records uploads and deletes in order.
type fakeObjectStore struct {
	calls     []string
	uploadErr error
	deleteErr error
}

func (f *fakeObjectStore) Upload(ctx context.Context, data []byte, contentType, folder string) (string, string, error) {
	f.calls = append(f.calls, "upload:"+folder)
	if f.uploadErr != nil {
		return "", "", f.uploadErr
	}
	return "https://cdn/" + folder + "/obj.png", "portfolio/" + folder + "/obj.png", nil
}

func (f *fakeObjectStore) Delete(ctx context.Context, key string) error {
	f.calls = append(f.calls, "delete:"+key)
	return f.deleteErr
}

func validImage() *assets.Upload {
	return &assets.Upload{Data: []byte("png"), ContentType: "image/png", Size: 3}
}

var assetsUploadGIF = assets.Upload{Data: []byte("gif"), ContentType: "image/gif", Size: 3}

// --- fake repositories ---

type fakeUsersRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
	list    []models.User

	updated   *models.User
	updateErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]models.User, error) {
	return f.list, nil
}

func (f *fakeUsersRepo) Update(ctx context.Context, u *models.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = u
	return nil
}

type fakeProjectsRepo struct {
	bySlug   map[string]*models.Project
	existing map[string]bool

	listOut  []models.Project
	countOut int64

	created       *models.Project
	createErr     error
	updated       *models.Project
	updateErr     error
	deletedSlug   string
	deleteErr     error
	skillsSet     []string
	replaceCalled bool
	replaceErr    error
}

func (f *fakeProjectsRepo) List(ctx context.Context, offset, limit int, category string) ([]models.Project, error) {
	return f.listOut, nil
}

func (f *fakeProjectsRepo) Count(ctx context.Context, category string) (int64, error) {
	return f.countOut, nil
}

func (f *fakeProjectsRepo) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	if p, ok := f.bySlug[slug]; ok {
		return p, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeProjectsRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	return f.existing[slug], nil
}

func (f *fakeProjectsRepo) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	p.ID = "p-new"
	f.created = p
	if f.bySlug == nil {
		f.bySlug = map[string]*models.Project{}
	}
	f.bySlug[p.Slug] = p
	return p, nil
}

func (f *fakeProjectsRepo) Update(ctx context.Context, oldSlug string, p *models.Project) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	p.ID = "p-1"
	f.updated = p
	f.bySlug[p.Slug] = p
	return nil
}

func (f *fakeProjectsRepo) Delete(ctx context.Context, slug string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedSlug = slug
	return nil
}

func (f *fakeProjectsRepo) ReplaceSkills(ctx context.Context, projectID string, skillIDs []string) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaceCalled = true
	f.skillsSet = skillIDs
	return nil
}

type fakeSkillsRepo struct {
	byID map[string]*models.Skill

	created   *models.Skill
	updated   *models.Skill
	deletedID string
}

func (f *fakeSkillsRepo) List(ctx context.Context) ([]models.Skill, error) { return nil, nil }

func (f *fakeSkillsRepo) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeSkillsRepo) Create(ctx context.Context, s *models.Skill) (*models.Skill, error) {
	s.ID = "s-new"
	f.created = s
	return s, nil
}

func (f *fakeSkillsRepo) Update(ctx context.Context, s *models.Skill) error {
	f.updated = s
	if f.byID == nil {
		f.byID = map[string]*models.Skill{}
	}
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSkillsRepo) Delete(ctx context.Context, id string) error {
	f.deletedID = id
	return nil
}

// fakeRepoManager hands out the configured fakes regardless of the DBTX.
type fakeRepoManager struct {
	users    *fakeUsersRepo
	projects *fakeProjectsRepo
	skills   *fakeSkillsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.users }
func (m *fakeRepoManager) Projects(db dbx.DBTX) projectsrepo.Repository { return m.projects }
func (m *fakeRepoManager) Skills(db dbx.DBTX) skillsrepo.Repository     { return m.skills }

func (m *fakeRepoManager) Certificates(db dbx.DBTX) certificatesrepo.Repository { return nil }
func (m *fakeRepoManager) Categories(db dbx.DBTX) categoriesrepo.Repository     { return nil }
func (m *fakeRepoManager) Levels(db dbx.DBTX) levelsrepo.Repository             { return nil }
