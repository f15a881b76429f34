package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gosimple/slug"

	"github.com/fahmiks/portfolio-api/internal/dbx"
	"github.com/fahmiks/portfolio-api/internal/server/assets"
	"github.com/fahmiks/portfolio-api/internal/server/models"
	"github.com/fahmiks/portfolio-api/internal/server/repositories/projects"
	"github.com/fahmiks/portfolio-api/internal/server/repositories/repomanager"
)

// ProjectInput carries the mutable project fields. Image is nil when the
// client did not send a file.
type ProjectInput struct {
	Title          string
	Description    string
	CategoryID     string
	SkillIDs       []string
	LinkDemo       string
	LinkRepository string
	Image          *assets.Upload
}

// ProjectPage is one page of the project listing plus pagination metadata.
type ProjectPage struct {
	Items      []models.Project `json:"projects"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}

// ProjectService manages projects, their skill associations, and the
// project image lifecycle.
type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	assets      *assets.Lifecycle
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager, lifecycle *assets.Lifecycle) *ProjectService {
	return &ProjectService{db: db, repomanager: m, assets: lifecycle}
}

// List returns the requested page, newest first, optionally filtered by
// category name. Page and limit fall back to 1 and 10 when out of range.
func (s *ProjectService) List(ctx context.Context, page, limit int, category string) (*ProjectPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	repo := s.repomanager.Projects(s.db)

	total, err := repo.Count(ctx, category)
	if err != nil {
		return nil, err
	}

	items, err := repo.List(ctx, (page-1)*limit, limit, category)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ProjectPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *ProjectService) GetBySlug(ctx context.Context, projectSlug string) (*models.Project, error) {
	return s.repomanager.Projects(s.db).GetBySlug(ctx, projectSlug)
}

// Create validates and stores the project image, then inserts the project row
// and its skill associations in one transaction. If the transaction fails the
// freshly uploaded image is removed again.
func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (*models.Project, error) {
	repo := s.repomanager.Projects(s.db)

	uniqueSlug, err := s.uniqueSlug(ctx, repo, in.Title, "")
	if err != nil {
		return nil, err
	}

	image, err := s.assets.Store(ctx, in.Image, assets.ProjectImage)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:          in.Title,
		Slug:           uniqueSlug,
		Description:    in.Description,
		CategoryID:     in.CategoryID,
		Image:          image,
		LinkDemo:       in.LinkDemo,
		LinkRepository: in.LinkRepository,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Projects(tx)
		if _, err := repoTx.Create(ctx, project); err != nil {
			return err
		}
		return repoTx.ReplaceSkills(ctx, project.ID, in.SkillIDs)
	})
	if err != nil {
		_ = s.assets.Delete(ctx, image)
		return nil, err
	}

	return s.GetBySlug(ctx, project.Slug)
}

// Update edits the project behind projectSlug. The slug is regenerated only
// when the title actually changes; a new image replaces the old object.
func (s *ProjectService) Update(ctx context.Context, projectSlug string, in ProjectInput) (*models.Project, error) {
	repo := s.repomanager.Projects(s.db)

	existing, err := repo.GetBySlug(ctx, projectSlug)
	if err != nil {
		return nil, err
	}

	newSlug := existing.Slug
	if in.Title != existing.Title {
		newSlug, err = s.uniqueSlug(ctx, repo, in.Title, existing.Slug)
		if err != nil {
			return nil, err
		}
	}

	image := existing.Image
	if in.Image != nil {
		image, err = s.assets.Replace(ctx, existing.Image, in.Image, assets.ProjectImage)
		if err != nil {
			return nil, err
		}
	}

	project := &models.Project{
		Title:          in.Title,
		Slug:           newSlug,
		Description:    in.Description,
		CategoryID:     in.CategoryID,
		Image:          image,
		LinkDemo:       in.LinkDemo,
		LinkRepository: in.LinkRepository,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Projects(tx)
		if err := repoTx.Update(ctx, projectSlug, project); err != nil {
			return err
		}
		if in.SkillIDs == nil {
			return nil
		}
		return repoTx.ReplaceSkills(ctx, project.ID, in.SkillIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetBySlug(ctx, newSlug)
}

// Delete removes the project image first and only then the row; a storage
// failure aborts with the row intact so the delete can be retried.
func (s *ProjectService) Delete(ctx context.Context, projectSlug string) error {
	repo := s.repomanager.Projects(s.db)

	project, err := repo.GetBySlug(ctx, projectSlug)
	if err != nil {
		return err
	}

	if err := s.assets.Delete(ctx, project.Image); err != nil {
		return err
	}

	return repo.Delete(ctx, projectSlug)
}

// uniqueSlug slugifies title and, on collision, appends a counter to the
// title and reslugs until the result is free. current is the slug the entity
// already owns and is always acceptable.
func (s *ProjectService) uniqueSlug(ctx context.Context, repo projects.Repository, title, current string) (string, error) {
	candidate := slug.Make(title)

	for n := 1; ; n++ {
		if candidate == current {
			return candidate, nil
		}

		exists, err := repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}

		candidate = slug.Make(fmt.Sprintf("%s %d", title, n))
	}
}
