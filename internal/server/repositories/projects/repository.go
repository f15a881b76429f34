package projects

import (
	"context"

	"github.com/fahmiks/portfolio-api/internal/server/models"
)

type Repository interface {
	// List returns a page of projects, newest first, optionally filtered by
	// category name. Each project carries its category and skills.
	List(ctx context.Context, offset, limit int, category string) ([]models.Project, error)
	Count(ctx context.Context, category string) (int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	Update(ctx context.Context, oldSlug string, project *models.Project) error
	Delete(ctx context.Context, slug string) error
	ReplaceSkills(ctx context.Context, projectID string, skillIDs []string) error
}
