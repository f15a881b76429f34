package services

import (
	"context"
	"database/sql"

	"github.com/fahmiks/portfolio-api/internal/server/models"
	"github.com/fahmiks/portfolio-api/internal/server/repositories/repomanager"
)

// CategoryService manages project categories.
type CategoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager) *CategoryService {
	return &CategoryService{db: db, repomanager: m}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repomanager.Categories(s.db).List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	return s.repomanager.Categories(s.db).Create(ctx, name)
}

func (s *CategoryService) Update(ctx context.Context, id, name string) (*models.Category, error) {
	return s.repomanager.Categories(s.db).Update(ctx, id, name)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Categories(s.db)

	if _, err := repo.GetByID(ctx, id); err != nil {
		return err
	}

	return repo.Delete(ctx, id)
}
