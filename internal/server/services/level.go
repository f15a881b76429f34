package services

import (
	"context"
	"database/sql"

	"github.com/fahmiks/portfolio-api/internal/server/models"
	"github.com/fahmiks/portfolio-api/internal/server/repositories/repomanager"
)

// LevelService exposes the fixed set of experience levels.
type LevelService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewLevelService(db *sql.DB, m repomanager.RepositoryManager) *LevelService {
	return &LevelService{db: db, repomanager: m}
}

func (s *LevelService) List(ctx context.Context) ([]models.Level, error) {
	return s.repomanager.Levels(s.db).List(ctx)
}
