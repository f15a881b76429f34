package services

import (
	"context"
	"database/sql"

	"github.com/fahmiks/portfolio-api/internal/server/assets"
	"github.com/fahmiks/portfolio-api/internal/server/models"
	"github.com/fahmiks/portfolio-api/internal/server/repositories/repomanager"
)

// SkillInput carries the mutable skill fields. Icon is nil when the client
// did not send a file.
type SkillInput struct {
	Name    string
	LevelID string
	Icon    *assets.Upload
}

// SkillService manages skills and their icon lifecycle.
type SkillService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	assets      *assets.Lifecycle
}

func NewSkillService(db *sql.DB, m repomanager.RepositoryManager, lifecycle *assets.Lifecycle) *SkillService {
	return &SkillService{db: db, repomanager: m, assets: lifecycle}
}

func (s *SkillService) List(ctx context.Context) ([]models.Skill, error) {
	return s.repomanager.Skills(s.db).List(ctx)
}

func (s *SkillService) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	return s.repomanager.Skills(s.db).GetByID(ctx, id)
}

func (s *SkillService) Create(ctx context.Context, in SkillInput) (*models.Skill, error) {
	icon, err := s.assets.Store(ctx, in.Icon, assets.SkillIcon)
	if err != nil {
		return nil, err
	}

	skill := &models.Skill{Name: in.Name, LevelID: in.LevelID, Icon: icon}

	created, err := s.repomanager.Skills(s.db).Create(ctx, skill)
	if err != nil {
		_ = s.assets.Delete(ctx, icon)
		return nil, err
	}

	return created, nil
}

func (s *SkillService) Update(ctx context.Context, id string, in SkillInput) (*models.Skill, error) {
	repo := s.repomanager.Skills(s.db)

	existing, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	icon := existing.Icon
	if in.Icon != nil {
		icon, err = s.assets.Replace(ctx, existing.Icon, in.Icon, assets.SkillIcon)
		if err != nil {
			return nil, err
		}
	}

	skill := &models.Skill{ID: id, Name: in.Name, LevelID: in.LevelID, Icon: icon}
	if err := repo.Update(ctx, skill); err != nil {
		return nil, err
	}

	return repo.GetByID(ctx, id)
}

// Delete removes the icon object first; a storage failure keeps the row.
func (s *SkillService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Skills(s.db)

	skill, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.assets.Delete(ctx, skill.Icon); err != nil {
		return err
	}

	return repo.Delete(ctx, id)
}
