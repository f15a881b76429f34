package services

import (
	"context"
	"database/sql"

	"github.com/fahmiks/portfolio-api/internal/server/assets"
	"github.com/fahmiks/portfolio-api/internal/server/models"
	"github.com/fahmiks/portfolio-api/internal/server/repositories/repomanager"
)

// ProfileInput carries the editable owner profile fields. Profile and CV are
// nil when the matching file was not sent.
type ProfileInput struct {
	Name    string
	Profile *assets.Upload
	CV      *assets.Upload
}

// UserService exposes the portfolio owner's profile and its asset lifecycle.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	assets      *assets.Lifecycle
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, lifecycle *assets.Lifecycle) *UserService {
	return &UserService{db: db, repomanager: m, assets: lifecycle}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// EditProfile updates the authenticated owner's name and optionally replaces
// the profile image and CV document. Both files are validated before either
// replacement starts, so a rejected CV cannot destroy the profile object
// already in storage (and vice versa).
func (s *UserService) EditProfile(ctx context.Context, userID string, in ProfileInput) (*models.User, error) {
	if in.Profile != nil {
		if err := assets.ProfileImage.Validate(in.Profile); err != nil {
			return nil, err
		}
	}
	if in.CV != nil {
		if err := assets.CVDocument.Validate(in.CV); err != nil {
			return nil, err
		}
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}

	if in.Profile != nil {
		user.Profile, err = s.assets.Replace(ctx, user.Profile, in.Profile, assets.ProfileImage)
		if err != nil {
			return nil, err
		}
	}

	if in.CV != nil {
		user.CV, err = s.assets.Replace(ctx, user.CV, in.CV, assets.CVDocument)
		if err != nil {
			return nil, err
		}
	}

	if err := repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return repo.GetByID(ctx, userID)
}
