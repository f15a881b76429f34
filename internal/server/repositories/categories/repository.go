package categories

import (
	"context"

	"github.com/fahmiks/portfolio-api/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, name string) (*models.Category, error)
	Update(ctx context.Context, id string, name string) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}
