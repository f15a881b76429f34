package levels

import (
	"context"

	"github.com/fahmiks/portfolio-api/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Level, error)
	Create(ctx context.Context, name string, competencyLevel int) (*models.Level, error)
}
