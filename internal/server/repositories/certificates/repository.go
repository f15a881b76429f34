package certificates

import (
	"context"

	"github.com/fahmiks/portfolio-api/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Certificate, error)
	GetByID(ctx context.Context, id string) (*models.Certificate, error)
	Create(ctx context.Context, cert *models.Certificate) (*models.Certificate, error)
	Update(ctx context.Context, cert *models.Certificate) error
	Delete(ctx context.Context, id string) error
}
