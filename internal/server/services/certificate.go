package services

import (
	"context"
	"database/sql"

	"github.com/fahmiks/portfolio-api/internal/server/assets"
	"github.com/fahmiks/portfolio-api/internal/server/models"
	"github.com/fahmiks/portfolio-api/internal/server/repositories/repomanager"
)

// CertificateInput carries the mutable certificate fields. Image is nil when
// the client did not send a file.
type CertificateInput struct {
	Title string
	Image *assets.Upload
}

// CertificateService manages certificates and their image lifecycle.
type CertificateService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	assets      *assets.Lifecycle
}

func NewCertificateService(db *sql.DB, m repomanager.RepositoryManager, lifecycle *assets.Lifecycle) *CertificateService {
	return &CertificateService{db: db, repomanager: m, assets: lifecycle}
}

func (s *CertificateService) List(ctx context.Context) ([]models.Certificate, error) {
	return s.repomanager.Certificates(s.db).List(ctx)
}

func (s *CertificateService) GetByID(ctx context.Context, id string) (*models.Certificate, error) {
	return s.repomanager.Certificates(s.db).GetByID(ctx, id)
}

func (s *CertificateService) Create(ctx context.Context, in CertificateInput) (*models.Certificate, error) {
	image, err := s.assets.Store(ctx, in.Image, assets.CertificateImage)
	if err != nil {
		return nil, err
	}

	cert := &models.Certificate{Title: in.Title, Image: image}

	created, err := s.repomanager.Certificates(s.db).Create(ctx, cert)
	if err != nil {
		_ = s.assets.Delete(ctx, image)
		return nil, err
	}

	return created, nil
}

func (s *CertificateService) Update(ctx context.Context, id string, in CertificateInput) (*models.Certificate, error) {
	repo := s.repomanager.Certificates(s.db)

	existing, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	image := existing.Image
	if in.Image != nil {
		image, err = s.assets.Replace(ctx, existing.Image, in.Image, assets.CertificateImage)
		if err != nil {
			return nil, err
		}
	}

	cert := &models.Certificate{ID: id, Title: in.Title, Image: image}
	if err := repo.Update(ctx, cert); err != nil {
		return nil, err
	}

	return repo.GetByID(ctx, id)
}

// Delete removes the certificate image first; a storage failure keeps the row.
func (s *CertificateService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Certificates(s.db)

	cert, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.assets.Delete(ctx, cert.Image); err != nil {
		return err
	}

	return repo.Delete(ctx, id)
}
