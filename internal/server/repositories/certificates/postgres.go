package certificates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fahmiks/portfolio-api/internal/common"
	"github.com/fahmiks/portfolio-api/internal/dbx"
	"github.com/fahmiks/portfolio-api/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Certificate, error) {
	query := `SELECT id, title, image_url, image_key, created_at FROM certificates ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Certificate
	for rows.Next() {
		var c models.Certificate
		if err := rows.Scan(&c.ID, &c.Title, &c.Image.URL, &c.Image.Key, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Certificate, error) {
	query := `SELECT id, title, image_url, image_key, created_at FROM certificates WHERE id = $1`

	c := &models.Certificate{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Title, &c.Image.URL, &c.Image.Key, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, cert *models.Certificate) (*models.Certificate, error) {

	query :=
		`INSERT INTO certificates (id, title, image_url, image_key)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), cert.Title, cert.Image.URL, cert.Image.Key).
		Scan(&cert.ID, &cert.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cert, nil
}

func (r *PostgresRepository) Update(ctx context.Context, cert *models.Certificate) error {

	query :=
		`UPDATE certificates SET title = $2, image_url = $3, image_key = $4
		 WHERE id = $1
		 `

	_, err := r.db.ExecContext(ctx, query, cert.ID, cert.Title, cert.Image.URL, cert.Image.Key)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM certificates WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
