package levels

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fahmiks/portfolio-api/internal/dbx"
	"github.com/fahmiks/portfolio-api/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Level, error) {
	query := `SELECT id, name, competency_level, created_at FROM levels ORDER BY competency_level`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Level
	for rows.Next() {
		var l models.Level
		if err := rows.Scan(&l.ID, &l.Name, &l.CompetencyLevel, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, name string, competencyLevel int) (*models.Level, error) {

	query :=
		`INSERT INTO levels (id, name, competency_level)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, competency_level, created_at
		 `

	l := &models.Level{}
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), name, competencyLevel).
		Scan(&l.ID, &l.Name, &l.CompetencyLevel, &l.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return l, nil
}
