package skills

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

// List returns all skills with their experience level, ordered by name.
func (r *PostgresRepository) List(ctx context.Context) ([]models.Skill, error) {

	query :=
		`SELECT s.id, s.name, s.level_id, s.icon_url, s.icon_key, s.created_at,
		        l.id, l.name, l.competency_level, l.created_at
		 FROM skills s
		 JOIN levels l ON l.id = s.level_id
		 ORDER BY s.name
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Skill
	for rows.Next() {
		var s models.Skill
		level := &models.Level{}
		err := rows.Scan(&s.ID, &s.Name, &s.LevelID, &s.Icon.URL, &s.Icon.Key, &s.CreatedAt,
			&level.ID, &level.Name, &level.CompetencyLevel, &level.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		s.Level = level
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	query := `SELECT id, name, level_id, icon_url, icon_key, created_at FROM skills WHERE id = $1`

	s := &models.Skill{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.Name, &s.LevelID, &s.Icon.URL, &s.Icon.Key, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) Create(ctx context.Context, skill *models.Skill) (*models.Skill, error) {

	query :=
		`INSERT INTO skills (id, name, level_id, icon_url, icon_key)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), skill.Name, skill.LevelID, skill.Icon.URL, skill.Icon.Key).
		Scan(&skill.ID, &skill.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return skill, nil
}

func (r *PostgresRepository) Update(ctx context.Context, skill *models.Skill) error {

	query :=
		`UPDATE skills SET name = $2, level_id = $3, icon_url = $4, icon_key = $5
		 WHERE id = $1
		 `

	_, err := r.db.ExecContext(ctx, query,
		skill.ID, skill.Name, skill.LevelID, skill.Icon.URL, skill.Icon.Key)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM skills WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
