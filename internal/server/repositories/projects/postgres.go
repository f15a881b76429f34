package projects

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

const projectColumns = `p.id, p.title, p.slug, p.description, p.category_id,
		        p.image_url, p.image_key, p.link_demo, p.link_repository, p.created_at, p.updated_at,
		        c.id, c.name, c.created_at`

func scanProject(scan func(dest ...any) error) (*models.Project, error) {
	p := &models.Project{}
	category := &models.Category{}
	err := scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.CategoryID,
		&p.Image.URL, &p.Image.Key, &p.LinkDemo, &p.LinkRepository, &p.CreatedAt, &p.UpdatedAt,
		&category.ID, &category.Name, &category.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Category = category
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int, category string) ([]models.Project, error) {

	query :=
		`SELECT ` + projectColumns + `
		 FROM projects p
		 JOIN category_projects c ON c.id = p.category_id
		 WHERE ($3 = '' OR c.name = $3)
		 ORDER BY p.created_at DESC
		 OFFSET $1 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, offset, limit, category)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	for i := range result {
		skills, err := r.skillsFor(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Skills = skills
	}

	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context, category string) (int64, error) {

	query :=
		`SELECT count(*)
		 FROM projects p
		 JOIN category_projects c ON c.id = p.category_id
		 WHERE ($1 = '' OR c.name = $1)
		 `

	var total int64
	if err := r.db.QueryRowContext(ctx, query, category).Scan(&total); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return total, nil
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {

	query :=
		`SELECT ` + projectColumns + `
		 FROM projects p
		 JOIN category_projects c ON c.id = p.category_id
		 WHERE p.slug = $1
		 `

	p, err := scanProject(r.db.QueryRowContext(ctx, query, slug).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	skills, err := r.skillsFor(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Skills = skills

	return p, nil
}

func (r *PostgresRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM projects WHERE slug = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {

	query :=
		`INSERT INTO projects (id, title, slug, description, category_id, image_url, image_key, link_demo, link_repository)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), project.Title, project.Slug, project.Description, project.CategoryID,
		project.Image.URL, project.Image.Key, project.LinkDemo, project.LinkRepository).
		Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return project, nil
}

func (r *PostgresRepository) Update(ctx context.Context, oldSlug string, project *models.Project) error {

	query :=
		`UPDATE projects
		 SET title = $2, slug = $3, description = $4, category_id = $5,
		     image_url = $6, image_key = $7, link_demo = $8, link_repository = $9, updated_at = now()
		 WHERE slug = $1
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		oldSlug, project.Title, project.Slug, project.Description, project.CategoryID,
		project.Image.URL, project.Image.Key, project.LinkDemo, project.LinkRepository).
		Scan(&project.ID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, slug string) error {
	// project_skills rows go with the project via ON DELETE CASCADE.
	query := `DELETE FROM projects WHERE slug = $1`

	if _, err := r.db.ExecContext(ctx, query, slug); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ReplaceSkills(ctx context.Context, projectID string, skillIDs []string) error {

	if _, err := r.db.ExecContext(ctx, `DELETE FROM project_skills WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	for _, skillID := range skillIDs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO project_skills (project_id, skill_id) VALUES ($1, $2)`, projectID, skillID)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}

	return nil
}

func (r *PostgresRepository) skillsFor(ctx context.Context, projectID string) ([]models.Skill, error) {

	query :=
		`SELECT s.id, s.name, s.level_id, s.icon_url, s.icon_key, s.created_at
		 FROM skills s
		 JOIN project_skills ps ON ps.skill_id = s.id
		 WHERE ps.project_id = $1
		 ORDER BY s.name
		 `

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Skill
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.LevelID, &s.Icon.URL, &s.Icon.Key, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
