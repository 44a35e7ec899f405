package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/storage/database"
)

const projectColumns = `id, title, short_description, full_description, image_url, category, location, year`

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db      *sqlx.DB
	dialect database.Dialect
}

var _ domain.Repository = (*ProjectRepository)(nil)

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db, dialect: database.DialectFor(db.DriverName())}
}

// FindAll returns every project in insertion order.
func (r *ProjectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects ORDER BY ` + r.dialect.ListOrder

	out := make([]domain.Project, 0, 16)
	if err := r.db.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	q := r.db.Rebind(`SELECT ` + projectColumns + ` FROM projects WHERE id = ?`)

	var p domain.Project
	if err := r.db.GetContext(ctx, &p, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}
	return &p, nil
}

// Insert stores a new project. A duplicate id yields domain.ErrProjectExists.
func (r *ProjectRepository) Insert(ctx context.Context, p *domain.Project) error {
	const q = `
INSERT INTO projects (id, title, short_description, full_description, image_url, category, location, year)
VALUES (:id, :title, :short_description, :full_description, :image_url, :category, :location, :year)`

	if _, err := r.db.NamedExecContext(ctx, q, p); err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrProjectExists
		}
		return fmt.Errorf("insert project %s: %w", p.ID, err)
	}
	return nil
}

// Update overwrites every mutable column of the stored project.
func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	const q = `
UPDATE projects
SET title = :title,
    short_description = :short_description,
    full_description = :full_description,
    image_url = :image_url,
    category = :category,
    location = :location,
    year = :year
WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, q, p)
	if err != nil {
		return fmt.Errorf("update project %s: %w", p.ID, err)
	}
	return expectOneRow(res)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	q := r.db.Rebind(`DELETE FROM projects WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}
