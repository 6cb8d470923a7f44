package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// ProjectStore defines the interface for project registry operations.
type ProjectStore interface {
	// GetOrCreateByName gets an existing project by name, creating it if needed.
	GetOrCreateByName(ctx context.Context, name string) (Project, error)
	// ListAll returns all known projects.
	ListAll(ctx context.Context) ([]Project, error)
}

// ProjectRepo provides methods for project registry operations.
// It implements the ProjectStore interface.
type ProjectRepo struct {
	db *sql.DB
}

// NewProjectRepo creates a new ProjectRepo.
func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// GetOrCreateByName gets an existing project by name, or creates it if it
// doesn't exist.
func (r *ProjectRepo) GetOrCreateByName(ctx context.Context, name string) (Project, error) {
	if name == "" {
		return Project{}, fmt.Errorf("project name is required")
	}

	project, err := r.getByName(ctx, name)
	if err == nil {
		return project, nil
	}
	if err != sql.ErrNoRows {
		return Project{}, fmt.Errorf("failed to query project: %w", err)
	}

	result, err := r.db.ExecContext(ctx, "INSERT INTO projects (name) VALUES (?)", name)
	if err != nil {
		return Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return Project{}, fmt.Errorf("failed to read project id: %w", err)
	}

	var createdAtStr string
	err = r.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM projects WHERE id = ?", id,
	).Scan(&project.ID, &project.Name, &createdAtStr)
	if err != nil {
		return Project{}, fmt.Errorf("failed to read created project: %w", err)
	}
	project.CreatedAt, err = parseTime(createdAtStr)
	if err != nil {
		return Project{}, err
	}

	return project, nil
}

// ListAll returns all projects ordered by name.
func (r *ProjectRepo) ListAll(ctx context.Context) ([]Project, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, created_at FROM projects ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var projects []Project
	for rows.Next() {
		var p Project
		var createdAtStr string
		if err := rows.Scan(&p.ID, &p.Name, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		p.CreatedAt, err = parseTime(createdAtStr)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}

func (r *ProjectRepo) getByName(ctx context.Context, name string) (Project, error) {
	var project Project
	var createdAtStr string
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM projects WHERE name = ?", name,
	).Scan(&project.ID, &project.Name, &createdAtStr)
	if err != nil {
		return Project{}, err
	}
	project.CreatedAt, err = parseTime(createdAtStr)
	if err != nil {
		return Project{}, err
	}
	return project, nil
}
