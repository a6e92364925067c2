package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/workasana/workasana-be/internal/apperrors"
	"github.com/workasana/workasana-be/internal/models"
)

// ProjectServiceProvider defines the interface for project services.
type ProjectServiceProvider interface {
	CreateProject(name, description string) (models.Project, error)
	GetProjectByID(id string) (models.Project, error)
	ListProjects() ([]models.Project, error)
}

// ProjectService provides business logic for project management.
type ProjectService struct {
	db *sql.DB
}

// NewProjectService creates a new ProjectService.
func NewProjectService(db *sql.DB) *ProjectService {
	return &ProjectService{db: db}
}

// CreateProject adds a new project to the database.
func (s *ProjectService) CreateProject(name, description string) (models.Project, error) {
	project := models.Project{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := s.db.Exec(
		"INSERT INTO projects(id, name, description, created_at) VALUES(?, ?, ?, ?)",
		project.ID, project.Name, project.Description, project.CreatedAt,
	)
	if err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// GetProjectByID retrieves a single project by its ID.
func (s *ProjectService) GetProjectByID(id string) (models.Project, error) {
	var project models.Project
	var desc sql.NullString
	row := s.db.QueryRow("SELECT id, name, description, created_at FROM projects WHERE id = ?", id)
	err := row.Scan(&project.ID, &project.Name, &desc, &project.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Project{}, fmt.Errorf("project with id %s: %w", id, apperrors.ErrNotFound)
		}
		return models.Project{}, err
	}
	project.Description = desc.String
	return project, nil
}

// ListProjects retrieves all projects in store order.
func (s *ProjectService) ListProjects() ([]models.Project, error) {
	rows, err := s.db.Query("SELECT id, name, description, created_at FROM projects")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var project models.Project
		var desc sql.NullString
		if err := rows.Scan(&project.ID, &project.Name, &desc, &project.CreatedAt); err != nil {
			return nil, err
		}
		project.Description = desc.String
		projects = append(projects, project)
	}
	return projects, rows.Err()
}
