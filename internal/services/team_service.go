package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/workasana/workasana-be/internal/apperrors"
	"github.com/workasana/workasana-be/internal/models"
)

// TeamServiceProvider defines the interface for team services.
type TeamServiceProvider interface {
	CreateTeam(name, description string) (models.Team, error)
	GetTeamByID(id string) (models.Team, error)
	ListTeams() ([]models.Team, error)
}

// TeamService provides business logic for team management.
type TeamService struct {
	db *sql.DB
}

// NewTeamService creates a new TeamService.
func NewTeamService(db *sql.DB) *TeamService {
	return &TeamService{db: db}
}

// CreateTeam adds a new team. Team names are unique.
func (s *TeamService) CreateTeam(name, description string) (models.Team, error) {
	team := models.Team{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := s.db.Exec(
		"INSERT INTO teams(id, name, description, created_at) VALUES(?, ?, ?, ?)",
		team.ID, team.Name, team.Description, team.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Team{}, fmt.Errorf("team name (%s) already exists: %w", name, apperrors.ErrConflict)
		}
		return models.Team{}, err
	}
	return team, nil
}

// GetTeamByID retrieves a single team by its ID.
func (s *TeamService) GetTeamByID(id string) (models.Team, error) {
	var team models.Team
	var desc sql.NullString
	row := s.db.QueryRow("SELECT id, name, description, created_at FROM teams WHERE id = ?", id)
	err := row.Scan(&team.ID, &team.Name, &desc, &team.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Team{}, fmt.Errorf("team with id %s: %w", id, apperrors.ErrNotFound)
		}
		return models.Team{}, err
	}
	team.Description = desc.String
	return team, nil
}

// ListTeams retrieves all teams in store order.
func (s *TeamService) ListTeams() ([]models.Team, error) {
	rows, err := s.db.Query("SELECT id, name, description, created_at FROM teams")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := []models.Team{}
	for rows.Next() {
		var team models.Team
		var desc sql.NullString
		if err := rows.Scan(&team.ID, &team.Name, &desc, &team.CreatedAt); err != nil {
			return nil, err
		}
		team.Description = desc.String
		teams = append(teams, team)
	}
	return teams, rows.Err()
}
