package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/workasana/workasana-be/internal/apperrors"
	"github.com/workasana/workasana-be/internal/models"
)

// TagServiceProvider defines the interface for tag services.
type TagServiceProvider interface {
	CreateTag(name string) (models.Tag, error)
	ListTags() ([]models.Tag, error)
}

// TagService provides business logic for tag management.
type TagService struct {
	db *sql.DB
}

// NewTagService creates a new TagService.
func NewTagService(db *sql.DB) *TagService {
	return &TagService{db: db}
}

// CreateTag adds a new tag. Tag names are unique.
func (s *TagService) CreateTag(name string) (models.Tag, error) {
	tag := models.Tag{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec("INSERT INTO tags(id, name, created_at) VALUES(?, ?, ?)", tag.ID, tag.Name, tag.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Tag{}, fmt.Errorf("tag (%s) already exists: %w", name, apperrors.ErrConflict)
		}
		return models.Tag{}, err
	}
	return tag, nil
}

// ListTags retrieves all tags.
func (s *TagService) ListTags() ([]models.Tag, error) {
	rows, err := s.db.Query("SELECT id, name, created_at FROM tags")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []models.Tag{}
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.CreatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}
