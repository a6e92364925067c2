package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/workasana/workasana-be/internal/apperrors"
	"github.com/workasana/workasana-be/internal/models"
)

// TaskServiceProvider defines the interface for task services.
type TaskServiceProvider interface {
	CreateTask(input models.TaskInput) (models.Task, error)
	GetTaskByID(id string) (models.Task, error)
	ListTasks(filter models.TaskFilter) ([]models.Task, error)
	CompleteTask(id string) (models.Task, error)
}

// TaskService provides business logic for task management.
type TaskService struct {
	db *sql.DB
}

// NewTaskService creates a new TaskService.
func NewTaskService(db *sql.DB) *TaskService {
	return &TaskService{db: db}
}

// CreateTask validates and stores a new task together with its owner and
// tag links. References to missing projects, teams, users or tags are
// rejected by the store's foreign keys.
func (s *TaskService) CreateTask(input models.TaskInput) (models.Task, error) {
	if input.Name == "" || input.Project == "" || input.Team == "" ||
		len(input.Owners) == 0 || input.TimeToComplete <= 0 || input.Status == "" {
		return models.Task{}, fmt.Errorf("missing fields: %w", apperrors.ErrValidation)
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.Exec(
		`INSERT INTO tasks(id, name, project_id, team_id, time_to_complete, status, created_at, updated_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		id, input.Name, input.Project, input.Team, input.TimeToComplete, input.Status, now, now,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Task{}, fmt.Errorf("project or team does not exist: %w", apperrors.ErrValidation)
		}
		return models.Task{}, err
	}

	for _, ownerID := range input.Owners {
		if _, err := s.db.Exec("INSERT INTO task_owners(task_id, user_id) VALUES(?, ?)", id, ownerID); err != nil {
			if isForeignKeyViolation(err) {
				return models.Task{}, fmt.Errorf("owner %s does not exist: %w", ownerID, apperrors.ErrValidation)
			}
			return models.Task{}, err
		}
	}
	for _, tagID := range input.Tags {
		if _, err := s.db.Exec("INSERT INTO task_tags(task_id, tag_id) VALUES(?, ?)", id, tagID); err != nil {
			if isForeignKeyViolation(err) {
				return models.Task{}, fmt.Errorf("tag %s does not exist: %w", tagID, apperrors.ErrValidation)
			}
			return models.Task{}, err
		}
	}

	return s.GetTaskByID(id)
}

const taskSelect = `
	SELECT t.id, t.name, t.time_to_complete, t.status, t.created_at, t.updated_at,
	       p.id, p.name, p.description,
	       tm.id, tm.name, tm.description
	FROM tasks t
	JOIN projects p ON p.id = t.project_id
	JOIN teams tm ON tm.id = t.team_id`

// scanTask is a helper to scan an expanded task from a row or rows object.
func scanTask(scanner interface{ Scan(...interface{}) error }) (models.Task, error) {
	var task models.Task
	var projDesc, teamDesc sql.NullString

	err := scanner.Scan(
		&task.ID, &task.Name, &task.TimeToComplete, &task.Status, &task.CreatedAt, &task.UpdatedAt,
		&task.Project.ID, &task.Project.Name, &projDesc,
		&task.Team.ID, &task.Team.Name, &teamDesc,
	)
	if err != nil {
		return task, err
	}
	task.Project.Description = projDesc.String
	task.Team.Description = teamDesc.String
	return task, nil
}

// GetTaskByID retrieves a single task with its project, team, owners and
// tags expanded.
func (s *TaskService) GetTaskByID(id string) (models.Task, error) {
	row := s.db.QueryRow(taskSelect+" WHERE t.id = ?", id)
	task, err := scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Task{}, fmt.Errorf("task with id %s: %w", id, apperrors.ErrNotFound)
		}
		return models.Task{}, err
	}
	if err := s.expandRelations(&task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// ListTasks retrieves tasks matching the filter, each with its relations
// expanded. Zero-value filter fields are ignored.
func (s *TaskService) ListTasks(filter models.TaskFilter) ([]models.Task, error) {
	query := taskSelect + " WHERE 1=1"
	args := []interface{}{}
	if filter.Project != "" {
		query += " AND t.project_id = ?"
		args = append(args, filter.Project)
	}
	if filter.Team != "" {
		query += " AND t.team_id = ?"
		args = append(args, filter.Team)
	}
	if filter.Status != "" {
		query += " AND t.status = ?"
		args = append(args, filter.Status)
	}
	if filter.Tag != "" {
		query += " AND EXISTS (SELECT 1 FROM task_tags tt WHERE tt.task_id = t.id AND tt.tag_id = ?)"
		args = append(args, filter.Tag)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range tasks {
		if err := s.expandRelations(&tasks[i]); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

// CompleteTask marks a task as completed and bumps its update timestamp.
func (s *TaskService) CompleteTask(id string) (models.Task, error) {
	res, err := s.db.Exec(
		"UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?",
		models.StatusCompleted, time.Now().UTC(), id,
	)
	if err != nil {
		return models.Task{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Task{}, err
	}
	if affected == 0 {
		return models.Task{}, fmt.Errorf("task with id %s: %w", id, apperrors.ErrNotFound)
	}
	return s.GetTaskByID(id)
}

// expandRelations fills in a task's owner summaries and tag ids.
func (s *TaskService) expandRelations(task *models.Task) error {
	rows, err := s.db.Query(
		`SELECT u.id, u.name FROM task_owners o JOIN users u ON u.id = o.user_id WHERE o.task_id = ?`,
		task.ID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	task.Owners = []models.UserSummary{}
	for rows.Next() {
		var owner models.UserSummary
		if err := rows.Scan(&owner.ID, &owner.Name); err != nil {
			return err
		}
		task.Owners = append(task.Owners, owner)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	tagRows, err := s.db.Query("SELECT tag_id FROM task_tags WHERE task_id = ?", task.ID)
	if err != nil {
		return err
	}
	defer tagRows.Close()

	task.Tags = []string{}
	for tagRows.Next() {
		var tagID string
		if err := tagRows.Scan(&tagID); err != nil {
			return err
		}
		task.Tags = append(task.Tags, tagID)
	}
	return tagRows.Err()
}
