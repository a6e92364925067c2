package services

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/workasana/workasana-be/internal/apperrors"
	"github.com/workasana/workasana-be/internal/models"
)

// ReportServiceProvider defines the interface for the reporting engine.
type ReportServiceProvider interface {
	ClosedTasksByTeam() ([]models.TeamClosedCount, error)
	PendingTasksByProject() ([]models.ProjectPendingDays, error)
	CompletedLastWeek() ([]models.Task, error)
}

// ReportService computes read-only aggregates over tasks. Tasks are
// matched to their owning team or project by identifier, so renaming a
// team or project never merges report rows.
type ReportService struct {
	db *sql.DB

	// now is swapped out in tests to pin date arithmetic.
	now func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(db *sql.DB) *ReportService {
	return &ReportService{db: db, now: time.Now}
}

// noReportData is the single place deciding how an aggregate with no
// underlying rows is reported. The contract treats "no data at all" as
// not-found rather than an empty list.
func noReportData(rows int) error {
	if rows == 0 {
		return fmt.Errorf("no matching tasks: %w", apperrors.ErrNotFound)
	}
	return nil
}

// ClosedTasksByTeam counts completed tasks per team. Every team appears in
// the result, zero-count teams included, in store order.
func (s *ReportService) ClosedTasksByTeam() ([]models.TeamClosedCount, error) {
	rows, err := s.db.Query("SELECT team_id FROM tasks WHERE status = ?", models.StatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	closedByTeam := map[string]int{}
	total := 0
	for rows.Next() {
		var teamID string
		if err := rows.Scan(&teamID); err != nil {
			return nil, err
		}
		closedByTeam[teamID]++
		total++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := noReportData(total); err != nil {
		return nil, err
	}

	teamRows, err := s.db.Query("SELECT id, name FROM teams")
	if err != nil {
		return nil, err
	}
	defer teamRows.Close()

	report := []models.TeamClosedCount{}
	for teamRows.Next() {
		var id, name string
		if err := teamRows.Scan(&id, &name); err != nil {
			return nil, err
		}
		report = append(report, models.TeamClosedCount{Name: name, CompletedTasks: closedByTeam[id]})
	}
	return report, teamRows.Err()
}

// pendingTask is the projection the aging report works on.
type pendingTask struct {
	projectID      string
	timeToComplete int
	createdAt      time.Time
}

// remainingDays returns the whole days left until the task's due date,
// rounded up. Negative means the task is already overdue.
func (p pendingTask) remainingDays(now time.Time) int {
	due := p.createdAt.AddDate(0, 0, p.timeToComplete)
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// PendingTasksByProject reports, per project, the maximum remaining days
// across its outstanding tasks. Overdue tasks are skipped by the max, so a
// project whose pending tasks are all overdue reports zero, the same as a
// project with no pending tasks at all.
func (s *ReportService) PendingTasksByProject() ([]models.ProjectPendingDays, error) {
	rows, err := s.db.Query(
		"SELECT project_id, time_to_complete, created_at FROM tasks WHERE status != ?",
		models.StatusCompleted,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pending := []pendingTask{}
	for rows.Next() {
		var p pendingTask
		if err := rows.Scan(&p.projectID, &p.timeToComplete, &p.createdAt); err != nil {
			return nil, err
		}
		pending = append(pending, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := noReportData(len(pending)); err != nil {
		return nil, err
	}

	projRows, err := s.db.Query("SELECT id, name FROM projects")
	if err != nil {
		return nil, err
	}
	defer projRows.Close()

	now := s.now()
	report := []models.ProjectPendingDays{}
	for projRows.Next() {
		var id, name string
		if err := projRows.Scan(&id, &name); err != nil {
			return nil, err
		}

		maxRemaining := 0
		for _, p := range pending {
			if p.projectID != id {
				continue
			}
			remaining := p.remainingDays(now)
			if remaining < 0 {
				continue
			}
			if remaining > maxRemaining {
				maxRemaining = remaining
			}
		}
		report = append(report, models.ProjectPendingDays{Project: name, RemainingDaysToClose: maxRemaining})
	}
	return report, projRows.Err()
}

// CompletedLastWeek returns completed tasks whose last update is at least
// seven days old.
func (s *ReportService) CompletedLastWeek() ([]models.Task, error) {
	cutoff := s.now().AddDate(0, 0, -7)
	rows, err := s.db.Query(
		taskSelect+" WHERE t.status = ? AND t.updated_at <= ?",
		models.StatusCompleted, cutoff,
	)
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
	if err := noReportData(len(tasks)); err != nil {
		return nil, err
	}
	return tasks, nil
}
