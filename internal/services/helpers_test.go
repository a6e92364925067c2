package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/workasana/workasana-be/internal/database"
	"github.com/workasana/workasana-be/internal/models"
)

// newTestDB opens a fresh in-memory database with the schema applied.
// A single connection keeps the in-memory database alive for the whole test.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func seedTeam(t *testing.T, db *sql.DB, name string) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.Exec(
		"INSERT INTO teams(id, name, description, created_at) VALUES(?, ?, ?, ?)",
		id, name, "", time.Now().UTC(),
	)
	require.NoError(t, err)
	return id
}

func seedProject(t *testing.T, db *sql.DB, name string) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.Exec(
		"INSERT INTO projects(id, name, description, created_at) VALUES(?, ?, ?, ?)",
		id, name, "", time.Now().UTC(),
	)
	require.NoError(t, err)
	return id
}

func seedUser(t *testing.T, db *sql.DB, name, email string) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.Exec(
		"INSERT INTO users(id, name, email, password_hash, created_at) VALUES(?, ?, ?, ?, ?)",
		id, name, email, "x", time.Now().UTC(),
	)
	require.NoError(t, err)
	return id
}

func seedTag(t *testing.T, db *sql.DB, name string) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.Exec(
		"INSERT INTO tags(id, name, created_at) VALUES(?, ?, ?)",
		id, name, time.Now().UTC(),
	)
	require.NoError(t, err)
	return id
}

// seedTask inserts a bare task row with explicit timestamps; updated_at
// mirrors created_at unless bumped by the caller.
func seedTask(t *testing.T, db *sql.DB, projectID, teamID, status string, createdAt time.Time, days int) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.Exec(
		`INSERT INTO tasks(id, name, project_id, team_id, time_to_complete, status, created_at, updated_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		id, "task-"+id[:8], projectID, teamID, days, status, createdAt, createdAt,
	)
	require.NoError(t, err)
	return id
}

func completedTask(t *testing.T, db *sql.DB, projectID, teamID string) string {
	t.Helper()
	return seedTask(t, db, projectID, teamID, models.StatusCompleted, time.Now().UTC().AddDate(0, 0, -1), 1)
}
