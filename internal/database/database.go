package database

import (
	"database/sql"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool with foreign keys enabled.
// Referential integrity (a task must point at an existing project, team
// and owners) is the store's job, so the pragma is part of the DSN and
// applies to every pooled connection.
func New(dataSourceName string) (*sql.DB, error) {
	dsn := dataSourceName
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=foreign_keys(1)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS teams (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS projects (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS tags (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		project_id TEXT NOT NULL REFERENCES projects(id),
		team_id TEXT NOT NULL REFERENCES teams(id),
		time_to_complete INTEGER NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS task_owners (
		task_id TEXT NOT NULL REFERENCES tasks(id),
		user_id TEXT NOT NULL REFERENCES users(id),
		PRIMARY KEY (task_id, user_id)
	);

	CREATE TABLE IF NOT EXISTS task_tags (
		task_id TEXT NOT NULL REFERENCES tasks(id),
		tag_id TEXT NOT NULL REFERENCES tags(id),
		PRIMARY KEY (task_id, tag_id)
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
