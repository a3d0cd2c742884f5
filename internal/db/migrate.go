package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Statements are idempotent so re-running on an
// existing database is safe.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		code            TEXT PRIMARY KEY,
		name            TEXT NOT NULL DEFAULT '',
		exam_date       TEXT,
		estimated_hours REAL,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS materials (
		id          TEXT PRIMARY KEY,
		course_code TEXT NOT NULL REFERENCES courses(code) ON DELETE CASCADE,
		path        TEXT NOT NULL,
		position    INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_materials_course ON materials(course_code)`,

	`CREATE TABLE IF NOT EXISTS preferences (
		id              TEXT PRIMARY KEY,
		daily_max_hours REAL NOT NULL,
		days_off        TEXT NOT NULL DEFAULT '',
		start_date      TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS plan_days (
		date        TEXT PRIMARY KEY,
		total_hours REAL NOT NULL,
		position    INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plan_tasks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		day_date    TEXT NOT NULL REFERENCES plan_days(date) ON DELETE CASCADE,
		course_code TEXT NOT NULL,
		hours       REAL NOT NULL,
		position    INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plan_tasks_day ON plan_tasks(day_date)`,
}
