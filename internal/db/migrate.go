package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE duplicates from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS materials (
		id               TEXT PRIMARY KEY,
		type             TEXT NOT NULL
		                 CHECK(type IN ('book','video','custom')),
		title            TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		color            TEXT NOT NULL DEFAULT '',
		start_date       TEXT NOT NULL,
		end_date         TEXT NOT NULL,
		total_pages      INTEGER NOT NULL DEFAULT 0,
		current_page     INTEGER NOT NULL DEFAULT 0,
		pages_per_day    INTEGER NOT NULL DEFAULT 0,
		total_duration   INTEGER NOT NULL DEFAULT 0,
		current_progress INTEGER NOT NULL DEFAULT 0,
		sections_per_day INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sections (
		id          TEXT PRIMARY KEY,
		material_id TEXT NOT NULL REFERENCES materials(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		duration    INTEGER NOT NULL DEFAULT 0,
		completed   INTEGER NOT NULL DEFAULT 0,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sections_material ON sections(material_id)`,

	`CREATE TABLE IF NOT EXISTS completions (
		material_id TEXT NOT NULL,
		date        TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		PRIMARY KEY (material_id, date)
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id       INTEGER PRIMARY KEY CHECK(id = 1),
		enabled  INTEGER NOT NULL DEFAULT 0,
		time     TEXT NOT NULL DEFAULT '09:00',
		weekdays TEXT NOT NULL DEFAULT ''
	)`,
}
