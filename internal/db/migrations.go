package db

import (
	"database/sql"
	"fmt"
)

// schema statements run in order on every startup; all are idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS transactions (
		id            TEXT PRIMARY KEY,
		amount        REAL NOT NULL,
		type          TEXT NOT NULL,
		category_id   INTEGER,
		category_name TEXT NOT NULL DEFAULT '',
		date          TEXT NOT NULL,
		time          TEXT NOT NULL DEFAULT '',
		note          TEXT NOT NULL DEFAULT '',
		source        TEXT NOT NULL DEFAULT 'manual'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)`,
	`CREATE TABLE IF NOT EXISTS todos (
		id       TEXT PRIMARY KEY,
		title    TEXT NOT NULL,
		priority TEXT NOT NULL DEFAULT 'NONE',
		due_date TEXT,
		due_time TEXT,
		quadrant TEXT,
		done     INTEGER NOT NULL DEFAULT 0,
		source   TEXT NOT NULL DEFAULT 'manual'
	)`,
	`CREATE TABLE IF NOT EXISTS diary_entries (
		id      TEXT PRIMARY KEY,
		date    TEXT NOT NULL,
		content TEXT NOT NULL,
		mood    INTEGER NOT NULL DEFAULT 3
	)`,
	`CREATE TABLE IF NOT EXISTS habits (
		id     TEXT PRIMARY KEY,
		name   TEXT NOT NULL,
		active INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS habit_records (
		id        TEXT PRIMARY KEY,
		habit_id  TEXT NOT NULL REFERENCES habits(id),
		date      TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 1,
		value     REAL,
		UNIQUE(habit_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS goals (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		type         TEXT NOT NULL,
		category     TEXT NOT NULL,
		start_date   TEXT NOT NULL,
		end_date     TEXT,
		target_value REAL,
		target_unit  TEXT NOT NULL DEFAULT '',
		progress     REAL NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS savings_records (
		id     TEXT PRIMARY KEY,
		amount REAL NOT NULL,
		date   TEXT NOT NULL,
		note   TEXT NOT NULL DEFAULT ''
	)`,
}

// Migrate applies the embedded schema.
func Migrate(conn *sql.DB) error {
	for i, stmt := range schema {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
