package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema. The ventures
// list is a JSON document column on the user row; file metadata rows reference
// a venture's idSpace by convention only.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		email TEXT UNIQUE,
		password_hash TEXT,
		ventures_json TEXT NOT NULL DEFAULT '[]',
		last_update TEXT,
		webhook_url TEXT,
		webhook_api_key TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS venture_files (
		filename TEXT NOT NULL PRIMARY KEY,
		url TEXT NOT NULL,
		id_space TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_venture_files_id_space ON venture_files(id_space);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
