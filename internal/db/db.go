package db

import (
	"fmt"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

// Connect opens the connection pool for the SQLite database at dbPath and
// applies the pragmas every connection relies on. WAL mode lets the
// engine serialize concurrent writers without application-level locking.
func Connect(dbPath string) (*sqlx.DB, error) {
	pool, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if _, err := pool.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}
	if _, err := pool.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return pool, nil
}

// InitializeSchema creates the users, posts and history tables if they
// don't exist yet. Safe to run on every startup.
func InitializeSchema(pool *sqlx.DB) error {
	userSchema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	);`

	postSchema := `
	CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_date TEXT,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		authorid INTEGER,
		FOREIGN KEY (authorid) REFERENCES users(id)
	);`

	historySchema := `
	CREATE TABLE IF NOT EXISTS history (
		visiteddate TEXT,
		places TEXT,
		parkingspot INTEGER,
		spotleft INTEGER,
		rating INTEGER,
		customerid INTEGER,
		FOREIGN KEY (customerid) REFERENCES users(id)
	);`

	for _, schema := range []string{userSchema, postSchema, historySchema} {
		if _, err := pool.Exec(schema); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}
