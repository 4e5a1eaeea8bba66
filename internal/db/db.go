// Package db opens the embedded relational store and owns its schema.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the SQLite store at path and ensures the schema exists.
// The tool runs one command per process, so there is no pooling or shared
// connection state: the caller opens at command start and closes on exit.
func Open(path string) (*sql.DB, error) {
	database, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := InitSchema(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

// InitSchema creates the schema if it does not exist.
func InitSchema(database *sql.DB) error {
	if _, err := database.Exec(GetSchemaSQL()); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
