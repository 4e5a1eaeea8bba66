// Package sqlite_test contains integration tests for the SQLite repository.
//
// Tests load the schema through db.GetSchemaSQL() so repository code that
// references a column missing from the authoritative schema fails
// immediately with "no such column" instead of drifting.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/wrk/internal/db"
	"github.com/example/wrk/internal/models"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// testItem builds a minimal valid work item for repository tests.
func testItem(id, title string, priority int) *models.WorkItem {
	now := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	return &models.WorkItem{
		ID:       id,
		Title:    title,
		Status:   models.StatusOpen,
		Priority: priority,
		Type:     models.TypeTask,
		Created:  now,
		Updated:  now,
	}
}
