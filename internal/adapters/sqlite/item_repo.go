// Package sqlite contains the SQLite implementation of the work item
// repository. The relational store is the authoritative source of truth;
// the interchange file in adapters/jsonl is derived from it.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/wrk/internal/core/item"
	"github.com/example/wrk/internal/models"
	"github.com/example/wrk/internal/ports/secondary"
)

// ItemRepository implements secondary.ItemRepository with SQLite.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new SQLite item repository.
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemSelectCols = "id, title, status, priority, type, created, updated, description, blocked_by, labels, closed_reason, log, author, assignee"

// scanItem scans an item row into a WorkItem.
func scanItem(scanner interface {
	Scan(dest ...any) error
}) (*models.WorkItem, error) {
	var (
		created      string
		updated      string
		desc         sql.NullString
		blockedBy    sql.NullString
		labels       sql.NullString
		closedReason sql.NullString
		log          sql.NullString
		author       sql.NullString
		assignee     sql.NullString
	)

	it := &models.WorkItem{}
	err := scanner.Scan(
		&it.ID, &it.Title, &it.Status, &it.Priority, &it.Type,
		&created, &updated, &desc, &blockedBy, &labels,
		&closedReason, &log, &author, &assignee,
	)
	if err != nil {
		return nil, err
	}

	it.Created, err = time.Parse(time.RFC3339, created)
	if err != nil {
		return nil, fmt.Errorf("invalid created timestamp for item %s: %w", it.ID, err)
	}
	it.Updated, err = time.Parse(time.RFC3339, updated)
	if err != nil {
		return nil, fmt.Errorf("invalid updated timestamp for item %s: %w", it.ID, err)
	}

	it.Description = desc.String
	it.ClosedReason = closedReason.String
	it.Author = author.String
	it.Assignee = assignee.String

	if blockedBy.Valid {
		if err := json.Unmarshal([]byte(blockedBy.String), &it.BlockedBy); err != nil {
			return nil, fmt.Errorf("invalid blocked_by for item %s: %w", it.ID, err)
		}
	}
	if labels.Valid {
		if err := json.Unmarshal([]byte(labels.String), &it.Labels); err != nil {
			return nil, fmt.Errorf("invalid labels for item %s: %w", it.ID, err)
		}
	}
	if log.Valid {
		if err := json.Unmarshal([]byte(log.String), &it.Log); err != nil {
			return nil, fmt.Errorf("invalid log for item %s: %w", it.ID, err)
		}
	}

	return it, nil
}

// nullJSON serializes a list field, mapping an empty list to NULL so the
// stored form stays minimal and round-trips the interchange encoding.
func nullJSON[T any](list []T) (sql.NullString, error) {
	if len(list) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(list)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// itemArgs builds the column values for an insert or full-row update.
func itemArgs(it *models.WorkItem) ([]any, error) {
	blockedBy, err := nullJSON(it.BlockedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize blocked_by: %w", err)
	}
	labels, err := nullJSON(it.Labels)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize labels: %w", err)
	}
	log, err := nullJSON(it.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize log: %w", err)
	}

	return []any{
		it.Title, it.Status, it.Priority, it.Type,
		it.Created.UTC().Format(time.RFC3339), it.Updated.UTC().Format(time.RFC3339),
		nullString(it.Description), blockedBy, labels,
		nullString(it.ClosedReason), log, nullString(it.Author), nullString(it.Assignee),
	}, nil
}

const insertItemSQL = "INSERT INTO items (" + itemSelectCols + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"

// Insert persists a new work item.
func (r *ItemRepository) Insert(ctx context.Context, it *models.WorkItem) error {
	args, err := itemArgs(it)
	if err != nil {
		return err
	}

	var exists int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM items WHERE id = ?", it.ID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check item existence: %w", err)
	}
	if exists > 0 {
		return &item.DuplicateIDError{ID: it.ID}
	}

	if _, err := r.db.ExecContext(ctx, insertItemSQL, append([]any{it.ID}, args...)...); err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}

// GetByID retrieves a work item by its ID.
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*models.WorkItem, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+itemSelectCols+" FROM items WHERE id = ?",
		id,
	)

	it, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, &item.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return it, nil
}

// Update rewrites an existing item's row in full.
func (r *ItemRepository) Update(ctx context.Context, it *models.WorkItem) error {
	args, err := itemArgs(it)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE items SET title = ?, status = ?, priority = ?, type = ?,
			created = ?, updated = ?, description = ?, blocked_by = ?, labels = ?,
			closed_reason = ?, log = ?, author = ?, assignee = ? WHERE id = ?`,
		append(args, it.ID)...,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return &item.NotFoundError{ID: it.ID}
	}

	return nil
}

// List retrieves items matching the given filters, ordered by ascending
// priority then ascending numeric ID. Without a status filter, closed items
// are excluded.
func (r *ItemRepository) List(ctx context.Context, filters secondary.ItemFilters) ([]*models.WorkItem, error) {
	query := "SELECT " + itemSelectCols + " FROM items WHERE 1=1"
	args := []any{}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	} else {
		query += " AND status != ?"
		args = append(args, models.StatusClosed)
	}

	if filters.Type != "" {
		query += " AND type = ?"
		args = append(args, filters.Type)
	}

	if filters.Author != "" {
		query += " AND author = ?"
		args = append(args, filters.Author)
	}

	if filters.Assignee != "" {
		query += " AND assignee = ?"
		args = append(args, filters.Assignee)
	}

	query += " ORDER BY priority ASC, CAST(id AS INTEGER) ASC"

	return r.queryItems(ctx, query, args...)
}

// All retrieves every item including closed ones, ordered by numeric ID.
func (r *ItemRepository) All(ctx context.Context) ([]*models.WorkItem, error) {
	return r.queryItems(ctx,
		"SELECT "+itemSelectCols+" FROM items ORDER BY CAST(id AS INTEGER) ASC",
	)
}

func (r *ItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]*models.WorkItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []*models.WorkItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// ReplaceAll clears the table and inserts the given collection inside a
// single transaction, so a failed import never leaves a half-replaced store.
func (r *ItemRepository) ReplaceAll(ctx context.Context, items []*models.WorkItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM items"); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}

	for _, it := range items {
		args, err := itemArgs(it)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insertItemSQL, append([]any{it.ID}, args...)...); err != nil {
			return fmt.Errorf("failed to insert item %s: %w", it.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit replace: %w", err)
	}

	return nil
}

// MaxNumericID returns the highest numeric ID in the store, 0 when empty.
func (r *ItemRepository) MaxNumericID(ctx context.Context) (int, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(id AS INTEGER)), 0) FROM items",
	).Scan(&maxID)
	if err != nil {
		return 0, fmt.Errorf("failed to get max item ID: %w", err)
	}

	return maxID, nil
}

// Ensure ItemRepository implements the interface
var _ secondary.ItemRepository = (*ItemRepository)(nil)
