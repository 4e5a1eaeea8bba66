// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// the two persistence backends: the authoritative relational store and the
// derived line-oriented interchange file.
package secondary

import (
	"context"

	"github.com/example/wrk/internal/models"
)

// ItemRepository defines the secondary port for work item persistence.
// This is the authoritative store for every mutating command.
type ItemRepository interface {
	// Insert persists a new work item. Fails with DuplicateIDError if the
	// ID is already present.
	Insert(ctx context.Context, it *models.WorkItem) error

	// GetByID retrieves a work item by its ID. Fails with NotFoundError
	// if absent.
	GetByID(ctx context.Context, id string) (*models.WorkItem, error)

	// Update rewrites an existing item's row. The caller is expected to
	// have refreshed Updated. Fails with NotFoundError if absent.
	Update(ctx context.Context, it *models.WorkItem) error

	// List retrieves items matching the given filters, ordered by
	// ascending priority with ties broken by ascending numeric ID.
	// When no status filter is supplied, closed items are excluded.
	List(ctx context.Context, filters ItemFilters) ([]*models.WorkItem, error)

	// All retrieves every item including closed ones, ordered by
	// ascending numeric ID. This is the export path.
	All(ctx context.Context) ([]*models.WorkItem, error)

	// ReplaceAll atomically clears the table and inserts the given
	// collection as the new authoritative content. Import path only.
	ReplaceAll(ctx context.Context, items []*models.WorkItem) error

	// MaxNumericID returns the highest numeric ID in the store, 0 when
	// empty. Used by the ID allocator.
	MaxNumericID(ctx context.Context) (int, error)
}

// ItemFilters contains conjunctive filter options for querying items.
// Empty fields are not applied. Label matching happens in the service layer
// since labels are stored as a serialized list.
type ItemFilters struct {
	Status   string
	Type     string
	Author   string
	Assignee string
}

// InterchangeStore defines the secondary port for the interchange file.
// The file is a derived view: every write replaces it wholesale.
type InterchangeStore interface {
	// WriteAll atomically replaces the interchange file with the encoded
	// items. An empty collection writes an empty file.
	WriteAll(items []*models.WorkItem) error

	// ReadAll decodes the interchange file. The bool is false when the
	// file is absent or empty ("nothing to import", not an error).
	ReadAll() ([]*models.WorkItem, bool, error)
}
