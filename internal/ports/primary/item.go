// Package primary defines the primary ports (driving interfaces) for the
// application. The CLI layer talks to the core exclusively through these.
package primary

import (
	"context"

	"github.com/example/wrk/internal/models"
)

// ItemService defines the primary port for work item operations.
// Every mutating method commits to the relational store and then re-exports
// the full interchange file before returning.
type ItemService interface {
	// AddItem creates a new work item with the next sequential ID.
	AddItem(ctx context.Context, req AddItemRequest) (*models.WorkItem, error)

	// GetItem retrieves a work item by ID.
	GetItem(ctx context.Context, id string) (*models.WorkItem, error)

	// ListItems lists items with optional conjunctive filters.
	ListItems(ctx context.Context, filters ItemFilters) ([]*models.WorkItem, error)

	// StartItem transitions an item to in_progress.
	StartItem(ctx context.Context, id string) error

	// CloseItem transitions an item to closed with an optional reason.
	CloseItem(ctx context.Context, id, reason string) error

	// ReopenItem transitions a closed item back to open and clears the
	// closed reason.
	ReopenItem(ctx context.Context, id string) error

	// EditItem sets a single editable field (title, priority, type,
	// description, author, assignee) to a new value.
	EditItem(ctx context.Context, id, field, value string) error

	// AppendLog appends an immutable log entry to an item.
	AppendLog(ctx context.Context, id, agent, text string) error

	// Block adds blockerID to id's blocked_by set. Returns true when the
	// edge was added, false when it was already present (no-op).
	Block(ctx context.Context, id, blockerID string) (bool, error)

	// Unblock removes blockerID from id's blocked_by set. Returns true
	// when the edge was removed, false when it was absent (no-op).
	Unblock(ctx context.Context, id, blockerID string) (bool, error)

	// ReadyItems lists non-closed items with no open blockers.
	ReadyItems(ctx context.Context) ([]*models.WorkItem, error)

	// BlockedItems lists non-closed items with at least one open blocker,
	// each paired with the blockers still open.
	BlockedItems(ctx context.Context) ([]BlockedItem, error)

	// AddLabel adds a label to an item. Duplicate labels are rejected.
	AddLabel(ctx context.Context, id, label string) error

	// RemoveLabel removes a label. Returns true when removed, false when
	// the label was absent (no-op).
	RemoveLabel(ctx context.Context, id, label string) (bool, error)

	// Labels returns the distinct labels across all items, sorted.
	Labels(ctx context.Context) ([]string, error)

	// Claim sets an item's assignee.
	Claim(ctx context.Context, id, assignee string) error

	// Unclaim clears an item's assignee.
	Unclaim(ctx context.Context, id string) error

	// Export rewrites the interchange file from the store.
	Export(ctx context.Context) (int, error)

	// Import replaces the store contents from the interchange file.
	// The bool is false when there was nothing to import.
	Import(ctx context.Context) (int, bool, error)
}

// AddItemRequest contains parameters for creating a work item.
type AddItemRequest struct {
	Title       string
	Type        string // optional, defaults to task
	Priority    int    // 0-4, 0=critical, 4=backlog
	Description string // optional
	Author      string // optional
	Assignee    string // optional
}

// ItemFilters contains conjunctive filter options for listing items.
type ItemFilters struct {
	Status   string
	Type     string
	Author   string
	Assignee string
	Label    string
}

// BlockedItem pairs a blocked item with the subset of its blockers that are
// still open.
type BlockedItem struct {
	Item         *models.WorkItem
	OpenBlockers []string
}
