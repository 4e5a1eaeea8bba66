package app

import (
	"context"
	"fmt"

	"github.com/example/wrk/internal/ports/secondary"
)

// SyncEngine keeps the interchange file materialized from the relational
// store. Export is never incremental: every call rewrites the complete file
// so the interchange snapshot is always a full, independently valid view.
// Import is the sole sanctioned path for pulling external interchange edits
// (for example a version-control merge) back into the store.
type SyncEngine struct {
	repo        secondary.ItemRepository
	interchange secondary.InterchangeStore
}

// NewSyncEngine creates a sync engine bridging the two stores.
func NewSyncEngine(repo secondary.ItemRepository, interchange secondary.InterchangeStore) *SyncEngine {
	return &SyncEngine{repo: repo, interchange: interchange}
}

// ExportAll rewrites the interchange file from the store's full contents,
// ordered by ascending numeric ID. Returns the number of items exported.
func (e *SyncEngine) ExportAll(ctx context.Context) (int, error) {
	items, err := e.repo.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read store for export: %w", err)
	}

	if err := e.interchange.WriteAll(items); err != nil {
		return 0, err
	}

	return len(items), nil
}

// ImportAll replaces the store contents wholesale from the interchange file.
// An absent or empty file yields an empty store, reported via the bool as
// nothing to import rather than an error.
func (e *SyncEngine) ImportAll(ctx context.Context) (int, bool, error) {
	items, ok, err := e.interchange.ReadAll()
	if err != nil {
		return 0, false, err
	}

	if err := e.repo.ReplaceAll(ctx, items); err != nil {
		return 0, false, fmt.Errorf("failed to replace store contents: %w", err)
	}

	return len(items), ok, nil
}
