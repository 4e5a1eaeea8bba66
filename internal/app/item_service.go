package app

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/example/wrk/internal/core/item"
	"github.com/example/wrk/internal/ctxutil"
	"github.com/example/wrk/internal/models"
	"github.com/example/wrk/internal/ports/primary"
	"github.com/example/wrk/internal/ports/secondary"
)

// ItemServiceImpl implements the ItemService interface. Every mutation
// commits to the relational store and then immediately re-exports the full
// interchange file, so the file is never more than one command stale.
type ItemServiceImpl struct {
	repo secondary.ItemRepository
	sync *SyncEngine
}

// NewItemService creates a new ItemService with injected dependencies.
func NewItemService(repo secondary.ItemRepository, sync *SyncEngine) *ItemServiceImpl {
	return &ItemServiceImpl{repo: repo, sync: sync}
}

// export re-materializes the interchange file after a committed mutation.
// If it fails the command reports failure even though the store has already
// changed; the next successful mutation or an explicit export heals the file.
func (s *ItemServiceImpl) export(ctx context.Context) error {
	if _, err := s.sync.ExportAll(ctx); err != nil {
		return fmt.Errorf("store updated but export failed: %w", err)
	}
	return nil
}

// mutate applies fn to an existing item. When fn reports a change, the
// updated timestamp is refreshed, the row committed, and the interchange
// file re-exported. A no-op leaves both stores untouched.
func (s *ItemServiceImpl) mutate(ctx context.Context, id string, fn func(*models.WorkItem) (bool, error)) error {
	it, err := s.repo.GetByID(ctx, item.NormalizeID(id))
	if err != nil {
		return err
	}

	changed, err := fn(it)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	it.Updated = item.Now()
	if err := s.repo.Update(ctx, it); err != nil {
		return err
	}

	return s.export(ctx)
}

// AddItem creates a new work item with the next sequential ID. When no
// author is given the actor from context, if any, is recorded instead.
func (s *ItemServiceImpl) AddItem(ctx context.Context, req primary.AddItemRequest) (*models.WorkItem, error) {
	author := req.Author
	if author == "" {
		author = ctxutil.ActorFromContext(ctx)
	}

	it, err := item.NewItem(req.Title, req.Type, req.Priority, author, req.Assignee)
	if err != nil {
		return nil, err
	}
	it.Description = req.Description

	maxID, err := s.repo.MaxNumericID(ctx)
	if err != nil {
		return nil, err
	}
	it.ID = item.NextID(maxID)

	if err := s.repo.Insert(ctx, it); err != nil {
		return nil, err
	}

	if err := s.export(ctx); err != nil {
		return nil, err
	}

	return it, nil
}

// GetItem retrieves a work item by ID.
func (s *ItemServiceImpl) GetItem(ctx context.Context, id string) (*models.WorkItem, error) {
	return s.repo.GetByID(ctx, item.NormalizeID(id))
}

// ListItems lists items with optional conjunctive filters. The label filter
// is applied here because labels are stored as a serialized list.
func (s *ItemServiceImpl) ListItems(ctx context.Context, filters primary.ItemFilters) ([]*models.WorkItem, error) {
	items, err := s.repo.List(ctx, secondary.ItemFilters{
		Status:   filters.Status,
		Type:     filters.Type,
		Author:   filters.Author,
		Assignee: filters.Assignee,
	})
	if err != nil {
		return nil, err
	}

	if filters.Label == "" {
		return items, nil
	}

	var filtered []*models.WorkItem
	for _, it := range items {
		if slices.Contains(it.Labels, filters.Label) {
			filtered = append(filtered, it)
		}
	}
	return filtered, nil
}

// StartItem transitions an item to in_progress.
func (s *ItemServiceImpl) StartItem(ctx context.Context, id string) error {
	return s.mutate(ctx, id, func(it *models.WorkItem) (bool, error) {
		it.Status = models.StatusInProgress
		return true, nil
	})
}

// CloseItem transitions an item to closed with an optional reason.
func (s *ItemServiceImpl) CloseItem(ctx context.Context, id, reason string) error {
	return s.mutate(ctx, id, func(it *models.WorkItem) (bool, error) {
		it.Status = models.StatusClosed
		it.ClosedReason = reason
		return true, nil
	})
}

// ReopenItem transitions a closed item back to open. The closed reason is
// cleared; the log is untouched.
func (s *ItemServiceImpl) ReopenItem(ctx context.Context, id string) error {
	return s.mutate(ctx, id, func(it *models.WorkItem) (bool, error) {
		it.Status = models.StatusOpen
		it.ClosedReason = ""
		return true, nil
	})
}

// EditItem sets a single editable field to a new value.
func (s *ItemServiceImpl) EditItem(ctx context.Context, id, field, value string) error {
	return s.mutate(ctx, id, func(it *models.WorkItem) (bool, error) {
		switch field {
		case "title":
			if strings.TrimSpace(value) == "" {
				return false, &item.ValidationError{Msg: "title cannot be empty"}
			}
			it.Title = value
		case "priority":
			p, err := item.ParsePriority(value)
			if err != nil {
				return false, err
			}
			it.Priority = p
		case "type":
			if !item.IsValidType(value) {
				return false, item.Validationf("invalid type %q (task, bug, feature)", value)
			}
			it.Type = value
		case "description":
			it.Description = value
		case "author":
			it.Author = value
		case "assignee":
			it.Assignee = value
		default:
			return false, &item.UnknownFieldError{Field: field}
		}
		return true, nil
	})
}

// AppendLog appends an immutable log entry to an item. When no agent is
// given the actor from context, if any, signs the entry.
func (s *ItemServiceImpl) AppendLog(ctx context.Context, id, agent, text string) error {
	if strings.TrimSpace(text) == "" {
		return &item.ValidationError{Msg: "log message cannot be empty"}
	}
	if agent == "" {
		agent = ctxutil.ActorFromContext(ctx)
	}

	return s.mutate(ctx, id, func(it *models.WorkItem) (bool, error) {
		it.Log = append(it.Log, models.LogEntry{
			Time:  item.Now(),
			Agent: agent,
			Text:  text,
		})
		return true, nil
	})
}

// Block adds blockerID to id's blocked_by set. Both IDs must exist;
// self-blocking is rejected. A duplicate edge is a reported no-op.
func (s *ItemServiceImpl) Block(ctx context.Context, id, blockerID string) (bool, error) {
	id = item.NormalizeID(id)
	blockerID = item.NormalizeID(blockerID)

	if id == blockerID {
		return false, item.Validationf("item %s cannot block itself", id)
	}

	if _, err := s.repo.GetByID(ctx, blockerID); err != nil {
		return false, err
	}

	added := false
	err := s.mutate(ctx, id, func(it *models.WorkItem) (bool, error) {
		if slices.Contains(it.BlockedBy, blockerID) {
			return false, nil
		}
		it.BlockedBy = append(it.BlockedBy, blockerID)
		added = true
		return true, nil
	})
	return added, err
}

// Unblock removes blockerID from id's blocked_by set. An absent edge is a
// reported no-op; an emptied set is cleared to absent to keep the
// interchange encoding minimal.
func (s *ItemServiceImpl) Unblock(ctx context.Context, id, blockerID string) (bool, error) {
	blockerID = item.NormalizeID(blockerID)

	removed := false
	err := s.mutate(ctx, id, func(it *models.WorkItem) (bool, error) {
		idx := slices.Index(it.BlockedBy, blockerID)
		if idx < 0 {
			return false, nil
		}
		it.BlockedBy = slices.Delete(it.BlockedBy, idx, idx+1)
		if len(it.BlockedBy) == 0 {
			it.BlockedBy = nil
		}
		removed = true
		return true, nil
	})
	return removed, err
}

// ReadyItems lists non-closed items with no open blockers, in store order.
// Items mutually blocking one another never appear; that is accepted
// behavior, not an error.
func (s *ItemServiceImpl) ReadyItems(ctx context.Context) ([]*models.WorkItem, error) {
	closed, err := s.closedSet(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx, secondary.ItemFilters{})
	if err != nil {
		return nil, err
	}

	var ready []*models.WorkItem
	for _, it := range items {
		if item.IsReady(it, closed) {
			ready = append(ready, it)
		}
	}
	return ready, nil
}

// BlockedItems lists non-closed items with at least one open blocker, each
// paired with the blockers still open.
func (s *ItemServiceImpl) BlockedItems(ctx context.Context) ([]primary.BlockedItem, error) {
	closed, err := s.closedSet(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx, secondary.ItemFilters{})
	if err != nil {
		return nil, err
	}

	var blocked []primary.BlockedItem
	for _, it := range items {
		open := item.OpenBlockers(it, closed)
		if len(open) > 0 {
			blocked = append(blocked, primary.BlockedItem{Item: it, OpenBlockers: open})
		}
	}
	return blocked, nil
}

func (s *ItemServiceImpl) closedSet(ctx context.Context) (map[string]bool, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return item.ClosedSet(all), nil
}

// AddLabel adds a label to an item. Duplicate labels are rejected.
func (s *ItemServiceImpl) AddLabel(ctx context.Context, id, label string) error {
	if strings.TrimSpace(label) == "" {
		return &item.ValidationError{Msg: "label cannot be empty"}
	}

	return s.mutate(ctx, id, func(it *models.WorkItem) (bool, error) {
		if slices.Contains(it.Labels, label) {
			return false, item.Validationf("item %s already has label %q", it.ID, label)
		}
		it.Labels = append(it.Labels, label)
		return true, nil
	})
}

// RemoveLabel removes a label from an item. An absent label is a reported
// no-op.
func (s *ItemServiceImpl) RemoveLabel(ctx context.Context, id, label string) (bool, error) {
	removed := false
	err := s.mutate(ctx, id, func(it *models.WorkItem) (bool, error) {
		idx := slices.Index(it.Labels, label)
		if idx < 0 {
			return false, nil
		}
		it.Labels = slices.Delete(it.Labels, idx, idx+1)
		if len(it.Labels) == 0 {
			it.Labels = nil
		}
		removed = true
		return true, nil
	})
	return removed, err
}

// Labels returns the distinct labels across all items, sorted.
func (s *ItemServiceImpl) Labels(ctx context.Context) ([]string, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var labels []string
	for _, it := range all {
		for _, l := range it.Labels {
			if !seen[l] {
				seen[l] = true
				labels = append(labels, l)
			}
		}
	}
	sort.Strings(labels)
	return labels, nil
}

// Claim sets an item's assignee.
func (s *ItemServiceImpl) Claim(ctx context.Context, id, assignee string) error {
	if strings.TrimSpace(assignee) == "" {
		return &item.ValidationError{Msg: "assignee cannot be empty"}
	}

	return s.mutate(ctx, id, func(it *models.WorkItem) (bool, error) {
		it.Assignee = assignee
		return true, nil
	})
}

// Unclaim clears an item's assignee.
func (s *ItemServiceImpl) Unclaim(ctx context.Context, id string) error {
	return s.mutate(ctx, id, func(it *models.WorkItem) (bool, error) {
		it.Assignee = ""
		return true, nil
	})
}

// Export rewrites the interchange file from the store.
func (s *ItemServiceImpl) Export(ctx context.Context) (int, error) {
	return s.sync.ExportAll(ctx)
}

// Import replaces the store contents from the interchange file.
func (s *ItemServiceImpl) Import(ctx context.Context) (int, bool, error) {
	return s.sync.ImportAll(ctx)
}

// Ensure ItemServiceImpl implements the interface
var _ primary.ItemService = (*ItemServiceImpl)(nil)
