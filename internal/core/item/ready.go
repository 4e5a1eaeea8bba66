package item

import "github.com/example/wrk/internal/models"

// IsReady reports whether an item has no open blockers. closed is the set of
// IDs currently in closed status. A blocker ID that does not exist in the
// store is never in the closed set, so a dangling blocker holds the item
// blocked until it is removed.
func IsReady(it *models.WorkItem, closed map[string]bool) bool {
	for _, blocker := range it.BlockedBy {
		if !closed[blocker] {
			return false
		}
	}
	return true
}

// OpenBlockers returns the subset of an item's blockers that are not closed,
// in blocked_by order. Empty result means the item is ready.
func OpenBlockers(it *models.WorkItem, closed map[string]bool) []string {
	var open []string
	for _, blocker := range it.BlockedBy {
		if !closed[blocker] {
			open = append(open, blocker)
		}
	}
	return open
}

// ClosedSet builds the closed-ID set from the full item collection.
func ClosedSet(items []*models.WorkItem) map[string]bool {
	closed := make(map[string]bool)
	for _, it := range items {
		if it.Status == models.StatusClosed {
			closed[it.ID] = true
		}
	}
	return closed
}
