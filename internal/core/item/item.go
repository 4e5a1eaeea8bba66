// Package item contains the pure business logic for work-item operations:
// field validation, ID allocation, and the readiness computation.
// Functions here have no side effects; persistence lives in the adapters.
package item

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/example/wrk/internal/models"
)

// validTypes are the accepted work item types. "message" is tolerated as a
// free-form variant.
var validTypes = []string{models.TypeTask, models.TypeBug, models.TypeFeature, models.TypeMessage}

var validStatuses = []string{models.StatusOpen, models.StatusInProgress, models.StatusClosed}

// idWidth is the minimum zero-padded width of allocated IDs. IDs past 999
// simply grow wider.
const idWidth = 3

// IsValidType checks if the type is accepted.
func IsValidType(itemType string) bool {
	return slices.Contains(validTypes, itemType)
}

// IsValidStatus checks if the status is one of open, in_progress, closed.
func IsValidStatus(status string) bool {
	return slices.Contains(validStatuses, status)
}

// IsValidPriority checks if priority is in the accepted 0..4 range.
func IsValidPriority(p int) bool {
	return p >= models.MinPriority && p <= models.MaxPriority
}

// NewItem builds a work item with defaults applied. The ID is assigned by
// the caller from the allocator. Title is required; type defaults to task
// and priority to 2 when zero-valued by the caller.
func NewItem(title, itemType string, priority int, author, assignee string) (*models.WorkItem, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &ValidationError{Msg: "title cannot be empty"}
	}

	if itemType == "" {
		itemType = models.TypeTask
	}
	if !IsValidType(itemType) {
		return nil, Validationf("invalid type %q (task, bug, feature)", itemType)
	}

	if !IsValidPriority(priority) {
		return nil, Validationf("invalid priority %d (0-4, 0=critical, 4=backlog)", priority)
	}

	now := Now()
	return &models.WorkItem{
		Title:    title,
		Status:   models.StatusOpen,
		Priority: priority,
		Type:     itemType,
		Created:  now,
		Updated:  now,
		Author:   author,
		Assignee: assignee,
	}, nil
}

// Now returns the current time in UTC at second precision. Second precision
// keeps the relational and interchange representations byte-for-byte
// reconcilable across round trips.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// NextID returns the allocator result for a store whose highest numeric ID
// is maxID: max+1, zero-padded to width 3. An empty store (maxID 0)
// allocates "001". IDs are never reused.
func NextID(maxID int) string {
	return fmt.Sprintf("%0*d", idWidth, maxID+1)
}

// NormalizeID left-zero-pads a numeric ID argument to width 3 so callers may
// type "1" or "001" interchangeably. Non-numeric input is returned unchanged.
func NormalizeID(id string) string {
	n, err := strconv.Atoi(id)
	if err != nil || n < 0 {
		return id
	}
	return fmt.Sprintf("%0*d", idWidth, n)
}

// ParsePriority parses and validates a priority argument.
func ParsePriority(value string) (int, error) {
	p, err := strconv.Atoi(value)
	if err != nil {
		return 0, Validationf("invalid priority %q (must be an integer 0-4)", value)
	}
	if !IsValidPriority(p) {
		return 0, Validationf("invalid priority %d (0-4, 0=critical, 4=backlog)", p)
	}
	return p, nil
}
