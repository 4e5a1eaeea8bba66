// Package models contains domain types for wrk entities.
// SQL persistence lives in internal/adapters/sqlite, the line-oriented
// interchange form in internal/adapters/jsonl.
package models

import "time"

// WorkItem represents a tracked work item. The JSON tags define the
// interchange record shape: one object per line in .work/work.jsonl.
// Optional fields are omitted when empty so the interchange encoding
// stays minimal and diff-friendly.
type WorkItem struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Status       string     `json:"status"`
	Priority     int        `json:"priority"`
	Type         string     `json:"type"`
	Created      time.Time  `json:"created"`
	Updated      time.Time  `json:"updated"`
	Description  string     `json:"description,omitempty"`
	BlockedBy    []string   `json:"blocked_by,omitempty"`
	Labels       []string   `json:"labels,omitempty"`
	ClosedReason string     `json:"closed_reason,omitempty"`
	Log          []LogEntry `json:"log,omitempty"`
	Author       string     `json:"author,omitempty"`
	Assignee     string     `json:"assignee,omitempty"`
}

// LogEntry is a single append-only log line on a work item.
// Entries are never edited or removed once appended.
type LogEntry struct {
	Time  time.Time `json:"time"`
	Agent string    `json:"agent,omitempty"`
	Text  string    `json:"text"`
}

// Work item status constants
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusClosed     = "closed"
)

// Work item type constants. TypeMessage is accepted as a free-form
// variant alongside the regular types.
const (
	TypeTask    = "task"
	TypeBug     = "bug"
	TypeFeature = "feature"
	TypeMessage = "message"
)

// Priority bounds. 0 is critical, 4 is backlog.
const (
	MinPriority     = 0
	MaxPriority     = 4
	DefaultPriority = 2
)
