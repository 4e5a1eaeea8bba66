package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/example/wrk/internal/adapters/sqlite"
	"github.com/example/wrk/internal/core/item"
	"github.com/example/wrk/internal/models"
	"github.com/example/wrk/internal/ports/secondary"
)

func TestItemRepository_InsertAndGet(t *testing.T) {
	repo := sqlite.NewItemRepository(setupTestDB(t))
	ctx := context.Background()

	want := testItem("001", "Fix bug", 1)
	want.Type = models.TypeBug
	want.Description = "crash on empty input"
	want.BlockedBy = []string{"002", "003"}
	want.Labels = []string{"urgent"}
	want.Log = []models.LogEntry{
		{Time: time.Date(2026, 1, 2, 10, 5, 0, 0, time.UTC), Agent: "alice", Text: "reproduced"},
	}
	want.Author = "alice"
	want.Assignee = "bob"

	if err := repo.Insert(ctx, want); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := repo.GetByID(ctx, "001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stored item mismatch (-want +got):\n%s", diff)
	}
}

func TestItemRepository_Insert_Duplicate(t *testing.T) {
	repo := sqlite.NewItemRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Insert(ctx, testItem("001", "First", 2)); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	err := repo.Insert(ctx, testItem("001", "Clash", 2))

	var derr *item.DuplicateIDError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DuplicateIDError, got %v", err)
	}
	if derr.ID != "001" {
		t.Errorf("expected ID 001 in error, got %q", derr.ID)
	}
}

func TestItemRepository_GetByID_NotFound(t *testing.T) {
	repo := sqlite.NewItemRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), "999")

	var nerr *item.NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestItemRepository_Update(t *testing.T) {
	repo := sqlite.NewItemRepository(setupTestDB(t))
	ctx := context.Background()

	it := testItem("001", "Original", 2)
	if err := repo.Insert(ctx, it); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	it.Title = "Renamed"
	it.Status = models.StatusClosed
	it.ClosedReason = "done"
	it.Updated = it.Updated.Add(time.Hour)
	if err := repo.Update(ctx, it); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := repo.GetByID(ctx, "001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Renamed" || got.Status != models.StatusClosed || got.ClosedReason != "done" {
		t.Errorf("update not applied: %+v", got)
	}
	if !got.Updated.Equal(it.Updated) {
		t.Errorf("expected updated %v, got %v", it.Updated, got.Updated)
	}
}

func TestItemRepository_Update_NotFound(t *testing.T) {
	repo := sqlite.NewItemRepository(setupTestDB(t))

	err := repo.Update(context.Background(), testItem("404", "Ghost", 2))

	var nerr *item.NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestItemRepository_List_OrderAndDefaultFilter(t *testing.T) {
	repo := sqlite.NewItemRepository(setupTestDB(t))
	ctx := context.Background()

	// Priority ascending, numeric ID breaking ties; closed excluded by default.
	items := []*models.WorkItem{
		testItem("001", "Mid", 2),
		testItem("002", "Critical", 0),
		testItem("010", "Mid too", 2),
		testItem("003", "Done", 1),
	}
	items[3].Status = models.StatusClosed
	for _, it := range items {
		if err := repo.Insert(ctx, it); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	got, err := repo.List(ctx, secondary.ItemFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	var ids []string
	for _, it := range got {
		ids = append(ids, it.ID)
	}
	want := []string{"002", "001", "010"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("list order mismatch (-want +got):\n%s", diff)
	}
}

func TestItemRepository_List_StatusFilterIncludesClosed(t *testing.T) {
	repo := sqlite.NewItemRepository(setupTestDB(t))
	ctx := context.Background()

	open := testItem("001", "Open", 2)
	closed := testItem("002", "Closed", 2)
	closed.Status = models.StatusClosed
	for _, it := range []*models.WorkItem{open, closed} {
		if err := repo.Insert(ctx, it); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	got, err := repo.List(ctx, secondary.ItemFilters{Status: models.StatusClosed})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "002" {
		t.Errorf("expected only closed item 002, got %+v", got)
	}
}

func TestItemRepository_List_ConjunctiveFilters(t *testing.T) {
	repo := sqlite.NewItemRepository(setupTestDB(t))
	ctx := context.Background()

	a := testItem("001", "A", 2)
	a.Type = models.TypeBug
	a.Assignee = "bob"
	b := testItem("002", "B", 2)
	b.Type = models.TypeBug
	c := testItem("003", "C", 2)
	c.Assignee = "bob"
	for _, it := range []*models.WorkItem{a, b, c} {
		if err := repo.Insert(ctx, it); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	got, err := repo.List(ctx, secondary.ItemFilters{Type: models.TypeBug, Assignee: "bob"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "001" {
		t.Errorf("expected only item 001, got %+v", got)
	}
}

func TestItemRepository_All_IDOrderIncludesClosed(t *testing.T) {
	repo := sqlite.NewItemRepository(setupTestDB(t))
	ctx := context.Background()

	closed := testItem("002", "Closed", 0)
	closed.Status = models.StatusClosed
	for _, it := range []*models.WorkItem{testItem("010", "Ten", 0), closed, testItem("001", "One", 4)} {
		if err := repo.Insert(ctx, it); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	got, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}

	var ids []string
	for _, it := range got {
		ids = append(ids, it.ID)
	}
	want := []string{"001", "002", "010"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("All order mismatch (-want +got):\n%s", diff)
	}
}

func TestItemRepository_ReplaceAll(t *testing.T) {
	repo := sqlite.NewItemRepository(setupTestDB(t))
	ctx := context.Background()

	for _, it := range []*models.WorkItem{testItem("001", "Old A", 2), testItem("002", "Old B", 2)} {
		if err := repo.Insert(ctx, it); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	replacement := []*models.WorkItem{testItem("005", "New", 1)}
	if err := repo.ReplaceAll(ctx, replacement); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	got, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "005" {
		t.Errorf("expected only item 005 after replace, got %+v", got)
	}
}

func TestItemRepository_ReplaceAll_Empty(t *testing.T) {
	repo := sqlite.NewItemRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Insert(ctx, testItem("001", "Only", 2)); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := repo.ReplaceAll(ctx, nil); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	got, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty store, got %d items", len(got))
	}
}

func TestItemRepository_MaxNumericID(t *testing.T) {
	repo := sqlite.NewItemRepository(setupTestDB(t))
	ctx := context.Background()

	maxID, err := repo.MaxNumericID(ctx)
	if err != nil {
		t.Fatalf("MaxNumericID failed: %v", err)
	}
	if maxID != 0 {
		t.Errorf("empty store should report 0, got %d", maxID)
	}

	// Inserted out of order; allocation ignores insertion order.
	for _, id := range []string{"010", "002", "007"} {
		if err := repo.Insert(ctx, testItem(id, "Item "+id, 2)); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	maxID, err = repo.MaxNumericID(ctx)
	if err != nil {
		t.Fatalf("MaxNumericID failed: %v", err)
	}
	if maxID != 10 {
		t.Errorf("expected max 10, got %d", maxID)
	}
	if next := item.NextID(maxID); next != "011" {
		t.Errorf("expected next ID 011, got %q", next)
	}
}
