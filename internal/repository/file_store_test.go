package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"inventory-manager/internal/models"
	"inventory-manager/internal/service"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "items.json"))
}

func TestFileStore_EmptyFileIsEmptyCollection(t *testing.T) {
	store := newFileStore(t)

	all, err := store.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("fresh store not empty: %+v", all)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	store := NewFileStore(path)
	ctx := context.Background()

	first := item("CB-100", "Coffee Beans")
	if err := store.Upsert(ctx, first); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := store.Upsert(ctx, item("TEA-021", "Earl Grey")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := store.RemoveByID(ctx, first.ID); err != nil {
		t.Fatalf("RemoveByID: %v", err)
	}

	// a second store over the same file sees the persisted state
	reopened := NewFileStore(path)
	all, err := reopened.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(all) != 1 || all[0].SKU != "TEA-021" {
		t.Fatalf("reloaded content wrong: %+v", all)
	}
}

func TestFileStore_ReplaceAllConflictBackstop(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	if err := store.Upsert(ctx, item("OLD-1", "Old Stock")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	err := store.ReplaceAll(ctx, []models.Item{
		item("CB-100", "Coffee Beans"),
		item("cb-100", "Sneaky Duplicate"),
	})
	if !errors.Is(err, service.ErrStorageConflict) {
		t.Errorf("err = %v, want ErrStorageConflict", err)
	}

	all, loadErr := store.LoadAll(ctx)
	if loadErr != nil {
		t.Fatalf("LoadAll: %v", loadErr)
	}
	if len(all) != 1 || all[0].SKU != "OLD-1" {
		t.Errorf("rejected ReplaceAll altered the document: %+v", all)
	}
}

func TestFileStore_ConflictBackstop(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	if err := store.Upsert(ctx, item("CB-100", "Coffee Beans")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	err := store.Upsert(ctx, item("cb-100", "Sneaky Duplicate"))
	if !errors.Is(err, service.ErrStorageConflict) {
		t.Errorf("err = %v, want ErrStorageConflict", err)
	}
}
