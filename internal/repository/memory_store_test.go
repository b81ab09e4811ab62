package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventory-manager/internal/models"
	"inventory-manager/internal/service"

	"github.com/google/uuid"
)

func item(sku, name string) models.Item {
	now := time.Now()
	return models.Item{
		ID:        uuid.New(),
		SKU:       sku,
		Name:      name,
		Quantity:  1,
		Price:     1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMemoryStore_CRUD(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := item("CB-100", "Coffee Beans")
	if err := store.Upsert(ctx, first); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	second := item("TEA-021", "Earl Grey")
	if err := store.Upsert(ctx, second); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	all, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(all) != 2 || all[0].ID != first.ID || all[1].ID != second.ID {
		t.Fatalf("LoadAll order/content wrong: %+v", all)
	}

	// update keeps position
	first.Name = "Better Beans"
	if err := store.Upsert(ctx, first); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}
	all, _ = store.LoadAll(ctx)
	if len(all) != 2 || all[0].Name != "Better Beans" {
		t.Fatalf("update misplaced record: %+v", all)
	}

	if err := store.RemoveByID(ctx, first.ID); err != nil {
		t.Fatalf("RemoveByID: %v", err)
	}
	all, _ = store.LoadAll(ctx)
	if len(all) != 1 || all[0].ID != second.ID {
		t.Fatalf("remove left wrong records: %+v", all)
	}
}

func TestMemoryStore_ConflictBackstop(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Upsert(ctx, item("CB-100", "Coffee Beans")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	err := store.Upsert(ctx, item(" cb-100 ", "Sneaky Duplicate"))
	if !errors.Is(err, service.ErrStorageConflict) {
		t.Errorf("err = %v, want ErrStorageConflict", err)
	}
}

func TestMemoryStore_ReplaceAllConflictBackstop(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.ReplaceAll(ctx, []models.Item{
		item("CB-100", "Coffee Beans"),
		item(" cb-100 ", "Sneaky Duplicate"),
	})
	if !errors.Is(err, service.ErrStorageConflict) {
		t.Errorf("err = %v, want ErrStorageConflict", err)
	}

	all, loadErr := store.LoadAll(ctx)
	if loadErr != nil {
		t.Fatalf("LoadAll: %v", loadErr)
	}
	if len(all) != 0 {
		t.Errorf("rejected ReplaceAll still persisted records: %+v", all)
	}
}

func TestMemoryStore_ReplaceAll(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Upsert(ctx, item("OLD-1", "Old Stock")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	next := []models.Item{item("CB-100", "Coffee Beans"), item("TEA-021", "Earl Grey")}
	if err := store.ReplaceAll(ctx, next); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	all, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(all) != 2 || all[0].SKU != "CB-100" || all[1].SKU != "TEA-021" {
		t.Fatalf("ReplaceAll content wrong: %+v", all)
	}
}
