package service

import (
	"context"

	"inventory-manager/internal/models"

	"github.com/google/uuid"
)

// Storage is the durable-persistence collaborator. It owns the bytes, never
// the in-memory shape. Implementations enforce normalized-SKU uniqueness as
// a backstop and surface violations as ErrStorageConflict; any other failure
// wraps ErrStorageUnavailable.
type Storage interface {
	LoadAll(ctx context.Context) ([]models.Item, error)
	Upsert(ctx context.Context, item models.Item) error
	RemoveByID(ctx context.Context, id uuid.UUID) error
	// ReplaceAll has clear-then-insert semantics, all-or-nothing.
	ReplaceAll(ctx context.Context, items []models.Item) error
}

// WriteGate is the permission collaborator consulted before every mutation.
type WriteGate interface {
	CanWrite() bool
}
