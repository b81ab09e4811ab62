package service

import (
	"context"
	"strings"

	"inventory-manager/internal/models"

	"github.com/google/uuid"
)

// NormalizedDraft is the coerced form of a models.Draft after validation.
type NormalizedDraft struct {
	Name     string
	SKU      string
	Quantity int64
	Price    float64
}

// NormalizeSKU canonicalizes a SKU for comparison: trimmed, uppercase.
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

type InventoryService interface {
	// Initialize loads the collection from storage and rebuilds the SKU
	// index. Call it before anything else observes non-empty state.
	Initialize(ctx context.Context) error

	// reads, allowed in both locked and unlocked states
	Items(ctx context.Context) []models.Item
	LookupBySKU(ctx context.Context, sku string) (*models.Item, error)
	ValidateDraft(draft models.Draft, excludeID uuid.UUID) (NormalizedDraft, error)

	// mutations, permission-gated
	AddItem(ctx context.Context, draft models.Draft) (*models.Item, error)
	UpdateItem(ctx context.Context, id uuid.UUID, draft models.Draft) (*models.Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ResetToSeed(ctx context.Context, seed []models.Item) error
}
