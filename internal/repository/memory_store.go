package repository

import (
	"context"
	"fmt"
	"sync"

	"inventory-manager/internal/models"
	"inventory-manager/internal/service"

	"github.com/google/uuid"
)

// MemoryStore keeps the collection in process memory. It is the default
// backend for tests and for running without any durable store configured.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]models.Item
	order []uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: map[uuid.UUID]models.Item{},
	}
}

func (s *MemoryStore) LoadAll(ctx context.Context) ([]models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out, nil
}

func (s *MemoryStore) Upsert(ctx context.Context, item models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sku := service.NormalizeSKU(item.SKU)
	for id, existing := range s.items {
		if id != item.ID && service.NormalizeSKU(existing.SKU) == sku {
			return fmt.Errorf("%w: %s", service.ErrStorageConflict, item.SKU)
		}
	}

	if _, ok := s.items[item.ID]; !ok {
		s.order = append(s.order, item.ID)
	}
	s.items[item.ID] = item
	return nil
}

func (s *MemoryStore) RemoveByID(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) ReplaceAll(ctx context.Context, items []models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[uuid.UUID]models.Item, len(items))
	order := make([]uuid.UUID, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		sku := service.NormalizeSKU(it.SKU)
		if _, ok := seen[sku]; ok {
			return fmt.Errorf("%w: %s", service.ErrStorageConflict, it.SKU)
		}
		seen[sku] = struct{}{}
		next[it.ID] = it
		order = append(order, it.ID)
	}
	s.items = next
	s.order = order
	return nil
}
