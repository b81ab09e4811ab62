package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"inventory-manager/internal/models"

	"github.com/google/uuid"
)

// inventoryService owns the live collection and a normalized-SKU -> id
// index. The index is maintained incrementally on single-record mutations
// and rebuilt from scratch on bulk loads. In-memory state changes only
// after storage acknowledges, so a failure leaves both structures exactly
// as they were.
type inventoryService struct {
	storage Storage
	gate    WriteGate
	now     func() time.Time

	mu    sync.RWMutex
	items []models.Item
	bySKU map[string]uuid.UUID
}

func NewInventoryService(storage Storage, gate WriteGate) *inventoryService {
	return &inventoryService{
		storage: storage,
		gate:    gate,
		now:     time.Now,
		bySKU:   map[string]uuid.UUID{},
	}
}

func (s *inventoryService) Initialize(ctx context.Context) error {
	items, err := s.storage.LoadAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.rebuildIndex()
	return nil
}

// rebuildIndex rederives the SKU index from the collection. Callers hold
// the write lock.
func (s *inventoryService) rebuildIndex() {
	s.bySKU = make(map[string]uuid.UUID, len(s.items))
	for _, it := range s.items {
		s.bySKU[NormalizeSKU(it.SKU)] = it.ID
	}
}

func (s *inventoryService) Items(ctx context.Context) []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *inventoryService) LookupBySKU(ctx context.Context, sku string) (*models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.bySKU[NormalizeSKU(sku)]
	if !ok {
		return nil, ErrItemNotFound
	}
	pos := s.position(id)
	if pos < 0 {
		return nil, ErrItemNotFound
	}
	it := s.items[pos]
	return &it, nil
}

func (s *inventoryService) ValidateDraft(draft models.Draft, excludeID uuid.UUID) (NormalizedDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.validateLocked(draft, excludeID)
}

// validateLocked is pure with respect to state: it reads the index and
// never mutates. Callers hold at least the read lock.
func (s *inventoryService) validateLocked(draft models.Draft, excludeID uuid.UUID) (NormalizedDraft, error) {
	var out NormalizedDraft

	out.Name = strings.TrimSpace(draft.Name)
	if out.Name == "" {
		return NormalizedDraft{}, invalid("name", "name required")
	}

	out.SKU = NormalizeSKU(draft.SKU)
	if out.SKU == "" {
		return NormalizedDraft{}, invalid("sku", "sku required")
	}

	qty, err := strconv.ParseInt(strings.TrimSpace(draft.Quantity), 10, 64)
	if err != nil || qty < 0 {
		return NormalizedDraft{}, invalid("quantity", "quantity invalid")
	}
	out.Quantity = qty

	price, err := strconv.ParseFloat(strings.TrimSpace(draft.Price), 64)
	if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return NormalizedDraft{}, invalid("price", "price invalid")
	}
	out.Price = price

	if id, ok := s.bySKU[out.SKU]; ok && id != excludeID {
		return NormalizedDraft{}, invalid("sku", "sku not unique")
	}

	return out, nil
}

func (s *inventoryService) AddItem(ctx context.Context, draft models.Draft) (*models.Item, error) {
	if !s.gate.CanWrite() {
		return nil, ErrPermissionDenied
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	nd, err := s.validateLocked(draft, uuid.Nil)
	if err != nil {
		return nil, err
	}

	now := s.now()
	item := models.Item{
		ID:        uuid.New(),
		SKU:       nd.SKU,
		Name:      nd.Name,
		Quantity:  nd.Quantity,
		Price:     nd.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.Upsert(ctx, item); err != nil {
		return nil, err
	}

	s.items = append(s.items, item)
	s.bySKU[item.SKU] = item.ID

	return &item, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id uuid.UUID, draft models.Draft) (*models.Item, error) {
	if !s.gate.CanWrite() {
		return nil, ErrPermissionDenied
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	nd, err := s.validateLocked(draft, id)
	if err != nil {
		return nil, err
	}

	pos := s.position(id)
	if pos < 0 {
		return nil, ErrItemNotFound
	}

	prev := s.items[pos]
	merged := prev
	merged.SKU = nd.SKU
	merged.Name = nd.Name
	merged.Quantity = nd.Quantity
	merged.Price = nd.Price
	merged.UpdatedAt = s.now()

	if err := s.storage.Upsert(ctx, merged); err != nil {
		return nil, err
	}

	s.items[pos] = merged

	// On a SKU rename the old key must go before the new one lands; the
	// index never holds two keys for one id.
	oldSKU := NormalizeSKU(prev.SKU)
	if oldSKU != merged.SKU {
		delete(s.bySKU, oldSKU)
	}
	s.bySKU[merged.SKU] = merged.ID

	return &merged, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if !s.gate.CanWrite() {
		return ErrPermissionDenied
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pos := s.position(id)
	if pos < 0 {
		return ErrItemNotFound
	}

	if err := s.storage.RemoveByID(ctx, id); err != nil {
		return err
	}

	delete(s.bySKU, NormalizeSKU(s.items[pos].SKU))
	s.items = append(s.items[:pos], s.items[pos+1:]...)

	return nil
}

func (s *inventoryService) ResetToSeed(ctx context.Context, seed []models.Item) error {
	if !s.gate.CanWrite() {
		return ErrPermissionDenied
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	records := make([]models.Item, len(seed))
	for i, it := range seed {
		if it.ID == uuid.Nil {
			it.ID = uuid.New()
		}
		it.SKU = NormalizeSKU(it.SKU)
		if it.CreatedAt.IsZero() {
			it.CreatedAt = now
		}
		if it.UpdatedAt.IsZero() {
			it.UpdatedAt = now
		}
		records[i] = it
	}

	if err := s.storage.ReplaceAll(ctx, records); err != nil {
		return err
	}

	s.items = records
	s.rebuildIndex()
	return nil
}

// position returns the collection offset of id, or -1. Callers hold a lock.
func (s *inventoryService) position(id uuid.UUID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
