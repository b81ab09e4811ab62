package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"inventory-manager/internal/models"
	"inventory-manager/internal/service"

	"github.com/google/uuid"
)

// FileStore persists the collection as a single JSON document. Writes go
// through a temp file and rename so a crash mid-write never truncates the
// store. ReplaceAll is a single document swap, which gives it the required
// all-or-nothing semantics for free.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) LoadAll(ctx context.Context) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *FileStore) Upsert(ctx context.Context, item models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return err
	}

	sku := service.NormalizeSKU(item.SKU)
	pos := -1
	for i, existing := range items {
		if existing.ID == item.ID {
			pos = i
			continue
		}
		if service.NormalizeSKU(existing.SKU) == sku {
			return fmt.Errorf("%w: %s", service.ErrStorageConflict, item.SKU)
		}
	}

	if pos >= 0 {
		items[pos] = item
	} else {
		items = append(items, item)
	}
	return s.write(items)
}

func (s *FileStore) RemoveByID(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return err
	}

	for i, it := range items {
		if it.ID == id {
			items = append(items[:i], items[i+1:]...)
			break
		}
	}
	return s.write(items)
}

func (s *FileStore) ReplaceAll(ctx context.Context, items []models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		sku := service.NormalizeSKU(it.SKU)
		if _, ok := seen[sku]; ok {
			return fmt.Errorf("%w: %s", service.ErrStorageConflict, it.SKU)
		}
		seen[sku] = struct{}{}
	}
	return s.write(items)
}

func (s *FileStore) read() ([]models.Item, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []models.Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrStorageUnavailable, err)
	}

	var items []models.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrStorageUnavailable, err)
	}
	return items, nil
}

func (s *FileStore) write(items []models.Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", service.ErrStorageUnavailable, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".items-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", service.ErrStorageUnavailable, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", service.ErrStorageUnavailable, err)
	}
	// flush to disk before the rename swaps the document in
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", service.ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", service.ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %v", service.ErrStorageUnavailable, err)
	}
	return nil
}
