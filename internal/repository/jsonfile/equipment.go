// Package jsonfile provides the equipment catalog store. The catalog is a
// static JSON file read at startup; items are held in memory and are
// read-only afterwards. A failed read degrades to an empty catalog rather
// than failing the process.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

// EquipmentStore holds the in-memory equipment catalog.
type EquipmentStore struct {
	path string

	mu     sync.RWMutex
	items  []domain.EquipmentItem
	loaded bool
}

// NewEquipmentStore creates a store backed by the JSON file at path. The
// catalog is not read until Reload is called.
func NewEquipmentStore(path string) *EquipmentStore {
	return &EquipmentStore{path: path}
}

// Reload reads the catalog file and atomically replaces the in-memory items.
// On failure the previous contents are kept unchanged.
func (s *EquipmentStore) Reload(ctx context.Context) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var items []domain.EquipmentItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}

	s.mu.Lock()
	s.items = items
	s.loaded = true
	s.mu.Unlock()

	return nil
}

// All returns a copy of the catalog in load order. Returning a fresh slice
// keeps callers from aliasing the master catalog.
func (s *EquipmentStore) All(ctx context.Context) ([]domain.EquipmentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.EquipmentItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

// GetByID returns the catalog item with the given id, or ErrItemNotFound.
func (s *EquipmentStore) GetByID(ctx context.Context, id int32) (*domain.EquipmentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, repository.ErrItemNotFound
}

// Loaded reports whether a catalog load has ever succeeded.
func (s *EquipmentStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
