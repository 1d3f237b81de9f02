package catalog

import (
	"context"
	"sync"

	"github.com/rajservice12693/alankar/internal/model"
)

// Fetcher loads the full item list from the backend.
type Fetcher interface {
	Items(ctx context.Context) ([]model.Item, error)
}

// Store is the source of truth for filtering: the full item list as last
// successfully fetched. A failed refresh leaves the previous list in place,
// so readers always see a consistent (possibly stale) catalog.
type Store struct {
	mu     sync.RWMutex
	items  []model.Item
	loaded bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Refresh replaces the stored list with a fresh fetch. On error the previous
// list is kept and the error returned.
func (s *Store) Refresh(ctx context.Context, f Fetcher) error {
	items, err := f.Items(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.items = items
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Items returns the current full item list.
func (s *Store) Items() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// Loaded reports whether at least one refresh has succeeded.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Filtered applies the filter to the current list.
func (s *Store) Filtered(f Filter) []model.Item {
	return Apply(s.Items(), f)
}

// Categories returns the filter options derived from the current list.
func (s *Store) Categories() []string {
	return CategoryOptions(s.Items())
}

// Find returns the item with the given id, or nil.
func (s *Store) Find(id int64) *model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item
		}
	}
	return nil
}
