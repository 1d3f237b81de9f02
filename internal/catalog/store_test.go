package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/rajservice12693/alankar/internal/model"
)

type fakeFetcher struct {
	items []model.Item
	err   error
}

func (f *fakeFetcher) Items(context.Context) ([]model.Item, error) {
	return f.items, f.err
}

func TestStoreRefresh(t *testing.T) {
	store := NewStore()
	if store.Loaded() {
		t.Error("new store should not be loaded")
	}

	fetcher := &fakeFetcher{items: []model.Item{{ID: 1, CategoryName: "Ring"}}}
	if err := store.Refresh(context.Background(), fetcher); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if !store.Loaded() {
		t.Error("store should be loaded after refresh")
	}
	if len(store.Items()) != 1 {
		t.Errorf("expected 1 item, got %d", len(store.Items()))
	}
}

func TestStoreRefreshFailureKeepsPriorList(t *testing.T) {
	store := NewStore()
	store.Refresh(context.Background(), &fakeFetcher{items: []model.Item{{ID: 1}, {ID: 2}}})

	err := store.Refresh(context.Background(), &fakeFetcher{err: errors.New("backend down")})
	if err == nil {
		t.Fatal("expected refresh error")
	}
	if len(store.Items()) != 2 {
		t.Errorf("failed refresh must keep the prior list, got %d items", len(store.Items()))
	}
	if !store.Loaded() {
		t.Error("store should stay loaded after a failed refresh")
	}
}

func TestStoreFind(t *testing.T) {
	store := NewStore()
	store.Refresh(context.Background(), &fakeFetcher{items: []model.Item{{ID: 7, ItemName: "Chain"}}})

	if item := store.Find(7); item == nil || item.ItemName != "Chain" {
		t.Errorf("expected to find item 7, got %+v", item)
	}
	if item := store.Find(99); item != nil {
		t.Errorf("expected nil for unknown id, got %+v", item)
	}
}
