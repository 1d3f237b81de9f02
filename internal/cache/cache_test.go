package cache

import (
	"context"
	"testing"
	"time"
)

func TestPutAndGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	if err := Put(ctx, db, "http://backend/img/1.jpg", []byte("thumb-bytes"), "image/jpeg"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	data, mime, err := Get(ctx, db, "http://backend/img/1.jpg")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != "thumb-bytes" || mime != "image/jpeg" {
		t.Errorf("unexpected cache entry: %q %q", data, mime)
	}
}

func TestGetMiss(t *testing.T) {
	db := NewTestDB(t)

	data, mime, err := Get(context.Background(), db, "http://backend/img/missing.jpg")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data != nil || mime != "" {
		t.Errorf("expected miss, got %q %q", data, mime)
	}
}

func TestPutReplaces(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	Put(ctx, db, "http://backend/img/1.jpg", []byte("old"), "image/jpeg")
	if err := Put(ctx, db, "http://backend/img/1.jpg", []byte("new"), "image/jpeg"); err != nil {
		t.Fatalf("Put replace: %v", err)
	}

	data, _, _ := Get(ctx, db, "http://backend/img/1.jpg")
	if string(data) != "new" {
		t.Errorf("expected replaced entry, got %q", data)
	}
}

func TestPrune(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	Put(ctx, db, "http://backend/img/old.jpg", []byte("x"), "image/jpeg")

	// Nothing is older than an hour yet.
	n, err := Prune(ctx, db, time.Hour)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if n != 0 {
		t.Errorf("expected nothing pruned, got %d", n)
	}

	// With a zero age everything qualifies.
	n, err = Prune(ctx, db, -time.Second)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 pruned entry, got %d", n)
	}

	data, _, _ := Get(ctx, db, "http://backend/img/old.jpg")
	if data != nil {
		t.Error("pruned entry still present")
	}
}
