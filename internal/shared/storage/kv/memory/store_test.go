package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := New()
	ctx := context.Background()

	if _, ok, err := store.GetItem(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected absent key, ok=%v err=%v", ok, err)
	}

	if err := store.SetItem(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := store.GetItem(ctx, "k")
	if err != nil || !ok || value != "v1" {
		t.Fatalf("get: value=%q ok=%v err=%v", value, ok, err)
	}

	if err := store.SetItem(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, _ = store.GetItem(ctx, "k")
	if value != "v2" {
		t.Fatalf("expected overwrite, got %q", value)
	}

	if err := store.RemoveItem(ctx, "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := store.GetItem(ctx, "k"); ok {
		t.Fatal("expected key removed")
	}
	if err := store.RemoveItem(ctx, "k"); err != nil {
		t.Fatalf("removing absent key must succeed: %v", err)
	}
}

func TestMemoryStoreContextCancelled(t *testing.T) {
	store := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := store.GetItem(ctx, "k"); err == nil {
		t.Fatal("expected context error on get")
	}
	if err := store.SetItem(ctx, "k", "v"); err == nil {
		t.Fatal("expected context error on set")
	}
	if err := store.RemoveItem(ctx, "k"); err == nil {
		t.Fatal("expected context error on remove")
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%5)
			if err := store.SetItem(ctx, key, "v"); err != nil {
				t.Errorf("set: %v", err)
			}
			if _, _, err := store.GetItem(ctx, key); err != nil {
				t.Errorf("get: %v", err)
			}
		}(i)
	}
	wg.Wait()
}
