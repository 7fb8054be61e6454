package storage

import (
	"context"
	"testing"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, "users", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := store.Get(ctx, "users")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[]` {
		t.Fatalf("expected %q, got %q", `[]`, got)
	}
}

func TestMemoryStore_MissingKeyReturnsNil(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent key, got %q", got)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, "currentUser", []byte(`{}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Delete(ctx, "currentUser"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := store.Get(ctx, "currentUser")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil after delete, got %q", got)
	}

	// Deleting an absent key is not an error.
	if err := store.Delete(ctx, "currentUser"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestMemoryStore_ReturnedValueIsACopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Set(ctx, "k", []byte("abc")); err != nil {
		t.Fatalf("set: %v", err)
	}

	first, _ := store.Get(ctx, "k")
	first[0] = 'z'

	second, _ := store.Get(ctx, "k")
	if string(second) != "abc" {
		t.Fatalf("stored value mutated through returned slice: %q", second)
	}
}
