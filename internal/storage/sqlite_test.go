package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "tutorbook.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	// Schema normally comes from the goose migration.
	if _, err := store.DB().Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return store
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestSQLite(t)

	if err := store.Set(ctx, "users", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := store.Get(ctx, "users")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Fatalf("expected stored value back, got %q", got)
	}
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := openTestSQLite(t)

	if err := store.Set(ctx, "teachers", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "teachers", []byte(`[{"id":"t1"}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := store.Get(ctx, "teachers")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":"t1"}]` {
		t.Fatalf("expected last write to win, got %q", got)
	}
}

func TestSQLiteStore_MissingKeyAndDelete(t *testing.T) {
	ctx := context.Background()
	store := openTestSQLite(t)

	got, err := store.Get(ctx, "currentUser")
	if err != nil {
		t.Fatalf("get absent: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent key, got %q", got)
	}

	if err := store.Set(ctx, "currentUser", []byte(`{"id":"1"}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Delete(ctx, "currentUser"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err = store.Get(ctx, "currentUser")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil after delete, got %q", got)
	}

	if err := store.Delete(ctx, "currentUser"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}
