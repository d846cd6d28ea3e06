package trust

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hongtianjun/cloudlight/internal/infrastructure/database"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, database.Config{
		Path:        filepath.Join(t.TempDir(), "creds.db"),
		WALMode:     true,
		BusyTimeout: 5,
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store, err := NewSQLiteStore(ctx, db)
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	return store
}

func TestAddTrustAnchor(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	id, err := store.AddTrustAnchor(ctx, 0, DefaultAnchor())
	if err != nil {
		t.Fatalf("AddTrustAnchor() error = %v", err)
	}
	if id <= 0 {
		t.Errorf("credential id = %d, want positive", id)
	}
}

func TestAddTrustAnchor_EmptyCertificate(t *testing.T) {
	store := testStore(t)

	id, err := store.AddTrustAnchor(context.Background(), 0, nil)
	if !errors.Is(err, ErrEmptyCertificate) {
		t.Errorf("error = %v, want ErrEmptyCertificate", err)
	}
	if id >= 0 {
		t.Errorf("credential id = %d, want negative on failure", id)
	}
}

func TestAddTrustAnchor_NotPEM(t *testing.T) {
	store := testStore(t)

	_, err := store.AddTrustAnchor(context.Background(), 0, []byte("not a certificate"))
	if !errors.Is(err, ErrInvalidPEM) {
		t.Errorf("error = %v, want ErrInvalidPEM", err)
	}
}

func TestHasConfiguration(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	configured, err := store.HasConfiguration(ctx, 0)
	if err != nil {
		t.Fatalf("HasConfiguration() error = %v", err)
	}
	if configured {
		t.Error("fresh store reports configuration present")
	}

	if _, err := store.AddTrustAnchor(ctx, 0, DefaultAnchor()); err != nil {
		t.Fatalf("AddTrustAnchor() error = %v", err)
	}

	configured, err = store.HasConfiguration(ctx, 0)
	if err != nil {
		t.Fatalf("HasConfiguration() error = %v", err)
	}
	if !configured {
		t.Error("store does not report configuration after install")
	}

	// A different device index stays unconfigured.
	configured, err = store.HasConfiguration(ctx, 1)
	if err != nil {
		t.Fatalf("HasConfiguration() error = %v", err)
	}
	if configured {
		t.Error("configuration leaked across device indices")
	}
}
