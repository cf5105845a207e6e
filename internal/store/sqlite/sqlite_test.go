package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
)

func TestSetupSeedsRowsBeforeUse(t *testing.T) {
	s, err := NewWithSetup(":memory:", func(db *sql.DB) error {
		_, err := db.Exec(`INSERT INTO messages (message) VALUES ('Alice: pre-existing')`)
		return err
	})
	if err != nil {
		t.Fatalf("failed to create log: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if _, err := s.AppendMessage(ctx, "Bob: new"); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	history, err := s.ListHistory(ctx)
	if err != nil {
		t.Fatalf("failed to list history: %v", err)
	}
	want := []string{"Bob: new", "Alice: pre-existing"}
	if len(history) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(history), history)
	}
	for i, text := range want {
		if history[i] != text {
			t.Errorf("expected %q at index %d, got %q", text, i, history[i])
		}
	}
}

func TestAppendAndListHistory(t *testing.T) {
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create log: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	texts := []string{"Alice: hi", "Bob: yo", "Alice: how are you"}
	var lastID int64
	for _, text := range texts {
		id, err := s.AppendMessage(ctx, text)
		if err != nil {
			t.Fatalf("failed to append %q: %v", text, err)
		}
		if id <= lastID {
			t.Fatalf("id %d not greater than previous id %d", id, lastID)
		}
		lastID = id
	}

	history, err := s.ListHistory(ctx)
	if err != nil {
		t.Fatalf("failed to list history: %v", err)
	}

	// Most recent first.
	want := []string{"Alice: how are you", "Bob: yo", "Alice: hi"}
	if len(history) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(history), history)
	}
	for i, text := range want {
		if history[i] != text {
			t.Errorf("expected %q at index %d, got %q", text, i, history[i])
		}
	}
}

func TestEmptyHistory(t *testing.T) {
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create log: %v", err)
	}
	defer s.Close()

	history, err := s.ListHistory(context.Background())
	if err != nil {
		t.Fatalf("failed to list history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %v", history)
	}
}

func TestConcurrentAppendsAssignDistinctIDs(t *testing.T) {
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create log: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	const writers = 20

	ids := make([]int64, writers)
	errs := make([]error, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i], errs[i] = s.AppendMessage(ctx, "concurrent")
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, writers)
	for i := 0; i < writers; i++ {
		if errs[i] != nil {
			t.Fatalf("append %d failed: %v", i, errs[i])
		}
		if seen[ids[i]] {
			t.Fatalf("duplicate id %d", ids[i])
		}
		seen[ids[i]] = true
	}

	history, err := s.ListHistory(ctx)
	if err != nil {
		t.Fatalf("failed to list history: %v", err)
	}
	if len(history) != writers {
		t.Fatalf("expected %d entries, got %d", writers, len(history))
	}
}

func TestReopenPreservesExistingRows(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "messages.db")
	ctx := context.Background()

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create log: %v", err)
	}
	firstID, err := s.AppendMessage(ctx, "survives restart")
	if err != nil {
		t.Fatalf("failed to append: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}

	// Startup applies the schema again; existing rows must survive and ids
	// must keep increasing.
	s, err = New(dbPath)
	if err != nil {
		t.Fatalf("failed to reopen log: %v", err)
	}
	defer s.Close()

	secondID, err := s.AppendMessage(ctx, "after restart")
	if err != nil {
		t.Fatalf("failed to append after reopen: %v", err)
	}
	if secondID <= firstID {
		t.Fatalf("id %d not greater than pre-restart id %d", secondID, firstID)
	}

	history, err := s.ListHistory(ctx)
	if err != nil {
		t.Fatalf("failed to list history: %v", err)
	}
	want := []string{"after restart", "survives restart"}
	if len(history) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(history), history)
	}
	for i, text := range want {
		if history[i] != text {
			t.Errorf("expected %q at index %d, got %q", text, i, history[i])
		}
	}
}
