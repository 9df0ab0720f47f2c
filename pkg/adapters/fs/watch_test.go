package fs_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/parlorhq/parlor/pkg/core"
)

func TestWatchEmitsOnExternalChange(t *testing.T) {
	repo, path := setupRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := repo.Save(ctx, core.DefaultSnapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	events, err := repo.Watch(ctx, "")
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	// Simulate a staff member editing the data file directly.
	if err := os.WriteFile(path, []byte(`{"questions": []}`), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case ev, ok := <-events:
		if !ok {
			t.Fatal("event channel closed unexpectedly")
		}
		if ev.Type != core.EventModify && ev.Type != core.EventCreate {
			t.Errorf("unexpected event type %q", ev.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a change event")
	}
}

func TestWatchIgnoresUnmatchedFiles(t *testing.T) {
	repo, path := setupRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx, "")
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	other := path + ".bak"
	if err := os.WriteFile(other, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case ev := <-events:
		t.Errorf("unexpected event for unmatched file: %+v", ev)
	case <-time.After(300 * time.Millisecond):
		// No event: the .bak file does not match the snapshot pattern.
	}
}

func TestWatchRejectsInvalidPattern(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := repo.Watch(ctx, "[unclosed"); err == nil {
		t.Error("expected an invalid pattern to be rejected")
	}
}
