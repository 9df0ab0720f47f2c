package platform_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parlorhq/parlor/internal/platform"
)

func TestNewSeedsAndResolves(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pizza_data.json")

	bot, err := platform.New(ctx, path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// First run seeds the default snapshot on disk.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected the snapshot file to be seeded: %v", err)
	}

	// Intent pipeline works end to end even on an empty store.
	res := bot.Handle("any deals?")
	if !res.Resolved {
		t.Fatal("expected the promotions rule to resolve")
	}
	if res.Response != "No active promotions at the moment." {
		t.Errorf("unexpected response: %q", res.Response)
	}
}

func TestLearnSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pizza_data.json")

	bot, err := platform.New(ctx, path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if res := bot.Handle("do you sell gift cards"); res.Resolved {
		t.Fatal("expected the fresh store to not know about gift cards")
	}
	if err := bot.Learn(ctx, "do you sell gift cards", "Yes, at the counter."); err != nil {
		t.Fatalf("Learn failed: %v", err)
	}

	// A second bot over the same file sees the learned pair.
	bot2, err := platform.New(ctx, path)
	if err != nil {
		t.Fatalf("New (restart) failed: %v", err)
	}
	res := bot2.Handle("do you sell gift cards")
	if !res.Resolved || res.Response != "Yes, at the counter." {
		t.Errorf("learned pair did not survive restart: %+v", res)
	}
}

func TestOptions(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pizza_data.json")

	fixed := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	bot, err := platform.New(ctx, path,
		platform.WithThreshold(0.99),
		platform.WithClock(func() time.Time { return fixed }),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := bot.Learn(ctx, "exact question only", "answer"); err != nil {
		t.Fatalf("Learn failed: %v", err)
	}

	// With a near-exact threshold, an approximate phrasing no longer matches.
	if res := bot.Handle("exact question onlyyy"); res.Resolved {
		t.Error("expected a 0.99 threshold to reject an approximate match")
	}
	if res := bot.Handle("exact question only"); !res.Resolved {
		t.Error("expected the exact question to still match")
	}

	qa := bot.Store().Snapshot().Questions[0]
	if !qa.AddedDate.Equal(fixed) {
		t.Errorf("expected the injected clock to stamp learned pairs, got %v", qa.AddedDate)
	}
}

func TestMustExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "pizza_data.json")
	_, err := platform.New(context.Background(), path, platform.WithMustExist(true))
	if err == nil {
		t.Error("expected New to fail when the data directory is missing and MustExist is set")
	}
}
