package core_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/parlorhq/parlor/pkg/core"
)

// MockRepository implements core.SnapshotRepository in memory.
type MockRepository struct {
	snap     *core.Snapshot
	saves    int
	failSave error
}

func NewMockRepository(snap *core.Snapshot) *MockRepository {
	return &MockRepository{snap: snap}
}

func (m *MockRepository) Load(ctx context.Context) (*core.Snapshot, error) {
	if m.snap == nil {
		return nil, core.ErrSnapshotNotFound
	}
	return m.snap, nil
}

func (m *MockRepository) Save(ctx context.Context, snap *core.Snapshot) error {
	if m.failSave != nil {
		return m.failSave
	}
	m.snap = snap
	m.saves++
	return nil
}

func (m *MockRepository) Initialize(ctx context.Context) error { return nil }

// seedSnapshot returns a snapshot with enough business data to exercise every
// intent rule.
func seedSnapshot() *core.Snapshot {
	snap := core.DefaultSnapshot()
	snap.Menu.Pizzas = []core.Pizza{
		{ID: 1, Name: "Margherita", Description: "Classic tomato and mozzarella",
			Prices: core.PizzaPrices{Regular: 15.9, Large: 25.9, Family: 35.9}},
		{ID: 2, Name: "Pepperoni", Description: "Loaded with pepperoni",
			Prices: core.PizzaPrices{Regular: 18.9, Large: 28.9, Family: 38.9}},
	}
	snap.Menu.Sides = []core.MenuItem{
		{ID: 10, Name: "Garlic Bread", Description: "Six pieces", Price: 8},
	}
	snap.DeliveryZones = []core.DeliveryZone{
		{Area: "KLCC", DeliveryFee: 0, MinOrder: 30, EstimatedTime: "30-40 min"},
		{Area: "Subang Jaya", DeliveryFee: 5, MinOrder: 25, EstimatedTime: "45-60 min"},
	}
	return snap
}

func newStore(t *testing.T, repo *MockRepository) *core.Store {
	t.Helper()
	store, err := core.NewStore(context.Background(), repo, slog.Default())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return store
}

func TestStoreHydration(t *testing.T) {
	t.Run("Seeds Defaults When Not Found", func(t *testing.T) {
		repo := NewMockRepository(nil)
		store := newStore(t, repo)

		if repo.saves != 1 {
			t.Errorf("expected the default snapshot to be persisted once, got %d saves", repo.saves)
		}
		if got := len(store.QuestionTexts()); got != 0 {
			t.Errorf("expected empty knowledge base, got %d entries", got)
		}
		if store.Info().Phone == "" {
			t.Error("expected default restaurant info to be seeded")
		}
	})

	t.Run("Uses Existing Snapshot", func(t *testing.T) {
		snap := seedSnapshot()
		snap.Questions = []core.QAPair{{Question: "do you have parking", Answer: "Yes, behind the shop."}}
		store := newStore(t, NewMockRepository(snap))

		texts := store.QuestionTexts()
		if len(texts) != 1 || texts[0] != "do you have parking" {
			t.Errorf("unexpected question corpus: %v", texts)
		}
	})
}

func TestAnswerFor(t *testing.T) {
	snap := seedSnapshot()
	snap.Questions = []core.QAPair{
		{Question: "is there parking", Answer: "first answer"},
		{Question: "is there parking", Answer: "duplicate answer"},
	}
	store := newStore(t, NewMockRepository(snap))

	answer, ok := store.AnswerFor("is there parking")
	if !ok {
		t.Fatal("expected an answer")
	}
	if answer != "first answer" {
		t.Errorf("expected the first occurrence to win, got %q", answer)
	}

	if _, ok := store.AnswerFor("never stored"); ok {
		t.Error("expected no answer for unknown question")
	}
}

func TestAppendQuestionRollsBackOnSaveFailure(t *testing.T) {
	repo := NewMockRepository(seedSnapshot())
	store := newStore(t, repo)

	repo.failSave = errors.New("disk full")
	err := store.AppendQuestion(context.Background(), core.QAPair{Question: "q", Answer: "a"})
	if err == nil {
		t.Fatal("expected persistence failure to propagate")
	}
	if got := len(store.QuestionTexts()); got != 0 {
		t.Errorf("expected in-memory state to roll back, found %d questions", got)
	}
}
