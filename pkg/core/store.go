package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Store owns the hydrated snapshot for the lifetime of the process and is the
// single path through which it is read or mutated. Every mutation is persisted
// through the repository before the call returns, so there is never unflushed
// in-memory state that the next load would miss.
//
// The store is deliberately not safe for concurrent use: resolution is a
// single-threaded, synchronous pipeline.
type Store struct {
	repo   SnapshotRepository
	snap   *Snapshot
	logger *slog.Logger
}

// NewStore initializes the repository and hydrates the snapshot from it.
// When the repository reports ErrSnapshotNotFound the store seeds the default
// snapshot and persists it immediately, mirroring first-run behavior.
func NewStore(ctx context.Context, repo SnapshotRepository, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{repo: repo, logger: logger}

	if err := repo.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize repository: %w", err)
	}
	if err := s.hydrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) hydrate(ctx context.Context) error {
	snap, err := s.repo.Load(ctx)
	if errors.Is(err, ErrSnapshotNotFound) {
		s.logger.Info("no snapshot found, seeding defaults")
		s.snap = DefaultSnapshot()
		return s.persist(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	s.snap = snap
	s.logger.Debug("snapshot hydrated",
		"questions", len(snap.Questions),
		"pizzas", len(snap.Menu.Pizzas),
		"orders", len(snap.Orders))
	return nil
}

// Reload rehydrates the snapshot from the repository, discarding the in-memory
// copy. Used when the backing file changed externally.
func (s *Store) Reload(ctx context.Context) error {
	return s.hydrate(ctx)
}

// persist writes the full snapshot through the repository.
func (s *Store) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.snap); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

// Snapshot exposes the hydrated state. Callers must treat it as read-only.
func (s *Store) Snapshot() *Snapshot {
	return s.snap
}

// Info returns the restaurant contact details.
func (s *Store) Info() RestaurantInfo {
	return s.snap.RestaurantInfo
}

// QuestionTexts returns the learned question strings in insertion order.
// This is the candidate corpus for fuzzy matching.
func (s *Store) QuestionTexts() []string {
	texts := make([]string, len(s.snap.Questions))
	for i, q := range s.snap.Questions {
		texts[i] = q.Question
	}
	return texts
}

// AnswerFor returns the answer paired with the exact stored question text.
// The first occurrence wins when duplicates exist.
func (s *Store) AnswerFor(question string) (string, bool) {
	for _, q := range s.snap.Questions {
		if q.Question == question {
			return q.Answer, true
		}
	}
	return "", false
}

// AppendQuestion appends a learned pair and persists the snapshot before
// returning. Duplicate questions are allowed; the base is append-only.
func (s *Store) AppendQuestion(ctx context.Context, qa QAPair) error {
	s.snap.Questions = append(s.snap.Questions, qa)
	if err := s.persist(ctx); err != nil {
		// Roll the in-memory append back so state never drifts ahead of disk.
		s.snap.Questions = s.snap.Questions[:len(s.snap.Questions)-1]
		return err
	}

	s.logger.Info("learned new response", "question", qa.Question, "category", qa.Category)
	return nil
}
