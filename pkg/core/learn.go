package core

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// LearnedCategory is the category assigned to interactively learned pairs.
const LearnedCategory = "general"

// Learner appends unanswered questions with their caller-supplied answers to
// the knowledge base. It is the only writer to the question set.
type Learner struct {
	store    *Store
	archiver Archiver
	now      func() time.Time
	logger   *slog.Logger
}

// NewLearner creates a Learner over the store. archiver may be nil; when set,
// learned pairs are also appended to the secondary sink.
func NewLearner(store *Store, archiver Archiver, now func() time.Time, logger *slog.Logger) *Learner {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Learner{store: store, archiver: archiver, now: now, logger: logger}
}

// Learn stores a new question/answer pair. The question is normalized exactly
// like resolver input so future fuzzy matches compare like-for-like. The pair
// is persisted synchronously before Learn returns; a failed write is the
// caller's problem, never swallowed. Duplicates are not merged or rejected.
func (l *Learner) Learn(ctx context.Context, question, answer string) error {
	question = Normalize(question)
	if question == "" {
		return errors.New("question cannot be empty")
	}
	if answer == "" {
		return errors.New("answer cannot be empty")
	}

	qa := QAPair{
		Question:  question,
		Answer:    answer,
		Category:  LearnedCategory,
		AddedDate: l.now(),
	}

	if err := l.store.AppendQuestion(ctx, qa); err != nil {
		return err
	}

	if l.archiver != nil {
		if err := l.archiver.ArchiveQA(ctx, qa); err != nil {
			// The archive is a secondary sink; the pair is already durable in
			// the snapshot, so log and carry on.
			l.logger.Warn("failed to archive learned pair", "error", err)
		}
	}
	return nil
}
