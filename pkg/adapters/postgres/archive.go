// Package postgres archives learned knowledge to a PostgreSQL table.
//
// The snapshot file remains the source of truth; this adapter is an optional
// secondary sink so learned pairs from many storefronts can be aggregated and
// reviewed centrally.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"github.com/parlorhq/parlor/pkg/core"
)

// Archive implements core.Archiver backed by PostgreSQL.
type Archive struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open connects to the database at dsn and ensures the archive table exists.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*Archive, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	a := &Archive{db: db, logger: logger}
	if err := a.ensureTable(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

// New wraps an existing connection, for callers that manage pooling themselves.
func New(db *sql.DB, logger *slog.Logger) *Archive {
	if logger == nil {
		logger = slog.Default()
	}
	return &Archive{db: db, logger: logger}
}

func (a *Archive) ensureTable(ctx context.Context) error {
	query := `
    CREATE TABLE IF NOT EXISTS learned_questions (
        id SERIAL PRIMARY KEY,
        question TEXT NOT NULL,
        answer TEXT NOT NULL,
        category VARCHAR(64) NOT NULL,
        added_date TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
    );`

	if _, err := a.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create learned_questions table: %w", err)
	}
	return nil
}

// ArchiveQA appends one learned pair to the archive table.
func (a *Archive) ArchiveQA(ctx context.Context, qa core.QAPair) error {
	query := `
    INSERT INTO learned_questions (question, answer, category, added_date)
    VALUES ($1, $2, $3, $4)`

	if _, err := a.db.ExecContext(ctx, query, qa.Question, qa.Answer, qa.Category, qa.AddedDate); err != nil {
		return fmt.Errorf("failed to archive learned pair: %w", err)
	}

	a.logger.Debug("archived learned pair", "question", qa.Question)
	return nil
}

// Close releases the underlying connection.
func (a *Archive) Close() error {
	return a.db.Close()
}
