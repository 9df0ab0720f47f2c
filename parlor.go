package parlor

import (
	"context"
	"log/slog"
	"time"

	"github.com/parlorhq/parlor/internal/platform"
	"github.com/parlorhq/parlor/pkg/core"
)

// --- Types ---

// Bot is the aggregate service consumers interact with.
type Bot = core.Bot

// Result is the outcome of resolving one query.
type Result = core.Result

// Snapshot is the full persisted business state.
type Snapshot = core.Snapshot

// QAPair is a learned question/answer entry.
type QAPair = core.QAPair

// CustomerInfo identifies the customer placing an order.
type CustomerInfo = core.CustomerInfo

// OrderItem is one line of an order.
type OrderItem = core.OrderItem

// DefaultThreshold is the fuzzy-match acceptance threshold.
const DefaultThreshold = core.DefaultThreshold

// Normalize lowercases and trims user text the way the resolver does.
func Normalize(input string) string {
	return core.Normalize(input)
}

// --- Configuration ---

// Option defines a functional option for configuring the bot.
type Option = platform.Option

// WithLogger sets the logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom snapshot storage adapter.
func WithRepository(repo core.SnapshotRepository) Option {
	return platform.WithRepository(repo)
}

// WithArchiver attaches a secondary sink for learned pairs.
func WithArchiver(a core.Archiver) Option {
	return platform.WithArchiver(a)
}

// WithThreshold overrides the fuzzy-match acceptance threshold.
func WithThreshold(threshold float64) Option {
	return platform.WithThreshold(threshold)
}

// WithClock overrides the timestamp source (useful for testing).
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithAutoInit enables automatic creation of the data directory.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithStrict rejects malformed snapshots on load instead of repairing them.
func WithStrict(strict bool) Option {
	return platform.WithStrict(strict)
}

// --- Factory ---

// New creates a Bot over the snapshot file at path.
func New(ctx context.Context, path string, opts ...Option) (*core.Bot, error) {
	return platform.New(ctx, path, opts...)
}
