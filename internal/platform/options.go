package platform

import (
	"log/slog"
	"time"

	"github.com/parlorhq/parlor/pkg/core"
)

// options holds the internal configuration for the parlor bot.
type options struct {
	repository core.SnapshotRepository
	archiver   core.Archiver
	logger     *slog.Logger
	threshold  float64
	clock      func() time.Time
	autoInit   bool
	mustExist  bool
	strict     bool
}

// Option defines a functional option for configuring the bot.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		threshold: core.DefaultThreshold,
		clock:     time.Now,
		autoInit:  true,
	}
}

// WithLogger sets the logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository injects a custom snapshot repository, skipping the default
// filesystem adapter.
func WithRepository(repo core.SnapshotRepository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithArchiver attaches a secondary sink for learned pairs.
func WithArchiver(a core.Archiver) Option {
	return func(o *options) {
		o.archiver = a
	}
}

// WithThreshold overrides the fuzzy-match acceptance threshold.
func WithThreshold(threshold float64) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}

// WithClock overrides the timestamp source (useful for testing).
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithAutoInit controls creation of the data directory when missing.
// Enabled by default.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithMustExist requires the data directory to already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
		if must {
			o.autoInit = false
		}
	}
}

// WithStrict rejects malformed snapshots on load instead of repairing them.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}
