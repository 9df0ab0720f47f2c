// Package platform is the composition root: it wires the snapshot repository,
// store, rule pipeline, matcher and learner into a ready-to-use Bot.
package platform

import (
	"context"
	"log/slog"

	"github.com/parlorhq/parlor/pkg/adapters/fs"
	"github.com/parlorhq/parlor/pkg/core"
)

// New builds a Bot over the snapshot file at path.
//
//	bot, err := platform.New(ctx, "pizza_data.json", platform.WithLogger(logger))
func New(ctx context.Context, path string, opts ...Option) (*core.Bot, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(fs.Config{
			Path:      path,
			AutoInit:  o.autoInit,
			MustExist: o.mustExist,
			Strict:    o.strict,
			Logger:    logger,
		})
	}

	store, err := core.NewStore(ctx, repo, logger)
	if err != nil {
		return nil, err
	}

	router := core.NewRouter(store)
	matcher := core.NewMatcher(o.threshold)
	resolver := core.NewResolver(store, router, matcher, logger)
	learner := core.NewLearner(store, o.archiver, o.clock, logger)

	return core.NewBot(core.Config{
		Store:    store,
		Resolver: resolver,
		Learner:  learner,
		Logger:   logger,
	}), nil
}
