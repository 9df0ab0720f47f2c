package core

import (
	"context"
	"log/slog"
	"time"
)

// Bot aggregates the store, resolver and learner behind one handle. It is
// what the CLI and library consumers talk to.
type Bot struct {
	store    *Store
	resolver *Resolver
	learner  *Learner
	logger   *slog.Logger
}

// Config wires a Bot. Store and Resolver are required; Learner is optional
// only for read-only consumers.
type Config struct {
	Store    *Store
	Resolver *Resolver
	Learner  *Learner
	Logger   *slog.Logger
}

// NewBot assembles a Bot from already-constructed components.
func NewBot(cfg Config) *Bot {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{
		store:    cfg.Store,
		resolver: cfg.Resolver,
		learner:  cfg.Learner,
		logger:   logger,
	}
}

// Handle resolves one query through the full pipeline.
func (b *Bot) Handle(raw string) Result {
	return b.resolver.Handle(raw)
}

// Learn records an answer for a previously unresolved question.
func (b *Bot) Learn(ctx context.Context, question, answer string) error {
	return b.learner.Learn(ctx, question, answer)
}

// RecordOrder appends a customer order and returns its generated id.
func (b *Bot) RecordOrder(ctx context.Context, customer CustomerInfo, items []OrderItem) (string, error) {
	return b.store.RecordOrder(ctx, customer, items, time.Now())
}

// RecordFeedback appends customer feedback for an order.
func (b *Bot) RecordFeedback(ctx context.Context, orderID string, rating int, comment string) (string, error) {
	return b.store.RecordFeedback(ctx, orderID, rating, comment, time.Now())
}

// MenuByCategory renders a menu listing (pizzas, sides, drinks).
func (b *Bot) MenuByCategory(category string) string {
	return b.store.MenuByCategory(category)
}

// DeliveryArea renders the delivery terms for an area.
func (b *Bot) DeliveryArea(area string) string {
	return b.store.DeliveryArea(area)
}

// ActivePromotions renders the current deals.
func (b *Bot) ActivePromotions() string {
	return b.store.ActivePromotions()
}

// PopularItems renders the popular-items recommendation.
func (b *Bot) PopularItems() string {
	return b.store.PopularItems()
}

// Info returns the restaurant contact details.
func (b *Bot) Info() RestaurantInfo {
	return b.store.Info()
}

// Reload rehydrates the store from its repository.
func (b *Bot) Reload(ctx context.Context) error {
	return b.store.Reload(ctx)
}

// Store exposes the underlying store for advanced wiring (watching, tests).
func (b *Bot) Store() *Store {
	return b.store
}
