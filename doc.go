// Package parlor is the Composition Root for the Parlor application.
//
// It connects the core query-resolution engine (Domain Layer) with the
// infrastructure adapters (Persistence Layer) using the Hexagonal Architecture
// pattern.
//
// Philosophy:
//
// Parlor is a rule-based desk assistant for a fixed-menu pizza business. It
// answers free-text questions by running an ordered intent pipeline over a
// file-persisted business snapshot, falls back to fuzzy matching against a
// learned question set, and extends its own knowledge base when asked
// something it cannot answer. The core is agnostic to storage: the default
// adapter keeps the snapshot in a single JSON (or YAML) file, and every
// mutation is durable before the call returns.
//
// Features:
//
//   - **Ordered intent rules**: first-match-wins pipeline over keyword tests,
//     enumerable and testable rather than buried in branching.
//   - **Fuzzy knowledge fallback**: similarity-ratio matching against learned
//     questions, with a fixed acceptance threshold and stable tie-breaks.
//   - **Self-extension**: unanswered questions become new knowledge entries.
//   - **Default Adapter (FS)**: atomic single-file persistence with optional
//     change watching, plus an optional PostgreSQL archive for learned pairs.
//
// Usage:
//
//	// Initialize the bot with functional options
//	bot, err := parlor.New(ctx, "pizza_data.json",
//		parlor.WithLogger(logger),
//	)
//
//	// Resolve a query
//	res := bot.Handle("show pizza menu")
//	if !res.Resolved {
//		// route to the learning flow
//	}
package parlor
