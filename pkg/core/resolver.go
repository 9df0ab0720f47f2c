package core

import (
	"log/slog"
	"strings"
)

// Normalize lowercases and trims user text. Both the resolver and the learner
// apply exactly this normalization so stored and queried questions compare on
// equal footing.
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// ResultSource identifies which stage of the pipeline produced a response.
type ResultSource string

const (
	SourceIntent    ResultSource = "intent"
	SourceKnowledge ResultSource = "knowledge"
	SourceNone      ResultSource = "none"
)

// Result is the outcome of resolving one query. Unresolved is a first-class
// value, not an error: an unanswered query is expected and routes to learning.
type Result struct {
	Response string
	Resolved bool
	Source   ResultSource
}

// Resolver is the single entry point of the query pipeline: normalize, try the
// intent rules, then fuzzy-match the knowledge base, then report Unresolved.
type Resolver struct {
	router  *Router
	matcher *Matcher
	store   *Store
	logger  *slog.Logger
}

// NewResolver wires a resolver over the store's rule pipeline and matcher.
func NewResolver(store *Store, router *Router, matcher *Matcher, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{router: router, matcher: matcher, store: store, logger: logger}
}

// Handle resolves raw user text. Each stage short-circuits: the first rule to
// match wins, and the fuzzy fallback only runs when no rule matched.
func (r *Resolver) Handle(raw string) Result {
	input := Normalize(raw)

	if response, ok := r.router.Resolve(input); ok {
		r.logger.Debug("resolved by intent rule", "input", input)
		return Result{Response: response, Resolved: true, Source: SourceIntent}
	}

	if match, score, ok := r.matcher.BestMatch(input, r.store.QuestionTexts()); ok {
		if answer, found := r.store.AnswerFor(match); found {
			r.logger.Debug("resolved by knowledge base", "input", input, "match", match, "score", score)
			return Result{Response: answer, Resolved: true, Source: SourceKnowledge}
		}
	}

	r.logger.Debug("unresolved query", "input", input)
	return Result{Source: SourceNone}
}
