package core

import "strings"

// Rule is one entry of the intent pipeline: a predicate tested against
// normalized input and the responder invoked when it matches.
type Rule struct {
	Name    string
	Match   func(input string) bool
	Respond func(input string) string
}

// Router evaluates an ordered sequence of rules against normalized input.
// Evaluation stops at the first rule whose predicate matches; later rules are
// never consulted even if they would also match. Ordering is the contract, so
// rules live in an explicit slice rather than chained conditionals.
type Router struct {
	rules []Rule
}

// knownZones is the whitelist of area tokens the delivery rule recognizes.
// A delivery question naming an unlisted area deliberately falls through to
// the knowledge-base fallback instead of matching here.
var knownZones = []string{"klcc", "pj", "subang", "petaling"}

// containsAny reports whether input contains at least one of the keywords.
func containsAny(input string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(input, kw) {
			return true
		}
	}
	return false
}

// matchedZone returns the first whitelisted zone token present in input.
func matchedZone(input string) (string, bool) {
	for _, zone := range knownZones {
		if strings.Contains(input, zone) {
			return zone, true
		}
	}
	return "", false
}

// NewRouter builds the default rule pipeline over the given store.
func NewRouter(store *Store) *Router {
	return &Router{rules: []Rule{
		{
			Name: "menu/pizzas",
			Match: func(in string) bool {
				return strings.Contains(in, "pizza") && containsAny(in, "menu", "what")
			},
			Respond: func(string) string { return store.MenuByCategory("pizzas") },
		},
		{
			Name:    "menu/sides",
			Match:   func(in string) bool { return containsAny(in, "side", "appetizer") },
			Respond: func(string) string { return store.MenuByCategory("sides") },
		},
		{
			Name:    "menu/drinks",
			Match:   func(in string) bool { return containsAny(in, "drink", "beverage") },
			Respond: func(string) string { return store.MenuByCategory("drinks") },
		},
		{
			Name: "delivery",
			Match: func(in string) bool {
				if !strings.Contains(in, "deliver") {
					return false
				}
				_, ok := matchedZone(in)
				return ok
			},
			Respond: func(in string) string {
				zone, _ := matchedZone(in)
				return store.DeliveryArea(zone)
			},
		},
		{
			Name:    "promotions",
			Match:   func(in string) bool { return containsAny(in, "deal", "promotion", "discount", "offer") },
			Respond: func(string) string { return store.ActivePromotions() },
		},
		{
			Name:    "popular",
			Match:   func(in string) bool { return containsAny(in, "popular", "recommend") },
			Respond: func(string) string { return store.PopularItems() },
		},
		{
			Name:    "hours",
			Match:   func(in string) bool { return containsAny(in, "hour", "open") },
			Respond: func(string) string { return store.HoursLine() },
		},
		{
			Name:    "phone",
			Match:   func(in string) bool { return containsAny(in, "phone", "call") },
			Respond: func(string) string { return store.PhoneLine() },
		},
	}}
}

// Rules exposes the pipeline for inspection (testing, tracing).
func (r *Router) Rules() []Rule {
	return r.rules
}

// Resolve runs the pipeline over already-normalized input. The boolean is
// false when no rule matched; that is an expected outcome, not an error.
func (r *Router) Resolve(input string) (string, bool) {
	for _, rule := range r.rules {
		if rule.Match(input) {
			return rule.Respond(input), true
		}
	}
	return "", false
}
