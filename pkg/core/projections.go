package core

import (
	"fmt"
	"strconv"
	"strings"
)

// formatRM renders an amount the way receipts print it, without a fixed number
// of decimals (RM8, RM15.9).
func formatRM(v float64) string {
	return "RM" + strconv.FormatFloat(v, 'f', -1, 64)
}

// MenuByCategory renders the menu listing for one of the fixed categories
// (pizzas, sides, drinks). Unknown categories and empty listings recover
// locally with a polite message; they are never errors.
func (s *Store) MenuByCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))

	var b strings.Builder
	switch category {
	case "pizzas":
		if len(s.snap.Menu.Pizzas) == 0 {
			return "No pizzas available at the moment."
		}
		b.WriteString("🍕 PIZZAS:\n")
		for _, p := range s.snap.Menu.Pizzas {
			prices := fmt.Sprintf("%s/%s/%s",
				formatRM(p.Prices.Regular), formatRM(p.Prices.Large), formatRM(p.Prices.Family))
			fmt.Fprintf(&b, "• %s - %s (R/L/F)\n  %s\n", p.Name, prices, p.Description)
		}
	case "sides":
		return s.renderItems("SIDES", "sides", s.snap.Menu.Sides)
	case "drinks":
		return s.renderItems("DRINKS", "drinks", s.snap.Menu.Drinks)
	default:
		return "Sorry, that category doesn't exist."
	}
	return b.String()
}

func (s *Store) renderItems(heading, category string, items []MenuItem) string {
	if len(items) == 0 {
		return fmt.Sprintf("No %s available at the moment.", category)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🍕 %s:\n", heading)
	for _, it := range items {
		fmt.Fprintf(&b, "• %s - %s\n  %s\n", it.Name, formatRM(it.Price), it.Description)
	}
	return b.String()
}

// DeliveryArea renders the delivery terms for an area. Matching is a
// case-insensitive substring test against the configured zones; an unknown
// area recovers with the call-us fallback rather than an error.
func (s *Store) DeliveryArea(area string) string {
	needle := strings.ToLower(area)
	for _, zone := range s.snap.DeliveryZones {
		if strings.Contains(strings.ToLower(zone.Area), needle) {
			fee := "FREE"
			if zone.DeliveryFee != 0 {
				fee = formatRM(zone.DeliveryFee)
			}
			return fmt.Sprintf("📍 %s: Delivery %s (Min order: %s, Time: %s)",
				zone.Area, fee, formatRM(zone.MinOrder), zone.EstimatedTime)
		}
	}
	return "Please call us to check if we deliver to your area: " + s.snap.RestaurantInfo.Phone
}

// ActivePromotions renders the currently active deals, or the fixed
// no-promotions message when none are active.
func (s *Store) ActivePromotions() string {
	var active []Promotion
	for _, p := range s.snap.Promotions {
		if p.IsActive {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return "No active promotions at the moment."
	}

	var b strings.Builder
	b.WriteString("🎉 CURRENT DEALS:\n")
	for _, p := range active {
		fmt.Fprintf(&b, "• %s: %s\n", p.Title, p.Description)
	}
	return b.String()
}

// PopularItems renders the top three popular items from analytics, resolving
// item ids against the pizza menu. Falls back to a canned recommendation when
// no analytics exist yet.
func (s *Store) PopularItems() string {
	popular := s.snap.Analytics.PopularItems
	if len(popular) == 0 {
		return "Our most popular items are Pepperoni and Margherita pizzas!"
	}
	if len(popular) > 3 {
		popular = popular[:3]
	}

	var b strings.Builder
	b.WriteString("🔥 POPULAR ITEMS:\n")
	for _, item := range popular {
		name := "Unknown Item"
		for _, pizza := range s.snap.Menu.Pizzas {
			if pizza.ID == item.ItemID {
				name = pizza.Name
				break
			}
		}
		fmt.Fprintf(&b, "• %s (%d orders)\n", name, item.OrderCount)
	}
	return b.String()
}

// HoursLine renders the opening-hours response.
func (s *Store) HoursLine() string {
	hours := s.snap.RestaurantInfo.Hours["monday"]
	if hours == "" {
		hours = "Please call for hours"
	}
	return "We're open: " + hours
}

// PhoneLine renders the contact response.
func (s *Store) PhoneLine() string {
	return "Call us at: " + s.snap.RestaurantInfo.Phone
}
