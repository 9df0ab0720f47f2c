// Snapshot is the central entity of the domain.
package core

import "time"

// Snapshot is the full persisted state of the business at a point in time:
// restaurant data, menu, the learned knowledge base and the operational records.
// It is agnostic to storage format (JSON, YAML).
type Snapshot struct {
	RestaurantInfo RestaurantInfo `json:"restaurant_info" yaml:"restaurant_info"`
	Menu           Menu           `json:"menu" yaml:"menu"`
	DeliveryZones  []DeliveryZone `json:"delivery_zones" yaml:"delivery_zones"`
	Promotions     []Promotion    `json:"promotions" yaml:"promotions"`
	Orders         []Order        `json:"orders" yaml:"orders"`
	Questions      []QAPair       `json:"questions" yaml:"questions"`
	Feedback       []Feedback     `json:"customer_feedback" yaml:"customer_feedback"`
	Analytics      Analytics      `json:"analytics" yaml:"analytics"`
	StaffNotes     []StaffNote    `json:"staff_notes" yaml:"staff_notes"`
}

// RestaurantInfo holds the static contact details of the business.
type RestaurantInfo struct {
	Name    string            `json:"name" yaml:"name"`
	Phone   string            `json:"phone" yaml:"phone"`
	Address string            `json:"address,omitempty" yaml:"address,omitempty"`
	Hours   map[string]string `json:"hours" yaml:"hours"`
}

// Menu groups the fixed item categories.
type Menu struct {
	Pizzas []Pizza    `json:"pizzas" yaml:"pizzas"`
	Sides  []MenuItem `json:"sides" yaml:"sides"`
	Drinks []MenuItem `json:"drinks" yaml:"drinks"`
}

// PizzaPrices carries the three size tiers of a pizza.
type PizzaPrices struct {
	Regular float64 `json:"regular" yaml:"regular"`
	Large   float64 `json:"large" yaml:"large"`
	Family  float64 `json:"family" yaml:"family"`
}

// Pizza is a menu entry priced per size tier.
type Pizza struct {
	ID          int         `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Prices      PizzaPrices `json:"prices" yaml:"prices"`
}

// MenuItem is a single-priced entry (sides, drinks).
type MenuItem struct {
	ID          int     `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
}

// DeliveryZone describes one serviced area.
type DeliveryZone struct {
	Area          string  `json:"area" yaml:"area"`
	DeliveryFee   float64 `json:"delivery_fee" yaml:"delivery_fee"`
	MinOrder      float64 `json:"min_order" yaml:"min_order"`
	EstimatedTime string  `json:"estimated_time" yaml:"estimated_time"`
}

// Promotion is a marketing deal; only active ones are surfaced to customers.
type Promotion struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	IsActive    bool   `json:"is_active" yaml:"is_active"`
	ValidUntil  string `json:"valid_until,omitempty" yaml:"valid_until,omitempty"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	Name     string  `json:"name" yaml:"name"`
	Quantity int     `json:"quantity" yaml:"quantity"`
	Total    float64 `json:"total" yaml:"total"`
}

// Order is an append-only customer order record.
type Order struct {
	OrderID           string      `json:"order_id" yaml:"order_id"`
	CustomerName      string      `json:"customer_name" yaml:"customer_name"`
	Phone             string      `json:"phone" yaml:"phone"`
	Address           string      `json:"address" yaml:"address"`
	Items             []OrderItem `json:"items" yaml:"items"`
	Subtotal          float64     `json:"subtotal" yaml:"subtotal"`
	DeliveryFee       float64     `json:"delivery_fee" yaml:"delivery_fee"`
	Status            string      `json:"status" yaml:"status"`
	OrderTime         time.Time   `json:"order_time" yaml:"order_time"`
	EstimatedDelivery time.Time   `json:"estimated_delivery" yaml:"estimated_delivery"`
}

// QAPair is a learned question/answer entry in the knowledge base.
// The question is stored lowercased and trimmed so later fuzzy lookups compare
// on equal footing with seeded entries. Entries are never mutated or deleted.
type QAPair struct {
	Question  string    `json:"question" yaml:"question"`
	Answer    string    `json:"answer" yaml:"answer"`
	Category  string    `json:"category" yaml:"category"`
	AddedDate time.Time `json:"added_date" yaml:"added_date"`
}

// Feedback is an append-only customer feedback record.
type Feedback struct {
	OrderID      string    `json:"order_id" yaml:"order_id"`
	Rating       int       `json:"rating" yaml:"rating"`
	Comment      string    `json:"comment" yaml:"comment"`
	FeedbackDate time.Time `json:"feedback_date" yaml:"feedback_date"`
}

// PopularItem ties a menu item id to its order count.
type PopularItem struct {
	ItemID     int `json:"item_id" yaml:"item_id"`
	OrderCount int `json:"order_count" yaml:"order_count"`
}

// Analytics aggregates usage data maintained out-of-band by staff tooling.
type Analytics struct {
	PopularItems []PopularItem `json:"popular_items" yaml:"popular_items"`
	PeakHours    []string      `json:"peak_hours" yaml:"peak_hours"`
	BusiestDays  []string      `json:"busiest_days" yaml:"busiest_days"`
}

// StaffNote is a free-form operational note.
type StaffNote struct {
	Date   string `json:"date" yaml:"date"`
	Author string `json:"author,omitempty" yaml:"author,omitempty"`
	Note   string `json:"note" yaml:"note"`
}

// DefaultSnapshot returns the minimal store shape used when no prior snapshot
// exists: empty menu categories and empty record sequences.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{
		RestaurantInfo: RestaurantInfo{
			Name:  "Pizza Parlor",
			Phone: "(123) 456-7890",
			Hours: map[string]string{"monday": "11:00 AM - 11:00 PM"},
		},
		Menu: Menu{
			Pizzas: []Pizza{},
			Sides:  []MenuItem{},
			Drinks: []MenuItem{},
		},
		DeliveryZones: []DeliveryZone{},
		Promotions:    []Promotion{},
		Orders:        []Order{},
		Questions:     []QAPair{},
		Feedback:      []Feedback{},
		Analytics: Analytics{
			PopularItems: []PopularItem{},
			PeakHours:    []string{},
			BusiestDays:  []string{},
		},
		StaffNotes: []StaffNote{},
	}
}
