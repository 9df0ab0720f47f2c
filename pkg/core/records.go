package core

import (
	"context"
	"fmt"
	"time"
)

// deliveryEstimate is added to the order time to produce the customer-facing
// estimated delivery timestamp.
const deliveryEstimate = 40 * time.Minute

// CustomerInfo identifies the customer placing an order.
type CustomerInfo struct {
	Name    string
	Phone   string
	Address string
}

// NextOrderID returns the identifier the next recorded order will receive:
// "ORD" plus the 1-based order count, zero-padded to three digits.
func (s *Store) NextOrderID() string {
	return fmt.Sprintf("ORD%03d", len(s.snap.Orders)+1)
}

// RecordOrder appends a new order and persists the snapshot before returning
// the generated order id. The subtotal is summed from the item line totals.
func (s *Store) RecordOrder(ctx context.Context, customer CustomerInfo, items []OrderItem, now time.Time) (string, error) {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Total
	}

	order := Order{
		OrderID:           s.NextOrderID(),
		CustomerName:      customer.Name,
		Phone:             customer.Phone,
		Address:           customer.Address,
		Items:             items,
		Subtotal:          subtotal,
		DeliveryFee:       0, // TODO: derive from the customer's delivery zone
		Status:            "received",
		OrderTime:         now,
		EstimatedDelivery: now.Add(deliveryEstimate),
	}

	s.snap.Orders = append(s.snap.Orders, order)
	if err := s.persist(ctx); err != nil {
		s.snap.Orders = s.snap.Orders[:len(s.snap.Orders)-1]
		return "", err
	}

	s.logger.Info("order recorded", "order_id", order.OrderID, "items", len(items))
	return order.OrderID, nil
}

// RecordFeedback appends a customer feedback record and persists the snapshot
// before returning the acknowledgement message.
func (s *Store) RecordFeedback(ctx context.Context, orderID string, rating int, comment string, now time.Time) (string, error) {
	fb := Feedback{
		OrderID:      orderID,
		Rating:       rating,
		Comment:      comment,
		FeedbackDate: now,
	}

	s.snap.Feedback = append(s.snap.Feedback, fb)
	if err := s.persist(ctx); err != nil {
		s.snap.Feedback = s.snap.Feedback[:len(s.snap.Feedback)-1]
		return "", err
	}

	s.logger.Info("feedback recorded", "order_id", orderID, "rating", rating)
	return "Thank you for your feedback!", nil
}
