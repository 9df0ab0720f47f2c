package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parlorhq/parlor/pkg/core"
)

var (
	orderName    string
	orderPhone   string
	orderAddress string
	orderItems   []string
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Record a customer order",
	Long: `Order appends a new order to the store and prints its id.
Items are given as name:quantity:total, e.g. --item "Pepperoni:2:31.8".`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(orderItems) == 0 {
			fmt.Println("Error: at least one --item is required")
			cmd.Usage()
			return
		}

		items, err := parseItems(orderItems)
		if err != nil {
			fatal("Invalid item", err)
		}

		ctx := context.Background()
		bot, err := newBot(ctx, newRepository())
		if err != nil {
			fatal("Failed to initialize parlor", err)
		}

		customer := core.CustomerInfo{Name: orderName, Phone: orderPhone, Address: orderAddress}
		id, err := bot.RecordOrder(ctx, customer, items)
		if err != nil {
			fatal("Failed to record order", err)
		}
		fmt.Printf("Order %s recorded.\n", id)
	},
}

func parseItems(specs []string) ([]core.OrderItem, error) {
	items := make([]core.OrderItem, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("expected name:quantity:total, got %q", spec)
		}
		qty, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("bad quantity in %q: %w", spec, err)
		}
		total, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("bad total in %q: %w", spec, err)
		}
		items = append(items, core.OrderItem{Name: parts[0], Quantity: qty, Total: total})
	}
	return items, nil
}

func init() {
	rootCmd.AddCommand(orderCmd)
	orderCmd.Flags().StringVar(&orderName, "name", "", "Customer name")
	orderCmd.Flags().StringVar(&orderPhone, "phone", "", "Customer phone")
	orderCmd.Flags().StringVar(&orderAddress, "address", "", "Delivery address")
	orderCmd.Flags().StringArrayVar(&orderItems, "item", nil, "Order line as name:quantity:total (repeatable)")
}
