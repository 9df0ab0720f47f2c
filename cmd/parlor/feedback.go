package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	feedbackOrderID string
	feedbackRating  int
	feedbackComment string
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Record customer feedback for an order",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		bot, err := newBot(ctx, newRepository())
		if err != nil {
			fatal("Failed to initialize parlor", err)
		}

		msg, err := bot.RecordFeedback(ctx, feedbackOrderID, feedbackRating, feedbackComment)
		if err != nil {
			fatal("Failed to record feedback", err)
		}
		fmt.Println(msg)
	},
}

func init() {
	rootCmd.AddCommand(feedbackCmd)
	feedbackCmd.Flags().StringVar(&feedbackOrderID, "order", "", "Order id (e.g. ORD001)")
	feedbackCmd.Flags().IntVar(&feedbackRating, "rating", 5, "Rating from 1 to 5")
	feedbackCmd.Flags().StringVarP(&feedbackComment, "comment", "c", "", "Feedback comment")
	feedbackCmd.MarkFlagRequired("order")
}
