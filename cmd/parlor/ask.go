package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Resolve a single question",
	Long:  `Ask resolves one question and prints the answer. Exits non-zero when the question cannot be resolved.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		bot, err := newBot(ctx, newRepository())
		if err != nil {
			fatal("Failed to initialize parlor", err)
		}

		res := bot.Handle(args[0])
		if !res.Resolved {
			fmt.Fprintln(os.Stderr, "I don't have that information yet.")
			os.Exit(1)
		}
		fmt.Println(res.Response)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
