package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu [category]",
	Short: "Print a menu category",
	Long:  `Menu prints the listing for one category: pizzas, sides or drinks. Defaults to pizzas.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		category := "pizzas"
		if len(args) == 1 {
			category = args[0]
		}

		bot, err := newBot(context.Background(), newRepository())
		if err != nil {
			fatal("Failed to initialize parlor", err)
		}

		fmt.Print(bot.MenuByCategory(category))
		fmt.Println()
	},
}

var dealsCmd = &cobra.Command{
	Use:   "deals",
	Short: "Print the current promotions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		bot, err := newBot(context.Background(), newRepository())
		if err != nil {
			fatal("Failed to initialize parlor", err)
		}
		fmt.Println(bot.ActivePromotions())
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(dealsCmd)
}
