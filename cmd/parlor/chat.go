package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/parlorhq/parlor/pkg/core"
)

var watchData bool

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	botStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive chat loop",
	Long: `Chat reads one question per line and answers it. Type 'quit' to exit.
When the bot cannot answer, it asks you to teach it: provide the answer,
or type 'skip' to move on.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		repo := newRepository()
		bot, err := newBot(ctx, repo)
		if err != nil {
			fatal("Failed to initialize parlor", err)
		}

		var events <-chan core.Event
		if watchData {
			events, err = repo.Watch(ctx, "")
			if err != nil {
				fatal("Failed to watch data file", err)
			}
		}

		session := uuid.NewString()
		logger := slog.Default().With("session", session)
		logger.Debug("chat session started")

		printBanner()
		runLoop(ctx, bot, events, logger)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().BoolVar(&watchData, "watch", false, "Reload the snapshot when the data file changes externally")
}

func printBanner() {
	fmt.Println(bannerStyle.Render("🍕 Welcome to Pizza Parlor Delivery! 🍕"))
	fmt.Println("I can help you with:")
	fmt.Println("• Menu and prices (try 'show pizza menu')")
	fmt.Println("• Delivery areas (try 'deliver to KLCC')")
	fmt.Println("• Current promotions (try 'any deals?')")
	fmt.Println("• Popular recommendations")
	fmt.Println("• Store hours and contact info")
	fmt.Println(hintStyle.Render("\nType 'quit' to exit or ask me anything!"))
	fmt.Println(strings.Repeat("-", 50))
}

func runLoop(ctx context.Context, bot *core.Bot, events <-chan core.Event, logger *slog.Logger) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		drainEvents(ctx, bot, events, logger)

		fmt.Print("\n🍕 You: ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())

		if strings.EqualFold(input, "quit") {
			fmt.Println(botStyle.Render("🍕 Bot: Thanks for choosing Pizza Parlor! Have a great day! 🍕"))
			return
		}
		if input == "" {
			continue
		}

		res := bot.Handle(input)
		if res.Resolved {
			fmt.Println(botStyle.Render("🍕 Bot: " + res.Response))
			continue
		}

		teach(ctx, bot, scanner, input, logger)
	}
}

// teach runs the learning prompt for an unresolved query. A 'skip' sentinel or
// an empty answer suppresses learning entirely.
func teach(ctx context.Context, bot *core.Bot, scanner *bufio.Scanner, question string, logger *slog.Logger) {
	fmt.Println(botStyle.Render("🍕 Bot: I don't have that information yet. Can you help me learn?"))
	fmt.Print("📝 Please provide the answer, or type 'skip': ")

	if !scanner.Scan() {
		return
	}
	answer := strings.TrimSpace(scanner.Text())
	if answer == "" || strings.EqualFold(answer, "skip") {
		return
	}

	if err := bot.Learn(ctx, question, answer); err != nil {
		logger.Error("failed to learn response", "error", err)
		fmt.Println(botStyle.Render("🍕 Bot: Sorry, I couldn't save that just now."))
		return
	}
	fmt.Println(botStyle.Render("🍕 Bot: Thank you! I learned something new!"))
}

// drainEvents applies any pending external snapshot changes without blocking
// the prompt.
func drainEvents(ctx context.Context, bot *core.Bot, events <-chan core.Event, logger *slog.Logger) {
	if events == nil {
		return
	}
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			logger.Info("data file changed, reloading", "event", string(ev.Type))
			if err := bot.Reload(ctx); err != nil {
				logger.Error("failed to reload snapshot", "error", err)
			}
		default:
			return
		}
	}
}
