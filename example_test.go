package parlor_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/parlorhq/parlor"
)

// Example_basic demonstrates initializing the bot, resolving a query, and
// teaching it a new answer.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "parlor-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	ctx := context.Background()

	// Initialize the bot; a default snapshot is seeded on first run.
	bot, err := parlor.New(ctx, filepath.Join(tmpDir, "pizza_data.json"))
	if err != nil {
		log.Fatal(err)
	}

	// 1. An intent rule answers immediately
	res := bot.Handle("any deals?")
	fmt.Println(res.Response)

	// 2. An unknown question routes to learning
	res = bot.Handle("do you have vegan cheese?")
	fmt.Println("resolved:", res.Resolved)

	if err := bot.Learn(ctx, "do you have vegan cheese?", "Yes, on request."); err != nil {
		log.Fatal(err)
	}

	// 3. The learned answer is served from the knowledge base
	res = bot.Handle("do you have vegan cheese?")
	fmt.Println(res.Response)

	// Output:
	// No active promotions at the moment.
	// resolved: false
	// Yes, on request.
}
