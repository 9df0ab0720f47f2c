package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/parlorhq/parlor"
	"github.com/parlorhq/parlor/pkg/adapters/fs"
	"github.com/parlorhq/parlor/pkg/adapters/postgres"
	"github.com/parlorhq/parlor/pkg/core"
)

var (
	verbose    bool
	strict     bool
	dataFile   string
	archiveDSN string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "parlor",
	Short: "A rule-based desk assistant for a fixed-menu pizza business",
	Long: `Parlor answers free-text customer questions from an ordered intent pipeline
and a file-persisted knowledge base, and learns new answers interactively
when it cannot resolve a query.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine; flags and the environment still apply.
		_ = godotenv.Load()

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		if dataFile == "" {
			dataFile = os.Getenv("PARLOR_DATA")
		}
		if dataFile == "" {
			dataFile = "pizza_data.json"
		}
		if archiveDSN == "" {
			archiveDSN = os.Getenv("PARLOR_ARCHIVE_DSN")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Reject malformed snapshots instead of repairing them")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "Snapshot file (default $PARLOR_DATA or pizza_data.json)")
	rootCmd.PersistentFlags().StringVar(&archiveDSN, "archive-dsn", "", "Optional PostgreSQL DSN for archiving learned pairs")
}

// newRepository builds the filesystem repository for the configured data file.
func newRepository() *fs.Repository {
	return fs.NewRepository(fs.Config{
		Path:     dataFile,
		AutoInit: true,
		Strict:   strict,
		Logger:   slog.Default(),
	})
}

// newBot assembles the bot over the configured repository, attaching the
// Postgres archive when a DSN is configured.
func newBot(ctx context.Context, repo *fs.Repository) (*core.Bot, error) {
	opts := []parlor.Option{
		parlor.WithLogger(slog.Default()),
		parlor.WithRepository(repo),
	}

	if archiveDSN != "" {
		archive, err := postgres.Open(ctx, archiveDSN, slog.Default())
		if err != nil {
			return nil, fmt.Errorf("failed to open archive: %w", err)
		}
		opts = append(opts, parlor.WithArchiver(archive))
	}

	return parlor.New(ctx, dataFile, opts...)
}
