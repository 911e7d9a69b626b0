// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/poiesic/answerit"
	"github.com/poiesic/answerit/config"
	"github.com/poiesic/answerit/ingestion"
	"github.com/poiesic/answerit/reindex"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "answerit",
		Usage: "Question/answer matching over a local document store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML configuration file",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory (overrides config)",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "Import question/answer pairs from a pair file",
				ArgsUsage: "FILE [FILE...]",
				Action:    importCommand,
			},
			{
				Name:      "ask",
				Usage:     "Ask a question and print the best answer",
				ArgsUsage: "QUESTION",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "no-remote",
						Usage: "Disable the remote fallback for this query",
					},
					&cli.BoolFlag{
						Name:  "explain",
						Usage: "Print match tier, confidence, and timing",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Print document and cache statistics",
				Action: statsCommand,
			},
			{
				Name:   "clear",
				Usage:  "Remove every stored document",
				Action: clearCommand,
			},
			{
				Name:   "reindex",
				Usage:  "Reprocess all stored documents with current extraction rules",
				Action: reindexCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of documents to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N documents",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfig resolves configuration with CLI flags taking precedence.
func loadConfig(c *cli.Context) (*config.Config, string, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, "", err
	}

	dbPath := c.String("db")
	if dbPath == "" {
		dbPath, err = cfg.DatabasePath()
		if err != nil {
			return nil, "", err
		}
	}
	return cfg, dbPath, nil
}

// openDatabase opens the database described by the configuration.
// withAI controls whether the remote generator is wired up; commands that
// never query can skip it.
func openDatabase(c *cli.Context, withAI bool) (*answerit.Database, *config.Config, error) {
	cfg, dbPath, err := loadConfig(c)
	if err != nil {
		return nil, nil, err
	}

	opts := []answerit.DatabaseOption{}
	if withAI && cfg.AI.Enabled {
		opts = append(opts, answerit.WithAIConfig(cfg.AIClientConfig()))
	} else {
		opts = append(opts, answerit.WithoutAI())
	}

	db, err := answerit.NewDatabase(dbPath, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, cfg, nil
}

func importCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one pair file is required")
	}

	db, _, err := openDatabase(c, false)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	total := 0
	for _, path := range c.Args().Slice() {
		pairs, err := ingestion.LoadPairsFile(path)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		count, err := db.ImportPairs(ctx, pairs...)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", path, err)
		}

		fmt.Printf("%s: imported %d pairs\n", path, count)
		total += count
	}

	fmt.Printf("Imported %d pairs total\n", total)
	return nil
}

func askCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("a question is required")
	}
	query := strings.Join(c.Args().Slice(), " ")

	useRemote := !c.Bool("no-remote")
	db, cfg, err := openDatabase(c, useRemote)
	if err != nil {
		return err
	}
	defer db.Close()

	opts := cfg.MatchOptions()
	if !useRemote {
		opts.RemoteEnabled = false
	}

	result, err := db.Ask(context.Background(), query, opts)
	if err != nil {
		return err
	}

	if !result.Success {
		fmt.Printf("No answer found: %s\n", result.Message)
		return nil
	}

	fmt.Println(result.Match.Document.Answer)
	if c.Bool("explain") {
		fmt.Printf("\n%s, tier %d, confidence %.3f, %v\n",
			result.Match.Explanation, result.Tier, result.Match.Confidence, result.Elapsed.Round(time.Microsecond))
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	db, _, err := openDatabase(c, false)
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := db.Stats(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Documents: %d\n", stats.Documents)
	fmt.Printf("Cached queries: %d (%.0f%% of capacity)\n", stats.CacheSize, stats.CacheUtilization*100)
	return nil
}

func clearCommand(c *cli.Context) error {
	db, _, err := openDatabase(c, false)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ClearDocuments(context.Background()); err != nil {
		return err
	}

	fmt.Println("All documents removed")
	return nil
}

func reindexCommand(c *cli.Context) error {
	reindexConfig := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	if reindexConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reindexConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reindexConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	db, _, err := openDatabase(c, false)
	if err != nil {
		return err
	}
	defer db.Close()

	summary, err := db.Reindex(context.Background(), reindexConfig, os.Stderr)
	if err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}

	if summary.Failed > 0 {
		return fmt.Errorf("reindex finished with %d failed documents", summary.Failed)
	}
	return nil
}

func setup(c *cli.Context) error {
	// Optional .env file for local overrides; absence is not an error.
	_ = godotenv.Load()

	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
