// Command clear deletes every participant progress record, leaderboard
// entry and trial log row. It refuses to run unless -yes is given.
//
// Exit codes: 0 = success, 1 = error, 2 = not confirmed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/lexical-decision/internal/adapter/postgres"
	"github.com/heartmarshall/lexical-decision/internal/adapter/postgres/leaderboard"
	"github.com/heartmarshall/lexical-decision/internal/adapter/postgres/progress"
	"github.com/heartmarshall/lexical-decision/internal/adapter/postgres/trial"
	"github.com/heartmarshall/lexical-decision/internal/app"
	"github.com/heartmarshall/lexical-decision/internal/config"
	"github.com/heartmarshall/lexical-decision/internal/service/admin"
)

func main() {
	confirmed := flag.Bool("yes", false, "confirm deletion of all experiment data")
	flag.Parse()

	if !*confirmed {
		fmt.Fprintln(os.Stderr, "refusing to delete all data without -yes")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// Login is never called here, so no token issuer is needed.
	svc := admin.NewService(
		logger,
		progress.New(pool),
		leaderboard.New(pool),
		trial.New(pool),
		nil,
		admin.Config{BatchSize: cfg.Admin.DeleteBatchSize},
	)

	result, err := svc.ClearAll(ctx)
	if err != nil {
		logger.Error("clear failed",
			slog.String("error", err.Error()),
			slog.Int("deleted", result.Total()),
		)
		os.Exit(1)
	}

	logger.Info("clear completed",
		slog.Int("progress", result.Progress),
		slog.Int("leaderboard", result.Leaderboard),
		slog.Int("trials", result.Trials),
	)
}
