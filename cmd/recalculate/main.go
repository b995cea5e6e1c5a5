// Command recalculate reapplies the current scoring formula to every
// leaderboard entry. Only the score column is rewritten; accumulated
// totals are left untouched.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/lexical-decision/internal/adapter/postgres"
	"github.com/heartmarshall/lexical-decision/internal/adapter/postgres/leaderboard"
	"github.com/heartmarshall/lexical-decision/internal/app"
	"github.com/heartmarshall/lexical-decision/internal/config"
	"github.com/heartmarshall/lexical-decision/internal/service/scoring"
	"github.com/heartmarshall/lexical-decision/pkg/clock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := scoring.NewService(
		logger,
		leaderboard.New(pool),
		postgres.NewTxManager(pool),
		clock.Real{},
		cfg.Admin.RecalcPageSize,
	)

	result, err := svc.RecalculateLeaderboardScores(ctx)
	if err != nil {
		logger.Error("recalculation failed",
			slog.String("error", err.Error()),
			slog.Int("updated", result.Updated),
		)
		os.Exit(1)
	}

	logger.Info("recalculation completed",
		slog.Int("scanned", result.Scanned),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", result.Skipped),
	)
}
