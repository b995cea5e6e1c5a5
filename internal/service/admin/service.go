// Package admin implements maintenance operations over all collections.
package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lexical-decision/internal/auth"
	"github.com/heartmarshall/lexical-decision/internal/domain"
)

// DefaultBatchSize matches the per-batch write limit of the original store.
const DefaultBatchSize = 450

type batchDeleter interface {
	DeleteBatch(ctx context.Context, limit int) (int, error)
}

type tokenIssuer interface {
	GenerateAccessToken(subject uuid.UUID, role string) (string, error)
}

type collection struct {
	name string
	repo batchDeleter
}

// Config holds admin credentials and the delete batch size.
type Config struct {
	// PasswordHash is a bcrypt hash. Empty disables admin login.
	PasswordHash string
	BatchSize    int
}

// Service authenticates administrators and clears experiment data.
type Service struct {
	log          *slog.Logger
	progress     batchDeleter
	leaderboard  batchDeleter
	trials       batchDeleter
	tokens       tokenIssuer
	passwordHash string
	batchSize    int
}

// NewService creates a new admin service. BatchSize <= 0 uses DefaultBatchSize.
func NewService(
	log *slog.Logger,
	progress batchDeleter,
	leaderboard batchDeleter,
	trials batchDeleter,
	tokens tokenIssuer,
	cfg Config,
) *Service {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Service{
		log:          log.With("service", "admin"),
		progress:     progress,
		leaderboard:  leaderboard,
		trials:       trials,
		tokens:       tokens,
		passwordHash: cfg.PasswordHash,
		batchSize:    batchSize,
	}
}

// Login checks password against the configured hash and issues an admin token.
func (s *Service) Login(ctx context.Context, password string) (string, error) {
	if s.passwordHash == "" || password == "" {
		return "", domain.ErrUnauthorized
	}
	if err := auth.CheckPassword(s.passwordHash, password); err != nil {
		s.log.WarnContext(ctx, "admin login rejected")
		return "", err
	}

	token, err := s.tokens.GenerateAccessToken(uuid.New(), auth.RoleAdmin)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "admin logged in")
	return token, nil
}

// ClearResult holds the number of rows deleted per collection.
type ClearResult struct {
	Progress    int
	Leaderboard int
	Trials      int
}

// Total returns the number of rows deleted across all collections.
func (r ClearResult) Total() int {
	return r.Progress + r.Leaderboard + r.Trials
}

// ClearAll deletes every row of progress, leaderboard and the trial log.
// Collections are drained concurrently, each in batches of batchSize rows.
// The first failure cancels the other drains; rows already deleted stay deleted.
func (s *Service) ClearAll(ctx context.Context) (ClearResult, error) {
	var res ClearResult
	targets := []struct {
		collection
		count *int
	}{
		{collection{"progress", s.progress}, &res.Progress},
		{collection{"leaderboard", s.leaderboard}, &res.Leaderboard},
		{collection{"trials", s.trials}, &res.Trials},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range targets {
		g.Go(func() error {
			n, err := s.drain(gctx, t.collection)
			*t.count = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	s.log.InfoContext(ctx, "collections cleared",
		slog.Int("progress", res.Progress),
		slog.Int("leaderboard", res.Leaderboard),
		slog.Int("trials", res.Trials),
	)
	return res, nil
}

func (s *Service) drain(ctx context.Context, c collection) (int, error) {
	total := 0
	for {
		if err := ctx.Err(); err != nil {
			return total, fmt.Errorf("clear %s: %w", c.name, err)
		}

		n, err := c.repo.DeleteBatch(ctx, s.batchSize)
		if err != nil {
			return total, fmt.Errorf("clear %s: %w", c.name, err)
		}
		total += n

		s.log.DebugContext(ctx, "batch deleted",
			slog.String("collection", c.name),
			slog.Int("rows", n),
			slog.Int("total", total),
		)

		if n < s.batchSize {
			return total, nil
		}
	}
}
