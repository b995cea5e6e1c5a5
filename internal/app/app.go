package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/lexical-decision/internal/adapter/postgres"
	"github.com/heartmarshall/lexical-decision/internal/adapter/postgres/leaderboard"
	"github.com/heartmarshall/lexical-decision/internal/adapter/postgres/progress"
	"github.com/heartmarshall/lexical-decision/internal/adapter/postgres/trial"
	"github.com/heartmarshall/lexical-decision/internal/auth"
	"github.com/heartmarshall/lexical-decision/internal/catalog"
	"github.com/heartmarshall/lexical-decision/internal/config"
	"github.com/heartmarshall/lexical-decision/internal/service/admin"
	"github.com/heartmarshall/lexical-decision/internal/service/experiment"
	"github.com/heartmarshall/lexical-decision/internal/service/lexical"
	"github.com/heartmarshall/lexical-decision/internal/service/scoring"
	"github.com/heartmarshall/lexical-decision/internal/service/session"
	"github.com/heartmarshall/lexical-decision/internal/transport/middleware"
	"github.com/heartmarshall/lexical-decision/internal/transport/rest"
	"github.com/heartmarshall/lexical-decision/pkg/clock"
	"github.com/heartmarshall/lexical-decision/pkg/randutil"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, loads the stimulus catalog, wires the
// services and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// 1. Database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if !cfg.Database.SkipMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// 2. Stimulus catalog.
	stimuli, err := catalog.Load(ctx, logger, cfg.Catalog)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	// 3. Repositories.
	txm := postgres.NewTxManager(pool)
	progressRepo := progress.New(pool)
	leaderboardRepo := leaderboard.New(pool)
	trialRepo := trial.New(pool)

	// 4. Services.
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.ParticipantTTL, cfg.Auth.AdminTTL)
	wallClock := clock.Real{}
	rng := randutil.NewRandom()

	mutator := lexical.NewMutator(rng, cfg.Experiment.MaxGenerationAttempts)
	builder := session.NewBuilder(stimuli, mutator, rng, session.Config{
		PairsPerSession:       cfg.Experiment.PairsPerSession,
		NonWordsPerImage:      cfg.Experiment.NonWordsPerImage,
		MaxGenerationAttempts: cfg.Experiment.MaxGenerationAttempts,
	})

	scoringService := scoring.NewService(logger, leaderboardRepo, txm, wallClock, cfg.Admin.RecalcPageSize)

	experimentService := experiment.NewService(
		logger, progressRepo, trialRepo, scoringService, builder, jwtMgr, wallClock,
		experiment.Config{
			ParticipantRole: auth.RoleParticipant,
			CacheSize:       cfg.Sessions.CacheSize,
			SessionTTL:      cfg.Sessions.TTL,
		},
	)

	adminService := admin.NewService(
		logger, progressRepo, leaderboardRepo, trialRepo, jwtMgr,
		admin.Config{
			PasswordHash: cfg.Auth.AdminPasswordHash,
			BatchSize:    cfg.Admin.DeleteBatchSize,
		},
	)

	// 5. HTTP.
	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := NewRouter(RouterDeps{
		Logger:      logger,
		Config:      cfg,
		Tokens:      jwtMgr,
		Limiter:     limiter,
		Health:      rest.NewHealthHandler(pool, stimuli, BuildVersion()),
		Experiment:  rest.NewExperimentHandler(experimentService, logger),
		Leaderboard: rest.NewLeaderboardHandler(scoringService, logger),
		Admin:       rest.NewAdminHandler(adminService, scoringService, logger),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, logger, cfg.Server.ShutdownTimeout)
}

// serve runs srv until ctx is canceled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
