package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lexical-decision/internal/auth"
	"github.com/heartmarshall/lexical-decision/internal/config"
	"github.com/heartmarshall/lexical-decision/internal/transport/middleware"
	"github.com/heartmarshall/lexical-decision/internal/transport/rest"
)

// RouterDeps holds everything NewRouter mounts.
type RouterDeps struct {
	Logger      *slog.Logger
	Config      *config.Config
	Tokens      *auth.JWTManager
	Limiter     *middleware.RateLimiter
	Health      *rest.HealthHandler
	Experiment  *rest.ExperimentHandler
	Leaderboard *rest.LeaderboardHandler
	Admin       *rest.AdminHandler
}

// NewRouter builds the HTTP handler: probes at the root, the API under /api.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	limited := d.Limiter.Limit(d.Config.Server.RateLimitPerMinute)
	participant := middleware.RequireRole(auth.RoleParticipant)
	adminOnly := middleware.RequireRole(auth.RoleAdmin)

	route := func(pattern string, h http.HandlerFunc, mws ...middleware.Middleware) {
		mux.Handle(pattern, middleware.Chain(mws...)(h))
	}

	// Participants.
	route("POST /api/participants", d.Experiment.Register, limited)
	route("GET /api/participants/me", d.Experiment.Progress, participant)

	// Sessions.
	route("POST /api/sessions", d.Experiment.StartSession, participant)
	route("GET /api/sessions/{id}", d.Experiment.GetSession, participant)
	route("POST /api/sessions/{id}/trials", d.Experiment.RecordTrial, participant)
	route("POST /api/sessions/{id}/trials/batch", d.Experiment.RecordTrials, participant)
	route("POST /api/sessions/{id}/complete", d.Experiment.CompleteSession, participant)

	// Leaderboard.
	route("GET /api/leaderboard", d.Leaderboard.Top)

	// Admin.
	route("POST /api/admin/login", d.Admin.Login, limited)
	route("POST /api/admin/leaderboard/recalculate", d.Admin.Recalculate, adminOnly)
	route("POST /api/admin/clear", d.Admin.Clear, adminOnly)

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.CORS(d.Config.CORS),
		middleware.Auth(d.Tokens, auth.RoleParticipant),
	)(mux)
}
