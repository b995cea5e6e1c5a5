package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/lexical-decision/internal/domain"
)

type leaderboardService interface {
	Top(ctx context.Context, limit int) ([]domain.RankedEntry, error)
}

// LeaderboardHandler serves the public leaderboard.
type LeaderboardHandler struct {
	svc leaderboardService
	log *slog.Logger
}

// NewLeaderboardHandler creates a LeaderboardHandler.
func NewLeaderboardHandler(svc leaderboardService, logger *slog.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc, log: logger.With("handler", "leaderboard")}
}

type leaderboardEntryResp struct {
	Rank         int       `json:"rank,omitempty"`
	Nickname     string    `json:"nickname"`
	TotalTrials  int       `json:"totalTrials"`
	TotalCorrect int       `json:"totalCorrect"`
	TotalTimeMs  int64     `json:"totalTimeMs"`
	Accuracy     float64   `json:"accuracy"`
	Score        int       `json:"score"`
	LastUpdate   time.Time `json:"lastUpdate"`
}

type leaderboardResponse struct {
	Entries []leaderboardEntryResp `json:"entries"`
}

// Top handles GET /api/leaderboard?limit=N. The service clamps the limit.
func (h *LeaderboardHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	ranked, err := h.svc.Top(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := leaderboardResponse{Entries: make([]leaderboardEntryResp, len(ranked))}
	for i, e := range ranked {
		resp.Entries[i] = toLeaderboardEntry(e.LeaderboardEntry)
		resp.Entries[i].Rank = e.Rank
	}
	writeJSON(w, http.StatusOK, resp)
}

func toLeaderboardEntry(e domain.LeaderboardEntry) leaderboardEntryResp {
	return leaderboardEntryResp{
		Nickname:     e.Nickname,
		TotalTrials:  e.TotalTrials,
		TotalCorrect: e.TotalCorrect,
		TotalTimeMs:  e.TotalTimeMs,
		Accuracy:     e.Accuracy,
		Score:        e.Score,
		LastUpdate:   e.LastUpdate,
	}
}
