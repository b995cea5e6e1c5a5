package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lexical-decision/internal/service/admin"
	"github.com/heartmarshall/lexical-decision/internal/service/scoring"
)

type adminService interface {
	Login(ctx context.Context, password string) (string, error)
	ClearAll(ctx context.Context) (admin.ClearResult, error)
}

type recalculator interface {
	RecalculateLeaderboardScores(ctx context.Context) (scoring.RecalcResult, error)
}

// AdminHandler serves admin REST endpoints. Routes other than Login must be
// wrapped with the admin role middleware.
type AdminHandler struct {
	admin   adminService
	scoring recalculator
	log     *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(adminSvc adminService, scoringSvc recalculator, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		admin:   adminSvc,
		scoring: scoringSvc,
		log:     logger.With("handler", "admin"),
	}
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

type adminLoginResponse struct {
	Token string `json:"token"`
}

type recalcResponse struct {
	Scanned int `json:"scanned"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

type clearResponse struct {
	Progress    int `json:"progress"`
	Leaderboard int `json:"leaderboard"`
	Trials      int `json:"trials"`
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := h.admin.Login(r.Context(), req.Password)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, adminLoginResponse{Token: token})
}

// Recalculate handles POST /api/admin/leaderboard/recalculate.
func (h *AdminHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	res, err := h.scoring.RecalculateLeaderboardScores(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, recalcResponse(res))
}

// Clear handles POST /api/admin/clear.
func (h *AdminHandler) Clear(w http.ResponseWriter, r *http.Request) {
	res, err := h.admin.ClearAll(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, clearResponse(res))
}
