package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexical-decision/internal/domain"
	"github.com/heartmarshall/lexical-decision/internal/service/experiment"
)

// experimentService defines the minimal interface needed by ExperimentHandler.
type experimentService interface {
	RegisterParticipant(ctx context.Context, input experiment.RegisterInput) (*experiment.Registration, error)
	GetProgress(ctx context.Context) (*domain.ParticipantProgress, error)
	StartSession(ctx context.Context, isTest bool) (*domain.Session, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)
	RecordTrial(ctx context.Context, input experiment.RecordTrialInput) (experiment.TrialProgress, error)
	RecordTrials(ctx context.Context, input experiment.RecordTrialsInput) (experiment.TrialProgress, error)
	CompleteSession(ctx context.Context, sessionID uuid.UUID) (*experiment.CompletionResult, error)
}

// ExperimentHandler serves participant and session endpoints.
type ExperimentHandler struct {
	svc experimentService
	log *slog.Logger
}

// NewExperimentHandler creates an ExperimentHandler.
func NewExperimentHandler(svc experimentService, logger *slog.Logger) *ExperimentHandler {
	return &ExperimentHandler{svc: svc, log: logger.With("handler", "experiment")}
}

// ---------------------------------------------------------------------------
// Request / response types
// ---------------------------------------------------------------------------

type registerRequest struct {
	Nickname string `json:"nickname"`
}

type startSessionRequest struct {
	IsTest bool `json:"isTest"`
}

type trialOutcomeRequest struct {
	TrialIndex     int  `json:"trialIndex"`
	IsCorrect      bool `json:"isCorrect"`
	ReactionTimeMs int  `json:"reactionTimeMs"`
}

type trialBatchRequest struct {
	Outcomes []trialOutcomeRequest `json:"outcomes"`
}

type registrationResponse struct {
	ParticipantID string           `json:"participantId"`
	Token         string           `json:"token"`
	Progress      progressResponse `json:"progress"`
}

type progressResponse struct {
	Nickname        string     `json:"nickname"`
	CompletedImages []string   `json:"completedImages"`
	TotalSessions   int        `json:"totalSessions"`
	LastSessionAt   *time.Time `json:"lastSessionAt,omitempty"`
}

type imageResponse struct {
	FileName    string `json:"fileName"`
	URL         string `json:"url"`
	TargetWord  string `json:"targetWord"`
	AntonymWord string `json:"antonymWord"`
}

type trialResponse struct {
	ImageID  string `json:"imageId"`
	Word     string `json:"word"`
	WordType string `json:"wordType"`
}

type sessionResponse struct {
	ID                string          `json:"id"`
	ImageIDs          []string        `json:"imageIds"`
	Images            []imageResponse `json:"images"`
	Trials            []trialResponse `json:"trials"`
	CurrentTrialIndex int             `json:"currentTrialIndex"`
	Completed         bool            `json:"completed"`
	IsTest            bool            `json:"isTest"`
	StartedAt         time.Time       `json:"startedAt"`
}

type trialProgressResponse struct {
	CurrentTrialIndex int `json:"currentTrialIndex"`
	Remaining         int `json:"remaining"`
}

type ratingResponse struct {
	TimeScore          int     `json:"timeScore"`
	AccuracyMultiplier float64 `json:"accuracyMultiplier"`
	RoundsCompleted    int     `json:"roundsCompleted"`
	RoundBonus         float64 `json:"roundBonus"`
	FinalScore         int     `json:"finalScore"`
}

type completionResponse struct {
	SessionID          string                `json:"sessionId"`
	TotalTrials        int                   `json:"totalTrials"`
	TotalCorrect       int                   `json:"totalCorrect"`
	TotalTimeMs        int64                 `json:"totalTimeMs"`
	Accuracy           float64               `json:"accuracy"`
	Score              int                   `json:"score"`
	Rating             ratingResponse        `json:"rating"`
	Leaderboard        *leaderboardEntryResp `json:"leaderboard"`
	TotalSessions      int                   `json:"totalSessions"`
	PersistenceDelayed bool                  `json:"persistenceDelayed"`
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// Register handles POST /api/participants.
func (h *ExperimentHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reg, err := h.svc.RegisterParticipant(r.Context(), experiment.RegisterInput{Nickname: req.Nickname})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, registrationResponse{
		ParticipantID: reg.ParticipantID.String(),
		Token:         reg.Token,
		Progress:      toProgressResponse(reg.Progress),
	})
}

// Progress handles GET /api/participants/me.
func (h *ExperimentHandler) Progress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.svc.GetProgress(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(progress))
}

// StartSession handles POST /api/sessions. An empty body starts a regular session.
func (h *ExperimentHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	sess, err := h.svc.StartSession(r.Context(), req.IsTest)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(sess))
}

// GetSession handles GET /api/sessions/{id}.
func (h *ExperimentHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromPath(w, r)
	if !ok {
		return
	}

	sess, err := h.svc.GetSession(r.Context(), sessionID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

// RecordTrial handles POST /api/sessions/{id}/trials.
func (h *ExperimentHandler) RecordTrial(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromPath(w, r)
	if !ok {
		return
	}
	var req trialOutcomeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.RecordTrial(r.Context(), experiment.RecordTrialInput{
		SessionID:      sessionID,
		TrialIndex:     req.TrialIndex,
		IsCorrect:      req.IsCorrect,
		ReactionTimeMs: req.ReactionTimeMs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, trialProgressResponse(p))
}

// RecordTrials handles POST /api/sessions/{id}/trials/batch.
func (h *ExperimentHandler) RecordTrials(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromPath(w, r)
	if !ok {
		return
	}
	var req trialBatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	outcomes := make([]domain.TrialOutcome, len(req.Outcomes))
	for i, o := range req.Outcomes {
		outcomes[i] = domain.TrialOutcome(o)
	}

	p, err := h.svc.RecordTrials(r.Context(), experiment.RecordTrialsInput{
		SessionID: sessionID,
		Outcomes:  outcomes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, trialProgressResponse(p))
}

// CompleteSession handles POST /api/sessions/{id}/complete.
func (h *ExperimentHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionIDFromPath(w, r)
	if !ok {
		return
	}

	res, err := h.svc.CompleteSession(r.Context(), sessionID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := completionResponse{
		SessionID:          res.SessionID.String(),
		TotalTrials:        res.Stats.TotalTrials,
		TotalCorrect:       res.Stats.TotalCorrect,
		TotalTimeMs:        res.Stats.TotalTimeMs,
		Accuracy:           res.Score.Accuracy,
		Score:              res.Score.Score,
		Rating:             ratingResponse(res.Rating),
		PersistenceDelayed: res.PersistenceDelayed,
	}
	if res.Progress != nil {
		resp.TotalSessions = res.Progress.TotalSessions
	}
	if res.Leaderboard != nil {
		e := toLeaderboardEntry(*res.Leaderboard)
		resp.Leaderboard = &e
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func sessionIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}

func toProgressResponse(p *domain.ParticipantProgress) progressResponse {
	images := p.CompletedImages
	if images == nil {
		images = []string{}
	}
	return progressResponse{
		Nickname:        p.Nickname,
		CompletedImages: images,
		TotalSessions:   p.TotalSessions,
		LastSessionAt:   p.LastSessionAt,
	}
}

func toSessionResponse(s *domain.Session) sessionResponse {
	images := make([]imageResponse, len(s.Images))
	for i, img := range s.Images {
		images[i] = imageResponse{
			FileName:    img.FileName,
			URL:         img.URL,
			TargetWord:  img.TargetWord,
			AntonymWord: img.AntonymWord,
		}
	}
	trials := make([]trialResponse, len(s.Trials))
	for i, t := range s.Trials {
		trials[i] = trialResponse{ImageID: t.ImageID, Word: t.Word, WordType: t.WordType.String()}
	}
	return sessionResponse{
		ID:                s.ID.String(),
		ImageIDs:          s.ImageIDs,
		Images:            images,
		Trials:            trials,
		CurrentTrialIndex: s.CurrentTrialIndex,
		Completed:         s.Completed,
		IsTest:            s.IsTest,
		StartedAt:         s.StartedAt,
	}
}
