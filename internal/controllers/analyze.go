package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"insightd/internal/logging"
	"insightd/internal/models"
	"insightd/internal/services"
)

// AnalyzeController serves the analysis API. It is the boundary where
// the always-succeed guarantee is enforced: apart from the text
// validation, no failure reaches the caller.
type AnalyzeController struct {
	analyzer *services.Analyzer
	tracker  *services.UsageTracker
	history  *models.HistoryService
	logger   *slog.Logger
}

func NewAnalyzeController(
	analyzer *services.Analyzer,
	tracker *services.UsageTracker,
	history *models.HistoryService,
	logger *slog.Logger,
) *AnalyzeController {
	return &AnalyzeController{
		analyzer: analyzer,
		tracker:  tracker,
		history:  history,
		logger:   logger,
	}
}

// PostAnalyze handles POST /analyze. The only client error is a
// missing or non-string text field; everything downstream resolves to
// a 200 carrying either a remote-sourced or fallback-sourced result.
func (c *AnalyzeController) PostAnalyze(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text any `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Text is required"})
		return
	}
	text, ok := payload.Text.(string)
	if !ok || text == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Text is required"})
		return
	}

	result := c.analyzer.Analyze(r.Context(), text)

	if _, err := c.history.Record(r.Context(), text, result); err != nil {
		// History is best-effort; the analysis still succeeds.
		c.logger.Warn("failed to record analysis history", logging.Error(err))
	}

	respondJSON(w, http.StatusOK, result)
}

type statusResponse struct {
	UsageStats     models.UsageStats `json:"usage_stats"`
	APIHealth      string            `json:"api_health"`
	FallbackActive bool              `json:"fallback_active"`
	LastRequest    string            `json:"last_request"`
	RequestsToday  int               `json:"requests_today"`
	ErrorsToday    int               `json:"errors_today"`
}

// GetStatus handles GET /status with a read-only tracker snapshot.
func (c *AnalyzeController) GetStatus(w http.ResponseWriter, r *http.Request) {
	snapshot := c.tracker.Snapshot()

	health := "healthy"
	if snapshot.QuotaExceeded {
		health = "quota_exceeded"
	}
	lastRequest := ""
	if !snapshot.LastRequestTime.IsZero() {
		lastRequest = snapshot.LastRequestTime.UTC().Format(time.RFC3339)
	}

	respondJSON(w, http.StatusOK, statusResponse{
		UsageStats:     snapshot,
		APIHealth:      health,
		FallbackActive: snapshot.FallbackMode,
		LastRequest:    lastRequest,
		RequestsToday:  snapshot.RequestsToday,
		ErrorsToday:    snapshot.ErrorsToday,
	})
}

// GetHistory handles GET /history. Without a configured store it
// returns an empty list rather than an error.
func (c *AnalyzeController) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
			return
		}
		if parsed > 100 {
			parsed = 100
		}
		limit = parsed
	}

	entries, err := c.history.Recent(r.Context(), limit)
	if err != nil {
		c.logger.Error("failed to load analysis history", logging.Error(err))
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load history"})
		return
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}

// GetHistoryEntry handles GET /history/{id}.
func (c *AnalyzeController) GetHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid history id"})
		return
	}

	entry, err := c.history.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrHistoryNotFound) {
			respondJSON(w, http.StatusNotFound, map[string]string{"error": "History entry not found"})
			return
		}
		c.logger.Error("failed to load history entry", logging.Error(err))
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load history"})
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// GetHealthz is a liveness probe.
func (c *AnalyzeController) GetHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
