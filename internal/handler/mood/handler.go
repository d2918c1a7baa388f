package mood

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/mindmate-ai/backend/internal/analysis/insights"
	"github.com/mindmate-ai/backend/internal/service/journal"
	"github.com/mindmate-ai/backend/pkg/utils"
)

const (
	msgMoodRequired  = "Mood is required"
	msgSaveFailed    = "Failed to save mood"
	msgHistoryFailed = "Failed to fetch mood history"
	msgSummaryFailed = "Failed to fetch mood summary"
)

// Handler exposes the mood journal and its analytics over HTTP.
type Handler struct {
	journalSvc *journal.Service
}

// New creates the mood handler.
func New(journalSvc *journal.Service) *Handler {
	return &Handler{journalSvc: journalSvc}
}

// RegisterRoutes registers the mood endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/mood", h.handleSaveMood)
	r.Get("/mood/history/{userID}", h.handleHistory)
	r.Get("/mood/summary/{userID}", h.handleSummary)
}

func (h *Handler) handleSaveMood(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID string `json:"userId"`
		Mood   string `json:"mood"`
		Note   string `json:"note"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Error().Err(err).Msg("failed to decode mood request")
		utils.RespondError(w, http.StatusInternalServerError, msgSaveFailed)
		return
	}

	if err := h.journalSvc.Save(r.Context(), payload.UserID, payload.Mood, payload.Note); err != nil {
		if errors.Is(err, journal.ErrMoodRequired) {
			utils.RespondError(w, http.StatusBadRequest, msgMoodRequired)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, msgSaveFailed)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Mood saved successfully",
	})
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	entries, err := h.journalSvc.History(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, msgHistoryFailed)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"moods": entries})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	entries, err := h.journalSvc.History(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, msgSummaryFailed)
		return
	}

	utils.RespondJSON(w, http.StatusOK, insights.Summarize(entries))
}
