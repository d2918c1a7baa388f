package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	chatModel "github.com/mindmate-ai/backend/internal/model/chat"
	"github.com/mindmate-ai/backend/internal/service/relay"
	"github.com/mindmate-ai/backend/pkg/utils"
)

// Error messages are part of the public API contract; the presenting
// client matches on them when substituting its fallback copy.
const (
	msgMessageRequired = "Message is required"
	msgKeyMissing      = "Claude API key not configured"
	msgUpstreamFailed  = "Failed to get response from Claude AI"
	msgInternal        = "Internal server error during chat processing"
)

// Handler exposes the conversation relay over HTTP.
type Handler struct {
	relaySvc *relay.Service
}

// New creates the chat handler.
func New(relaySvc *relay.Service) *Handler {
	return &Handler{relaySvc: relaySvc}
}

// RegisterRoutes registers the chat endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message             string           `json:"message"`
		ConversationHistory []chatModel.Turn `json:"conversationHistory"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		// Malformed bodies are reported with the generic message the
		// original surface used for any unexpected chat failure.
		log.Error().Err(err).Msg("failed to decode chat request")
		utils.RespondError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	reply, err := h.relaySvc.Relay(r.Context(), payload.Message, payload.ConversationHistory)
	if err != nil {
		status, message := mapRelayError(err)
		utils.RespondError(w, status, message)
		return
	}

	utils.RespondJSON(w, http.StatusOK, reply)
}

// mapRelayError translates relay failures into the response codes and
// deliberately generic messages of the public contract.
func mapRelayError(err error) (int, string) {
	switch {
	case errors.Is(err, relay.ErrMessageRequired):
		return http.StatusBadRequest, msgMessageRequired
	case errors.Is(err, relay.ErrCredentialMissing):
		return http.StatusInternalServerError, msgKeyMissing
	case errors.Is(err, relay.ErrUpstream):
		return http.StatusInternalServerError, msgUpstreamFailed
	default:
		log.Error().Err(err).Msg("unexpected chat failure")
		return http.StatusInternalServerError, msgInternal
	}
}
