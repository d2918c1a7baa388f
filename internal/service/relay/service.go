// Package relay forwards a user message plus conversation history to
// the external LLM under a fixed safety-oriented system prompt.
package relay

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mindmate-ai/backend/internal/model/chat"
)

var (
	ErrMessageRequired   = errors.New("message is required")
	ErrCredentialMissing = errors.New("llm credential not configured")
	ErrUpstream          = errors.New("llm request failed")
)

// CompletionClient is the narrow upstream capability the relay
// depends on, substitutable with a fake in tests.
type CompletionClient interface {
	Complete(ctx context.Context, system string, turns []chat.Turn) (chat.Reply, error)
}

// Config carries the relay's construction-time settings. The
// credential is injected here and never read from the environment
// mid-call.
type Config struct {
	APIKey string
	// HistoryLimit caps the number of transcript turns sent upstream,
	// keeping the most recent ones. Zero sends the full history.
	HistoryLimit int
}

// Service relays conversations to the upstream model. It keeps no
// state between calls; each invocation is pure given its inputs and
// the configured credential.
type Service struct {
	client CompletionClient
	cfg    Config
}

// NewService creates a relay backed by the given completion client.
func NewService(client CompletionClient, cfg Config) *Service {
	return &Service{client: client, cfg: cfg}
}

// Relay validates the message, assembles the outbound transcript, and
// forwards it to the upstream model. Validation and credential checks
// happen before any outbound call. The relay performs no retry.
func (s *Service) Relay(ctx context.Context, message string, history []chat.Turn) (chat.Reply, error) {
	if strings.TrimSpace(message) == "" {
		return chat.Reply{}, ErrMessageRequired
	}
	if s.cfg.APIKey == "" {
		return chat.Reply{}, ErrCredentialMissing
	}

	turns := s.buildTranscript(message, history)

	reply, err := s.client.Complete(ctx, systemPrompt, turns)
	if err != nil {
		log.Error().Err(err).Int("turns", len(turns)).Msg("upstream completion failed")
		return chat.Reply{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if reply.ConversationID == "" {
		reply.ConversationID = uuid.NewString()
	}

	log.Debug().Str("conversation", reply.ConversationID).Int("length", len(reply.Message)).Msg("relay completed")
	return reply, nil
}

// buildTranscript appends the user message to the supplied history,
// applying the configured window. History content is passed through
// as received; the relay does not validate individual turns.
func (s *Service) buildTranscript(message string, history []chat.Turn) []chat.Turn {
	if limit := s.cfg.HistoryLimit; limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	turns := make([]chat.Turn, 0, len(history)+1)
	turns = append(turns, history...)
	turns = append(turns, chat.Turn{Role: chat.RoleUser, Content: message})
	return turns
}
