package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	chatModel "github.com/mindmate-ai/backend/internal/model/chat"
	"github.com/mindmate-ai/backend/internal/service/relay"
)

type stubClient struct {
	reply chatModel.Reply
	err   error
	calls int
}

func (s *stubClient) Complete(context.Context, string, []chatModel.Turn) (chatModel.Reply, error) {
	s.calls++
	return s.reply, s.err
}

func setupRouter(client *stubClient, apiKey string) *chi.Mux {
	relaySvc := relay.NewService(client, relay.Config{APIKey: apiKey})
	handler := New(relaySvc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postChat(r http.Handler, body map[string]any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return body["error"]
}

func TestChatSuccess(t *testing.T) {
	client := &stubClient{reply: chatModel.Reply{Message: "I'm listening.", ConversationID: "msg_01"}}
	r := setupRouter(client, "sk-test")

	resp := postChat(r, map[string]any{
		"message": "exams are crushing me",
		"conversationHistory": []map[string]string{
			{"role": "user", "content": "hi"},
			{"role": "assistant", "content": "hello"},
		},
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body chatModel.Reply
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Message != "I'm listening." || body.ConversationID != "msg_01" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestChatEmptyMessage(t *testing.T) {
	client := &stubClient{}
	r := setupRouter(client, "sk-test")

	resp := postChat(r, map[string]any{"message": ""})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if msg := decodeError(t, resp); msg != "Message is required" {
		t.Fatalf("unexpected error message: %q", msg)
	}
	if client.calls != 0 {
		t.Fatalf("expected no outbound call, got %d", client.calls)
	}
}

func TestChatMissingAPIKey(t *testing.T) {
	client := &stubClient{}
	r := setupRouter(client, "")

	resp := postChat(r, map[string]any{"message": "hello"})

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if msg := decodeError(t, resp); msg != "Claude API key not configured" {
		t.Fatalf("unexpected error message: %q", msg)
	}
	if client.calls != 0 {
		t.Fatalf("expected no outbound call, got %d", client.calls)
	}
}

func TestChatUpstreamFailure(t *testing.T) {
	client := &stubClient{err: errors.New("transport: connection reset")}
	r := setupRouter(client, "sk-test")

	resp := postChat(r, map[string]any{"message": "hello"})

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if msg := decodeError(t, resp); msg != "Failed to get response from Claude AI" {
		t.Fatalf("unexpected error message: %q", msg)
	}
}

func TestChatMalformedBody(t *testing.T) {
	client := &stubClient{}
	r := setupRouter(client, "sk-test")

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if msg := decodeError(t, resp); msg != "Internal server error during chat processing" {
		t.Fatalf("unexpected error message: %q", msg)
	}
}
