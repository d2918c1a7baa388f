package chat

// Roles accepted in a conversation transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single exchange in a conversation transcript. Turns are
// owned by the relay for the duration of one call and never persisted.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Reply carries the upstream model's answer back to the handler.
type Reply struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId"`
}
