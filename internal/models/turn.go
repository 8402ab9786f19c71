// ABOUTME: ConversationTurn represents a single user/assistant exchange
// ABOUTME: Immutable once appended to a session history
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ConversationTurn is one completed exchange. The reply may be a normal
// answer, a guardrail refusal, or an error reply; the history does not
// distinguish between them.
type ConversationTurn struct {
	TurnID         string    `json:"turn_id"`
	Timestamp      time.Time `json:"timestamp"`
	UserMessage    string    `json:"user_message"`
	AssistantReply string    `json:"assistant_reply"`
}

// NewTurn creates a turn for the given exchange.
func NewTurn(userMessage, assistantReply string) ConversationTurn {
	return ConversationTurn{
		TurnID:         generateTurnID(),
		Timestamp:      time.Now().UTC(),
		UserMessage:    userMessage,
		AssistantReply: assistantReply,
	}
}

// generateTurnID generates a unique turn identifier
func generateTurnID() string {
	return fmt.Sprintf("turn_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}
