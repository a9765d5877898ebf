// Package event defines the wire protocol frames exchanged with realtime
// clients for the messaging context. Frames are JSON envelopes discriminated
// by a type field.
package event

import (
	"time"

	messaging "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/domain"
)

// Event names on the realtime channel. getOnlineUsers is owned by the
// realtime hub itself.
const (
	MarkMessagesAsSeen = "markMessagesAsSeen"
	MessagesSeen       = "messagesSeen"
	NewMessage         = "newMessage"
)

// MarkSeenRequest is the client->server frame acknowledging a conversation.
// UserID is an untrusted hint that must match the handshake-bound identity.
type MarkSeenRequest struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversationId"`
	UserID         string `json:"userId"`
}

// MessagesSeenFrame is delivered to the original sender's connection when the
// other participant acknowledges the conversation.
type MessagesSeenFrame struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversationId"`
}

// NewMessageFrame carries the full persisted message record to the
// recipient's connection.
type NewMessageFrame struct {
	Type    string         `json:"type"`
	Message MessagePayload `json:"message"`
}

// MessagePayload mirrors the persisted message record on the wire.
type MessagePayload struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Sender         string    `json:"sender"`
	Text           string    `json:"text"`
	Img            string    `json:"img"`
	Seen           bool      `json:"seen"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewMessageSeenFrame builds the seen notification for a conversation.
func NewMessageSeenFrame(conversationID string) MessagesSeenFrame {
	return MessagesSeenFrame{Type: MessagesSeen, ConversationID: conversationID}
}

// NewMessageDelivery wraps a persisted message in its delivery frame.
func NewMessageDelivery(m messaging.Message) NewMessageFrame {
	return NewMessageFrame{Type: NewMessage, Message: ToPayload(m)}
}

// ToPayload converts a domain message to its wire shape.
func ToPayload(m messaging.Message) MessagePayload {
	return MessagePayload{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Sender:         m.Sender,
		Text:           m.Text,
		Img:            m.ImageURL,
		Seen:           m.Seen,
		CreatedAt:      m.CreatedAt,
	}
}
