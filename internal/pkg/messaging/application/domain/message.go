package messaging

import (
	"strings"
	"time"
)

// Message is an immutable log entry in a conversation. Seen transitions
// false -> true exactly once and never reverses.
type Message struct {
	ID             string    `db:"id"`
	ConversationID string    `db:"conversation_id"`
	Sender         string    `db:"sender_id"`
	Text           string    `db:"text"`
	ImageURL       string    `db:"image_url"`
	Seen           bool      `db:"seen"`
	CreatedAt      time.Time `db:"created_at"`
}

// NewMessage validates and normalizes a message before persistence. Text is
// trimmed; a message must carry text or an image.
func NewMessage(m Message) (*Message, error) {
	if m.ConversationID == "" || m.Sender == "" {
		return nil, ErrMissingIdentity
	}

	m.Text = strings.TrimSpace(m.Text)
	if m.Text == "" && m.ImageURL == "" {
		return nil, ErrEmptyMessage
	}

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	return &m, nil
}
