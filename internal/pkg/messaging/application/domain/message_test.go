package messaging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewMessageTrimsText(t *testing.T) {
	msg, err := NewMessage(Message{ConversationID: "conv-1", Sender: "A1", Text: "  hi  "})
	require.NoError(t, err)
	require.Equal(t, "hi", msg.Text)
	require.False(t, msg.CreatedAt.IsZero())
}

func TestNewMessageRequiresTextOrImage(t *testing.T) {
	_, err := NewMessage(Message{ConversationID: "conv-1", Sender: "A1"})
	require.ErrorIs(t, err, ErrEmptyMessage)

	// Whitespace-only text is empty after trimming.
	_, err = NewMessage(Message{ConversationID: "conv-1", Sender: "A1", Text: "   "})
	require.ErrorIs(t, err, ErrEmptyMessage)

	msg, err := NewMessage(Message{ConversationID: "conv-1", Sender: "A1", ImageURL: "https://media.example/a.png"})
	require.NoError(t, err)
	require.Empty(t, msg.Text)
}

func TestNewMessageRequiresIdentity(t *testing.T) {
	_, err := NewMessage(Message{Sender: "A1", Text: "hi"})
	require.ErrorIs(t, err, ErrMissingIdentity)

	_, err = NewMessage(Message{ConversationID: "conv-1", Text: "hi"})
	require.ErrorIs(t, err, ErrMissingIdentity)
}

func TestNewMessageKeepsExplicitTimestamp(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	msg, err := NewMessage(Message{ConversationID: "conv-1", Sender: "A1", Text: "hi", CreatedAt: at})
	require.NoError(t, err)
	require.Equal(t, at, msg.CreatedAt)
}

func TestConversationParticipants(t *testing.T) {
	conv := Conversation{Participants: [2]string{"A1", "B1"}}

	require.True(t, conv.HasParticipant("A1"))
	require.True(t, conv.HasParticipant("B1"))
	require.False(t, conv.HasParticipant("C1"))

	require.Equal(t, "B1", conv.OtherParticipant("A1"))
	require.Equal(t, "A1", conv.OtherParticipant("B1"))
}
