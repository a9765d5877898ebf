package messaging

import "time"

// LastMessage is the denormalized snapshot stored on a conversation. Its Seen
// flag must always reflect the seen-state of the newest message only.
type LastMessage struct {
	Text      string    `db:"last_message_text"`
	Sender    string    `db:"last_message_sender"`
	Seen      bool      `db:"last_message_seen"`
	CreatedAt time.Time `db:"last_message_created_at"`
}

// Conversation is a direct-message thread between exactly two participants.
type Conversation struct {
	ID           string      `db:"id"`
	Participants [2]string   `db:"-"`
	LastMessage  LastMessage `db:"-"`
	CreatedAt    time.Time   `db:"created_at"`
}

// HasParticipant tells whether userID is one of the two participants.
func (c Conversation) HasParticipant(userID string) bool {
	return userID != "" && (c.Participants[0] == userID || c.Participants[1] == userID)
}

// OtherParticipant returns the counterpart of userID, or "" if userID is not
// a participant.
func (c Conversation) OtherParticipant(userID string) string {
	switch userID {
	case c.Participants[0]:
		return c.Participants[1]
	case c.Participants[1]:
		return c.Participants[0]
	default:
		return ""
	}
}
