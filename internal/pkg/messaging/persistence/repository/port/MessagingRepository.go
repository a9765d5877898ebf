package repository

import (
	"context"

	messaging "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/domain"
)

// MessagingRepository defines persistence operations for the messaging domain.
// Absent conversations are reported through the bool, not an error, because an
// unseeded participant pair is a normal branch.
type MessagingRepository interface {
	CreateConversation(ctx context.Context, c messaging.Conversation) (string, error)
	GetConversation(ctx context.Context, conversationID string) (messaging.Conversation, bool, error)
	FindConversationByParticipants(ctx context.Context, userA string, userB string) (messaging.Conversation, bool, error)
	UpdateLastMessage(ctx context.Context, conversationID string, snapshot messaging.LastMessage) error
	ListConversationsForUser(ctx context.Context, userID string) ([]messaging.Conversation, error)

	SaveMessage(ctx context.Context, m messaging.Message) (string, error)
	ListMessages(ctx context.Context, conversationID string) ([]messaging.Message, error)

	// MarkMessagesSeen flips every unseen message in the conversation to seen
	// and sets the lastMessage.seen snapshot. Idempotent.
	MarkMessagesSeen(ctx context.Context, conversationID string) error
}
