package usecase

import (
	"context"
	"fmt"

	messaging "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/domain"
	repository "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/persistence/repository/port"
)

// MarkSeenInput identifies the conversation and the reader acknowledging it.
// ReaderID must be the handshake-bound identity of the requesting connection;
// the caller is responsible for that guard.
type MarkSeenInput struct {
	ConversationID string
	ReaderID       string
}

// MarkSeenUseCase flips every unseen message in the conversation to seen and
// updates the lastMessage snapshot. Idempotent: repeating the call on an
// already-seen conversation changes nothing durably.
type MarkSeenUseCase struct {
	Repo repository.MessagingRepository
}

func NewMarkSeenUseCase(repo repository.MessagingRepository) *MarkSeenUseCase {
	return &MarkSeenUseCase{Repo: repo}
}

// Execute applies the seen transition and returns the other participant's id
// so the caller can notify their live connection, if any.
func (uc *MarkSeenUseCase) Execute(ctx context.Context, in MarkSeenInput) (string, error) {
	if in.ConversationID == "" || in.ReaderID == "" {
		return "", fmt.Errorf("conversationId and readerId are required")
	}

	conv, found, err := uc.Repo.GetConversation(ctx, in.ConversationID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !found {
		return "", messaging.ErrConversationNotFound
	}
	if !conv.HasParticipant(in.ReaderID) {
		return "", messaging.ErrNotParticipant
	}

	if err := uc.Repo.MarkMessagesSeen(ctx, in.ConversationID); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return conv.OtherParticipant(in.ReaderID), nil
}
