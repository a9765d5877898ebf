package usecase

import (
	"context"
	"fmt"

	messaging "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/domain"
	repository "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/persistence/repository/port"
)

// GetMessageInput identifies the conversation by the two users involved.
type GetMessageInput struct {
	UserID      string
	OtherUserID string
}

// GetMessageUseCase fetches the message history between two users, oldest
// first. This pull path is the correctness backstop for messages that were
// never pushed in realtime.
type GetMessageUseCase struct {
	Repo repository.MessagingRepository
}

func NewGetMessageUseCase(repo repository.MessagingRepository) *GetMessageUseCase {
	return &GetMessageUseCase{Repo: repo}
}

func (uc *GetMessageUseCase) Execute(ctx context.Context, in GetMessageInput) ([]messaging.Message, error) {
	if in.UserID == "" || in.OtherUserID == "" {
		return nil, fmt.Errorf("userId and otherUserId are required")
	}

	conv, found, err := uc.Repo.FindConversationByParticipants(ctx, in.UserID, in.OtherUserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !found {
		return nil, messaging.ErrConversationNotFound
	}

	msgs, err := uc.Repo.ListMessages(ctx, conv.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return msgs, nil
}
