package usecase

import (
	"context"
	"fmt"
	"time"

	cacheport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/cache/port"
	mediaport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/media/port"
	messaging "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/domain"
	repository "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/persistence/repository/port"
)

// SendMessageInput carries the data needed to send a direct message.
// ImageData, when set, is raw client-submitted image content (base64 data URL)
// that is pushed through the hosting provider before persistence.
type SendMessageInput struct {
	SenderID    string
	RecipientID string
	Text        string
	ImageData   string
}

// SendMessageUseCase persists a direct message, creating the conversation for
// the participant pair on first contact and refreshing its lastMessage
// snapshot. The durable write is the source of truth; realtime delivery is the
// caller's concern and happens only after this succeeds.
type SendMessageUseCase struct {
	Repo     repository.MessagingRepository
	Uploader mediaport.Uploader
	Cache    cacheport.Cache
}

func NewSendMessageUseCase(repo repository.MessagingRepository, uploader mediaport.Uploader, cache cacheport.Cache) *SendMessageUseCase {
	return &SendMessageUseCase{Repo: repo, Uploader: uploader, Cache: cache}
}

// Execute uploads the optional image, persists the message and updates the
// conversation snapshot. Returns the persisted record.
func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*messaging.Message, error) {
	if in.SenderID == "" || in.RecipientID == "" {
		return nil, fmt.Errorf("senderId and recipientId are required")
	}
	if in.SenderID == in.RecipientID {
		return nil, messaging.ErrSelfConversation
	}

	conv, found, err := uc.Repo.FindConversationByParticipants(ctx, in.SenderID, in.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	now := time.Now().UTC()
	if !found {
		conv = messaging.Conversation{
			Participants: [2]string{in.SenderID, in.RecipientID},
			CreatedAt:    now,
			LastMessage: messaging.LastMessage{
				Text:      in.Text,
				Sender:    in.SenderID,
				CreatedAt: now,
			},
		}
		id, err := uc.Repo.CreateConversation(ctx, conv)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		conv.ID = id
	}

	imageURL := ""
	if in.ImageData != "" {
		if uc.Uploader == nil {
			return nil, fmt.Errorf("image uploads are not supported")
		}
		imageURL, err = uc.Uploader.Upload(ctx, in.ImageData)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
	}

	msg, err := messaging.NewMessage(messaging.Message{
		ConversationID: conv.ID,
		Sender:         in.SenderID,
		Text:           in.Text,
		ImageURL:       imageURL,
		Seen:           false,
		CreatedAt:      now,
	})
	if err != nil {
		return nil, err
	}

	id, err := uc.Repo.SaveMessage(ctx, *msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	msg.ID = id

	snapshot := messaging.LastMessage{
		Text:      msg.Text,
		Sender:    msg.Sender,
		Seen:      false,
		CreatedAt: msg.CreatedAt,
	}
	if err := uc.Repo.UpdateLastMessage(ctx, conv.ID, snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// Both participants see new activity; drop their cached conversation lists.
	if uc.Cache != nil {
		_, _ = uc.Cache.Del(ctx, conversationsCacheKey(in.SenderID), conversationsCacheKey(in.RecipientID))
	}

	return msg, nil
}
