package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	cacheport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/cache/port"
	messaging "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/domain"
	repository "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/persistence/repository/port"
)

const conversationsCacheTTL = 30 * time.Second

func conversationsCacheKey(userID string) string {
	return "conversations:" + userID
}

// ListConversationsInput wraps the caller identity.
type ListConversationsInput struct {
	UserID string
}

// ListConversationsUseCase returns the caller's conversations ordered by most
// recent activity. Results are cached per user with a short TTL; sends
// invalidate both participants' entries.
type ListConversationsUseCase struct {
	Repo  repository.MessagingRepository
	Cache cacheport.Cache
}

func NewListConversationsUseCase(repo repository.MessagingRepository, cache cacheport.Cache) *ListConversationsUseCase {
	return &ListConversationsUseCase{Repo: repo, Cache: cache}
}

func (uc *ListConversationsUseCase) Execute(ctx context.Context, in ListConversationsInput) ([]messaging.Conversation, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("userId is required")
	}

	key := conversationsCacheKey(in.UserID)
	if uc.Cache != nil {
		if raw, err := uc.Cache.Get(ctx, key); err == nil {
			var cached []messaging.Conversation
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	convs, err := uc.Repo.ListConversationsForUser(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if uc.Cache != nil {
		if raw, err := json.Marshal(convs); err == nil {
			// Best-effort: a cold cache only costs an extra query.
			_ = uc.Cache.Set(ctx, key, string(raw), conversationsCacheTTL)
		}
	}

	return convs, nil
}
