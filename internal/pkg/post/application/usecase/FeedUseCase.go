package usecase

import (
	"context"
	"fmt"

	post "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/application/domain"
	repository "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/persistence/repository/port"
)

// FeedUseCase returns posts from the users the caller follows, newest first.
type FeedUseCase struct {
	Repo repository.PostRepository
}

func NewFeedUseCase(repo repository.PostRepository) *FeedUseCase {
	return &FeedUseCase{Repo: repo}
}

func (uc *FeedUseCase) Execute(ctx context.Context, userID string) ([]post.Post, error) {
	if userID == "" {
		return nil, fmt.Errorf("userId is required")
	}
	posts, err := uc.Repo.ListFeed(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return posts, nil
}
