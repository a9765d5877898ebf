package usecase

import (
	"context"
	"fmt"

	post "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/application/domain"
	repository "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/persistence/repository/port"
)

// UserPostsUseCase returns a user's posts by username, newest first.
type UserPostsUseCase struct {
	Repo repository.PostRepository
}

func NewUserPostsUseCase(repo repository.PostRepository) *UserPostsUseCase {
	return &UserPostsUseCase{Repo: repo}
}

func (uc *UserPostsUseCase) Execute(ctx context.Context, username string) ([]post.Post, error) {
	if username == "" {
		return nil, post.ErrUserNotFound
	}
	posts, found, err := uc.Repo.ListByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !found {
		return nil, post.ErrUserNotFound
	}
	return posts, nil
}
