package usecase

import (
	"context"
	"fmt"

	post "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/application/domain"
	repository "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/persistence/repository/port"
)

// GetPostUseCase fetches a single post with its likes and replies.
type GetPostUseCase struct {
	Repo repository.PostRepository
}

func NewGetPostUseCase(repo repository.PostRepository) *GetPostUseCase {
	return &GetPostUseCase{Repo: repo}
}

func (uc *GetPostUseCase) Execute(ctx context.Context, postID string) (post.Post, error) {
	if postID == "" {
		return post.Post{}, post.ErrPostNotFound
	}
	p, found, err := uc.Repo.GetPost(ctx, postID)
	if err != nil {
		return post.Post{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !found {
		return post.Post{}, post.ErrPostNotFound
	}
	return p, nil
}
