package usecase

import (
	"context"
	"fmt"

	post "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/application/domain"
	repository "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/persistence/repository/port"
)

// DeletePostInput identifies the post and the caller requesting its removal.
type DeletePostInput struct {
	PostID      string
	RequesterID string
}

// DeletePostUseCase removes a post; only its author may do so.
type DeletePostUseCase struct {
	Repo repository.PostRepository
}

func NewDeletePostUseCase(repo repository.PostRepository) *DeletePostUseCase {
	return &DeletePostUseCase{Repo: repo}
}

func (uc *DeletePostUseCase) Execute(ctx context.Context, in DeletePostInput) error {
	p, found, err := uc.Repo.GetPost(ctx, in.PostID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !found {
		return post.ErrPostNotFound
	}
	if p.Author != in.RequesterID {
		return post.ErrNotAuthor
	}
	if err := uc.Repo.DeletePost(ctx, in.PostID); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
