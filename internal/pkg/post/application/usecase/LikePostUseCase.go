package usecase

import (
	"context"
	"fmt"

	post "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/application/domain"
	repository "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/persistence/repository/port"
)

// LikePostInput identifies the post and the caller toggling their like.
type LikePostInput struct {
	PostID string
	UserID string
}

// LikePostUseCase toggles the caller's like on a post: liked posts are
// unliked, everything else is liked.
type LikePostUseCase struct {
	Repo repository.PostRepository
}

func NewLikePostUseCase(repo repository.PostRepository) *LikePostUseCase {
	return &LikePostUseCase{Repo: repo}
}

// Execute returns true when the toggle ended with the post liked.
func (uc *LikePostUseCase) Execute(ctx context.Context, in LikePostInput) (bool, error) {
	p, found, err := uc.Repo.GetPost(ctx, in.PostID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !found {
		return false, post.ErrPostNotFound
	}

	if p.LikedBy(in.UserID) {
		if err := uc.Repo.UnlikePost(ctx, in.PostID, in.UserID); err != nil {
			return false, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return false, nil
	}
	if err := uc.Repo.LikePost(ctx, in.PostID, in.UserID); err != nil {
		return false, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return true, nil
}
