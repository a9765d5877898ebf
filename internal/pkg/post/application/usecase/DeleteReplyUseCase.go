package usecase

import (
	"context"
	"fmt"

	post "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/application/domain"
	repository "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/persistence/repository/port"
)

// DeleteReplyInput identifies the reply and the caller requesting its removal.
// PostID scopes the lookup so a reply id from another post reads as missing.
type DeleteReplyInput struct {
	PostID      string
	ReplyID     string
	RequesterID string
}

// DeleteReplyUseCase removes a reply; only the reply's author may do so.
type DeleteReplyUseCase struct {
	Repo repository.PostRepository
}

func NewDeleteReplyUseCase(repo repository.PostRepository) *DeleteReplyUseCase {
	return &DeleteReplyUseCase{Repo: repo}
}

func (uc *DeleteReplyUseCase) Execute(ctx context.Context, in DeleteReplyInput) error {
	reply, found, err := uc.Repo.GetReply(ctx, in.ReplyID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !found || reply.PostID != in.PostID {
		return post.ErrReplyNotFound
	}
	if reply.Author != in.RequesterID {
		return post.ErrNotAuthor
	}
	if err := uc.Repo.DeleteReply(ctx, in.ReplyID); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
