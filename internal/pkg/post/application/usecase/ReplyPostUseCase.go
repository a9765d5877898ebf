package usecase

import (
	"context"
	"fmt"

	post "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/application/domain"
	repository "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/persistence/repository/port"
)

// ReplyPostInput carries a new reply to an existing post.
type ReplyPostInput struct {
	PostID   string
	AuthorID string
	Text     string
}

// ReplyPostUseCase appends a reply to a post.
type ReplyPostUseCase struct {
	Repo repository.PostRepository
}

func NewReplyPostUseCase(repo repository.PostRepository) *ReplyPostUseCase {
	return &ReplyPostUseCase{Repo: repo}
}

func (uc *ReplyPostUseCase) Execute(ctx context.Context, in ReplyPostInput) (*post.Reply, error) {
	_, found, err := uc.Repo.GetPost(ctx, in.PostID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !found {
		return nil, post.ErrPostNotFound
	}

	reply, err := post.NewReply(post.Reply{
		PostID: in.PostID,
		Author: in.AuthorID,
		Text:   in.Text,
	})
	if err != nil {
		return nil, err
	}

	id, err := uc.Repo.AddReply(ctx, *reply)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	reply.ID = id
	return reply, nil
}
