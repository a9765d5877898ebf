package usecase

import (
	"context"
	"fmt"
	"strings"

	mediaport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/media/port"
	post "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/application/domain"
	repository "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/persistence/repository/port"
)

// CreatePostInput carries the data to publish a post. At most one of ImageData
// (raw content needing upload) or ImageURL (already hosted) is set.
type CreatePostInput struct {
	AuthorID  string
	Text      string
	ImageData string
	ImageURL  string
}

// CreatePostUseCase validates and persists a new post, pushing raw image data
// through the hosting provider first.
type CreatePostUseCase struct {
	Repo     repository.PostRepository
	Uploader mediaport.Uploader
}

func NewCreatePostUseCase(repo repository.PostRepository, uploader mediaport.Uploader) *CreatePostUseCase {
	return &CreatePostUseCase{Repo: repo, Uploader: uploader}
}

func (uc *CreatePostUseCase) Execute(ctx context.Context, in CreatePostInput) (*post.Post, error) {
	imageURL := in.ImageURL
	if imageURL != "" && !strings.HasPrefix(imageURL, "http") {
		return nil, post.ErrInvalidImage
	}
	if in.ImageData != "" {
		if uc.Uploader == nil {
			return nil, fmt.Errorf("image uploads are not supported")
		}
		uploaded, err := uc.Uploader.Upload(ctx, in.ImageData)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		imageURL = uploaded
	}

	p, err := post.NewPost(post.Post{
		Author:   in.AuthorID,
		Text:     in.Text,
		ImageURL: imageURL,
	})
	if err != nil {
		return nil, err
	}

	id, err := uc.Repo.CreatePost(ctx, *p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	p.ID = id
	return p, nil
}
