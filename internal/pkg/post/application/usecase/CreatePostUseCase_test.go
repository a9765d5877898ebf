package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	post "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/application/domain"
)

type fakeUploader struct {
	lastData string
	url      string
	err      error
}

func (u *fakeUploader) Upload(ctx context.Context, data string) (string, error) {
	u.lastData = data
	if u.err != nil {
		return "", u.err
	}
	return u.url, nil
}

func TestCreatePostPersistsAndTrims(t *testing.T) {
	repo := newMemPostRepo()
	uc := NewCreatePostUseCase(repo, nil)

	p, err := uc.Execute(context.Background(), CreatePostInput{AuthorID: "A1", Text: "  hello  "})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.Equal(t, "hello", p.Text)
	require.False(t, p.CreatedAt.IsZero())
}

func TestCreatePostUploadsRawImage(t *testing.T) {
	repo := newMemPostRepo()
	up := &fakeUploader{url: "https://media.example/cat.png"}
	uc := NewCreatePostUseCase(repo, up)

	p, err := uc.Execute(context.Background(), CreatePostInput{
		AuthorID:  "A1",
		Text:      "look",
		ImageData: "data:image/png;base64,xyz",
	})
	require.NoError(t, err)
	require.Equal(t, "https://media.example/cat.png", p.ImageURL)
	require.Equal(t, "data:image/png;base64,xyz", up.lastData)
}

func TestCreatePostAcceptsHostedURL(t *testing.T) {
	repo := newMemPostRepo()
	uc := NewCreatePostUseCase(repo, nil)

	p, err := uc.Execute(context.Background(), CreatePostInput{
		AuthorID: "A1",
		Text:     "look",
		ImageURL: "https://media.example/dog.png",
	})
	require.NoError(t, err)
	require.Equal(t, "https://media.example/dog.png", p.ImageURL)
}

func TestCreatePostRejectsNonHTTPImageURL(t *testing.T) {
	uc := NewCreatePostUseCase(newMemPostRepo(), nil)

	_, err := uc.Execute(context.Background(), CreatePostInput{
		AuthorID: "A1",
		Text:     "look",
		ImageURL: "data:image/png;base64,xyz",
	})
	require.ErrorIs(t, err, post.ErrInvalidImage)
}

func TestCreatePostValidation(t *testing.T) {
	uc := NewCreatePostUseCase(newMemPostRepo(), nil)

	_, err := uc.Execute(context.Background(), CreatePostInput{AuthorID: "A1", Text: "   "})
	require.ErrorIs(t, err, post.ErrEmptyText)

	_, err = uc.Execute(context.Background(), CreatePostInput{Text: "hi"})
	require.ErrorIs(t, err, post.ErrMissingAuthor)

	_, err = uc.Execute(context.Background(), CreatePostInput{
		AuthorID: "A1",
		Text:     strings.Repeat("x", post.MaxTextLength+1),
	})
	require.ErrorIs(t, err, post.ErrTextTooLong)
}

func TestCreatePostPersistenceErrorIsTyped(t *testing.T) {
	repo := newMemPostRepo()
	repo.failWith = errors.New("db down")
	uc := NewCreatePostUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), CreatePostInput{AuthorID: "A1", Text: "hi"})
	require.ErrorIs(t, err, ErrPersistence)
}
