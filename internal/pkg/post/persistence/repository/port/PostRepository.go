package repository

import (
	"context"

	post "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/application/domain"
)

// PostRepository defines persistence operations for posts, likes and replies.
// Missing rows are reported through the bool, not an error. List results come
// back newest first with likes and replies populated.
type PostRepository interface {
	CreatePost(ctx context.Context, p post.Post) (string, error)
	GetPost(ctx context.Context, postID string) (post.Post, bool, error)
	DeletePost(ctx context.Context, postID string) error

	LikePost(ctx context.Context, postID string, userID string) error
	UnlikePost(ctx context.Context, postID string, userID string) error

	AddReply(ctx context.Context, r post.Reply) (string, error)
	GetReply(ctx context.Context, replyID string) (post.Reply, bool, error)
	DeleteReply(ctx context.Context, replyID string) error

	// ListFeed returns posts authored by users the given user follows.
	ListFeed(ctx context.Context, userID string) ([]post.Post, error)
	// ListByUsername returns the named user's posts; the bool reports whether
	// the username resolved to an account at all.
	ListByUsername(ctx context.Context, username string) ([]post.Post, bool, error)
}
