package repository

import (
	"context"

	user "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/application/domain"
)

// UserRepository defines persistence operations for platform accounts and the
// follow graph. Missing users are reported through the bool, not an error.
// Follow/Unfollow are idempotent.
type UserRepository interface {
	CreateUser(ctx context.Context, u user.User) (string, error)
	FindByUsername(ctx context.Context, username string) (user.User, bool, error)
	FindByID(ctx context.Context, id string) (user.User, bool, error)

	Follow(ctx context.Context, followerID string, followeeID string) error
	Unfollow(ctx context.Context, followerID string, followeeID string) error
	IsFollowing(ctx context.Context, followerID string, followeeID string) (bool, error)
	ListFollowers(ctx context.Context, userID string) ([]string, error)
	ListFollowing(ctx context.Context, userID string) ([]string, error)
}
