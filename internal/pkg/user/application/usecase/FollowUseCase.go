package usecase

import (
	"context"
	"fmt"

	user "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/application/domain"
	repository "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/persistence/repository/port"
)

// FollowInput identifies the caller and the account they are toggling.
type FollowInput struct {
	UserID   string
	TargetID string
}

// FollowUseCase toggles the follow edge from the caller to the target:
// following becomes unfollow and vice versa. Self-follows are rejected.
type FollowUseCase struct {
	Repo repository.UserRepository
}

func NewFollowUseCase(repo repository.UserRepository) *FollowUseCase {
	return &FollowUseCase{Repo: repo}
}

// Execute returns true when the toggle ended with the caller following the
// target.
func (uc *FollowUseCase) Execute(ctx context.Context, in FollowInput) (bool, error) {
	if in.UserID == in.TargetID {
		return false, user.ErrSelfFollow
	}

	if _, found, err := uc.Repo.FindByID(ctx, in.TargetID); err != nil {
		return false, fmt.Errorf("%w: %v", ErrPersistence, err)
	} else if !found {
		return false, user.ErrNotFound
	}

	following, err := uc.Repo.IsFollowing(ctx, in.UserID, in.TargetID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if following {
		if err := uc.Repo.Unfollow(ctx, in.UserID, in.TargetID); err != nil {
			return false, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return false, nil
	}
	if err := uc.Repo.Follow(ctx, in.UserID, in.TargetID); err != nil {
		return false, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return true, nil
}
