package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	user "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/application/domain"
	repository "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/persistence/repository/port"
)

// Profile is a public account view with its follow edges.
type Profile struct {
	User      user.User
	Followers []string
	Following []string
}

// GetProfileUseCase resolves a profile query: a value that parses as a uuid is
// treated as a user id, anything else as a username.
type GetProfileUseCase struct {
	Repo repository.UserRepository
}

func NewGetProfileUseCase(repo repository.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{Repo: repo}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query string) (Profile, error) {
	if query == "" {
		return Profile{}, user.ErrNotFound
	}

	var (
		u     user.User
		found bool
		err   error
	)
	if _, parseErr := uuid.Parse(query); parseErr == nil {
		u, found, err = uc.Repo.FindByID(ctx, query)
	} else {
		u, found, err = uc.Repo.FindByUsername(ctx, query)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !found {
		return Profile{}, user.ErrNotFound
	}

	followers, err := uc.Repo.ListFollowers(ctx, u.ID)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	following, err := uc.Repo.ListFollowing(ctx, u.ID)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return Profile{User: u, Followers: followers, Following: following}, nil
}
