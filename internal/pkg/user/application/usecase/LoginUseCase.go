package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	user "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/application/domain"
	repository "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/persistence/repository/port"
)

// LoginInput carries the credentials presented by a client.
type LoginInput struct {
	Username string
	Password string
}

// LoginUseCase verifies credentials against the stored bcrypt hash. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
type LoginUseCase struct {
	Repo repository.UserRepository
}

func NewLoginUseCase(repo repository.UserRepository) *LoginUseCase {
	return &LoginUseCase{Repo: repo}
}

func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (*user.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, user.ErrInvalidCredentials
	}

	u, found, err := uc.Repo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !found {
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}
	return &u, nil
}
