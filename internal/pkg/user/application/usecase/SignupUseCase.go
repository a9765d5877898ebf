package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	user "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/application/domain"
	repository "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/persistence/repository/port"
)

// SignupInput carries the data to create a platform account.
type SignupInput struct {
	Name     string
	Username string
	Email    string
	Password string
}

// SignupUseCase creates an account with a bcrypt-hashed password.
type SignupUseCase struct {
	Repo repository.UserRepository
}

func NewSignupUseCase(repo repository.UserRepository) *SignupUseCase {
	return &SignupUseCase{Repo: repo}
}

func (uc *SignupUseCase) Execute(ctx context.Context, in SignupInput) (*user.User, error) {
	if in.Password == "" {
		return nil, user.ErrInvalidUser
	}

	if _, taken, err := uc.Repo.FindByUsername(ctx, in.Username); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	} else if taken {
		return nil, user.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := user.NewUser(user.User{
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	id, err := uc.Repo.CreateUser(ctx, *u)
	if err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	u.ID = id
	return u, nil
}
