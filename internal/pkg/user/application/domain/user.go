package user

import (
	"errors"
	"strings"
	"time"
)

// User is a platform account. PasswordHash never leaves the persistence and
// application layers.
type User struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	ProfilePic   string    `db:"profile_pic"`
	CreatedAt    time.Time `db:"created_at"`
}

var (
	ErrInvalidUser        = errors.New("user: name, username, email and password are required")
	ErrUsernameTaken      = errors.New("user: username already taken")
	ErrInvalidCredentials = errors.New("user: invalid username or password")
	ErrNotFound           = errors.New("user: not found")
	ErrSelfFollow         = errors.New("user: cannot follow or unfollow yourself")
)

// NewUser validates and normalizes an account before persistence.
func NewUser(u User) (*User, error) {
	u.Name = strings.TrimSpace(u.Name)
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))

	if u.Name == "" || u.Username == "" || u.Email == "" || u.PasswordHash == "" {
		return nil, ErrInvalidUser
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	return &u, nil
}
