package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	user "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/user/application/domain"
)

type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

func (r *PgUserRepository) CreateUser(ctx context.Context, u user.User) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgUserRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO social.app_user (name, username, email, password_hash, profile_pic, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text
	`, u.Name, u.Username, u.Email, u.PasswordHash, u.ProfilePic, u.CreatedAt).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", user.ErrUsernameTaken
		}
		return "", err
	}
	return id, nil
}

func (r *PgUserRepository) FindByUsername(ctx context.Context, username string) (user.User, bool, error) {
	if r == nil || r.pool == nil {
		return user.User{}, false, errors.New("PgUserRepository: nil pool")
	}
	row := r.pool.QueryRow(ctx, `
		SELECT id::text, name, username, email, password_hash, profile_pic, created_at
		FROM social.app_user
		WHERE username = $1
	`, username)
	return scanUser(row)
}

func (r *PgUserRepository) FindByID(ctx context.Context, id string) (user.User, bool, error) {
	if r == nil || r.pool == nil {
		return user.User{}, false, errors.New("PgUserRepository: nil pool")
	}
	row := r.pool.QueryRow(ctx, `
		SELECT id::text, name, username, email, password_hash, profile_pic, created_at
		FROM social.app_user
		WHERE id = $1::uuid
	`, id)
	return scanUser(row)
}

func (r *PgUserRepository) Follow(ctx context.Context, followerID string, followeeID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgUserRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO social.follow (follower, followee)
		VALUES ($1::uuid, $2::uuid)
		ON CONFLICT DO NOTHING
	`, followerID, followeeID)
	return err
}

func (r *PgUserRepository) Unfollow(ctx context.Context, followerID string, followeeID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgUserRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		DELETE FROM social.follow WHERE follower = $1::uuid AND followee = $2::uuid
	`, followerID, followeeID)
	return err
}

func (r *PgUserRepository) IsFollowing(ctx context.Context, followerID string, followeeID string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgUserRepository: nil pool")
	}
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM social.follow WHERE follower = $1::uuid AND followee = $2::uuid
		)
	`, followerID, followeeID).Scan(&exists)
	return exists, err
}

func (r *PgUserRepository) ListFollowers(ctx context.Context, userID string) ([]string, error) {
	return r.listEdge(ctx, `
		SELECT follower::text FROM social.follow WHERE followee = $1::uuid ORDER BY created_at
	`, userID)
}

func (r *PgUserRepository) ListFollowing(ctx context.Context, userID string) ([]string, error) {
	return r.listEdge(ctx, `
		SELECT followee::text FROM social.follow WHERE follower = $1::uuid ORDER BY created_at
	`, userID)
}

func (r *PgUserRepository) listEdge(ctx context.Context, query string, userID string) ([]string, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanUser(row pgx.Row) (user.User, bool, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.PasswordHash, &u.ProfilePic, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, false, nil
	}
	if err != nil {
		return user.User{}, false, err
	}
	return u, true, nil
}
