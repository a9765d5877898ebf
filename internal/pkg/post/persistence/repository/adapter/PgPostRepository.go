package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	post "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/application/domain"
)

type PgPostRepository struct {
	pool *pgxpool.Pool
}

func NewPgPostRepository(pool *pgxpool.Pool) *PgPostRepository {
	return &PgPostRepository{pool: pool}
}

func (r *PgPostRepository) CreatePost(ctx context.Context, p post.Post) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgPostRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO social.post (author, text, image_url, created_at)
		VALUES ($1::uuid, $2, $3, $4)
		RETURNING id::text
	`, p.Author, p.Text, p.ImageURL, p.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgPostRepository) GetPost(ctx context.Context, postID string) (post.Post, bool, error) {
	if r == nil || r.pool == nil {
		return post.Post{}, false, errors.New("PgPostRepository: nil pool")
	}
	var p post.Post
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, author::text, text, image_url, created_at
		FROM social.post
		WHERE id = $1::uuid
	`, postID).Scan(&p.ID, &p.Author, &p.Text, &p.ImageURL, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return post.Post{}, false, nil
	}
	if err != nil {
		return post.Post{}, false, err
	}
	posts := []post.Post{p}
	if err := r.loadLikesAndReplies(ctx, posts); err != nil {
		return post.Post{}, false, err
	}
	return posts[0], true, nil
}

func (r *PgPostRepository) DeletePost(ctx context.Context, postID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgPostRepository: nil pool")
	}
	// Likes and replies go with the post via ON DELETE CASCADE.
	ct, err := r.pool.Exec(ctx, `DELETE FROM social.post WHERE id = $1::uuid`, postID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgPostRepository) LikePost(ctx context.Context, postID string, userID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgPostRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO social.post_like (post_id, user_id)
		VALUES ($1::uuid, $2::uuid)
		ON CONFLICT DO NOTHING
	`, postID, userID)
	return err
}

func (r *PgPostRepository) UnlikePost(ctx context.Context, postID string, userID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgPostRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		DELETE FROM social.post_like WHERE post_id = $1::uuid AND user_id = $2::uuid
	`, postID, userID)
	return err
}

func (r *PgPostRepository) AddReply(ctx context.Context, reply post.Reply) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgPostRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO social.post_reply (post_id, author, text, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4)
		RETURNING id::text
	`, reply.PostID, reply.Author, reply.Text, reply.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgPostRepository) GetReply(ctx context.Context, replyID string) (post.Reply, bool, error) {
	if r == nil || r.pool == nil {
		return post.Reply{}, false, errors.New("PgPostRepository: nil pool")
	}
	var reply post.Reply
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, post_id::text, author::text, text, created_at
		FROM social.post_reply
		WHERE id = $1::uuid
	`, replyID).Scan(&reply.ID, &reply.PostID, &reply.Author, &reply.Text, &reply.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return post.Reply{}, false, nil
	}
	if err != nil {
		return post.Reply{}, false, err
	}
	return reply, true, nil
}

func (r *PgPostRepository) DeleteReply(ctx context.Context, replyID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgPostRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM social.post_reply WHERE id = $1::uuid`, replyID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgPostRepository) ListFeed(ctx context.Context, userID string) ([]post.Post, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgPostRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, author::text, text, image_url, created_at
		FROM social.post
		WHERE author IN (SELECT followee FROM social.follow WHERE follower = $1::uuid)
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	posts, err := collectPosts(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadLikesAndReplies(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PgPostRepository) ListByUsername(ctx context.Context, username string) ([]post.Post, bool, error) {
	if r == nil || r.pool == nil {
		return nil, false, errors.New("PgPostRepository: nil pool")
	}
	var authorID string
	err := r.pool.QueryRow(ctx, `
		SELECT id::text FROM social.app_user WHERE username = $1
	`, username).Scan(&authorID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id::text, author::text, text, image_url, created_at
		FROM social.post
		WHERE author = $1::uuid
		ORDER BY created_at DESC
	`, authorID)
	if err != nil {
		return nil, false, err
	}
	posts, err := collectPosts(rows)
	if err != nil {
		return nil, false, err
	}
	if err := r.loadLikesAndReplies(ctx, posts); err != nil {
		return nil, false, err
	}
	return posts, true, nil
}

func collectPosts(rows pgx.Rows) ([]post.Post, error) {
	defer rows.Close()
	var posts []post.Post
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(&p.ID, &p.Author, &p.Text, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// loadLikesAndReplies populates Likes and Replies for the given posts in two
// bulk queries.
func (r *PgPostRepository) loadLikesAndReplies(ctx context.Context, posts []post.Post) error {
	if len(posts) == 0 {
		return nil
	}
	ids := make([]string, len(posts))
	index := make(map[string]int, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
		index[p.ID] = i
	}

	likeRows, err := r.pool.Query(ctx, `
		SELECT post_id::text, user_id::text
		FROM social.post_like
		WHERE post_id = ANY($1::uuid[])
		ORDER BY created_at
	`, ids)
	if err != nil {
		return err
	}
	defer likeRows.Close()
	for likeRows.Next() {
		var postID, userID string
		if err := likeRows.Scan(&postID, &userID); err != nil {
			return err
		}
		if i, ok := index[postID]; ok {
			posts[i].Likes = append(posts[i].Likes, userID)
		}
	}
	if err := likeRows.Err(); err != nil {
		return err
	}

	replyRows, err := r.pool.Query(ctx, `
		SELECT id::text, post_id::text, author::text, text, created_at
		FROM social.post_reply
		WHERE post_id = ANY($1::uuid[])
		ORDER BY created_at
	`, ids)
	if err != nil {
		return err
	}
	defer replyRows.Close()
	for replyRows.Next() {
		var reply post.Reply
		if err := replyRows.Scan(&reply.ID, &reply.PostID, &reply.Author, &reply.Text, &reply.CreatedAt); err != nil {
			return err
		}
		if i, ok := index[reply.PostID]; ok {
			posts[i].Replies = append(posts[i].Replies, reply)
		}
	}
	return replyRows.Err()
}
