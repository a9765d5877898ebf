package post

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTextLength caps the post body.
const MaxTextLength = 500

// Post is a public entry on a user's timeline. Likes holds the ids of users
// who liked it; Replies are ordered oldest first.
type Post struct {
	ID        string    `db:"id"`
	Author    string    `db:"author"`
	Text      string    `db:"text"`
	ImageURL  string    `db:"image_url"`
	Likes     []string  `db:"-"`
	Replies   []Reply   `db:"-"`
	CreatedAt time.Time `db:"created_at"`
}

// Reply is a comment attached to a post.
type Reply struct {
	ID        string    `db:"id"`
	PostID    string    `db:"post_id"`
	Author    string    `db:"author"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

// LikedBy reports whether the user already liked the post.
func (p Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// NewPost validates and normalizes a post before persistence. Text is
// required even when an image is attached.
func NewPost(p Post) (*Post, error) {
	if p.Author == "" {
		return nil, ErrMissingAuthor
	}
	p.Text = strings.TrimSpace(p.Text)
	if p.Text == "" {
		return nil, ErrEmptyText
	}
	if utf8.RuneCountInString(p.Text) > MaxTextLength {
		return nil, ErrTextTooLong
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return &p, nil
}

// NewReply validates and normalizes a reply before persistence.
func NewReply(r Reply) (*Reply, error) {
	if r.PostID == "" || r.Author == "" {
		return nil, ErrMissingAuthor
	}
	r.Text = strings.TrimSpace(r.Text)
	if r.Text == "" {
		return nil, ErrEmptyText
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return &r, nil
}
