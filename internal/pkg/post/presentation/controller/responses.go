package controller

import (
	"time"

	post "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/application/domain"
)

// postResponse is the wire shape shared by the post endpoints. Field names
// follow the client protocol.
type postResponse struct {
	ID        string          `json:"id"`
	PostedBy  string          `json:"postedBy"`
	Text      string          `json:"text"`
	Img       string          `json:"img"`
	Likes     []string        `json:"likes"`
	Replies   []replyResponse `json:"replies"`
	CreatedAt time.Time       `json:"createdAt"`
}

type replyResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func toPostResponse(p post.Post) postResponse {
	likes := p.Likes
	if likes == nil {
		likes = []string{}
	}
	replies := make([]replyResponse, 0, len(p.Replies))
	for _, r := range p.Replies {
		replies = append(replies, toReplyResponse(r))
	}
	return postResponse{
		ID:        p.ID,
		PostedBy:  p.Author,
		Text:      p.Text,
		Img:       p.ImageURL,
		Likes:     likes,
		Replies:   replies,
		CreatedAt: p.CreatedAt,
	}
}

func toReplyResponse(r post.Reply) replyResponse {
	return replyResponse{
		ID:        r.ID,
		PostID:    r.PostID,
		UserID:    r.Author,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}

func toPostResponses(posts []post.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return out
}
