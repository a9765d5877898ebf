package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	post "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/post/application/domain"
)

// memPostRepo is an in-memory PostRepository for use case tests.
type memPostRepo struct {
	mu           sync.Mutex
	nextID       int
	posts        map[string]post.Post
	replies      map[string]post.Reply
	replyOrder   map[string][]string // postID -> reply ids, oldest first
	follows      map[string][]string // follower -> followees
	usernames    map[string]string   // username -> userID
	failWith     error
	deletedPosts []string
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{
		posts:      make(map[string]post.Post),
		replies:    make(map[string]post.Reply),
		replyOrder: make(map[string][]string),
		follows:    make(map[string][]string),
		usernames:  make(map[string]string),
	}
}

func (r *memPostRepo) nextIDLocked(prefix string) string {
	r.nextID++
	return fmt.Sprintf("%s-%d", prefix, r.nextID)
}

func (r *memPostRepo) CreatePost(ctx context.Context, p post.Post) (string, error) {
	if r.failWith != nil {
		return "", r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextIDLocked("post")
	p.ID = id
	r.posts[id] = p
	return id, nil
}

func (r *memPostRepo) GetPost(ctx context.Context, postID string) (post.Post, bool, error) {
	if r.failWith != nil {
		return post.Post{}, false, r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok {
		return post.Post{}, false, nil
	}
	return r.withExtrasLocked(p), true, nil
}

func (r *memPostRepo) DeletePost(ctx context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, postID)
	for _, replyID := range r.replyOrder[postID] {
		delete(r.replies, replyID)
	}
	delete(r.replyOrder, postID)
	r.deletedPosts = append(r.deletedPosts, postID)
	return nil
}

func (r *memPostRepo) LikePost(ctx context.Context, postID string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.posts[postID]
	for _, id := range p.Likes {
		if id == userID {
			return nil
		}
	}
	p.Likes = append(p.Likes, userID)
	r.posts[postID] = p
	return nil
}

func (r *memPostRepo) UnlikePost(ctx context.Context, postID string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.posts[postID]
	likes := p.Likes[:0]
	for _, id := range p.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	p.Likes = likes
	r.posts[postID] = p
	return nil
}

func (r *memPostRepo) AddReply(ctx context.Context, reply post.Reply) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextIDLocked("reply")
	reply.ID = id
	r.replies[id] = reply
	r.replyOrder[reply.PostID] = append(r.replyOrder[reply.PostID], id)
	return id, nil
}

func (r *memPostRepo) GetReply(ctx context.Context, replyID string) (post.Reply, bool, error) {
	if r.failWith != nil {
		return post.Reply{}, false, r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	reply, ok := r.replies[replyID]
	return reply, ok, nil
}

func (r *memPostRepo) DeleteReply(ctx context.Context, replyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reply, ok := r.replies[replyID]
	if !ok {
		return nil
	}
	delete(r.replies, replyID)
	order := r.replyOrder[reply.PostID][:0]
	for _, id := range r.replyOrder[reply.PostID] {
		if id != replyID {
			order = append(order, id)
		}
	}
	r.replyOrder[reply.PostID] = order
	return nil
}

func (r *memPostRepo) ListFeed(ctx context.Context, userID string) ([]post.Post, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	followed := make(map[string]bool)
	for _, id := range r.follows[userID] {
		followed[id] = true
	}
	var out []post.Post
	for _, p := range r.posts {
		if followed[p.Author] {
			out = append(out, r.withExtrasLocked(p))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *memPostRepo) ListByUsername(ctx context.Context, username string) ([]post.Post, bool, error) {
	if r.failWith != nil {
		return nil, false, r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	authorID, ok := r.usernames[username]
	if !ok {
		return nil, false, nil
	}
	var out []post.Post
	for _, p := range r.posts {
		if p.Author == authorID {
			out = append(out, r.withExtrasLocked(p))
		}
	}
	sortNewestFirst(out)
	return out, true, nil
}

func (r *memPostRepo) withExtrasLocked(p post.Post) post.Post {
	p.Likes = append([]string(nil), p.Likes...)
	p.Replies = nil
	for _, replyID := range r.replyOrder[p.ID] {
		p.Replies = append(p.Replies, r.replies[replyID])
	}
	return p
}

func sortNewestFirst(posts []post.Post) {
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
