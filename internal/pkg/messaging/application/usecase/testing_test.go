package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	cacheport "github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/cache/port"
	messaging "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/domain"
)

// memRepo is an in-memory MessagingRepository for use case tests.
type memRepo struct {
	mu        sync.Mutex
	nextID    int
	convs     map[string]messaging.Conversation
	msgs      map[string][]messaging.Message
	seenCalls []string
	failWith  error
}

func newMemRepo() *memRepo {
	return &memRepo{
		convs: make(map[string]messaging.Conversation),
		msgs:  make(map[string][]messaging.Message),
	}
}

func (r *memRepo) nextIDLocked(prefix string) string {
	r.nextID++
	return fmt.Sprintf("%s-%d", prefix, r.nextID)
}

func (r *memRepo) CreateConversation(ctx context.Context, c messaging.Conversation) (string, error) {
	if r.failWith != nil {
		return "", r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextIDLocked("conv")
	c.ID = id
	r.convs[id] = c
	return id, nil
}

func (r *memRepo) GetConversation(ctx context.Context, id string) (messaging.Conversation, bool, error) {
	if r.failWith != nil {
		return messaging.Conversation{}, false, r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.convs[id]
	return c, ok, nil
}

func (r *memRepo) FindConversationByParticipants(ctx context.Context, a, b string) (messaging.Conversation, bool, error) {
	if r.failWith != nil {
		return messaging.Conversation{}, false, r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.convs {
		if (c.Participants[0] == a && c.Participants[1] == b) || (c.Participants[0] == b && c.Participants[1] == a) {
			return c, true, nil
		}
	}
	return messaging.Conversation{}, false, nil
}

func (r *memRepo) UpdateLastMessage(ctx context.Context, id string, snapshot messaging.LastMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.convs[id]
	if !ok {
		return errors.New("memRepo: conversation missing")
	}
	c.LastMessage = snapshot
	r.convs[id] = c
	return nil
}

func (r *memRepo) ListConversationsForUser(ctx context.Context, userID string) ([]messaging.Conversation, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []messaging.Conversation
	for _, c := range r.convs {
		if c.HasParticipant(userID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memRepo) SaveMessage(ctx context.Context, m messaging.Message) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextIDLocked("msg")
	m.ID = id
	r.msgs[m.ConversationID] = append(r.msgs[m.ConversationID], m)
	return id, nil
}

func (r *memRepo) ListMessages(ctx context.Context, conversationID string) ([]messaging.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]messaging.Message(nil), r.msgs[conversationID]...), nil
}

func (r *memRepo) MarkMessagesSeen(ctx context.Context, conversationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seenCalls = append(r.seenCalls, conversationID)
	msgs := r.msgs[conversationID]
	for i := range msgs {
		msgs[i].Seen = true
	}
	if c, ok := r.convs[conversationID]; ok {
		c.LastMessage.Seen = true
		r.convs[conversationID] = c
	}
	return nil
}

// memCache records cache traffic for assertions.
type memCache struct {
	mu      sync.Mutex
	entries map[string]string
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]string)}
}

func (c *memCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	if !ok {
		return "", cacheport.ErrMiss
	}
	return v, nil
}

func (c *memCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memCache) Del(ctx context.Context, keys ...string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int64
	for _, k := range keys {
		c.deleted = append(c.deleted, k)
		if _, ok := c.entries[k]; ok {
			delete(c.entries, k)
			n++
		}
	}
	return n, nil
}

func (c *memCache) Ping(ctx context.Context) error { return nil }
func (c *memCache) Close() error                   { return nil }

// fakeUploader returns a canned URL and records the last payload.
type fakeUploader struct {
	lastData string
	url      string
	err      error
}

func (u *fakeUploader) Upload(ctx context.Context, data string) (string, error) {
	u.lastData = data
	if u.err != nil {
		return "", u.err
	}
	if u.url == "" {
		return "https://media.example/img.png", nil
	}
	return u.url, nil
}
