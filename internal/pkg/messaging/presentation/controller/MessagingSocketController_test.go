package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tdimitr/UTH-Social-Media-App/internal/infrastructure/realtime"
	messaging "github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/application/domain"
	"github.com/tdimitr/UTH-Social-Media-App/internal/pkg/messaging/presentation/event"
)

// memRepo is an in-memory stand-in for the durable store.
type memRepo struct {
	mu        sync.Mutex
	convs     map[string]messaging.Conversation
	msgs      map[string][]messaging.Message
	seenCalls []string
}

func newMemRepo() *memRepo {
	return &memRepo{
		convs: make(map[string]messaging.Conversation),
		msgs:  make(map[string][]messaging.Message),
	}
}

func (r *memRepo) CreateConversation(ctx context.Context, c messaging.Conversation) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := c.ID
	if id == "" {
		id = "conv-" + c.Participants[0] + "-" + c.Participants[1]
	}
	c.ID = id
	r.convs[id] = c
	return id, nil
}

func (r *memRepo) GetConversation(ctx context.Context, id string) (messaging.Conversation, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.convs[id]
	return c, ok, nil
}

func (r *memRepo) FindConversationByParticipants(ctx context.Context, a, b string) (messaging.Conversation, bool, error) {
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
		return messaging.ErrConversationNotFound
	}
	c.LastMessage = snapshot
	r.convs[id] = c
	return nil
}

func (r *memRepo) ListConversationsForUser(ctx context.Context, userID string) ([]messaging.Conversation, error) {
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
	m.ID = "msg-" + time.Now().Format("150405.000000000")
	r.msgs[m.ConversationID] = append(r.msgs[m.ConversationID], m)
	return m.ID, nil
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

func (r *memRepo) seenCallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seenCalls)
}

type testFrame struct {
	Type           string                `json:"type"`
	UserIDs        []string              `json:"userIds"`
	ConversationID string                `json:"conversationId"`
	Message        *event.MessagePayload `json:"message"`
}

func newSocketServer(t *testing.T, repo *memRepo, hub *realtime.Hub) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctl := NewMessagingSocketController(repo, hub, zerolog.Nop())
	r.GET("/ws", ctl.Handle())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dialSocket(t *testing.T, srv *httptest.Server, userID string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?user_id=" + url.QueryEscape(userID)
	ws, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

// waitForFrame reads frames until one of the wanted type arrives.
func waitForFrame(t *testing.T, ws *websocket.Conn, wantType string) testFrame {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		require.NoError(t, ws.SetReadDeadline(deadline))
		_, data, err := ws.ReadMessage()
		require.NoError(t, err, "waiting for %s frame", wantType)
		var frame testFrame
		require.NoError(t, json.Unmarshal(data, &frame))
		if frame.Type == wantType {
			return frame
		}
	}
}

// waitForOnline reads presence frames until the online set matches.
func waitForOnline(t *testing.T, ws *websocket.Conn, want []string) {
	t.Helper()
	sort.Strings(want)
	deadline := time.Now().Add(2 * time.Second)
	var last []string
	for time.Now().Before(deadline) {
		require.NoError(t, ws.SetReadDeadline(deadline))
		_, data, err := ws.ReadMessage()
		require.NoError(t, err, "waiting for online set %v, last seen %v", want, last)
		var frame testFrame
		require.NoError(t, json.Unmarshal(data, &frame))
		if frame.Type != realtime.EventOnlineUsers {
			continue
		}
		got := append([]string(nil), frame.UserIDs...)
		sort.Strings(got)
		last = got
		if len(got) == len(want) {
			match := true
			for i := range got {
				if got[i] != want[i] {
					match = false
					break
				}
			}
			if match {
				return
			}
		}
	}
	t.Fatalf("online set %v never arrived, last seen %v", want, last)
}

// requireNoFrame asserts that no frame of the given type arrives within the window.
func requireNoFrame(t *testing.T, ws *websocket.Conn, unwantedType string, window time.Duration) {
	t.Helper()
	deadline := time.Now().Add(window)
	for {
		_ = ws.SetReadDeadline(deadline)
		_, data, err := ws.ReadMessage()
		if err != nil {
			return // timeout: nothing arrived
		}
		var frame testFrame
		if json.Unmarshal(data, &frame) == nil && frame.Type == unwantedType {
			t.Fatalf("unexpected %s frame: %s", unwantedType, data)
		}
	}
}

func seedConversation(repo *memRepo, id, userA, userB string) {
	repo.convs[id] = messaging.Conversation{
		ID:           id,
		Participants: [2]string{userA, userB},
		CreatedAt:    time.Now().UTC(),
	}
}

func TestPresenceBroadcastOnConnectAndDisconnect(t *testing.T) {
	hub := realtime.NewHub(zerolog.Nop())
	srv := newSocketServer(t, newMemRepo(), hub)

	wsA := dialSocket(t, srv, "A1")
	waitForOnline(t, wsA, []string{"A1"})

	wsB := dialSocket(t, srv, "B1")
	waitForOnline(t, wsB, []string{"A1", "B1"})
	waitForOnline(t, wsA, []string{"A1", "B1"})

	require.NoError(t, wsB.Close())
	waitForOnline(t, wsA, []string{"A1"})
}

func TestAnonymousHandshakeExcludedFromPresence(t *testing.T) {
	hub := realtime.NewHub(zerolog.Nop())
	srv := newSocketServer(t, newMemRepo(), hub)

	wsAnon := dialSocket(t, srv, "undefined")
	waitForOnline(t, wsAnon, nil)

	// Anonymous sessions still receive broadcasts triggered by others.
	wsA := dialSocket(t, srv, "A1")
	waitForOnline(t, wsA, []string{"A1"})
	waitForOnline(t, wsAnon, []string{"A1"})

	require.False(t, hub.Online(""))
}

func TestReconnectKeepsSingleRegistryEntry(t *testing.T) {
	hub := realtime.NewHub(zerolog.Nop())
	srv := newSocketServer(t, newMemRepo(), hub)

	first := dialSocket(t, srv, "A1")
	waitForOnline(t, first, []string{"A1"})

	second := dialSocket(t, srv, "A1")
	waitForOnline(t, second, []string{"A1"})

	require.Equal(t, []string{"A1"}, hub.OnlineUserIDs())

	// The replaced socket is closed by the server.
	_ = first.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		if _, _, err := first.ReadMessage(); err != nil {
			break
		}
	}

	// The newer connection still receives deliveries.
	require.True(t, hub.DeliverToUser("A1", event.NewMessageSeenFrame("c1")))
	frame := waitForFrame(t, second, event.MessagesSeen)
	require.Equal(t, "c1", frame.ConversationID)
}

func TestDeliverToUserPushesNewMessage(t *testing.T) {
	hub := realtime.NewHub(zerolog.Nop())
	srv := newSocketServer(t, newMemRepo(), hub)

	wsB := dialSocket(t, srv, "B1")
	waitForOnline(t, wsB, []string{"B1"})

	msg := messaging.Message{
		ID:             "m1",
		ConversationID: "c1",
		Sender:         "A1",
		Text:           "hi",
		Seen:           false,
		CreatedAt:      time.Now().UTC().Truncate(time.Millisecond),
	}
	require.True(t, hub.DeliverToUser("B1", event.NewMessageDelivery(msg)))

	frame := waitForFrame(t, wsB, event.NewMessage)
	require.NotNil(t, frame.Message)
	require.Equal(t, "m1", frame.Message.ID)
	require.Equal(t, "c1", frame.Message.ConversationID)
	require.Equal(t, "A1", frame.Message.Sender)
	require.Equal(t, "hi", frame.Message.Text)
	require.False(t, frame.Message.Seen)

	// Offline recipient: no error, no delivery.
	require.False(t, hub.DeliverToUser("Z9", event.NewMessageDelivery(msg)))
}

func TestMarkSeenGuardRejectsMismatchedIdentity(t *testing.T) {
	hub := realtime.NewHub(zerolog.Nop())
	repo := newMemRepo()
	seedConversation(repo, "c1", "A1", "B1")
	srv := newSocketServer(t, repo, hub)

	wsA := dialSocket(t, srv, "A1")
	waitForOnline(t, wsA, []string{"A1"})
	wsB := dialSocket(t, srv, "B1")
	waitForOnline(t, wsB, []string{"A1", "B1"})

	// B claims to be A: dropped without durable mutation or notification.
	req := event.MarkSeenRequest{Type: event.MarkMessagesAsSeen, ConversationID: "c1", UserID: "A1"}
	require.NoError(t, wsB.WriteJSON(req))

	requireNoFrame(t, wsA, event.MessagesSeen, 500*time.Millisecond)
	require.Zero(t, repo.seenCallCount())
}

func TestMarkSeenNotifiesOtherParticipant(t *testing.T) {
	hub := realtime.NewHub(zerolog.Nop())
	repo := newMemRepo()
	seedConversation(repo, "c1", "A1", "B1")
	srv := newSocketServer(t, repo, hub)

	wsA := dialSocket(t, srv, "A1")
	waitForOnline(t, wsA, []string{"A1"})
	wsB := dialSocket(t, srv, "B1")
	waitForOnline(t, wsB, []string{"A1", "B1"})

	req := event.MarkSeenRequest{Type: event.MarkMessagesAsSeen, ConversationID: "c1", UserID: "B1"}
	require.NoError(t, wsB.WriteJSON(req))

	frame := waitForFrame(t, wsA, event.MessagesSeen)
	require.Equal(t, "c1", frame.ConversationID)
	require.Equal(t, 1, repo.seenCallCount())

	// Repeating the acknowledgment is harmless: same durable state, and the
	// sender merely tolerates a redundant notification.
	require.NoError(t, wsB.WriteJSON(req))
	frame = waitForFrame(t, wsA, event.MessagesSeen)
	require.Equal(t, "c1", frame.ConversationID)
}

func TestMarkSeenFromAnonymousConnectionIsDropped(t *testing.T) {
	hub := realtime.NewHub(zerolog.Nop())
	repo := newMemRepo()
	seedConversation(repo, "c1", "A1", "B1")
	srv := newSocketServer(t, repo, hub)

	wsAnon := dialSocket(t, srv, "undefined")
	waitForOnline(t, wsAnon, nil)

	req := event.MarkSeenRequest{Type: event.MarkMessagesAsSeen, ConversationID: "c1", UserID: "B1"}
	require.NoError(t, wsAnon.WriteJSON(req))

	time.Sleep(300 * time.Millisecond)
	require.Zero(t, repo.seenCallCount())
}
