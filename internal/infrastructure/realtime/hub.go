package realtime

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// EventOnlineUsers is the server->client event carrying the full online set.
const EventOnlineUsers = "getOnlineUsers"

// OnlineUsersFrame is broadcast to every connected client after each registry
// mutation. Full state, not a diff: the set is small and simplicity wins.
type OnlineUsersFrame struct {
	Type    string   `json:"type"`
	UserIDs []string `json:"userIds"`
}

// Hub owns the connection registry and the presence/delivery fan-out. It is
// created at process start and torn down at shutdown; all access to the
// registry flows through it.
type Hub struct {
	registry *Registry
	log      zerolog.Logger
}

// NewHub constructs a Hub with an empty registry.
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		registry: NewRegistry(),
		log:      logger,
	}
}

// Attach starts the connection's write loop, registers it, and broadcasts the
// refreshed online set. A displaced connection from the same user is closed
// after the swap so the reconnect always wins.
func (h *Hub) Attach(conn *Connection) {
	conn.Start()
	replaced := h.registry.Register(conn)
	if replaced != nil {
		replaced.Close(4001, "session replaced")
	}
	h.broadcastPresence()
}

// Detach unregisters the connection and broadcasts the refreshed online set.
// Safe to call more than once per connection.
func (h *Hub) Detach(conn *Connection) {
	h.registry.Unregister(conn)
	h.broadcastPresence()
}

// Online reports whether the user currently holds a live connection.
func (h *Hub) Online(userID string) bool {
	_, ok := h.registry.Lookup(userID)
	return ok
}

// OnlineUserIDs returns a snapshot of the current presence set.
func (h *Hub) OnlineUserIDs() []string {
	return h.registry.OnlineUserIDs()
}

// DeliverToUser pushes the JSON-encoded frame to the user's live connection.
// Best-effort and non-blocking: an offline recipient or a failed push only
// yields false. The durable write is the source of truth; nothing is retried
// or rolled back here.
func (h *Hub) DeliverToUser(userID string, frame any) bool {
	conn, ok := h.registry.Lookup(userID)
	if !ok {
		return false
	}
	payload, err := json.Marshal(frame)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("encode realtime frame")
		return false
	}
	if err := conn.Send(payload); err != nil {
		h.log.Warn().Err(err).Str("user_id", userID).Msg("realtime push failed")
		return false
	}
	return true
}

// Close terminates every tracked connection. Called once at shutdown.
func (h *Hub) Close() {
	for _, conn := range h.registry.Connections() {
		h.registry.Unregister(conn)
		conn.Close(websocket.CloseGoingAway, "server shutdown")
	}
}

// broadcastPresence emits the full online set to all live connections,
// anonymous ones included. Fire-and-forget: no acknowledgment is awaited, and
// each broadcast reflects a consistent snapshot taken at emit time.
func (h *Hub) broadcastPresence() {
	frame := OnlineUsersFrame{Type: EventOnlineUsers, UserIDs: h.registry.OnlineUserIDs()}
	payload, err := json.Marshal(frame)
	if err != nil {
		h.log.Error().Err(err).Msg("encode presence frame")
		return
	}
	for _, conn := range h.registry.Connections() {
		if err := conn.Send(payload); err != nil {
			h.log.Warn().Err(err).Str("connection_id", conn.ID).Msg("presence push failed")
		}
	}
}
