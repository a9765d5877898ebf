package realtime

import "sync"

// Registry maps logged-in users to their currently-active connection. One
// connection per user: a reconnect overwrites the prior entry. Anonymous
// connections are tracked for broadcast fan-out but never resolve through
// Lookup and never appear in the online set.
type Registry struct {
	mu    sync.RWMutex
	users map[string]*Connection // userID -> active connection
	conns map[string]*Connection // connectionID -> connection, anonymous included
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		users: make(map[string]*Connection),
		conns: make(map[string]*Connection),
	}
}

// Register inserts the connection, overwriting any prior entry for the same
// user. The displaced connection, if any, is returned so the caller can close
// it after the swap.
func (r *Registry) Register(conn *Connection) (replaced *Connection) {
	if conn == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conns[conn.ID] = conn
	if conn.Anonymous() {
		return nil
	}
	if prev, ok := r.users[conn.UserID]; ok && prev != conn {
		delete(r.conns, prev.ID)
		replaced = prev
	}
	r.users[conn.UserID] = conn
	return replaced
}

// Lookup returns the live connection for userID. Absence is the normal branch
// for an offline recipient, reported via the bool, never as an error.
func (r *Registry) Lookup(userID string) (*Connection, bool) {
	if userID == "" {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.users[userID]
	return conn, ok
}

// Unregister removes the connection. Duplicate disconnects are no-ops, and a
// stale connection never evicts the newer one registered for the same user.
func (r *Registry) Unregister(conn *Connection) {
	if conn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.conns, conn.ID)
	if conn.Anonymous() {
		return
	}
	if current, ok := r.users[conn.UserID]; ok && current == conn {
		delete(r.users, conn.UserID)
	}
}

// OnlineUserIDs returns a snapshot of the user ids holding a live connection.
// Order is unspecified.
func (r *Registry) OnlineUserIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	return ids
}

// Connections returns a snapshot of every live connection, anonymous included.
func (r *Registry) Connections() []*Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conns := make([]*Connection, 0, len(r.conns))
	for _, c := range r.conns {
		conns = append(conns, c)
	}
	return conns
}
