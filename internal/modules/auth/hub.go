package auth

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks one websocket connection per session for session-change
// notifications. A client that reconnects replaces its previous connection.
type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(sessionID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[sessionID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[sessionID] = conn
}

func (h *Hub) Unregister(sessionID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[sessionID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, sessionID)
	}
}

// NotifyRevoked pushes a session_revoked event to the session's subscriber
// and drops the connection. Returns false if nobody was listening.
func (h *Hub) NotifyRevoked(sessionID string) bool {
	h.mutex.RLock()
	conn, exists := h.connections[sessionID]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return false
	}

	_ = conn.WriteJSON(map[string]string{"event": "session_revoked"})
	h.Unregister(sessionID)
	return true
}

func (h *Hub) IsConnected(sessionID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[sessionID]
	return exists
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for sessionID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, sessionID)
	}
}
