package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// hub tracks connected dev browsers waiting for reload notifications.
type hub struct {
	mu      sync.Mutex
	clients map[string]*websocket.Conn
}

func newHub() *hub {
	return &hub{clients: make(map[string]*websocket.Conn)}
}

func (h *hub) add(id string, conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[id] = conn
	h.mu.Unlock()
}

func (h *hub) remove(id string) {
	h.mu.Lock()
	if conn, ok := h.clients[id]; ok {
		conn.Close()
		delete(h.clients, id)
	}
	h.mu.Unlock()
}

// broadcast tells every connected browser to reload. Clients that fail
// to receive are dropped; they reconnect on their own.
func (h *hub) broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			log.Printf("livereload: dropping client %s: %v", id, err)
			conn.Close()
			delete(h.clients, id)
		}
	}
}

// handleLivereload upgrades the connection and parks it until the
// watcher reports a rebuild.
func (s *Server) handleLivereload(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livereload: websocket upgrade: %v", err)
		return
	}

	id := uuid.New().String()
	s.hub.add(id, conn)

	// Drain reads to notice the browser going away.
	go func() {
		defer s.hub.remove(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
