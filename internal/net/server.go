package net

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"TurtleTrace/internal/turtle"
)

// Server streams drawing snapshots to live viewers over websockets. A client
// gets the current snapshot on connect and a fresh one on every Broadcast.
// Snapshots are computed via the supplied function, so the server never
// holds canvas internals.
type Server struct {
	snapshot func() turtle.Drawing
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func NewServer(snapshot func() turtle.Drawing) *Server {
	return &Server{
		snapshot: snapshot,
		upgrader: websocket.Upgrader{
			// Viewers on the LAN connect from arbitrary origins.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP upgrades the request and keeps the connection registered until
// the client goes away. The websocket is write-only from our side; the read
// loop exists to notice disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[live] upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}

	s.mu.Lock()
	s.conns[conn] = true
	err = conn.WriteJSON(s.snapshot())
	s.mu.Unlock()
	if err != nil {
		log.Printf("[live] initial snapshot to %s failed: %v", conn.RemoteAddr(), err)
		s.drop(conn)
		return
	}
	log.Printf("[live] viewer connected: %s", conn.RemoteAddr())

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Printf("[live] viewer disconnected: %s", conn.RemoteAddr())
			s.drop(conn)
			return
		}
	}
}

func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	conn.Close()
}

// Broadcast pushes the current snapshot to every connected viewer. Dead
// connections are dropped on write failure.
func (s *Server) Broadcast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.conns) == 0 {
		return
	}
	d := s.snapshot()
	for conn := range s.conns {
		if err := conn.WriteJSON(d); err != nil {
			log.Printf("[live] dropping %s: %v", conn.RemoteAddr(), err)
			delete(s.conns, conn)
			conn.Close()
		}
	}
}

// ViewerCount reports how many viewers are connected.
func (s *Server) ViewerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// ListenAndServe runs the live-view endpoint on /live until the listener
// fails.
func (s *Server) ListenAndServe(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/live", s)
	log.Printf("[live] listening on port %d", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
