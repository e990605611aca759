package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"digital.vasic.facts/pkg/fact"
)

// Server exposes a WebSocket endpoint broadcasting every fact
// result to connected clients.
type Server struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	addr     string
	server   *http.Server
	upgrader websocket.Upgrader
}

// NewServer creates a monitor server listening on addr.
func NewServer(addr string) *Server {
	return &Server{
		addr:    addr,
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			// The monitor is a local diagnostic endpoint;
			// cross-origin dashboards are allowed.
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}
}

// Observe broadcasts a result to all connected clients. It
// satisfies the session observer signature.
func (s *Server) Observe(result fact.Result) {
	s.Broadcast(ResultEvent(result))
}

// Broadcast sends an event to every connected client,
// dropping clients whose connection fails.
func (s *Server) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.clients {
		err := conn.WriteMessage(
			websocket.TextMessage, data,
		)
		if err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

// routes builds the HTTP mux served by Start.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc(
		"/health",
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ok"))
		},
	)
	return mux
}

// Start begins serving the WebSocket endpoint. It blocks until
// the context is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.server.Close()
	}()

	err := s.server.ListenAndServe()
	if err != http.ErrServerClosed {
		return fmt.Errorf("monitor server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server and closes all client
// connections.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	for conn := range s.clients {
		conn.Close()
		delete(s.clients, conn)
	}
	s.mu.Unlock()

	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) handleWS(
	w http.ResponseWriter,
	r *http.Request,
) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	// Drain control frames; client messages are ignored.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.mu.Lock()
				delete(s.clients, conn)
				s.mu.Unlock()
				conn.Close()
				return
			}
		}
	}()
}
