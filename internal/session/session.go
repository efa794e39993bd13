package session

import (
	"sync/atomic"

	"github.com/google/uuid"

	"TurtleTrace/internal/turtle"
)

// Session ties one canvas to one drawing session. It owns the fragile/replay
// flag: while set, every state-mutating canvas operation is refused, which
// keeps a session that is mid-replay (or otherwise not allowed to advance)
// byte-for-byte intact. Export stays available.
type Session struct {
	ID      string
	Canvas  *turtle.Canvas
	fragile atomic.Bool
}

// New creates a session with a fresh canvas in the reset state.
func New() *Session {
	s := &Session{ID: uuid.NewString()}
	s.Canvas = turtle.NewCanvas(s.Fragile)
	return s
}

// SetFragile flips the fragile/replay flag.
func (s *Session) SetFragile(v bool) {
	s.fragile.Store(v)
}

// Fragile reports whether mutating drawing commands are currently forbidden.
func (s *Session) Fragile() bool {
	return s.fragile.Load()
}
