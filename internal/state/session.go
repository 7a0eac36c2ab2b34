package state

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Session spans one launch-or-clear of the canvas.
type Session struct {
	ID      string
	Started time.Time
	points  uint64
}

func NewSession() *Session {
	return &Session{
		ID:      uuid.NewString(),
		Started: time.Now(),
	}
}

func (s *Session) record(n int) {
	atomic.AddUint64(&s.points, uint64(n))
}

// Points is the number of points appended during the session.
func (s *Session) Points() uint64 {
	return atomic.LoadUint64(&s.points)
}

// Summary is the one-line status shown under the canvas.
func (s *Session) Summary() string {
	id := s.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("Session %s · %d points · started %s", id, s.Points(), s.Started.Format("15:04:05"))
}
