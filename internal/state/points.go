package state

import (
	"log"
	"sync"
)

// PointList is the append-only point collection of one drawing session.
// Insertion order is draw order.
type PointList struct {
	points  []Point
	session *Session
	mu      sync.RWMutex
}

func NewPointList() *PointList {
	return &PointList{
		points:  make([]Point, 0),
		session: NewSession(),
	}
}

// Append adds points at the end of the list.
func (pl *PointList) Append(points ...Point) {
	if len(points) == 0 {
		return
	}
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.points = append(pl.points, points...)
	pl.session.record(len(points))
}

func (pl *PointList) Len() int {
	pl.mu.RLock()
	defer pl.mu.RUnlock()
	return len(pl.points)
}

// Snapshot returns a copy of the points in draw order.
func (pl *PointList) Snapshot() []Point {
	pl.mu.RLock()
	defer pl.mu.RUnlock()
	points := make([]Point, len(pl.points))
	copy(points, pl.points)
	return points
}

// Clear drops every point, starts a new session and returns how many
// points were dropped.
func (pl *PointList) Clear() int {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	dropped := len(pl.points)
	old := pl.session
	pl.points = make([]Point, 0)
	pl.session = NewSession()
	log.Printf("[STATE] Session %s cleared (%d points), new session %s", old.ID, dropped, pl.session.ID)
	return dropped
}

// Session returns the session the list currently belongs to.
func (pl *PointList) Session() *Session {
	pl.mu.RLock()
	defer pl.mu.RUnlock()
	return pl.session
}
