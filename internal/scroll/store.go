// Package scroll keeps one spring-driven rotation session per mounted widget.
// A session receives raw scroll offsets, steps its ring filters on a frame
// clock and publishes the resulting angles to stream subscribers.
package scroll

import (
	"crypto/rand"
	"encoding/base32"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"ringframe/internal/motion"
	"ringframe/pkg/realtime"
)

var ErrSessionNotFound = errors.New("scroll: session not found")

// Frame is one published set of ring angles.
type Frame struct {
	Seq    uint64     `json:"seq"`
	Angles [4]float64 `json:"angles"`
}

// Session is the rotation state of one mounted widget instance.
type Session struct {
	mu        sync.Mutex
	ID        string
	CreatedAt time.Time
	lastSeen  time.Time
	rot       *motion.Rotations
	seq       uint64
}

// newSession returns a session at rest on offset, the page's scroll position
// when the widget mounted.
func newSession(fps int, speed, offset float64, now time.Time) *Session {
	rot := motion.NewRotations(fps, speed)
	rot.Reset(offset)
	return &Session{
		ID:        newID(),
		CreatedAt: now,
		lastSeen:  now,
		rot:       rot,
	}
}

// Scroll records a new raw scroll offset. It reports whether the offset
// changed.
func (s *Session) Scroll(offset float64, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
	if s.rot.Target() == offset {
		return false
	}
	s.rot.SetTarget(offset)
	return true
}

// Offset returns the latest raw scroll offset.
func (s *Session) Offset() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rot.Target()
}

// Speed returns the session's speed factor.
func (s *Session) Speed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rot.Speed()
}

// Advance steps the springs one frame if they are still moving. It reports
// whether a frame was produced.
func (s *Session) Advance() (Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rot.Settled() {
		return Frame{}, false
	}
	s.seq++
	return Frame{Seq: s.seq, Angles: s.rot.Step()}, true
}

// Snapshot returns the current angles without stepping.
func (s *Session) Snapshot() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Frame{Seq: s.seq, Angles: s.rot.Angles()}
}

// Settled reports whether the rings are at rest.
func (s *Session) Settled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rot.Settled()
}

// LastSeen returns the time of the last scroll or stream activity.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// Store holds sessions and delegates to realtime.RoomStore for fan-out and
// the per-session frame loop.
type Store struct {
	r     *realtime.RoomStore[*Session, Frame]
	clock realtime.FrameClock
}

// NewStore creates an in-memory session store stepping springs fps times per
// second.
func NewStore(fps int) *Store {
	if fps <= 0 {
		fps = motion.DefaultFPS
	}
	return &Store{
		r:     realtime.NewRoomStore[*Session, Frame](),
		clock: realtime.NewFrameClock(fps),
	}
}

// FPS returns the frame rate of session loops.
func (s *Store) FPS() int {
	return s.clock.FPS()
}

// Mount creates a session resting at offset and starts its frame loop.
func (s *Store) Mount(speed, offset float64) *Session {
	sess := newSession(s.FPS(), speed, offset, time.Now().UTC())
	s.r.Create(sess.ID, sess)
	s.r.RunLoop(sess.ID, s.tick)
	log.Printf("session mounted id=%s speed=%g offset=%g", sess.ID, speed, offset)
	return sess
}

func (s *Store) tick(sess *Session, now time.Time) (time.Time, []Frame, bool) {
	frame, moved := sess.Advance()
	if !moved {
		return s.clock.Next(now, false), nil, false
	}
	return s.clock.Next(now, true), []Frame{frame}, false
}

// Get returns a session by ID if it exists.
func (s *Store) Get(id string) (*Session, bool) {
	room, ok := s.r.Get(id)
	if !ok {
		return nil, false
	}
	return room.State, true
}

// Scroll feeds a new scroll offset to the session and wakes its loop.
func (s *Store) Scroll(id string, offset float64) error {
	sess, ok := s.Get(id)
	if !ok {
		return ErrSessionNotFound
	}
	if sess.Scroll(offset, time.Now().UTC()) {
		s.r.Wake(id)
	}
	return nil
}

// Subscribe returns a frame channel for the session and a function that
// releases it. The channel is closed when the session is unmounted.
func (s *Store) Subscribe(id string) (<-chan Frame, func(), error) {
	hub, ok := s.r.Broadcaster(id)
	if !ok {
		return nil, nil, ErrSessionNotFound
	}
	if sess, ok := s.Get(id); ok {
		sess.touch(time.Now().UTC())
	}
	ch := hub.Subscribe()
	return ch, func() { hub.Unsubscribe(ch) }, nil
}

// Unmount stops the session loop and closes its subscribers. No frame is
// delivered for the session after Unmount returns.
func (s *Store) Unmount(id string) bool {
	if !s.r.Remove(id) {
		return false
	}
	log.Printf("session unmounted id=%s", id)
	return true
}

// Len returns the number of mounted sessions.
func (s *Store) Len() int {
	return s.r.Len()
}

// Sweep unmounts sessions that have no subscribers and have been idle for
// longer than ttl. It returns the number of sessions removed.
func (s *Store) Sweep(now time.Time, ttl time.Duration) int {
	removed := 0
	for _, id := range s.r.IDs() {
		room, ok := s.r.Get(id)
		if !ok {
			continue
		}
		hub, _ := s.r.Broadcaster(id)
		if hub != nil && hub.Len() > 0 {
			continue
		}
		if now.Sub(room.State.LastSeen()) < ttl {
			continue
		}
		if s.r.Remove(id) {
			removed++
		}
	}
	if removed > 0 {
		log.Printf("session sweep removed=%d remaining=%d", removed, s.r.Len())
	}
	return removed
}

func newID() string {
	// 10 bytes -> 16 chars of base32, short and url-safe.
	buf := make([]byte, 10)
	_, _ = rand.Read(buf)
	encoder := base32.StdEncoding.WithPadding(base32.NoPadding)
	return strings.ToLower(encoder.EncodeToString(buf))
}
