// Package session wraps a game.Game for hosts that share one game between
// goroutines. Every call holds the session lock, each accepted roll is
// timestamped from an injectable clock, and events are published to
// subscribers.
package session

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/tenpin/internal/game"
)

// Option configures a Session
type Option func(*Session)

// WithClock sets the clock used to timestamp rolls
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// WithID overrides the generated session id
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// WithSubscriber registers a subscriber at construction time
func WithSubscriber(fn Subscriber) Option {
	return func(s *Session) { s.subscribers = append(s.subscribers, fn) }
}

// Roll is one accepted roll with the time it was recorded
type Roll struct {
	Pins  int
	Frame int
	At    time.Time
}

// Session is a mutex-guarded game
type Session struct {
	mu          sync.Mutex
	id          string
	game        *game.Game
	history     []Roll
	clock       quartz.Clock
	logger      *log.Logger
	subscribers []Subscriber

	// deliver serializes event delivery so subscribers see events in order
	deliver sync.Mutex
}

// New creates a session around an empty game
func New(logger *log.Logger, opts ...Option) *Session {
	s := &Session{
		game:  game.New(),
		clock: quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = newID()
	}
	s.logger = logger.WithPrefix("session").With("session", s.id)
	return s
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

// Subscribe registers fn for future events
func (s *Session) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Roll records a roll. The error is the game's *game.RollError unchanged.
func (s *Session) Roll(pins int) error {
	s.mu.Lock()
	now := s.clock.Now()
	frame := s.game.CurrentFrame()

	if err := s.game.Roll(pins); err != nil {
		subs := s.handoff()
		s.logger.Debug("Roll rejected", "pins", pins, "kind", game.KindOf(err), "error", err)
		s.publish(subs, RollRejected{SessionID: s.id, Pins: pins, Err: err, timestamp: now})
		return err
	}

	s.history = append(s.history, Roll{Pins: pins, Frame: frame, At: now})
	events := []Event{RollRecorded{
		SessionID: s.id,
		Index:     s.game.Len() - 1,
		Frame:     frame,
		Pins:      pins,
		Score:     s.game.Score(),
		timestamp: now,
	}}
	if s.game.IsComplete() {
		events = append(events, GameCompleted{
			SessionID: s.id,
			Rolls:     s.game.Rolls(),
			Score:     s.game.Score(),
			Duration:  now.Sub(s.history[0].At),
			timestamp: now,
		})
	}
	subs := s.handoff()
	s.logger.Debug("Roll recorded", "frame", frame, "pins", pins)
	if done, ok := events[len(events)-1].(GameCompleted); ok {
		s.logger.Info("Game complete", "score", done.Score, "rolls", len(done.Rolls), "duration", done.Duration)
	}
	s.publish(subs, events...)
	return nil
}

// handoff takes the delivery lock before releasing the state lock, so events
// reach subscribers in the order their rolls were applied. Must be called
// with s.mu held; publish releases the delivery lock.
func (s *Session) handoff() []Subscriber {
	s.deliver.Lock()
	subs := s.subscribers
	s.mu.Unlock()
	return subs
}

func (s *Session) publish(subs []Subscriber, events ...Event) {
	defer s.deliver.Unlock()
	for _, e := range events {
		for _, fn := range subs {
			fn(e)
		}
	}
}

// Score returns the game's current score
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Score()
}

// IsComplete reports whether the game is over
func (s *Session) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.IsComplete()
}

// Rolls returns a copy of the recorded pin counts
func (s *Session) Rolls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Rolls()
}

// Standing returns the pins left for the next ball
func (s *Session) Standing() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Standing()
}

// FreshRack reports whether the next ball is thrown at a newly set rack
func (s *Session) FreshRack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.FreshRack()
}

// History returns a copy of the accepted rolls with their timestamps
func (s *Session) History() []Roll {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Roll, len(s.history))
	copy(out, s.history)
	return out
}

// Snapshot is a consistent view of the session taken under one lock
type Snapshot struct {
	ID           string
	Rolls        []int
	Frames       []game.Frame
	Score        int
	Complete     bool
	CurrentFrame int
	Standing     int
	FreshRack    bool
}

// Snapshot returns the session state as of one instant
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:           s.id,
		Rolls:        s.game.Rolls(),
		Frames:       s.game.Frames(),
		Score:        s.game.Score(),
		Complete:     s.game.IsComplete(),
		CurrentFrame: s.game.CurrentFrame(),
		Standing:     s.game.Standing(),
		FreshRack:    s.game.FreshRack(),
	}
}
