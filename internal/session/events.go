package session

import "time"

// EventType identifies a session event
type EventType string

const (
	EventTypeRollRecorded  EventType = "roll_recorded"
	EventTypeRollRejected  EventType = "roll_rejected"
	EventTypeGameCompleted EventType = "game_completed"
)

func (et EventType) String() string {
	return string(et)
}

// Event is anything published by a Session
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// RollRecorded is published after a roll is accepted
type RollRecorded struct {
	SessionID string
	Index     int // position of the roll in the game
	Frame     int // frame the roll belongs to
	Pins      int
	Score     int // score after the roll
	timestamp time.Time
}

func (e RollRecorded) EventType() EventType { return EventTypeRollRecorded }
func (e RollRecorded) Timestamp() time.Time { return e.timestamp }

// RollRejected is published when the game refuses a roll
type RollRejected struct {
	SessionID string
	Pins      int
	Err       error
	timestamp time.Time
}

func (e RollRejected) EventType() EventType { return EventTypeRollRejected }
func (e RollRejected) Timestamp() time.Time { return e.timestamp }

// GameCompleted is published once, on the roll that closes the tenth frame
type GameCompleted struct {
	SessionID string
	Rolls     []int
	Score     int
	Duration  time.Duration // first roll to last roll
	timestamp time.Time
}

func (e GameCompleted) EventType() EventType { return EventTypeGameCompleted }
func (e GameCompleted) Timestamp() time.Time { return e.timestamp }

// Subscriber receives session events in the order they occurred. It must not
// call back into the session that published the event.
type Subscriber func(Event)
