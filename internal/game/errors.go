package game

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a roll was rejected
type ErrorKind int

const (
	// InvalidPinCount means the pin count was outside [0, 10]
	InvalidPinCount ErrorKind = iota + 1
	// GameAlreadyComplete means the tenth frame was already closed
	GameAlreadyComplete
	// FrameOverflow means a frame would hold more pins than a rack has
	FrameOverflow
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidPinCount:
		return "invalid pin count"
	case GameAlreadyComplete:
		return "game already complete"
	case FrameOverflow:
		return "frame overflow"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

var (
	ErrInvalidPinCount     = errors.New("game: invalid pin count")
	ErrGameAlreadyComplete = errors.New("game: game already complete")
	ErrFrameOverflow       = errors.New("game: frame overflow")

	// ErrTenthFrameOverflow is the FrameOverflow raised by the tenth frame's
	// own rules. errors.Is reports true for ErrFrameOverflow as well.
	ErrTenthFrameOverflow = fmt.Errorf("%w in tenth frame", ErrFrameOverflow)
)

// RollError describes a rejected roll
type RollError struct {
	Kind   ErrorKind
	Pins   int    // pins that were offered
	Index  int    // position the roll would have taken in the sequence
	Frame  int    // 1-based frame the roll fell in, 0 when not applicable
	Reason string // human readable detail

	err error
}

func (e *RollError) Error() string {
	msg := e.err.Error()
	if e.Frame > 0 {
		msg = fmt.Sprintf("%s (frame %d)", msg, e.Frame)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap returns the sentinel for the error's kind
func (e *RollError) Unwrap() error {
	return e.err
}

// KindOf returns the ErrorKind carried by err, or 0 if err is not a RollError.
func KindOf(err error) ErrorKind {
	var re *RollError
	if errors.As(err, &re) {
		return re.Kind
	}
	return 0
}

func invalidPinCount(pins, index int) *RollError {
	return &RollError{
		Kind:   InvalidPinCount,
		Pins:   pins,
		Index:  index,
		Reason: fmt.Sprintf("pins must be between 0 and %d, got %d", MaxPins, pins),
		err:    ErrInvalidPinCount,
	}
}

func gameAlreadyComplete(pins, index int) *RollError {
	return &RollError{
		Kind:   GameAlreadyComplete,
		Pins:   pins,
		Index:  index,
		Reason: "no more rolls allowed",
		err:    ErrGameAlreadyComplete,
	}
}

func frameOverflow(pins, index, frame int, reason string) *RollError {
	sentinel := ErrFrameOverflow
	if frame == Frames {
		sentinel = ErrTenthFrameOverflow
	}
	return &RollError{
		Kind:   FrameOverflow,
		Pins:   pins,
		Index:  index,
		Frame:  frame,
		Reason: reason,
		err:    sentinel,
	}
}
