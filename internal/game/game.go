package game

import "slices"

// State is the game's position in its two-state lifecycle
type State int

const (
	InProgress State = iota
	Complete
)

func (s State) String() string {
	return [...]string{"in progress", "complete"}[s]
}

// Game holds the rolls of one bowling game
type Game struct {
	rolls []int
}

// New creates an empty game
func New() *Game {
	return &Game{}
}

// FromRolls replays rolls into a new game. The returned error is the
// *RollError of the first rejected roll, with Index set to its position.
func FromRolls(rolls []int) (*Game, error) {
	g := New()
	for _, pins := range rolls {
		if err := g.Roll(pins); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Validate checks a whole roll sequence against the frame rules without
// building a game. Unlike FromRolls it does not stop at completion, so rolls
// past the end of the tenth frame are reported as ErrTenthFrameOverflow.
func Validate(rolls []int) error {
	if err := check(rolls); err != nil {
		return err
	}
	return nil
}

// Roll records the pins knocked down by one ball. Nothing is recorded when an
// error is returned.
func (g *Game) Roll(pins int) error {
	index := len(g.rolls)
	if pins < 0 || pins > MaxPins {
		return invalidPinCount(pins, index)
	}
	if g.IsComplete() {
		return gameAlreadyComplete(pins, index)
	}

	proposed := append(slices.Clip(g.rolls), pins)
	if err := check(proposed); err != nil {
		return err
	}
	g.rolls = proposed
	return nil
}

// IsComplete reports whether the tenth frame has been closed
func (g *Game) IsComplete() bool {
	_, tenth, closed := segment(g.rolls)
	return closed && tenthComplete(g.rolls[tenth:])
}

// State returns Complete once the tenth frame is closed, InProgress before
func (g *Game) State() State {
	if g.IsComplete() {
		return Complete
	}
	return InProgress
}

// Score returns the total of every frame that can be scored so far. A strike
// or spare whose bonus rolls have not been thrown yet ends the count, so the
// value only becomes final once IsComplete reports true.
func (g *Game) Score() int {
	rolls := g.rolls
	n := len(rolls)
	total := 0
	i := 0

	for frame := 1; frame < Frames; frame++ {
		if i >= n {
			return total
		}
		switch {
		case rolls[i] == MaxPins:
			if i+2 >= n {
				return total
			}
			total += MaxPins + rolls[i+1] + rolls[i+2]
			i++
		case i+1 < n && rolls[i]+rolls[i+1] == MaxPins:
			if i+2 >= n {
				return total
			}
			total += MaxPins + rolls[i+2]
			i += 2
		default:
			total += rolls[i]
			if i+1 < n {
				total += rolls[i+1]
			}
			i += 2
		}
	}

	for ; i < n; i++ {
		total += rolls[i]
	}
	return total
}

// Rolls returns a copy of the recorded rolls
func (g *Game) Rolls() []int {
	return slices.Clone(g.rolls)
}

// Len returns the number of recorded rolls
func (g *Game) Len() int {
	return len(g.rolls)
}

// Frames returns the frames derived from the recorded rolls. The last frame
// may be incomplete; frames that have not been started are omitted.
func (g *Game) Frames() []Frame {
	spans, tenth, closed := segment(g.rolls)
	frames := make([]Frame, 0, Frames)
	for n, s := range spans {
		frames = append(frames, Frame{Number: n + 1, Rolls: slices.Clone(g.rolls[s.start:s.end])})
	}
	if closed && tenth < len(g.rolls) {
		frames = append(frames, Frame{Number: Frames, Rolls: slices.Clone(g.rolls[tenth:])})
	}
	return frames
}

// CurrentFrame returns the 1-based frame the next roll belongs to, or 0 once
// the game is complete.
func (g *Game) CurrentFrame() int {
	if g.IsComplete() {
		return 0
	}
	frames := g.Frames()
	if len(frames) == 0 {
		return 1
	}
	last := frames[len(frames)-1]
	if last.IsComplete() {
		return last.Number + 1
	}
	return last.Number
}

// Standing returns the pins physically standing for the next ball: a full
// rack at the start of a frame or after a strike or spare, the pins left by
// the previous ball otherwise, and 0 once the game is complete. Roll does not
// enforce this for tenth-frame bonus balls.
func (g *Game) Standing() int {
	return standing(g.rolls)
}

// FreshRack reports whether the next ball is the first at a newly set rack:
// the start of a frame, or a tenth-frame ball after a strike or spare. A
// first ball of 0 leaves Standing at 10 but the rack is no longer fresh.
func (g *Game) FreshRack() bool {
	return freshRack(g.rolls)
}
