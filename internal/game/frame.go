package game

import "fmt"

const (
	// Frames is the number of frames in a game
	Frames = 10
	// MaxPins is the number of pins in a full rack
	MaxPins = 10
	// MaxRolls is the longest possible game: nine open frames and a tenth
	// frame with a bonus roll
	MaxRolls = 21
)

// Frame is a read-only view of one frame, derived from the roll sequence
type Frame struct {
	Number int   // 1-10
	Rolls  []int // rolls belonging to this frame, bonus rolls of the tenth included
}

// IsStrike reports whether the frame's first roll cleared the rack
func (f Frame) IsStrike() bool {
	return len(f.Rolls) > 0 && f.Rolls[0] == MaxPins
}

// IsSpare reports whether the first two rolls cleared the rack without a strike
func (f Frame) IsSpare() bool {
	return len(f.Rolls) >= 2 && f.Rolls[0] != MaxPins && f.Rolls[0]+f.Rolls[1] == MaxPins
}

// IsComplete reports whether no more rolls belong to this frame
func (f Frame) IsComplete() bool {
	if f.Number == Frames {
		return tenthComplete(f.Rolls)
	}
	return f.IsStrike() || len(f.Rolls) == 2
}

// Pins returns the pins knocked down within the frame, without bonuses
func (f Frame) Pins() int {
	total := 0
	for _, p := range f.Rolls {
		total += p
	}
	return total
}

// span marks the rolls of one frame as rolls[start:end]
type span struct {
	start, end int
}

func (s span) len() int { return s.end - s.start }

// segment walks frames 1-9 and returns their spans, the last of which may be
// a single non-strike roll still waiting for its second ball. tenth is the
// index where the tenth-frame region begins and closed reports whether all
// nine frames were resolved.
func segment(rolls []int) (spans []span, tenth int, closed bool) {
	i := 0
	for n := 1; n < Frames; n++ {
		switch {
		case i >= len(rolls):
			return spans, len(rolls), false
		case rolls[i] == MaxPins:
			spans = append(spans, span{i, i + 1})
			i++
		case i+1 >= len(rolls):
			spans = append(spans, span{i, i + 1})
			return spans, len(rolls), false
		default:
			spans = append(spans, span{i, i + 2})
			i += 2
		}
	}
	return spans, i, true
}

// tenthComplete applies the tenth frame's own closing rule to its rolls.
func tenthComplete(r []int) bool {
	switch {
	case len(r) == 0:
		return false
	case r[0] == MaxPins:
		return len(r) >= 3
	case len(r) < 2:
		return false
	case r[0]+r[1] == MaxPins:
		return len(r) >= 3
	case r[0]+r[1] < MaxPins:
		return true
	default:
		return false
	}
}

// check is the single frame-legality checker behind Roll and Validate.
func check(rolls []int) *RollError {
	for i, pins := range rolls {
		if pins < 0 || pins > MaxPins {
			return invalidPinCount(pins, i)
		}
	}

	spans, tenth, closed := segment(rolls)
	for n, s := range spans {
		if s.len() != 2 {
			continue
		}
		first, second := rolls[s.start], rolls[s.start+1]
		if first+second > MaxPins {
			return frameOverflow(second, s.start+1, n+1,
				fmt.Sprintf("frame total %d exceeds %d pins", first+second, MaxPins))
		}
	}

	if !closed {
		return nil
	}
	return checkTenth(rolls, tenth)
}

func checkTenth(rolls []int, start int) *RollError {
	r := rolls[start:]
	switch {
	case len(r) > 3:
		return frameOverflow(r[3], start+3, Frames, "tenth frame allows at most 3 rolls")
	case len(r) < 2 || r[0] == MaxPins:
		// A strike resets the rack; bonus rolls are only bounded per roll.
		return nil
	case r[0]+r[1] > MaxPins:
		return frameOverflow(r[1], start+1, Frames,
			fmt.Sprintf("first two rolls total %d without a strike", r[0]+r[1]))
	case len(r) == 3 && r[0]+r[1] < MaxPins:
		return frameOverflow(r[2], start+2, Frames, "open tenth frame has no bonus roll")
	}
	return nil
}

// standing returns the pins left on the deck for the next roll.
func standing(rolls []int) int {
	spans, tenth, closed := segment(rolls)
	if !closed {
		if n := len(spans); n > 0 {
			last := spans[n-1]
			if last.len() == 1 && rolls[last.start] != MaxPins {
				return MaxPins - rolls[last.start]
			}
		}
		return MaxPins
	}

	r := rolls[tenth:]
	if tenthComplete(r) {
		return 0
	}
	switch len(r) {
	case 1:
		if r[0] != MaxPins {
			return MaxPins - r[0]
		}
	case 2:
		if r[0] == MaxPins && r[1] != MaxPins {
			return MaxPins - r[1]
		}
	}
	return MaxPins
}

// freshRack reports whether the next ball is thrown at a newly set rack. It
// differs from standing(rolls) == MaxPins after a first ball of 0.
func freshRack(rolls []int) bool {
	spans, tenth, closed := segment(rolls)
	if !closed {
		n := len(spans)
		if n == 0 {
			return true
		}
		last := spans[n-1]
		return last.len() == 2 || rolls[last.start] == MaxPins
	}

	r := rolls[tenth:]
	if tenthComplete(r) {
		return false
	}
	switch len(r) {
	case 0:
		return true
	case 1:
		return r[0] == MaxPins
	case 2:
		if r[0] == MaxPins {
			return r[1] == MaxPins
		}
		return r[0]+r[1] == MaxPins
	}
	return false
}
