// Package game implements the scoring rules for a single game of ten-pin
// bowling.
//
// The main type is Game, which records rolls, rejects rolls that the rules do
// not allow, and computes the score with strike and spare bonuses.
//
// # Basic Usage
//
//	g := game.New()
//	for _, pins := range []int{10, 7, 3, 9, 0} {
//	    if err := g.Roll(pins); err != nil {
//	        // errors.Is(err, game.ErrFrameOverflow), game.KindOf(err), ...
//	    }
//	}
//	if g.IsComplete() {
//	    final := g.Score()
//	}
//
// # Derived State
//
// A Game stores nothing but the flat list of rolls. Frames, completion and
// score are recomputed from that list on every call, so there is no frame
// counter that could drift from the rolls it describes. Roll builds the
// proposed sequence, runs the same checker that Validate exposes, and only
// then commits.
//
// # Errors
//
// Every rejected roll returns a *RollError whose Kind is one of
// InvalidPinCount, GameAlreadyComplete or FrameOverflow. The tenth-frame
// variants unwrap to ErrTenthFrameOverflow, which in turn matches
// ErrFrameOverflow.
//
// A Game is not safe for concurrent use; see package session for a
// serialized wrapper.
package game
