package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrames(t *testing.T) {
	g := mustGame(t, []int{10, 3, 6, 5, 5, 8})
	frames := g.Frames()
	require.Len(t, frames, 4)

	assert.Equal(t, Frame{Number: 1, Rolls: []int{10}}, frames[0])
	assert.True(t, frames[0].IsStrike())
	assert.True(t, frames[0].IsComplete())

	assert.Equal(t, []int{3, 6}, frames[1].Rolls)
	assert.False(t, frames[1].IsSpare())
	assert.Equal(t, 9, frames[1].Pins())

	assert.True(t, frames[2].IsSpare())
	assert.False(t, frames[2].IsStrike())

	assert.Equal(t, Frame{Number: 4, Rolls: []int{8}}, frames[3])
	assert.False(t, frames[3].IsComplete())
}

func TestFramesTenth(t *testing.T) {
	g := mustGame(t, repeat(10, 12))
	frames := g.Frames()
	require.Len(t, frames, Frames)

	tenth := frames[9]
	assert.Equal(t, Frames, tenth.Number)
	assert.Equal(t, []int{10, 10, 10}, tenth.Rolls)
	assert.True(t, tenth.IsComplete())
	assert.Equal(t, 30, tenth.Pins())
}

func TestFramesAreCopies(t *testing.T) {
	g := mustGame(t, []int{4, 5})
	frames := g.Frames()
	frames[0].Rolls[0] = 9

	assert.Equal(t, []int{4, 5}, g.Rolls())
	rolls := g.Rolls()
	rolls[1] = 0
	assert.Equal(t, 9, g.Score())
}

func TestFramesNotStarted(t *testing.T) {
	assert.Empty(t, New().Frames())

	// Nine frames closed, tenth not yet started
	g := mustGame(t, repeat(0, 18))
	assert.Len(t, g.Frames(), 9)
	assert.Equal(t, Frames, g.CurrentFrame())
}

func TestTenthFrameCompletion(t *testing.T) {
	tests := []struct {
		rolls    []int
		complete bool
	}{
		{nil, false},
		{[]int{10}, false},
		{[]int{10, 10}, false},
		{[]int{10, 10, 10}, true},
		{[]int{10, 2, 3}, true},
		{[]int{3}, false},
		{[]int{3, 7}, false},
		{[]int{3, 7, 0}, true},
		{[]int{3, 6}, true},
		{[]int{0, 0}, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.complete, tenthComplete(tt.rolls), "%v", tt.rolls)
	}
}

func TestCurrentFrame(t *testing.T) {
	tests := []struct {
		name     string
		rolls    []int
		expected int
	}{
		{"new game", nil, 1},
		{"mid frame", []int{3}, 1},
		{"after open frame", []int{3, 4}, 2},
		{"after strike", []int{10}, 2},
		{"tenth frame bonus", concat(repeat(0, 18), []int{10, 10}), 10},
		{"complete", repeat(10, 12), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mustGame(t, tt.rolls).CurrentFrame())
		})
	}
}

func TestStanding(t *testing.T) {
	nine := repeat(0, 18)
	tests := []struct {
		name     string
		rolls    []int
		expected int
	}{
		{"fresh rack", nil, 10},
		{"after first ball", []int{3}, 7},
		{"after gutter ball", []int{0}, 10},
		{"after open frame", []int{3, 4}, 10},
		{"after strike", []int{10}, 10},
		{"tenth first ball", concat(nine, []int{6}), 4},
		{"tenth after spare", concat(nine, []int{6, 4}), 10},
		{"tenth after strike", concat(nine, []int{10}), 10},
		{"tenth strike then three", concat(nine, []int{10, 3}), 7},
		{"tenth double", concat(nine, []int{10, 10}), 10},
		{"complete", repeat(10, 12), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mustGame(t, tt.rolls).Standing())
		})
	}
}

func TestFreshRack(t *testing.T) {
	nine := repeat(0, 18)
	tests := []struct {
		name     string
		rolls    []int
		expected bool
	}{
		{"new game", nil, true},
		{"after first ball", []int{3}, false},
		{"after gutter ball", []int{0}, false},
		{"after open frame", []int{3, 4}, true},
		{"after strike", []int{10}, true},
		{"after gutter spare", []int{0, 10}, true},
		{"tenth first ball", nine, true},
		{"tenth after gutter ball", concat(nine, []int{0}), false},
		{"tenth after strike", concat(nine, []int{10}), true},
		{"tenth strike then gutter", concat(nine, []int{10, 0}), false},
		{"tenth strike then three", concat(nine, []int{10, 3}), false},
		{"tenth double", concat(nine, []int{10, 10}), true},
		{"tenth gutter spare", concat(nine, []int{0, 10}), true},
		{"complete", repeat(10, 12), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.rolls)
			assert.Equal(t, tt.expected, g.FreshRack())
			if tt.expected {
				assert.Equal(t, MaxPins, g.Standing(), "a fresh rack is a full rack")
			}
		})
	}
}

func TestSegment(t *testing.T) {
	spans, tenth, closed := segment([]int{10, 1, 2, 3})
	assert.Equal(t, []span{{0, 1}, {1, 3}, {3, 4}}, spans)
	assert.Equal(t, 4, tenth)
	assert.False(t, closed)

	spans, tenth, closed = segment(repeat(10, 12))
	assert.Len(t, spans, 9)
	assert.Equal(t, 9, tenth)
	assert.True(t, closed)
}
