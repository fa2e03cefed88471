package session

import (
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tenpin/internal/game"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestSessionRecordsRollsWithClock(t *testing.T) {
	clock := quartz.NewMock(t)
	start := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	clock.Set(start)

	s := New(quietLogger(), WithClock(clock), WithID("lane-7"))
	assert.Equal(t, "lane-7", s.ID())

	require.NoError(t, s.Roll(10))
	clock.Advance(30 * time.Second)
	require.NoError(t, s.Roll(7))
	clock.Advance(20 * time.Second)
	require.NoError(t, s.Roll(3))

	history := s.History()
	require.Len(t, history, 3)
	assert.Equal(t, Roll{Pins: 10, Frame: 1, At: start}, history[0])
	assert.Equal(t, Roll{Pins: 7, Frame: 2, At: start.Add(30 * time.Second)}, history[1])
	assert.Equal(t, Roll{Pins: 3, Frame: 2, At: start.Add(50 * time.Second)}, history[2])

	assert.Equal(t, []int{10, 7, 3}, s.Rolls())
	assert.Equal(t, 20, s.Score())
	assert.False(t, s.IsComplete())
}

func TestSessionEvents(t *testing.T) {
	clock := quartz.NewMock(t)
	start := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	clock.Set(start)

	var events []Event
	s := New(quietLogger(), WithClock(clock), WithSubscriber(func(e Event) {
		events = append(events, e)
	}))

	for i := range 11 {
		require.NoError(t, s.Roll(10))
		if i < 10 {
			clock.Advance(time.Minute)
		}
	}
	err := s.Roll(11)
	require.ErrorIs(t, err, game.ErrInvalidPinCount)
	require.NoError(t, s.Roll(10))

	require.Len(t, events, 14)
	for _, e := range events[:11] {
		assert.Equal(t, EventTypeRollRecorded, e.EventType())
	}

	rejected, ok := events[11].(RollRejected)
	require.True(t, ok)
	assert.Equal(t, 11, rejected.Pins)
	assert.ErrorIs(t, rejected.Err, game.ErrInvalidPinCount)

	last, ok := events[12].(RollRecorded)
	require.True(t, ok)
	assert.Equal(t, 11, last.Index)
	assert.Equal(t, 10, last.Frame)
	assert.Equal(t, 300, last.Score)

	done, ok := events[13].(GameCompleted)
	require.True(t, ok)
	assert.Equal(t, 300, done.Score)
	assert.Len(t, done.Rolls, 12)
	assert.Equal(t, 10*time.Minute, done.Duration)
	assert.Equal(t, start.Add(10*time.Minute), done.Timestamp())
	assert.Equal(t, s.ID(), done.SessionID)
}

func TestSessionRejectsAfterCompletion(t *testing.T) {
	var completed atomic.Int32
	s := New(quietLogger())
	s.Subscribe(func(e Event) {
		if e.EventType() == EventTypeGameCompleted {
			completed.Add(1)
		}
	})

	for range 20 {
		require.NoError(t, s.Roll(0))
	}
	err := s.Roll(0)
	assert.ErrorIs(t, err, game.ErrGameAlreadyComplete)
	assert.Equal(t, int32(1), completed.Load())
	assert.Len(t, s.History(), 20)
}

func TestSessionConcurrentRolls(t *testing.T) {
	s := New(quietLogger())

	var (
		wg       sync.WaitGroup
		rejected atomic.Int32
	)
	for range 25 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Roll(1); err != nil {
				assert.ErrorIs(t, err, game.ErrGameAlreadyComplete)
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.True(t, snap.Complete)
	assert.Equal(t, 20, snap.Score)
	assert.Len(t, snap.Rolls, 20)
	assert.Equal(t, int32(5), rejected.Load())
}

func TestSessionGeneratesIDs(t *testing.T) {
	a := New(quietLogger())
	b := New(quietLogger())
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSnapshot(t *testing.T) {
	s := New(quietLogger(), WithID("snap"))
	require.NoError(t, s.Roll(6))

	snap := s.Snapshot()
	assert.Equal(t, "snap", snap.ID)
	assert.Equal(t, 1, snap.CurrentFrame)
	assert.Equal(t, 4, snap.Standing)
	assert.False(t, snap.FreshRack)
	assert.Equal(t, 6, snap.Score)
	require.Len(t, snap.Frames, 1)
	assert.Equal(t, []int{6}, snap.Frames[0].Rolls)
}

func TestSessionRackAfterGutterBall(t *testing.T) {
	s := New(quietLogger())
	assert.True(t, s.FreshRack())

	require.NoError(t, s.Roll(0))
	assert.Equal(t, 10, s.Standing())
	assert.False(t, s.FreshRack(), "second ball of the frame")

	require.NoError(t, s.Roll(10))
	assert.True(t, s.FreshRack())
}
