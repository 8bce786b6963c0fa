package session

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/osuushi/tverberg/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	points := square()
	s := New(points, nil)
	assert.NotEmpty(t, s.Name())
	assert.True(t, s.Dirty())

	// The session keeps its own copy
	points[0] = advanced.Point{X: -1, Y: -1}
	assert.Equal(t, square(), s.Points())
	s.Points()[1] = advanced.Point{X: -1, Y: -1}
	assert.Equal(t, square(), s.Points())
}

func TestPickDragRelease(t *testing.T) {
	s := New(square(), zaptest.NewLogger(t))
	_, err := s.Recompute()
	require.NoError(t, err)
	require.False(t, s.Dirty())

	t.Run("nothing in range", func(t *testing.T) {
		assert.Equal(t, -1, s.Pick(150, 150))
		assert.False(t, s.Drag(10, 10))
	})

	t.Run("pick radius", func(t *testing.T) {
		assert.Equal(t, -1, s.Pick(113, 100))
		assert.Equal(t, 0, s.Pick(112, 100))
	})

	t.Run("drag and release", func(t *testing.T) {
		require.Equal(t, 2, s.Pick(195, 105))
		assert.True(t, s.Drag(250, 90))
		assert.Equal(t, advanced.Point{X: 250, Y: 90}, s.Points()[2])
		assert.False(t, s.Dirty(), "dirty only once the point is released")
		mid := s.Snapshot()
		assert.False(t, mid.Dirty)
		assert.Equal(t, advanced.Point{X: 250, Y: 90}, mid.Points[2])
		assert.Equal(t, advanced.Point{X: 150, Y: 150}, *mid.Result.Center, "result is from before the drag")

		s.Release()
		assert.True(t, s.Dirty())
		assert.False(t, s.Drag(0, 0), "nothing is picked after release")
	})

	t.Run("first point in range wins", func(t *testing.T) {
		s.SetPoints([]advanced.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 1, Y: 0}})
		assert.Equal(t, 0, s.Pick(3, 0))
	})
}

func TestRecompute(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := New(square(), zap.New(core))

	result, err := s.Recompute()
	require.NoError(t, err)
	require.True(t, result.Found())
	assert.InDelta(t, 150, result.Center.X, 1e-9)
	assert.InDelta(t, 150, result.Center.Y, 1e-9)
	assert.False(t, s.Dirty())

	computed := logs.FilterMessage("partition computed")
	require.Equal(t, 1, computed.Len())
	fields := computed.All()[0].ContextMap()
	assert.Equal(t, s.Name(), fields["session"])
	assert.Equal(t, true, fields["found"])

	// Not dirty, so the cached result comes back without another search
	again, err := s.Recompute()
	require.NoError(t, err)
	assert.Equal(t, result, again)
	assert.Equal(t, 1, logs.FilterMessage("partition computed").Len())

	snapshot := s.Snapshot()
	assert.Equal(t, s.Name(), snapshot.Name)
	assert.Equal(t, square(), snapshot.Points)
	assert.Equal(t, result, snapshot.Result)
	assert.False(t, snapshot.Dirty)
}

func TestRecompute_TooFewPoints(t *testing.T) {
	s := New([]advanced.Point{{X: 0, Y: 0}}, nil)
	_, err := s.Recompute()
	var sizeErr *advanced.InvalidInputSizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, 1, sizeErr.Got)

	// The failure is remembered until the points change
	_, again := s.Recompute()
	assert.Equal(t, err, again)
}

func TestReset(t *testing.T) {
	s := New(square(), nil)
	_, err := s.Recompute()
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	min, max := advanced.Point{X: 100, Y: 100}, advanced.Point{X: 700, Y: 500}
	require.NoError(t, s.Reset(rng, 4, min, max))
	assert.True(t, s.Dirty())
	points := s.Points()
	require.Len(t, points, 10)
	for _, p := range points {
		assert.True(t, p.X >= min.X && p.X <= max.X && p.Y >= min.Y && p.Y <= max.Y, "%v out of bounds", p)
	}

	assert.Error(t, s.Reset(rng, 0, min, max))
	assert.Equal(t, points, s.Points())
}

func TestAdopt_StaleResult(t *testing.T) {
	s := New(square(), nil)
	_, version := s.snapshotForSearch()
	s.Pick(100, 100)
	s.Drag(120, 120)
	assert.False(t, s.adopt(version, advanced.PartitionResult{}, nil))
	assert.True(t, s.Dirty())
}

func TestConcurrentEdits(t *testing.T) {
	s := New(square(), nil)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if s.Pick(100, 100) >= 0 {
				s.Drag(100, 100)
				s.Release()
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_, err := s.Recompute()
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	result, err := s.Recompute()
	require.NoError(t, err)
	assert.True(t, result.Found())
	assert.False(t, s.Dirty())
}

func TestAnimator(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := New(square(), zap.New(core))

	var outcomes []advanced.StepOutcome
	result, err := s.Animator().Run(context.Background(), time.Millisecond, func(outcome advanced.StepOutcome) {
		outcomes = append(outcomes, outcome)
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 7)
	assert.Equal(t, advanced.StepFound, outcomes[6].Kind)
	assert.Equal(t, advanced.Search(square()), result)

	// The session wasn't touched, so the animation's result is now current
	assert.False(t, s.Dirty())
	assert.Equal(t, result, s.Snapshot().Result)

	assert.Equal(t, 1, logs.FilterMessage("animation finished").Len())
	assert.Equal(t, 1, logs.FilterMessage(outcomes[0].Message).Len())
}

func TestAnimator_NoInterval(t *testing.T) {
	s := New(collinear(), nil)
	var steps int
	result, err := s.Animator().Run(context.Background(), 0, func(advanced.StepOutcome) { steps++ })
	require.NoError(t, err)
	assert.False(t, result.Found())
	assert.Greater(t, steps, 1)
}

func TestAnimator_Cancel(t *testing.T) {
	s := New(collinear(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	var steps int
	_, err := s.Animator().Run(ctx, time.Hour, func(advanced.StepOutcome) {
		steps++
		cancel()
	})
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, 1, steps)
	assert.True(t, s.Dirty(), "a cancelled run leaves nothing behind")
}

func TestAnimator_TooFewPoints(t *testing.T) {
	s := New([]advanced.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, nil)
	_, err := s.Animator().Run(context.Background(), 0, nil)
	assert.EqualError(t, err, "invalid input size: got 2 points, need at least 4 (intersection search)")
}

// Helpers

// A square 100 units on a side with its corners ordered so that the
// diagonals are 0-1 and 2-3.
func square() []advanced.Point {
	return []advanced.Point{{X: 100, Y: 100}, {X: 200, Y: 200}, {X: 200, Y: 100}, {X: 100, Y: 200}}
}

func collinear() []advanced.Point {
	return []advanced.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 20}, {X: 30, Y: 30}, {X: 40, Y: 40}}
}
