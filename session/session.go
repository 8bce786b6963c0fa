// Package session holds the state behind an interactive view of a partition:
// the points being edited, which one is being dragged, and the last computed
// result.
package session

import (
	"math/rand"
	"sync"

	"github.com/osuushi/tverberg"
	"github.com/osuushi/tverberg/advanced"
	"github.com/osuushi/tverberg/dbg"
	"go.uber.org/zap"
)

// Squared distance within which a click picks up a point.
const PickRadiusSquared = 150

// A Session is safe for concurrent use. Edits come from one goroutine (the
// input handler) and recomputes or animations may run on another; every
// access goes through the mutex, and the partition itself always runs on a
// copy of the points.
type Session struct {
	mu     sync.Mutex
	name   string
	logger *zap.Logger

	points   []advanced.Point
	dragging int
	dirty    bool
	// Bumped on every edit, so results computed from a stale copy can be
	// recognized.
	version uint64

	result advanced.PartitionResult
	err    error
}

type Snapshot struct {
	Name   string
	Points []advanced.Point
	// The last computed result. Stale if Dirty is set.
	Result advanced.PartitionResult
	// Set once an edit is finished: by Release, SetPoints or Reset. A point
	// in the middle of a drag has moved but doesn't set it yet, so the
	// partition is only recalculated when the point is let go. Results
	// computed while a drag is under way are still never cached.
	Dirty bool
}

// Start a session on a copy of points. A nil logger logs nothing.
func New(points []advanced.Point, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		points:   copyPoints(points),
		dragging: -1,
		dirty:    true,
	}
	s.name = dbg.Name(s)
	s.logger = logger.With(zap.String("session", s.name))
	s.logger.Debug("session started", zap.Int("points", len(points)))
	return s
}

func (s *Session) Name() string {
	return s.name
}

func (s *Session) Points() []advanced.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyPoints(s.points)
}

func (s *Session) SetPoints(points []advanced.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = copyPoints(points)
	s.dragging = -1
	s.touch()
	s.logger.Debug("points replaced", zap.Int("points", len(points)))
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Name:   s.name,
		Points: copyPoints(s.points),
		Result: s.result,
		Dirty:  s.dirty,
	}
}

// Whether an edit finished since the last recompute. See Snapshot.Dirty.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Pick up the first point within the pick radius of (x, y). Returns the index
// of the point, or -1 if there is none.
func (s *Session) Pick(x, y float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dragging = -1
	for i, p := range s.points {
		dx, dy := p.X-x, p.Y-y
		if dx*dx+dy*dy < PickRadiusSquared {
			s.dragging = i
			s.logger.Debug("picked point", zap.Int("index", i))
			break
		}
	}
	return s.dragging
}

// Move the picked point to (x, y). Returns false if nothing is picked.
func (s *Session) Drag(x, y float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dragging < 0 {
		return false
	}
	s.points[s.dragging] = advanced.Point{X: x, Y: y}
	s.version++
	return true
}

// Let go of the picked point. The partition needs recomputing afterwards.
func (s *Session) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dragging >= 0 {
		p := s.points[s.dragging]
		s.logger.Debug("released point",
			zap.Int("index", s.dragging), zap.Float64("x", p.X), zap.Float64("y", p.Y))
	}
	s.dragging = -1
	s.touch()
}

// Replace the points with 3r-2 random ones in the rectangle spanned by min and
// max.
func (s *Session) Reset(rng *rand.Rand, r int, min, max advanced.Point) error {
	if r < 1 {
		return advanced.ValidateSize(nil, r)
	}
	points := advanced.RandomPoints(rng, advanced.PointsForSubsets(r), min, max)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = points
	s.dragging = -1
	s.touch()
	s.logger.Info("points reset", zap.Int("subsets", r), zap.Int("points", len(points)))
	return nil
}

// Partition the current points, if anything changed since the last time, and
// return the result. The search runs outside the lock on a copy, so edits are
// never blocked by it.
func (s *Session) Recompute() (advanced.PartitionResult, error) {
	s.mu.Lock()
	if !s.dirty {
		result, err := s.result, s.err
		s.mu.Unlock()
		return result, err
	}
	points := copyPoints(s.points)
	version := s.version
	s.mu.Unlock()

	result, err := tverberg.Partition(points)
	if err != nil {
		s.logger.Warn("partition failed", zap.Error(err))
	} else {
		s.logger.Info("partition computed",
			zap.Int("points", len(points)),
			zap.Bool("found", result.Found()),
			zap.Int("triangles", len(result.Triangles)))
	}
	s.adopt(version, result, err)
	return result, err
}

// Cache a result computed from the points at version. If the points changed
// in the meantime the result is returned to the caller but not kept.
func (s *Session) adopt(version uint64, result advanced.PartitionResult, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if version != s.version {
		s.logger.Debug("discarding stale result", zap.Uint64("version", version), zap.Uint64("current", s.version))
		return false
	}
	s.result, s.err = result, err
	s.dirty = false
	return true
}

// Must hold the lock.
func (s *Session) touch() {
	s.version++
	s.dirty = true
}

func (s *Session) snapshotForSearch() ([]advanced.Point, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyPoints(s.points), s.version
}

func copyPoints(points []advanced.Point) []advanced.Point {
	return append([]advanced.Point(nil), points...)
}
