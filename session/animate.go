package session

import (
	"context"
	"time"

	"github.com/osuushi/tverberg"
	"github.com/osuushi/tverberg/advanced"
	"go.uber.org/zap"
)

// Animator replays the search over a session's points one halfspace test at
// a time.
type Animator struct {
	session *Session
	logger  *zap.Logger
}

func (s *Session) Animator() *Animator {
	return &Animator{session: s, logger: s.logger.With(zap.String("run", "animate"))}
}

// Step through the search on a copy of the session's points, one step per
// tick of interval, calling onStep with every outcome. A non-positive interval
// runs the steps back to back.
//
// Returns the final result once the search is done. If the session was not
// edited while the animation ran, the result also becomes the session's
// current one. Cancelling ctx stops the animation and returns ctx.Err().
func (a *Animator) Run(ctx context.Context, interval time.Duration, onStep func(advanced.StepOutcome)) (advanced.PartitionResult, error) {
	points, version := a.session.snapshotForSearch()
	if len(points) < advanced.MinPoints {
		return advanced.PartitionResult{}, &advanced.InvalidInputSizeError{
			Got:    len(points),
			Need:   advanced.MinPoints,
			Reason: "intersection search",
		}
	}

	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	a.logger.Info("animation started", zap.Int("points", len(points)), zap.Duration("interval", interval))
	cursor := tverberg.NewCursor()
	for steps := 1; ; steps++ {
		outcome, next, err := tverberg.Step(points, cursor)
		if err != nil {
			a.logger.Error("step failed", zap.Stringer("cursor", cursor), zap.Error(err))
			return advanced.PartitionResult{}, err
		}
		cursor = next
		a.logger.Debug(outcome.Message,
			zap.Stringer("kind", outcome.Kind),
			zap.Stringer("phase", outcome.Phase),
			zap.Stringer("cursor", outcome.Cursor))
		if onStep != nil {
			onStep(outcome)
		}

		if outcome.Done() {
			result := *outcome.Result
			a.logger.Info("animation finished",
				zap.Int("steps", steps),
				zap.Bool("found", result.Found()),
				zap.Int("triangles", len(result.Triangles)))
			a.session.adopt(version, result, nil)
			return result, nil
		}

		if tick == nil {
			if err := ctx.Err(); err != nil {
				return advanced.PartitionResult{}, err
			}
			continue
		}
		select {
		case <-ctx.Done():
			a.logger.Info("animation cancelled", zap.Int("steps", steps))
			return advanced.PartitionResult{}, ctx.Err()
		case <-tick:
		}
	}
}
