// SPDX-License-Identifier: MIT

package obstruct

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/gridpatrol/patrol"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Search evaluates every candidate obstruction for area and start and
// returns the cells that make the guard loop.
//
// A candidate is any in-bounds cell that is not obstructed and is not the
// guard's start cell. area is only read; each evaluation works on its own clone.
//
// Returns ErrNilArea for a nil area, ErrOptionViolation for bad options,
// and the wrapped context error on cancellation.
func Search(ctx context.Context, area *patrol.Area, start patrol.Guard, opts ...Option) (*Result, error) {
	if area == nil {
		return nil, ErrNilArea
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s := &searcher{area: area, start: start, opts: o}

	return s.run(ctx)
}

// Count is Search reduced to the number of loop-inducing cells.
func Count(ctx context.Context, area *patrol.Area, start patrol.Guard, opts ...Option) (int, error) {
	res, err := Search(ctx, area, start, opts...)
	if err != nil {
		return 0, err
	}

	return res.Count(), nil
}

// searcher holds the read-only inputs of one search.
type searcher struct {
	area  *patrol.Area
	start patrol.Guard
	opts  Options
}

// tally is one worker's share of the result.
type tally struct {
	candidates int
	loops      []patrol.Position
	stops      map[patrol.Stop]int
}

func (s *searcher) run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("obstruct: search: %w", err)
	}
	began := time.Now()
	log := s.opts.Logger.With(
		zap.Int("width", s.area.Width()),
		zap.Int("height", s.area.Height()),
		zap.Stringer("start", s.start),
	)

	field := &recordingField{area: s.area, consulted: make(map[patrol.Position]struct{})}
	baseline, err := patrol.Trace(field, s.start, s.opts.Strategy, patrol.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("obstruct: baseline trace: %w", err)
	}
	candidates, inferred := s.candidates(field.consulted)
	s.opts.Metrics.started()
	log.Info("loop obstacle search started",
		zap.Int("candidates", len(candidates)),
		zap.Int("inferred", len(inferred)),
		zap.Int("workers", s.opts.Workers),
		zap.Bool("path_only", s.opts.PathOnly),
		zap.Stringer("baseline_stop", baseline.Stop),
	)

	cells := make(chan patrol.Position)
	tallies := make([]tally, s.opts.Workers)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(cells)
		for _, p := range candidates {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case cells <- p:
			case <-gctx.Done():
				return gctx.Err()
			}
		}

		return nil
	})
	for w := range tallies {
		t := &tallies[w]
		t.stops = make(map[patrol.Stop]int, 3)
		g.Go(func() error {
			for p := range cells {
				stop, err := s.evaluate(gctx, p)
				if err != nil {
					return err
				}
				t.candidates++
				t.stops[stop]++
				if stop == patrol.StopLoop {
					t.loops = append(t.loops, p)
					log.Debug("loop-inducing obstacle", zap.Stringer("cell", p))
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("obstruct: search: %w", err)
	}

	res := s.merge(tallies, baseline, inferred)
	log.Info("loop obstacle search finished",
		zap.Int("candidates", res.Candidates),
		zap.Int("loops", res.Count()),
		zap.Duration("elapsed", time.Since(began)),
	)

	return res, nil
}

// recordingField answers like area and remembers every position the
// strategy asked about. A deterministic strategy that was never told about
// a cell walks the same way whatever that cell holds.
type recordingField struct {
	area      *patrol.Area
	consulted map[patrol.Position]struct{}
}

func (f *recordingField) InBounds(p patrol.Position) bool {
	f.consulted[p] = struct{}{}
	return f.area.InBounds(p)
}

func (f *recordingField) IsObstructed(p patrol.Position) bool {
	f.consulted[p] = struct{}{}
	return f.area.IsObstructed(p)
}

// candidates splits the cells row-major into those to trace and, under
// PathOnly, those the baseline walk never queried. An unqueried cell cannot
// alter the walk, so its outcome is the baseline's.
func (s *searcher) candidates(consulted map[patrol.Position]struct{}) (traced, inferred []patrol.Position) {
	traced = make([]patrol.Position, 0, len(consulted))
	for idx := 0; idx < s.area.Cells(); idx++ {
		p := s.area.Coordinate(idx)
		if p == s.start.Position || s.area.IsObstructed(p) {
			continue
		}
		if _, ok := consulted[p]; s.opts.PathOnly && !ok {
			inferred = append(inferred, p)
			continue
		}
		traced = append(traced, p)
	}

	return traced, inferred
}

// evaluate traces start on a clone of the area with an obstruction at p.
func (s *searcher) evaluate(ctx context.Context, p patrol.Position) (patrol.Stop, error) {
	trial := s.area.Clone()
	if err := trial.AddObstacle(p); err != nil {
		return 0, fmt.Errorf("candidate %s: %w", p, err)
	}
	path, err := patrol.Trace(trial, s.start, s.opts.Strategy, patrol.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("candidate %s: %w", p, err)
	}
	s.opts.Metrics.observe(path)

	return path.Stop, nil
}

// merge sums the worker tallies, credits inferred cells with the baseline
// stop and orders the loop cells row-major.
func (s *searcher) merge(tallies []tally, baseline *patrol.Path, inferred []patrol.Position) *Result {
	res := &Result{
		Inferred: len(inferred),
		Stops:    make(map[patrol.Stop]int, 3),
		Baseline: baseline,
	}
	if len(inferred) > 0 {
		res.Stops[baseline.Stop] += len(inferred)
		if baseline.Stop == patrol.StopLoop {
			res.Loops = append(res.Loops, inferred...)
		}
	}
	for _, t := range tallies {
		res.Candidates += t.candidates
		res.Loops = append(res.Loops, t.loops...)
		for stop, n := range t.stops {
			res.Stops[stop] += n
		}
	}
	sort.Slice(res.Loops, func(i, j int) bool {
		return s.area.Index(res.Loops[i]) < s.area.Index(res.Loops[j])
	})

	return res
}
