// Package solver implements a least-energy search for the amphipod burrow.
//
// The configuration graph is never built: neighbors are generated on demand
// by burrow.Layout.AppendMoves and explored in order of increasing total cost
// (Dijkstra). States are interned into dense ids, so the best known cost per
// state is a plain slice.
package solver

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-ricrob/amphipod/internal/burrow"
)

var (
	// ErrExhausted is returned if the goal cannot be reached: either every
	// reachable state was expanded or the expansion limit was hit.
	ErrExhausted = errors.New("solver: search exhausted without reaching the goal")

	// ErrBadLimit is the panic value of options given an out of range limit.
	ErrBadLimit = errors.New("solver: invalid limit")
)

// Result is the outcome of a search.
type Result struct {
	Cost       int           // minimal total energy
	Expansions int           // states expanded
	StalePops  int           // outdated queue entries dropped
	Pushes     int           // queue entries pushed
	States     int           // distinct states discovered
	Elapsed    time.Duration // wall time of Run
}

// Runner is the interface returned by New.
type Runner interface {
	Run(ctx context.Context) (Result, error)
}

var _ Runner = (*Solver)(nil)

// Solver searches the cheapest way from a start configuration to the goal.
//
// A Solver holds no search state between calls; each Run owns its interner
// and queue, so independent solvers may run on separate goroutines.
type Solver struct {
	layout burrow.Layout
	start  burrow.State
	goal   burrow.State
	opts   Options
}

// New returns a solver for start in layout l.
func New(l burrow.Layout, start burrow.State, opts ...Option) Runner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Solver{layout: l, start: start, goal: l.Goal(), opts: cfg}
}

// Run searches the minimal total energy to sort the burrow.
//
// It returns ErrExhausted (possibly wrapped) if the goal is unreachable or the
// expansion limit is hit, and ctx.Err() if ctx is done while searching.
func (s *Solver) Run(ctx context.Context) (Result, error) {
	began := time.Now()
	logger := s.opts.Logger.With(slog.Int("rooms", s.layout.Rooms()), slog.Int("depth", s.layout.Depth()))

	if s.start == s.goal {
		logger.Debug("start is already sorted")
		return Result{Elapsed: time.Since(began)}, nil
	}

	r := newRun(s, logger)
	res, err := r.search(ctx)
	res.Elapsed = time.Since(began)
	if err != nil {
		logger.Warn("search failed", slog.Any("error", err), slog.Int("expansions", res.Expansions), slog.Int("states", res.States))
		return res, err
	}
	logger.Info("search finished",
		slog.Int("cost", res.Cost),
		slog.Int("expansions", res.Expansions),
		slog.Int("states", res.States),
		slog.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}
