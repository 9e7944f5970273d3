package solver

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"

	"github.com/go-ricrob/amphipod/internal/burrow"
	"github.com/go-ricrob/amphipod/internal/intern"
)

// ctx is polled whenever the number of expansions is a multiple of this mask + 1.
const ctxPollMask = 1<<10 - 1

// run is the mutable record of a single search.
type run struct {
	*Solver
	logger *slog.Logger

	states *intern.Table[burrow.State]
	best   []int // best known cost by state id
	pq     queue
	moves  []burrow.Move // reused move buffer

	goalFound bool
	goalCost  int

	res Result
}

func newRun(s *Solver, logger *slog.Logger) *run {
	return &run{
		Solver: s,
		logger: logger,
		states: intern.New[burrow.State](s.opts.Partitions),
		moves:  make([]burrow.Move, 0, 64),
	}
}

// visit records cost for next and queues it if it improves the best known cost.
func (r *run) visit(next burrow.State, cost int) {
	id, added := r.states.Intern(next)
	switch {
	case added:
		r.best = append(r.best, cost) // ids are dense, id == len(r.best)
	case cost < r.best[id]:
		r.best[id] = cost
	default:
		return
	}
	heap.Push(&r.pq, entry{id: id, cost: cost})
	r.res.Pushes++
}

func (r *run) search(ctx context.Context) (Result, error) {
	r.visit(r.start, 0)

	for r.pq.Len() > 0 {
		e := heap.Pop(&r.pq).(entry)
		if e.cost > r.best[e.id] {
			r.res.StalePops++
			continue
		}
		// The goal is only recorded when generated; its cost is final once
		// nothing cheaper is left to expand.
		if r.goalFound && e.cost >= r.goalCost {
			break
		}

		if r.res.Expansions&ctxPollMask == 0 {
			if err := ctx.Err(); err != nil {
				return r.result(), err
			}
		}
		if limit := r.opts.MaxExpansions; limit > 0 && r.res.Expansions >= limit {
			return r.result(), fmt.Errorf("%w: expansion limit %d reached", ErrExhausted, limit)
		}
		r.expand(e)
	}

	if !r.goalFound {
		return r.result(), ErrExhausted
	}
	r.res.Cost = r.goalCost
	return r.result(), nil
}

func (r *run) expand(e entry) {
	r.res.Expansions++
	state := r.states.Value(e.id)
	if r.opts.OnExpand != nil {
		r.opts.OnExpand(e.cost, state)
	}
	if every := r.opts.ProgressEvery; every > 0 && r.res.Expansions%every == 0 {
		r.logger.Debug("search progress",
			slog.Int("expansions", r.res.Expansions),
			slog.Int("cost", e.cost),
			slog.Int("states", r.states.Len()),
			slog.Int("queued", r.pq.Len()),
		)
	}

	r.moves = r.layout.AppendMoves(r.moves[:0], state)
	for _, m := range r.moves {
		cost := e.cost + m.Cost
		if m.Next == r.goal {
			if !r.goalFound || cost < r.goalCost {
				r.goalFound, r.goalCost = true, cost
			}
			continue
		}
		r.visit(m.Next, cost)
	}
}

func (r *run) result() Result {
	r.res.States = r.states.Len()
	return r.res
}
