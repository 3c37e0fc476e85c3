package sumgame

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/cgtgo/mcgs/ttable"
)

// BoolEntry is the transposition table payload for the partizan solver: a
// fully-searched position only ever needs one bit, whether the player to
// move at that (position, to-move) hash wins.
type BoolEntry struct {
	Win bool
}

// Solver runs the partizan boolean minimax search over a Sum, with an
// optional transposition table and cancellation, in the same single
// worker + supervisor shape as a classical iterative-deepening solver:
// one goroutine does the recursion, the context's deadline cancels it,
// a second goroutine periodically logs the node count until the search
// ends, and the two are joined with an errgroup.Group.
type Solver struct {
	TT          *ttable.Table[BoolEntry]
	UseTT       bool
	SubgameSort bool // whether to canonicalize move order before recursing; always on for hashing correctness, kept as a field for parity with the case-file --subgame-split style toggles

	nodes atomic.Uint64
}

// NewSolver returns a solver with a transposition table of 1<<indexBits
// slots. Pass indexBits == 0 to disable the table entirely.
func NewSolver(indexBits uint) *Solver {
	s := &Solver{}
	if indexBits > 0 {
		s.TT = ttable.New[BoolEntry](indexBits, 24, 0)
		s.UseTT = true
	}
	return s
}

// Nodes reports how many positions the most recent Solve/SolveWithTimeout
// call visited.
func (s *Solver) Nodes() uint64 { return s.nodes.Load() }

// Solve decides whether the player to move in sum wins under normal play,
// with no time limit.
func (s *Solver) Solve(sum *Sum) (bool, error) {
	return s.SolveWithTimeout(sum, 0)
}

// SolveWithTimeout is Solve with an optional deadline; timeout == 0 means
// no deadline. It returns a wrapped context.DeadlineExceeded error if the
// search was cancelled before completing.
func (s *Solver) SolveWithTimeout(sum *Sum, timeout time.Duration) (bool, error) {
	s.nodes.Store(0)
	ctx := context.Background()
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	g, gctx := errgroup.WithContext(ctx)
	var result bool
	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		var err error
		result, err = s.solve(gctx, sum)
		return err
	})
	if timeout > 0 {
		g.Go(func() error {
			ticker := time.NewTicker(timeout / 4)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-done:
					return nil
				case <-ticker.C:
					log.Debug().Uint64("nodes", s.nodes.Load()).Msg("sumgame-solve-progress")
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}
	return result, nil
}

// solve is the recursive boolean minimax: the player to move wins iff some
// legal move leads to a position where the opponent (now to move) does
// not win.
func (s *Solver) solve(ctx context.Context, sum *Sum) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.nodes.Add(1)

	var key uint64
	if s.UseTT {
		key = sum.Hash()
		if res := s.TT.Get(key); res.Valid {
			return res.Entry.Win, nil
		}
	}

	mark := sum.Mark()
	defer sum.UnwindTo(mark)
	sum.SimplifyBasic()

	mover := sum.ToMove()
	win := false
	active, slots := sum.ActiveSlots()
moveSearch:
	for i, g := range active {
		gen := g.MoveGenerator(mover)
		for gen.Next() {
			sum.PlaySum(slots[i], gen.Move())
			oppWins, err := s.solve(ctx, sum)
			sum.UndoMove()
			if err != nil {
				return false, err
			}
			if !oppWins {
				win = true
				break moveSearch
			}
		}
	}

	if s.UseTT {
		s.TT.Store(key, BoolEntry{Win: win}, 0)
	}
	return win, nil
}
