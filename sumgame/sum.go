// Package sumgame implements a sum of independent games: the set of active
// subgames a player chooses one of to move in, the basic-CGT simplifier
// pass wired in as a reversible operation on that set, and the two search
// engines (partizan boolean minimax here, Lemoine-Viennot nimber search in
// the impartial subpackage) that decide who wins such a sum.
package sumgame

import (
	"fmt"
	"io"
	"sort"

	"github.com/cgtgo/mcgs/cgtbasics"
	"github.com/cgtgo/mcgs/cgtvalue/simplify"
	"github.com/cgtgo/mcgs/game"
	"github.com/cgtgo/mcgs/hashing"
	"github.com/cgtgo/mcgs/move"
)

type undoKind uint8

const (
	undoPlay undoKind = iota
	undoSimplify
)

type undoEntry struct {
	kind undoKind

	// undoPlay
	slot int

	// undoSimplify
	removedSlots []int
	addedCount   int
}

// Sum is a set of independent games, summed under normal play convention:
// on your turn you pick exactly one active subgame and make one of its
// legal moves. Whoever cannot move, loses.
type Sum struct {
	games  []game.Game
	active []bool
	toMove cgtbasics.Color

	undo []undoEntry
}

// New builds a sum with the given subgames, all active, Black to move
// first.
func New(games ...game.Game) *Sum {
	active := make([]bool, len(games))
	for i := range active {
		active[i] = true
	}
	return &Sum{games: append([]game.Game(nil), games...), active: active, toMove: cgtbasics.Black}
}

// ToMove returns whose turn it is.
func (s *Sum) ToMove() cgtbasics.Color { return s.toMove }

// SetToMove overrides whose turn it is, without touching the undo stack.
// Used when setting up a position from a case file, before any search.
func (s *Sum) SetToMove(c cgtbasics.Color) { s.toMove = c }

// activeSlots returns the active games and their slot indices.
func (s *Sum) activeSlots() ([]game.Game, []int) {
	games := make([]game.Game, 0, len(s.games))
	slots := make([]int, 0, len(s.games))
	for i, g := range s.games {
		if s.active[i] {
			games = append(games, g)
			slots = append(slots, i)
		}
	}
	return games, slots
}

// ActiveGames returns the currently active subgames in a freshly built
// slice; the games in it are the sum's live subgames, not copies.
func (s *Sum) ActiveGames() []game.Game {
	games, _ := s.activeSlots()
	return games
}

// ActiveSlots returns the currently active subgames paired with their
// stable slot indices, suitable for passing straight to PlaySum.
func (s *Sum) ActiveSlots() ([]game.Game, []int) {
	return s.activeSlots()
}

// NumActiveGames reports how many subgames can still be moved in.
func (s *Sum) NumActiveGames() int {
	n := 0
	for _, a := range s.active {
		if a {
			n++
		}
	}
	return n
}

// PlaySum plays move m in the subgame at the given slot (a stable slot
// index as returned by ActiveSlots, not a position in the ActiveGames
// slice; the slot must be active). If the move leaves the subgame
// decomposable (Split reports true), the slot is deactivated and the parts
// are appended as new active slots in its place, exactly as the original
// project's split_result folds straight back into the sum it came from.
func (s *Sum) PlaySum(slot int, m move.Move) {
	if slot < 0 || slot >= len(s.games) || !s.active[slot] {
		panic("sumgame: PlaySum on an inactive or out-of-range slot")
	}
	s.games[slot].Play(m)
	s.toMove = s.toMove.Opponent()

	addedCount := 0
	if parts, ok := s.games[slot].Split(); ok {
		s.active[slot] = false
		for _, p := range parts {
			s.games = append(s.games, p)
			s.active = append(s.active, true)
		}
		addedCount = len(parts)
	}
	s.undo = append(s.undo, undoEntry{kind: undoPlay, slot: slot, addedCount: addedCount})
}

// SimplifyBasic runs the basic-CGT simplifier once against the currently
// active subgames. It reports whether anything changed; a no-op call still
// pushes nothing onto the undo stack, so UnwindTo need not special-case it.
func (s *Sum) SimplifyBasic() bool {
	active, slots := s.activeSlots()
	result := simplify.RunAll(active)
	if len(result.Removed) == 0 && len(result.Added) == 0 {
		return false
	}
	removedSlots := make([]int, 0, len(result.Removed))
	for _, rg := range result.Removed {
		for i, g := range active {
			if g == rg {
				s.active[slots[i]] = false
				removedSlots = append(removedSlots, slots[i])
				break
			}
		}
	}
	for _, ag := range result.Added {
		s.games = append(s.games, ag)
		s.active = append(s.active, true)
	}
	s.undo = append(s.undo, undoEntry{
		kind:         undoSimplify,
		removedSlots: removedSlots,
		addedCount:   len(result.Added),
	})
	return true
}

// Mark returns a checkpoint that UnwindTo can later return the sum to,
// regardless of how many Play/SimplifyBasic calls happened in between.
// This plays the role the original project gives a STACK_FRAME sentinel
// pushed onto its undo stack: here the "frame" is simply the stack's
// length at entry, which is just as exact a checkpoint without needing a
// distinct marker value threaded through the stack's element type.
func (s *Sum) Mark() int { return len(s.undo) }

// UnwindTo pops and reverses undo entries until the stack is back to the
// given mark. It is safe to call from a deferred cleanup on every search
// function exit, cancelled or not.
func (s *Sum) UnwindTo(mark int) {
	for len(s.undo) > mark {
		s.undoOne()
	}
}

// UndoMove reverses the single most recent undo-stack entry, whether it
// was pushed by PlaySum or SimplifyBasic. Equivalent to
// UnwindTo(Mark()-1) but doesn't require the caller to have taken a mark
// first.
func (s *Sum) UndoMove() {
	s.undoOne()
}

func (s *Sum) undoOne() {
	n := len(s.undo)
	if n == 0 {
		panic("sumgame: undo stack underflow")
	}
	e := s.undo[n-1]
	s.undo = s.undo[:n-1]
	switch e.kind {
	case undoPlay:
		if e.addedCount > 0 {
			s.games = s.games[:len(s.games)-e.addedCount]
			s.active = s.active[:len(s.active)-e.addedCount]
		}
		// PlaySum only plays active slots, so the slot was active before
		// the move even when its Split produced no parts.
		s.active[e.slot] = true
		s.games[e.slot].UndoMove()
		s.toMove = s.toMove.Opponent()
	case undoSimplify:
		// Added games were appended to the tail in order; remove them
		// LIFO so slot indices of anything older are undisturbed.
		s.games = s.games[:len(s.games)-e.addedCount]
		s.active = s.active[:len(s.active)-e.addedCount]
		for _, slot := range e.removedSlots {
			s.active[slot] = true
		}
	default:
		panic("sumgame: unknown undo entry kind")
	}
}

// Hash computes this sum's canonical hash: active subgames are sorted by
// Order() so that two sums differing only in subgame insertion order hash
// identically, then combined with whose turn it is. It is recomputed from
// scratch on each call rather than maintained incrementally through
// Play/Undo, trading some CPU for a global hash implementation that never
// needs to track slot renumbering across simplification.
func (s *Sum) Hash() uint64 {
	active, _ := s.activeSlots()
	sort.Slice(active, func(i, j int) bool {
		return active[i].Order(active[j]) == cgtbasics.Less
	})
	gh := hashing.NewGlobalHash()
	for i, g := range active {
		gh.AddSubgame(i, g.LocalHash())
	}
	gh.SetToMove(s.toMove)
	return gh.Value()
}

func (s *Sum) Print(w io.Writer) {
	active, _ := s.activeSlots()
	for i, g := range active {
		if i > 0 {
			fmt.Fprint(w, " + ")
		}
		g.Print(w)
	}
	fmt.Fprintf(w, " (%v to move)\n", s.toMove)
}
