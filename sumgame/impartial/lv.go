// Package impartial implements Lemoine and Viennot's nimber search for
// sums of impartial games: games where both players always have exactly
// the same moves available, so the whole sum's outcome reduces to
// XORing each component's Sprague-Grundy nimber together (the sum is a
// next-player win iff that XOR is nonzero).
//
// The search is built from three routines that all share one boolean
// transposition table, keyed by a single game's local hash XORed with a
// nimber's own hash code, exactly as the original project folds a
// "position plus a pending nim-heap" into one combined lookup key
// instead of keeping a table per nimber value:
//
//   - search (Algorithm 1) decides whether the first player to move in
//     g + *n wins, by boolean minimax over both g's own moves and the
//     nimber's moves (to any *n' with n' < n), probing the shared table
//     before doing any work.
//   - mexSearch (Algorithm 3) finds g's Grundy value by calling search
//     with n = 0, 1, 2, ... until it finds the first n for which g + *n
//     is a second-player win -- that n is g's nimber, by definition of
//     mex.
//   - Solve (Algorithm 2) answers the same first-player-win question for
//     a whole sum of subgames plus a nimber: it resolves every subgame
//     but the "hardest" one (here, simply the last one handed to it) to
//     a plain Grundy value via mexSearch, XORs those into the pending
//     nimber, and settles the question with a single search call on the
//     one subgame left unresolved. This is what lets a multi-component
//     sum be decided without ever building the product of all
//     components' game trees at once.
package impartial

import (
	"context"
	"sync"

	"github.com/cgtgo/mcgs/cgtbasics"
	"github.com/cgtgo/mcgs/game"
	"github.com/cgtgo/mcgs/hashing"
	"github.com/cgtgo/mcgs/move"
	"github.com/cgtgo/mcgs/ttable"
)

// Game is a color-agnostic playable position: an impartial game's move
// generator does not depend on whose turn it is.
type Game interface {
	Play(m move.Move)
	UndoMove()
	MoveGenerator() game.MoveGenerator
	LocalHash() uint64
}

// partizanWrapper adapts any game.Game into an impartial Game by always
// asking for Black's move generator, which is only a faithful adaptation
// when the wrapped game is genuinely impartial (Left and Right have
// identical option sets at every reachable position) -- the caller's
// responsibility to guarantee, exactly as the original project's
// impartial_game_wrapper leaves the color encoded in the move but never
// consults it for legality.
type partizanWrapper struct {
	g game.Game
}

// WrapPartizan adapts a partizan-shaped game.Game for impartial search. g
// must behave identically for both colors.
func WrapPartizan(g game.Game) Game {
	return &partizanWrapper{g: g}
}

func (w *partizanWrapper) Play(m move.Move) { w.g.Play(m) }
func (w *partizanWrapper) UndoMove()        { w.g.UndoMove() }
func (w *partizanWrapper) LocalHash() uint64 {
	return w.g.LocalHash()
}
func (w *partizanWrapper) MoveGenerator() game.MoveGenerator {
	return w.g.MoveGenerator(cgtbasics.Black)
}

// NimEntry is the shared transposition table payload: whether the first
// player to move wins the combined position (a single game plus a
// pending nimber) the entry's key was computed for.
type NimEntry struct {
	Win bool
}

// precomputedNimbers bounds how many small nimber values get their hash
// codes computed up front rather than on first use; small nimbers are by
// far the most common ones a search actually reaches for.
const precomputedNimbers = 500

var (
	nimberHashTable = hashing.NewRandomTable()
	smallNimberHash [precomputedNimbers]uint64
	smallNimberOnce sync.Once
)

func initSmallNimberHashes() {
	for n := 0; n < precomputedNimbers; n++ {
		smallNimberHash[n] = hashing.ToggleValue(nimberHashTable, 0, 0, n)
	}
}

// nimberHashCode returns the hash code standing in for the nimber *n, to
// be XORed against a game's own local hash to key the shared table.
func nimberHashCode(n int) uint64 {
	if n >= 0 && n < precomputedNimbers {
		smallNimberOnce.Do(initSmallNimberHashes)
		return smallNimberHash[n]
	}
	return hashing.ToggleValue(nimberHashTable, 0, 0, n)
}

func combinedKey(g Game, n int) uint64 {
	return g.LocalHash() ^ nimberHashCode(n)
}

// search is Algorithm 1: does the first player to move in g + *n win?
// It probes the shared table for the combined key before searching, and
// stores the answer back under that key once found, so that a later
// call (from mexSearch trying a different n against the same g, or from
// anywhere else in the sum) can skip the search entirely.
func search(ctx context.Context, g Game, n int, tt *ttable.Table[NimEntry]) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	key := combinedKey(g, n)
	if tt != nil {
		if res := tt.Get(key); res.Valid {
			return res.Entry.Win, nil
		}
	}

	win := false

	gen := g.MoveGenerator()
	for !win && gen.Next() {
		g.Play(gen.Move())
		replyWins, err := search(ctx, g, n, tt)
		g.UndoMove()
		if err != nil {
			return false, err
		}
		if !replyWins {
			win = true
		}
	}

	for reply := 0; !win && reply < n; reply++ {
		replyWins, err := search(ctx, g, reply, tt)
		if err != nil {
			return false, err
		}
		if !replyWins {
			win = true
		}
	}

	if tt != nil {
		tt.Store(key, NimEntry{Win: win}, 0)
	}
	return win, nil
}

// mexSearch is Algorithm 3: g's Grundy value is the least n for which
// g + *n is a second-player win, found by calling search with
// n = 0, 1, 2, ... until one of those calls comes back false. This never
// needs to enumerate every option's own Grundy value up front the way a
// direct mex-over-options computation would; it reuses the very same
// search routine (and table) Algorithm 1 and Algorithm 2 call.
func mexSearch(ctx context.Context, g Game, tt *ttable.Table[NimEntry]) (int, error) {
	for n := 0; ; n++ {
		win, err := search(ctx, g, n, tt)
		if err != nil {
			return 0, err
		}
		if !win {
			return n, nil
		}
	}
}

// ComponentNimValue computes a single impartial game's Grundy value via
// mexSearch (Algorithm 3). tt may be nil to disable memoization.
func ComponentNimValue(ctx context.Context, g Game, tt *ttable.Table[NimEntry]) (int, error) {
	return mexSearch(ctx, g, tt)
}

// SumNimValue computes the Grundy value of a whole sum by resolving each
// component separately (Algorithm 3 per component) and XORing the
// results together, the classical Sprague-Grundy theorem for sums of
// impartial games.
func SumNimValue(ctx context.Context, games []Game, tt *ttable.Table[NimEntry]) (int, error) {
	total := 0
	for _, g := range games {
		v, err := ComponentNimValue(ctx, g, tt)
		if err != nil {
			return 0, err
		}
		total ^= v
	}
	return total, nil
}

// Solve is Algorithm 2: does the first player to move in the whole sum
// win? Rather than searching the product of every component's game tree
// at once, it picks one subgame as the "hardest" one to settle directly
// -- here, simply the last one handed to it, matching the original
// project's policy of always leaving the most recently added component
// for the real search -- resolves every other component to a plain
// Grundy value with mexSearch (Algorithm 3), folds those into a single
// pending nimber, and decides the rest with one search (Algorithm 1)
// call on the hardest subgame plus that nimber.
func Solve(ctx context.Context, games []Game, tt *ttable.Table[NimEntry]) (bool, error) {
	if len(games) == 0 {
		return false, nil
	}
	hardest := len(games) - 1
	pending := 0
	for i, g := range games {
		if i == hardest {
			continue
		}
		v, err := mexSearch(ctx, g, tt)
		if err != nil {
			return false, err
		}
		pending ^= v
	}
	return search(ctx, games[hardest], pending, tt)
}
