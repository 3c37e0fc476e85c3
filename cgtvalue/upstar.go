package cgtvalue

import (
	"fmt"
	"io"

	"github.com/cgtgo/mcgs/cgtbasics"
	"github.com/cgtgo/mcgs/game"
	"github.com/cgtgo/mcgs/hashing"
	"github.com/cgtgo/mcgs/move"
)

// UpStar is the game value n.up + star, where n is an (possibly negative,
// possibly zero) multiple of up and star is an optional extra *. These
// are the infinitesimals closest to zero: up, down, star, up-star,
// double-up, and so on.
//
// Canonical forms for |n| <= 1 are genuine special cases (up-star's own
// options are {0,*|0}, not a value derivable from a single recursive
// rule); |n| >= 2 follows the regular rule n.up = {0 | (n-1).up+*} (and
// its star/negative variants), matching the shape of the identities used
// throughout cgt_up_star.cpp.
type UpStar struct {
	game.Base
	n    int
	star bool

	undo []upStarState
}

type upStarState struct {
	n    int
	star bool
}

var upStarType = game.TypeOf[UpStar]()

// NewUpStar returns n.up + star (star present if star is true).
func NewUpStar(n int, star bool) *UpStar {
	return &UpStar{Base: game.NewBase(), n: n, star: star}
}

func (g *UpStar) Value() (int, bool) { return g.n, g.star }

func (g *UpStar) TypeID() game.TypeID { return upStarType }

// upOptions returns the Left and Right options of n.up+star for n >= 0.
func upOptions(n int, star bool) (left, right []upStarState) {
	switch {
	case n == 0 && !star:
		return nil, nil
	case n == 0 && star:
		// * = {0|0}
		return []upStarState{{0, false}}, []upStarState{{0, false}}
	case n == 1 && !star:
		// up = {0|*}
		return []upStarState{{0, false}}, []upStarState{{0, true}}
	case n == 1 && star:
		// up* = {0,*|0}
		return []upStarState{{0, false}, {0, true}}, []upStarState{{0, false}}
	default: // n >= 2
		// n.up = {0|(n-1).up+*}; n.up* = {0|(n-1).up}
		return []upStarState{{0, false}}, []upStarState{{n - 1, !star}}
	}
}

// options returns this game's actual Left/Right options, mirroring
// upOptions through negation when n < 0.
func (g *UpStar) options() (left, right []upStarState) {
	if g.n >= 0 {
		return upOptions(g.n, g.star)
	}
	l, r := upOptions(-g.n, g.star)
	left = negateAll(r)
	right = negateAll(l)
	return left, right
}

func negateAll(states []upStarState) []upStarState {
	out := make([]upStarState, len(states))
	for i, s := range states {
		out[i] = upStarState{n: -s.n, star: s.star}
	}
	return out
}

type upStarMoveGen struct {
	options []upStarState
	idx     int
	c       cgtbasics.Color
}

func (it *upStarMoveGen) Next() bool {
	it.idx++
	return it.idx < len(it.options)
}

func (it *upStarMoveGen) Move() move.Move {
	s := it.options[it.idx]
	star := 0
	if s.star {
		star = 1
	}
	// encode n shifted to a non-negative field by biasing; MaxPartSize/2
	// comfortably covers any up-multiple this solver will see.
	return move.Encode(move.TwoPart(s.n+move.MaxPartSize/2, star), it.c)
}

func (g *UpStar) MoveGenerator(c cgtbasics.Color) game.MoveGenerator {
	left, right := g.options()
	opts := left
	if c == cgtbasics.White {
		opts = right
	}
	return &upStarMoveGen{options: opts, idx: -1, c: c}
}

func (g *UpStar) Play(m move.Move) {
	g.undo = append(g.undo, upStarState{g.n, g.star})
	g.n = m.First() - move.MaxPartSize/2
	g.star = m.Second() != 0
	g.InvalidateHash()
}

func (g *UpStar) UndoMove() {
	l := len(g.undo)
	if l == 0 {
		panic("cgtvalue: UpStar UndoMove on empty stack")
	}
	s := g.undo[l-1]
	g.undo = g.undo[:l-1]
	g.n, g.star = s.n, s.star
	g.InvalidateHash()
}

func (g *UpStar) Split() ([]game.Game, bool) { return nil, false }

func (g *UpStar) Inverse() game.Game { return NewUpStar(-g.n, g.star) }

func (g *UpStar) Order(rhs game.Game) cgtbasics.Relation {
	other, ok := rhs.(*UpStar)
	if !ok {
		return cgtbasics.CompareInts(int(g.TypeID()), int(rhs.TypeID()))
	}
	if g.n != other.n {
		return cgtbasics.CompareInts(g.n, other.n)
	}
	switch {
	case g.star == other.star:
		return cgtbasics.Equal
	case !g.star:
		return cgtbasics.Less
	default:
		return cgtbasics.Greater
	}
}

func (g *UpStar) Print(w io.Writer) {
	star := ""
	if g.star {
		star = "*"
	}
	fmt.Fprintf(w, "%d.up%s", g.n, star)
}

func (g *UpStar) Normalize()     {}
func (g *UpStar) UndoNormalize() {}

func (g *UpStar) LocalHash() uint64 {
	if v, ok := g.CachedHash(); ok {
		return v
	}
	starVal := 0
	if g.star {
		starVal = 1
	}
	v := game.ComputeLocalHash(upStarType, func(h *hashing.LocalHash) {
		h.TogglePosition(0, g.n)
		h.TogglePosition(1, starVal)
	})
	g.SetCachedHash(v)
	return v
}
