package cgtvalue

import (
	"fmt"
	"io"

	"github.com/cgtgo/mcgs/cgtbasics"
	"github.com/cgtgo/mcgs/game"
	"github.com/cgtgo/mcgs/hashing"
	"github.com/cgtgo/mcgs/move"
)

// Nimber is the game value *n: a heap of n indistinguishable tokens from
// which either player may remove any positive number, landing on *k for
// any 0 <= k < n. It is its own inverse (every nimber is its own negative
// under normal play).
type Nimber struct {
	game.Base
	n int

	undo []int
}

var nimberType = game.TypeOf[Nimber]()

// NewNimber returns the nimber *n. It panics if n < 0.
func NewNimber(n int) *Nimber {
	if n < 0 {
		panic("cgtvalue: negative nimber")
	}
	return &Nimber{Base: game.NewBase(), n: n}
}

func (g *Nimber) Value() int { return g.n }

func (g *Nimber) TypeID() game.TypeID { return nimberType }

// nimberMoveGen enumerates every k in [0, n), since nimbers are impartial:
// both players have the same moves available.
type nimberMoveGen struct {
	g   *Nimber
	c   cgtbasics.Color
	cur int // k offered by the most recent Next call, -1 before the first
}

func (it *nimberMoveGen) Next() bool {
	it.cur++
	return it.cur < it.g.n
}

func (it *nimberMoveGen) Move() move.Move {
	return move.Encode(move.TwoPart(it.cur, 0), it.c)
}

func (g *Nimber) MoveGenerator(c cgtbasics.Color) game.MoveGenerator {
	return &nimberMoveGen{g: g, c: c, cur: -1}
}

func (g *Nimber) Play(m move.Move) {
	k := m.First()
	if k < 0 || k >= g.n {
		panic("cgtvalue: Nimber illegal move")
	}
	g.undo = append(g.undo, g.n)
	g.n = k
	g.InvalidateHash()
}

func (g *Nimber) UndoMove() {
	l := len(g.undo)
	if l == 0 {
		panic("cgtvalue: Nimber UndoMove on empty stack")
	}
	g.n = g.undo[l-1]
	g.undo = g.undo[:l-1]
	g.InvalidateHash()
}

func (g *Nimber) Split() ([]game.Game, bool) { return nil, false }

// Inverse returns a new nimber of the same value: every nimber is its own
// negative.
func (g *Nimber) Inverse() game.Game { return NewNimber(g.n) }

func (g *Nimber) Order(rhs game.Game) cgtbasics.Relation {
	other, ok := rhs.(*Nimber)
	if !ok {
		return cgtbasics.CompareInts(int(g.TypeID()), int(rhs.TypeID()))
	}
	return cgtbasics.CompareInts(g.n, other.n)
}

func (g *Nimber) Print(w io.Writer) {
	fmt.Fprintf(w, "*%d", g.n)
}

func (g *Nimber) Normalize()     {}
func (g *Nimber) UndoNormalize() {}

func (g *Nimber) LocalHash() uint64 {
	if v, ok := g.CachedHash(); ok {
		return v
	}
	v := game.ComputeLocalHash(nimberType, func(h *hashing.LocalHash) {
		h.TogglePosition(0, g.n)
	})
	g.SetCachedHash(v)
	return v
}

// XorNimValue combines two nimber heap sizes under the Sprague-Grundy
// nim-sum rule. It is the core of the impartial solver's mex bookkeeping.
func XorNimValue(a, b int) int {
	return a ^ b
}
