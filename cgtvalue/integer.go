package cgtvalue

import (
	"fmt"
	"io"

	"github.com/cgtgo/mcgs/cgtbasics"
	"github.com/cgtgo/mcgs/game"
	"github.com/cgtgo/mcgs/hashing"
	"github.com/cgtgo/mcgs/move"
)

// Integer is the game value of a whole number n: n copies of a move that
// only Left can make if n > 0, only Right if n < 0, and nobody if n == 0.
type Integer struct {
	game.Base
	n int

	undo []int
}

var integerType = game.TypeOf[Integer]()

// NewInteger returns the integer game with value n.
func NewInteger(n int) *Integer {
	return &Integer{Base: game.NewBase(), n: n}
}

func (g *Integer) Value() int { return g.n }

func (g *Integer) TypeID() game.TypeID { return integerType }

// integerMoveGen yields exactly one move (step toward zero) if the mover
// is entitled to move at all, then is exhausted.
type integerMoveGen struct {
	g      *Integer
	c      cgtbasics.Color
	served bool
}

func (it *integerMoveGen) Next() bool {
	if it.served {
		return false
	}
	it.served = true
	if it.c == cgtbasics.Black {
		return it.g.n > 0
	}
	return it.g.n < 0
}

func (it *integerMoveGen) Move() move.Move {
	return move.Encode(0, it.c)
}

func (g *Integer) MoveGenerator(c cgtbasics.Color) game.MoveGenerator {
	return &integerMoveGen{g: g, c: c}
}

func (g *Integer) Play(m move.Move) {
	g.undo = append(g.undo, g.n)
	if m.Color() == cgtbasics.Black {
		if g.n <= 0 {
			panic("cgtvalue: Integer illegal Left move")
		}
		g.n--
	} else {
		if g.n >= 0 {
			panic("cgtvalue: Integer illegal Right move")
		}
		g.n++
	}
	g.InvalidateHash()
}

func (g *Integer) UndoMove() {
	n := len(g.undo)
	if n == 0 {
		panic("cgtvalue: Integer UndoMove on empty stack")
	}
	g.n = g.undo[n-1]
	g.undo = g.undo[:n-1]
	g.InvalidateHash()
}

func (g *Integer) Split() ([]game.Game, bool) { return nil, false }

func (g *Integer) Inverse() game.Game { return NewInteger(-g.n) }

func (g *Integer) Order(rhs game.Game) cgtbasics.Relation {
	other, ok := rhs.(*Integer)
	if !ok {
		return cgtbasics.CompareInts(int(g.TypeID()), int(rhs.TypeID()))
	}
	return cgtbasics.CompareInts(g.n, other.n)
}

func (g *Integer) Print(w io.Writer) {
	fmt.Fprintf(w, "%d", g.n)
}

func (g *Integer) Normalize()     {}
func (g *Integer) UndoNormalize() {}

func (g *Integer) LocalHash() uint64 {
	if v, ok := g.CachedHash(); ok {
		return v
	}
	v := game.ComputeLocalHash(integerType, func(h *hashing.LocalHash) {
		h.TogglePosition(0, g.n)
	})
	g.SetCachedHash(v)
	return v
}
