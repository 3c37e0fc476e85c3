package cgtvalue

import (
	"fmt"
	"io"

	"github.com/cgtgo/mcgs/cgtbasics"
	"github.com/cgtgo/mcgs/fraction"
	"github.com/cgtgo/mcgs/game"
	"github.com/cgtgo/mcgs/hashing"
	"github.com/cgtgo/mcgs/move"
)

// DyadicRational is the game value of a dyadic rational p/q (q a power of
// two). When the value happens to reduce to an integer it still behaves
// correctly -- Fraction.New already keeps p/q reduced -- but callers that
// know a value is a whole number up front should prefer Integer, which has
// a cheaper move rule.
type DyadicRational struct {
	game.Base
	value fraction.Fraction

	undo []fraction.Fraction
}

var dyadicType = game.TypeOf[DyadicRational]()

// NewDyadicRational returns the dyadic rational game with the given value.
func NewDyadicRational(f fraction.Fraction) *DyadicRational {
	return &DyadicRational{Base: game.NewBase(), value: f}
}

func (g *DyadicRational) Value() fraction.Fraction { return g.value }

func (g *DyadicRational) TypeID() game.TypeID { return dyadicType }

type dyadicMoveGen struct {
	g      *DyadicRational
	c      cgtbasics.Color
	served bool
}

func (it *dyadicMoveGen) Next() bool {
	if it.served {
		return false
	}
	it.served = true
	if it.g.value.IsInteger() {
		if it.c == cgtbasics.Black {
			return it.g.value.Numerator() > 0
		}
		return it.g.value.Numerator() < 0
	}
	// True fractions always have exactly one option each way: step the
	// numerator by one at the current (pre-reduction) denominator.
	return true
}

func (it *dyadicMoveGen) Move() move.Move {
	return move.Encode(0, it.c)
}

func (g *DyadicRational) MoveGenerator(c cgtbasics.Color) game.MoveGenerator {
	return &dyadicMoveGen{g: g, c: c}
}

func (g *DyadicRational) Play(m move.Move) {
	g.undo = append(g.undo, g.value)
	p, q := g.value.Numerator(), g.value.Denominator()
	if m.Color() == cgtbasics.Black {
		if g.value.IsInteger() && p <= 0 {
			panic("cgtvalue: DyadicRational illegal Left move")
		}
		g.value = fraction.New(p-1, q)
	} else {
		if g.value.IsInteger() && p >= 0 {
			panic("cgtvalue: DyadicRational illegal Right move")
		}
		g.value = fraction.New(p+1, q)
	}
	g.InvalidateHash()
}

func (g *DyadicRational) UndoMove() {
	n := len(g.undo)
	if n == 0 {
		panic("cgtvalue: DyadicRational UndoMove on empty stack")
	}
	g.value = g.undo[n-1]
	g.undo = g.undo[:n-1]
	g.InvalidateHash()
}

// Split reports this value as a singleton Integer once it has been
// played down to a whole number, so a sum folds it into the cheaper
// Integer move rule instead of carrying a dyadic rational with
// denominator 1 around indefinitely. A true (non-integral) fraction
// does not split: it is not a sum of independent parts.
func (g *DyadicRational) Split() ([]game.Game, bool) {
	if !g.value.IsInteger() {
		return nil, false
	}
	return []game.Game{NewInteger(int(g.value.Numerator()))}, true
}

func (g *DyadicRational) Inverse() game.Game {
	return NewDyadicRational(g.value.Neg())
}

func (g *DyadicRational) Order(rhs game.Game) cgtbasics.Relation {
	other, ok := rhs.(*DyadicRational)
	if !ok {
		return cgtbasics.CompareInts(int(g.TypeID()), int(rhs.TypeID()))
	}
	return cgtbasics.Relation(g.value.Compare(other.value))
}

func (g *DyadicRational) Print(w io.Writer) {
	fmt.Fprint(w, g.value.String())
}

func (g *DyadicRational) Normalize()     {}
func (g *DyadicRational) UndoNormalize() {}

func (g *DyadicRational) LocalHash() uint64 {
	if v, ok := g.CachedHash(); ok {
		return v
	}
	v := game.ComputeLocalHash(dyadicType, func(h *hashing.LocalHash) {
		h.TogglePosition(0, int(g.value.Numerator()))
		h.TogglePosition(1, int(g.value.Denominator()))
	})
	g.SetCachedHash(v)
	return v
}
