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

// SwitchKind classifies a Switch value, following the original project's
// later revision of cgt_switch: a genuine switch {L|R} (L > R) is Proper,
// or ProperNormalized when it is centred on zero (L + R == 0); one that is
// not a real switch at all (L <= R) is ConvertibleNumber when L == R and
// both are integers, and Rational in every other case.
type SwitchKind uint8

const (
	SwitchProper SwitchKind = iota
	SwitchProperNormalized
	SwitchConvertibleNumber
	SwitchRational
)

// Switch is the game value {L|R} for two numbers L and R. When L > R this
// is a genuine switch (an unsettled, order-dependent position); when
// L <= R it is not really a switch at all and Kind reports so.
type Switch struct {
	game.Base
	left, right fraction.Fraction

	rootPlayed bool            // true once the root collapsing move has happened
	done       bool
	settled    fraction.Fraction
	settledSeq []fraction.Fraction // settled's value before each post-collapse step, LIFO
}

// Settled returns the number this switch collapsed to, and whether it has
// been played at all.
func (g *Switch) Settled() (fraction.Fraction, bool) {
	return g.settled, g.done
}

var switchType = game.TypeOf[Switch]()

// NewSwitch returns the switch {left|right}.
func NewSwitch(left, right fraction.Fraction) *Switch {
	return &Switch{Base: game.NewBase(), left: left, right: right}
}

func (g *Switch) Left() fraction.Fraction  { return g.left }
func (g *Switch) Right() fraction.Fraction { return g.right }

// Kind classifies this switch per the original project's switch-kind
// taxonomy. Whenever L <= R it reports one of the number kinds
// (ConvertibleNumber or Rational) rather than a Proper kind.
func (g *Switch) Kind() SwitchKind {
	if g.right.Less(g.left) {
		mid := g.left.Add(g.right)
		if mid.Numerator() == 0 {
			return SwitchProperNormalized
		}
		return SwitchProper
	}
	if g.left.Equal(g.right) && g.left.IsInteger() {
		return SwitchConvertibleNumber
	}
	return SwitchRational
}

func (g *Switch) TypeID() game.TypeID { return switchType }

type switchMoveGen struct {
	g      *Switch
	c      cgtbasics.Color
	served bool
}

// Next serves the one-shot root switch choice while the switch hasn't
// collapsed yet. Once it has, a played switch keeps behaving like
// integer_game(settled) or dyadic_rational_game(settled) -- whichever
// fits -- the same way the original project's switch_game hands play
// off to a child number game once _is_integer is set, rather than ever
// reporting itself exhausted regardless of which side still has a
// number move available.
func (it *switchMoveGen) Next() bool {
	if it.served {
		return false
	}
	it.served = true
	if !it.g.done {
		return true
	}
	v := it.g.settled
	if v.IsInteger() {
		if it.c == cgtbasics.Black {
			return v.Numerator() > 0
		}
		return v.Numerator() < 0
	}
	return true
}

func (it *switchMoveGen) Move() move.Move {
	return move.Encode(0, it.c)
}

func (g *Switch) MoveGenerator(c cgtbasics.Color) game.MoveGenerator {
	return &switchMoveGen{g: g, c: c}
}

// settledGame returns the number game this switch now behaves as, after
// a root play settled it to a plain value.
func (g *Switch) settledGame() game.Game {
	if g.settled.IsInteger() {
		return NewInteger(int(g.settled.Numerator()))
	}
	return NewDyadicRational(g.settled)
}

// Play either makes the one-shot root choice (collapsing the switch to
// one side's number, exactly as the original project's root switch move
// turns into a child integer/rational game), or, once collapsed, steps
// the settled number toward zero the same way Integer/DyadicRational
// would -- so a switch that survived a Split call (or was played
// directly outside a Sum) keeps being a legal position for whichever
// side the settled value still favors.
func (g *Switch) Play(m move.Move) {
	if !g.done {
		g.rootPlayed = true
		g.done = true
		if m.Color() == cgtbasics.Black {
			g.settled = g.left
		} else {
			g.settled = g.right
		}
		g.InvalidateHash()
		return
	}
	g.settledSeq = append(g.settledSeq, g.settled)
	p, q := g.settled.Numerator(), g.settled.Denominator()
	if m.Color() == cgtbasics.Black {
		if g.settled.IsInteger() && p <= 0 {
			panic("cgtvalue: Switch illegal Left move after settling")
		}
		g.settled = fraction.New(p-1, q)
	} else {
		if g.settled.IsInteger() && p >= 0 {
			panic("cgtvalue: Switch illegal Right move after settling")
		}
		g.settled = fraction.New(p+1, q)
	}
	g.InvalidateHash()
}

func (g *Switch) UndoMove() {
	if n := len(g.settledSeq); n > 0 {
		g.settled = g.settledSeq[n-1]
		g.settledSeq = g.settledSeq[:n-1]
		g.InvalidateHash()
		return
	}
	if !g.rootPlayed {
		panic("cgtvalue: Switch UndoMove on empty stack")
	}
	g.rootPlayed = false
	g.done = false
	g.InvalidateHash()
}

// Split reports the collapsed switch as a singleton number game once
// played, so that a sum folds it straight into the basic-CGT simplifier
// instead of carrying a played switch around forever. An unplayed
// switch does not split: a genuine switch's value is not, in general,
// a sum of independent parts.
func (g *Switch) Split() ([]game.Game, bool) {
	if !g.done {
		return nil, false
	}
	return []game.Game{g.settledGame()}, true
}

func (g *Switch) Inverse() game.Game {
	return NewSwitch(g.right.Neg(), g.left.Neg())
}

func (g *Switch) Order(rhs game.Game) cgtbasics.Relation {
	other, ok := rhs.(*Switch)
	if !ok {
		return cgtbasics.CompareInts(int(g.TypeID()), int(rhs.TypeID()))
	}
	if c := g.left.Compare(other.left); c != 0 {
		return cgtbasics.Relation(c)
	}
	return cgtbasics.Relation(g.right.Compare(other.right))
}

func (g *Switch) Print(w io.Writer) {
	fmt.Fprintf(w, "{%v|%v}", g.left, g.right)
}

func (g *Switch) Normalize()     {}
func (g *Switch) UndoNormalize() {}

func (g *Switch) LocalHash() uint64 {
	if v, ok := g.CachedHash(); ok {
		return v
	}
	v := game.ComputeLocalHash(switchType, func(h *hashing.LocalHash) {
		h.TogglePosition(0, int(g.left.Numerator()))
		h.TogglePosition(1, int(g.left.Denominator()))
		h.TogglePosition(2, int(g.right.Numerator()))
		h.TogglePosition(3, int(g.right.Denominator()))
	})
	g.SetCachedHash(v)
	return v
}
