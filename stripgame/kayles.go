package stripgame

import (
	"fmt"
	"io"

	"github.com/cgtgo/mcgs/cgtbasics"
	"github.com/cgtgo/mcgs/game"
	"github.com/cgtgo/mcgs/hashing"
	"github.com/cgtgo/mcgs/move"
)

// Kayles is a single heap of n pins in a row. A move removes one or two
// adjacent pins, which in general splits the heap into two independent
// remaining heaps -- one on either side of the removed pins. It is
// impartial: the move set does not depend on whose turn it is, so
// MoveGenerator ignores its color argument, and it is meant to be driven
// through sumgame/impartial.WrapPartizan rather than the boolean minimax
// solver.
type Kayles struct {
	game.Base
	n int

	// smaller holds the second remaining heap produced by the most recent
	// Play (0 if that Play left a single heap); Split reports it but does
	// not clear it. n holds the larger (or only) remaining heap.
	smaller int

	undo []kaylesUndo
}

type kaylesUndo struct {
	n, smaller int
}

var kaylesType = game.TypeOf[Kayles]()

// NewKayles returns a single heap of n pins. It panics if n < 0.
func NewKayles(n int) *Kayles {
	if n < 0 {
		panic("stripgame: negative Kayles heap")
	}
	return &Kayles{Base: game.NewBase(), n: n}
}

func (g *Kayles) Value() int { return g.n }

func (g *Kayles) TypeID() game.TypeID { return kaylesType }

type kaylesOption struct {
	take, smaller, larger int
}

func kaylesOptions(n int) []kaylesOption {
	var opts []kaylesOption
	for _, take := range [2]int{1, 2} {
		if take > n {
			continue
		}
		rest := n - take
		for a := 0; 2*a <= rest; a++ {
			b := rest - a
			opts = append(opts, kaylesOption{take: take, smaller: a, larger: b})
		}
	}
	return opts
}

func encodeKaylesMove(o kaylesOption, c cgtbasics.Color) move.Move {
	first := 2*o.smaller + o.take - 1
	return move.Encode(move.TwoPart(first, o.larger), c)
}

func decodeKaylesMove(m move.Move) (take, smaller, larger int) {
	first := m.First()
	larger = m.Second()
	smaller = first / 2
	take = 1 + first%2
	return
}

type kaylesMoveGen struct {
	g     *Kayles
	c     cgtbasics.Color
	opts  []kaylesOption
	idx   int
}

func (it *kaylesMoveGen) Next() bool {
	it.idx++
	return it.idx < len(it.opts)
}

func (it *kaylesMoveGen) Move() move.Move {
	return encodeKaylesMove(it.opts[it.idx], it.c)
}

func (g *Kayles) MoveGenerator(c cgtbasics.Color) game.MoveGenerator {
	return &kaylesMoveGen{g: g, c: c, opts: kaylesOptions(g.n), idx: -1}
}

func (g *Kayles) Play(m move.Move) {
	take, smaller, larger := decodeKaylesMove(m)
	if smaller+larger+take != g.n {
		panic("stripgame: Kayles illegal move")
	}
	g.undo = append(g.undo, kaylesUndo{n: g.n, smaller: g.smaller})
	g.n = larger
	g.smaller = smaller
	g.InvalidateHash()
}

func (g *Kayles) UndoMove() {
	l := len(g.undo)
	if l == 0 {
		panic("stripgame: Kayles UndoMove on empty stack")
	}
	u := g.undo[l-1]
	g.n = u.n
	g.smaller = u.smaller
	g.undo = g.undo[:l-1]
	g.InvalidateHash()
}

// Split reports the second remaining heap left over by the most recent
// Play, if any. A freshly-built Kayles, or one whose most recent Play left
// a single heap, does not split.
func (g *Kayles) Split() ([]game.Game, bool) {
	if g.smaller <= 0 {
		return nil, false
	}
	return []game.Game{NewKayles(g.n), NewKayles(g.smaller)}, true
}

// Inverse returns a new Kayles heap of the same size: Kayles is
// impartial, so it is its own negative.
func (g *Kayles) Inverse() game.Game { return NewKayles(g.n) }

func (g *Kayles) Order(rhs game.Game) cgtbasics.Relation {
	other, ok := rhs.(*Kayles)
	if !ok {
		return cgtbasics.CompareInts(int(g.TypeID()), int(rhs.TypeID()))
	}
	return cgtbasics.CompareInts(g.n, other.n)
}

func (g *Kayles) Print(w io.Writer) {
	fmt.Fprintf(w, "kayles:%d", g.n)
}

func (g *Kayles) Normalize()     {}
func (g *Kayles) UndoNormalize() {}

func (g *Kayles) LocalHash() uint64 {
	if v, ok := g.CachedHash(); ok {
		return v
	}
	v := game.ComputeLocalHash(kaylesType, func(h *hashing.LocalHash) {
		h.TogglePosition(0, g.n)
	})
	g.SetCachedHash(v)
	return v
}
