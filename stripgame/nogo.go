package stripgame

import (
	"fmt"
	"io"

	"github.com/cgtgo/mcgs/cgtbasics"
	"github.com/cgtgo/mcgs/game"
	"github.com/cgtgo/mcgs/hashing"
	"github.com/cgtgo/mcgs/move"
)

// NoGo1xN is 1xn NoGo: a move places the mover's stone on an empty cell,
// and is illegal if it leaves any maximal same-colored block (including
// the mover's own) with no empty cell adjacent anywhere along it. Modeled
// here as a partizan game even though its legality rule is symmetric in
// color, matching the source project's own treatment.
type NoGo1xN struct {
	game.Base
	board []cgtbasics.Color

	undo []nogoUndo
}

type nogoUndo struct {
	at    int
	mover cgtbasics.Color
}

var nogoType = game.TypeOf[NoGo1xN]()

// NewNoGo1xN parses a board string of 'X' (Black), 'O' (White) and '.'
// (empty) characters.
func NewNoGo1xN(boardStr string) *NoGo1xN {
	return &NoGo1xN{Base: game.NewBase(), board: parseBoard(boardStr)}
}

func newNoGoFromBoard(board []cgtbasics.Color) *NoGo1xN {
	return &NoGo1xN{Base: game.NewBase(), board: board}
}

func (g *NoGo1xN) TypeID() game.TypeID { return nogoType }

func (g *NoGo1xN) String() string { return boardString(g.board) }

// isLegalNoGo reports whether mover may place a stone at p: p must be empty,
// and every maximal run of one color induced by the placement must still
// touch at least one empty cell.
func isLegalNoGo(board []cgtbasics.Color, p int, mover cgtbasics.Color) bool {
	if board[p] != cgtbasics.Empty {
		return false
	}
	n := len(board)
	cellAt := func(i int) cgtbasics.Color {
		if i == p {
			return mover
		}
		return board[i]
	}
	previous := cellAt(0)
	hasLiberty := previous == cgtbasics.Empty
	for i := 1; i < n; i++ {
		current := cellAt(i)
		if current == cgtbasics.Empty {
			hasLiberty = true
		} else if current != previous && previous != cgtbasics.Empty {
			if hasLiberty {
				hasLiberty = false
			} else {
				return false
			}
		}
		previous = current
	}
	return hasLiberty
}

type nogoMoveGen struct {
	g     *NoGo1xN
	c     cgtbasics.Color
	moves []int
	idx   int
}

func (it *nogoMoveGen) Next() bool {
	it.idx++
	return it.idx < len(it.moves)
}

func (it *nogoMoveGen) Move() move.Move {
	return move.Encode(int32(it.moves[it.idx]), it.c)
}

func (g *NoGo1xN) MoveGenerator(c cgtbasics.Color) game.MoveGenerator {
	var moves []int
	for p := 0; p < len(g.board); p++ {
		if isLegalNoGo(g.board, p, c) {
			moves = append(moves, p)
		}
	}
	return &nogoMoveGen{g: g, c: c, moves: moves, idx: -1}
}

func (g *NoGo1xN) Play(m move.Move) {
	at := int(m.Payload())
	mover := m.Color()
	if g.board[at] != cgtbasics.Empty {
		panic("stripgame: NoGo1xN illegal move")
	}
	g.undo = append(g.undo, nogoUndo{at: at, mover: mover})
	g.board[at] = mover
	g.InvalidateHash()
}

func (g *NoGo1xN) UndoMove() {
	n := len(g.undo)
	if n == 0 {
		panic("stripgame: NoGo1xN UndoMove on empty stack")
	}
	u := g.undo[n-1]
	g.undo = g.undo[:n-1]
	g.board[u.at] = cgtbasics.Empty
	g.InvalidateHash()
}

// Split breaks the strip wherever two adjacent stones of opposite color
// meet: the positions strictly before and from that boundary on never
// interact again, since a stone can never capture in NoGo, so the board
// decomposes at every XO or OX seam. A board with no such seam reports no
// split.
func (g *NoGo1xN) Split() ([]game.Game, bool) {
	n := len(g.board)
	var starts, ends []int
	start := 0
	for i := 0; i < n; i++ {
		if g.board[i] != cgtbasics.Empty && i > 0 && g.board[i-1] != cgtbasics.Empty && g.board[i-1] == g.board[i].Opponent() {
			starts = append(starts, start)
			ends = append(ends, i-1)
			start = i
		}
	}
	if n > 0 {
		starts = append(starts, start)
		ends = append(ends, n-1)
	}
	if len(starts) <= 1 {
		return nil, false
	}
	parts := make([]game.Game, 0, len(starts))
	for i := range starts {
		sub := append([]cgtbasics.Color(nil), g.board[starts[i]:ends[i]+1]...)
		parts = append(parts, newNoGoFromBoard(sub))
	}
	return parts, true
}

func (g *NoGo1xN) Inverse() game.Game {
	return newNoGoFromBoard(inverseBoard(g.board))
}

func (g *NoGo1xN) Order(rhs game.Game) cgtbasics.Relation {
	other, ok := rhs.(*NoGo1xN)
	if !ok {
		return cgtbasics.CompareInts(int(g.TypeID()), int(rhs.TypeID()))
	}
	if r := cgtbasics.CompareInts(len(g.board), len(other.board)); r != cgtbasics.Equal {
		return r
	}
	for i := range g.board {
		if r := cgtbasics.CompareInts(int(g.board[i]), int(other.board[i])); r != cgtbasics.Equal {
			return r
		}
	}
	return cgtbasics.Equal
}

func (g *NoGo1xN) Print(w io.Writer) {
	fmt.Fprintf(w, "nogo_1xn:%s", boardString(g.board))
}

func (g *NoGo1xN) Normalize()     {}
func (g *NoGo1xN) UndoNormalize() {}

func (g *NoGo1xN) LocalHash() uint64 {
	if v, ok := g.CachedHash(); ok {
		return v
	}
	v := game.ComputeLocalHash(nogoType, func(h *hashing.LocalHash) {
		for p, c := range g.board {
			h.TogglePosition(p, int(c))
		}
	})
	g.SetCachedHash(v)
	return v
}
