package stripgame

import (
	"fmt"
	"io"

	"github.com/cgtgo/mcgs/cgtbasics"
	"github.com/cgtgo/mcgs/game"
	"github.com/cgtgo/mcgs/hashing"
	"github.com/cgtgo/mcgs/move"
)

// Clobber1xN is 1xn Clobber: a strip of Black and White stones with empty
// gaps. A move slides a stone onto an adjacent opposite-colored stone,
// capturing it; a stone with no opposite-colored neighbor cannot move.
type Clobber1xN struct {
	game.Base
	board []cgtbasics.Color

	undo []clobberUndo
}

type clobberUndo struct {
	from, to int
	mover    cgtbasics.Color
}

var clobberType = game.TypeOf[Clobber1xN]()

// NewClobber1xN parses a board string of 'X' (Black), 'O' (White) and '.'
// (empty) characters.
func NewClobber1xN(boardStr string) *Clobber1xN {
	return &Clobber1xN{Base: game.NewBase(), board: parseBoard(boardStr)}
}

func newClobberFromBoard(board []cgtbasics.Color) *Clobber1xN {
	return &Clobber1xN{Base: game.NewBase(), board: board}
}

func (g *Clobber1xN) TypeID() game.TypeID { return clobberType }

func (g *Clobber1xN) String() string { return boardString(g.board) }

type clobberMoveGen struct {
	g     *Clobber1xN
	c     cgtbasics.Color
	moves []move.Move
	idx   int
}

func (it *clobberMoveGen) Next() bool {
	it.idx++
	return it.idx < len(it.moves)
}

func (it *clobberMoveGen) Move() move.Move { return it.moves[it.idx] }

func (g *Clobber1xN) MoveGenerator(c cgtbasics.Color) game.MoveGenerator {
	var moves []move.Move
	opp := c.Opponent()
	for p := 0; p < len(g.board); p++ {
		if g.board[p] != c {
			continue
		}
		for _, dir := range [2]int{-1, 1} {
			q := p + dir
			if q >= 0 && q < len(g.board) && g.board[q] == opp {
				moves = append(moves, move.Encode(move.TwoPart(p, q), c))
			}
		}
	}
	return &clobberMoveGen{g: g, c: c, moves: moves, idx: -1}
}

func (g *Clobber1xN) Play(m move.Move) {
	from, to := m.First(), m.Second()
	mover := m.Color()
	if g.board[from] != mover || g.board[to] != mover.Opponent() {
		panic("stripgame: Clobber1xN illegal move")
	}
	g.undo = append(g.undo, clobberUndo{from: from, to: to, mover: mover})
	g.board[from] = cgtbasics.Empty
	g.board[to] = mover
	g.InvalidateHash()
}

func (g *Clobber1xN) UndoMove() {
	n := len(g.undo)
	if n == 0 {
		panic("stripgame: Clobber1xN UndoMove on empty stack")
	}
	u := g.undo[n-1]
	g.undo = g.undo[:n-1]
	g.board[u.from] = u.mover
	g.board[u.to] = u.mover.Opponent()
	g.InvalidateHash()
}

// Split breaks the strip at every empty cell into its maximal runs of
// stones, then drops any run that is monochrome: with no opposite-colored
// neighbor anywhere in it, no stone in such a run ever has a legal move,
// so the run is equal to the zero game. A board with no empty cells and
// no droppable monochrome run reports no split.
func (g *Clobber1xN) Split() ([]game.Game, bool) {
	var runs [][]cgtbasics.Color
	var cur []cgtbasics.Color
	for _, c := range g.board {
		if c == cgtbasics.Empty {
			if len(cur) > 0 {
				runs = append(runs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, c)
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	if len(runs) == 1 && len(runs[0]) == len(g.board) && !monochrome(runs[0]) {
		return nil, false
	}
	var kept []game.Game
	for _, run := range runs {
		if monochrome(run) {
			continue
		}
		kept = append(kept, newClobberFromBoard(run))
	}
	return kept, true
}

func monochrome(run []cgtbasics.Color) bool {
	for _, c := range run {
		if c != run[0] {
			return false
		}
	}
	return true
}

func (g *Clobber1xN) Inverse() game.Game {
	return newClobberFromBoard(inverseBoard(g.board))
}

func (g *Clobber1xN) Order(rhs game.Game) cgtbasics.Relation {
	other, ok := rhs.(*Clobber1xN)
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

func (g *Clobber1xN) Print(w io.Writer) {
	fmt.Fprintf(w, "clobber_1xn:%s", boardString(g.board))
}

func (g *Clobber1xN) Normalize()     {}
func (g *Clobber1xN) UndoNormalize() {}

func (g *Clobber1xN) LocalHash() uint64 {
	if v, ok := g.CachedHash(); ok {
		return v
	}
	v := game.ComputeLocalHash(clobberType, func(h *hashing.LocalHash) {
		for p, c := range g.board {
			h.TogglePosition(p, int(c))
		}
	})
	g.SetCachedHash(v)
	return v
}
