package sumgame

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cgtgo/mcgs/cgtvalue"
)

func TestPlayThenUndoRestoresHash(t *testing.T) {
	sum := New(cgtvalue.NewInteger(2), cgtvalue.NewNimber(3))
	before := sum.Hash()

	games, slots := sum.ActiveSlots()
	gen := games[0].MoveGenerator(sum.ToMove())
	assert.True(t, gen.Next())
	sum.PlaySum(slots[0], gen.Move())
	assert.NotEqual(t, before, sum.Hash())

	sum.UndoMove()
	assert.Equal(t, before, sum.Hash())
}

func TestSimplifyBasicConsolidatesNimbers(t *testing.T) {
	sum := New(cgtvalue.NewNimber(2), cgtvalue.NewNimber(3))
	changed := sum.SimplifyBasic()
	assert.True(t, changed)
	assert.Equal(t, 1, sum.NumActiveGames())
}

func TestSimplifyBasicLeavesSingleNimberAlone(t *testing.T) {
	sum := New(cgtvalue.NewNimber(2))
	changed := sum.SimplifyBasic()
	assert.False(t, changed)
	assert.Equal(t, 1, sum.NumActiveGames())
}

func TestUnwindToReversesMultipleOperations(t *testing.T) {
	sum := New(cgtvalue.NewInteger(1), cgtvalue.NewInteger(1))
	mark := sum.Mark()
	sum.SimplifyBasic()
	games, slots := sum.ActiveSlots()
	gen := games[0].MoveGenerator(sum.ToMove())
	assert.True(t, gen.Next())
	sum.PlaySum(slots[0], gen.Move())

	sum.UnwindTo(mark)
	assert.Equal(t, 2, sum.NumActiveGames())
}

func TestSolverFirstPlayerWinsNonzeroInteger(t *testing.T) {
	sum := New(cgtvalue.NewInteger(1))
	solver := NewSolver(0)
	win, err := solver.Solve(sum)
	assert.NoError(t, err)
	assert.True(t, win)
}

func TestSolverSecondPlayerWinsEmptySum(t *testing.T) {
	sum := New(cgtvalue.NewInteger(0))
	solver := NewSolver(0)
	win, err := solver.Solve(sum)
	assert.NoError(t, err)
	assert.False(t, win)
}

func TestSolverStarIsAFirstPlayerWin(t *testing.T) {
	sum := New(cgtvalue.NewNimber(1))
	solver := NewSolver(8)
	win, err := solver.Solve(sum)
	assert.NoError(t, err)
	assert.True(t, win)
}
