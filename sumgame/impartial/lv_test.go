package impartial

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cgtgo/mcgs/cgtvalue"
	"github.com/cgtgo/mcgs/ttable"
)

func TestComponentNimValueOfNimberMatchesItsOwnHeapSize(t *testing.T) {
	g := WrapPartizan(cgtvalue.NewNimber(3))
	v, err := ComponentNimValue(context.Background(), g, nil)
	assert.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestComponentNimValueOfZeroNimberIsZero(t *testing.T) {
	g := WrapPartizan(cgtvalue.NewNimber(0))
	v, err := ComponentNimValue(context.Background(), g, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestSumNimValueXorsComponents(t *testing.T) {
	games := []Game{
		WrapPartizan(cgtvalue.NewNimber(2)),
		WrapPartizan(cgtvalue.NewNimber(3)),
	}
	v, err := SumNimValue(context.Background(), games, nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, v) // 2 xor 3 == 1
}

func TestSolveIsFalseWhenNimbersCancel(t *testing.T) {
	games := []Game{
		WrapPartizan(cgtvalue.NewNimber(4)),
		WrapPartizan(cgtvalue.NewNimber(4)),
	}
	win, err := Solve(context.Background(), games, nil)
	assert.NoError(t, err)
	assert.False(t, win)
}

func TestSolveOfSingleNonzeroNimberWins(t *testing.T) {
	games := []Game{WrapPartizan(cgtvalue.NewNimber(3))}
	win, err := Solve(context.Background(), games, nil)
	assert.NoError(t, err)
	assert.True(t, win)
}

func TestSolveUsesHardestSubgamePolicyOverFullSum(t *testing.T) {
	// 2 xor 3 xor 5 == 4, a nonzero total: the first player wins
	// regardless of which subgame search settles directly.
	games := []Game{
		WrapPartizan(cgtvalue.NewNimber(2)),
		WrapPartizan(cgtvalue.NewNimber(3)),
		WrapPartizan(cgtvalue.NewNimber(5)),
	}
	win, err := Solve(context.Background(), games, nil)
	assert.NoError(t, err)
	assert.True(t, win)
}

func TestSearchAndMexSearchShareTheTableAcrossNimberValues(t *testing.T) {
	tt := ttable.New[NimEntry](8, 24, 0)
	g := WrapPartizan(cgtvalue.NewNimber(3))
	win, err := search(context.Background(), g, 3, tt)
	assert.NoError(t, err)
	assert.False(t, win) // g + *3 is a P-position exactly when 3 is g's nimber

	v, err := mexSearch(context.Background(), g, tt)
	assert.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestComponentNimValueIsMemoizedInTT(t *testing.T) {
	tt := ttable.New[NimEntry](8, 24, 0)
	g := WrapPartizan(cgtvalue.NewNimber(5))
	v1, err := ComponentNimValue(context.Background(), g, tt)
	assert.NoError(t, err)
	v2, err := ComponentNimValue(context.Background(), g, tt)
	assert.NoError(t, err)
	assert.Equal(t, v1, v2)
	assert.Equal(t, 5, v1)
}
