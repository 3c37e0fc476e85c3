package sumgame

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgtgo/mcgs/cgtbasics"
	"github.com/cgtgo/mcgs/cgtvalue"
	"github.com/cgtgo/mcgs/fraction"
	"github.com/cgtgo/mcgs/stripgame"
	"github.com/cgtgo/mcgs/sumgame/impartial"
	"github.com/cgtgo/mcgs/ttable"
)

func solveBothToPlay(t *testing.T, sum *Sum) (blackWins, whiteWins bool) {
	t.Helper()
	solver := NewSolver(0)
	sum.SetToMove(cgtbasics.Black)
	blackWins, err := solver.Solve(sum)
	require.NoError(t, err)
	sum.SetToMove(cgtbasics.White)
	whiteWins, err = solver.Solve(sum)
	require.NoError(t, err)
	return blackWins, whiteWins
}

func TestScenario1ClobberXOIsAFirstPlayerWinForBoth(t *testing.T) {
	sum := New(stripgame.NewClobber1xN("XO"))
	black, white := solveBothToPlay(t, sum)
	assert.True(t, black)
	assert.True(t, white)
}

func TestScenario2ClobberAlternatingRunIsALoss(t *testing.T) {
	sum := New(stripgame.NewClobber1xN("XOXOXO"))
	black, white := solveBothToPlay(t, sum)
	assert.False(t, black)
	assert.False(t, white)
}

func TestScenario3NoGoAllEmptyIsALossForBlack(t *testing.T) {
	sum := New(stripgame.NewNoGo1xN("...."))
	solver := NewSolver(0)
	sum.SetToMove(cgtbasics.Black)
	win, err := solver.Solve(sum)
	require.NoError(t, err)
	assert.False(t, win)
}

func TestScenario4IntegerSumIsLossForBlackWinForWhite(t *testing.T) {
	sum := New(cgtvalue.NewInteger(3), cgtvalue.NewInteger(-5))
	black, white := solveBothToPlay(t, sum)
	assert.False(t, black)
	assert.True(t, white)
}

func TestScenario5ImpartialNimberSumHasValueFour(t *testing.T) {
	games := []impartial.Game{
		impartial.WrapPartizan(cgtvalue.NewNimber(2)),
		impartial.WrapPartizan(cgtvalue.NewNimber(3)),
		impartial.WrapPartizan(cgtvalue.NewNimber(5)),
	}
	tt := ttable.New[impartial.NimEntry](8, 24, 0)
	v, err := impartial.SumNimValue(context.Background(), games, tt)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

func TestScenario6UpStarPlusItsNegationIsALossForBoth(t *testing.T) {
	sum := New(cgtvalue.NewUpStar(1, false), cgtvalue.NewUpStar(-1, false))
	black, white := solveBothToPlay(t, sum)
	assert.False(t, black)
	assert.False(t, white)
}

func TestScenario7SwitchIsWinForBlackLossForWhite(t *testing.T) {
	sum := New(cgtvalue.NewSwitch(fraction.FromInt(5), fraction.FromInt(3)))
	black, white := solveBothToPlay(t, sum)
	assert.True(t, black)
	assert.False(t, white)
}

func TestScenario8KaylesImpartialSumHasNimValueOne(t *testing.T) {
	games := []impartial.Game{
		impartial.WrapPartizan(stripgame.NewKayles(2)),
		impartial.WrapPartizan(stripgame.NewKayles(3)),
	}
	tt := ttable.New[impartial.NimEntry](8, 24, 0)
	v, err := impartial.SumNimValue(context.Background(), games, tt)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestScenario9TwoUpStarsSimplifyToUpStarFour(t *testing.T) {
	sum := New(cgtvalue.NewUpStar(2, true), cgtvalue.NewUpStar(2, true))
	changed := sum.SimplifyBasic()
	require.True(t, changed)
	active := sum.ActiveGames()
	require.Len(t, active, 1)

	var got bytes.Buffer
	active[0].Print(&got)

	want := cgtvalue.NewUpStar(4, false)
	var wantBuf bytes.Buffer
	want.Print(&wantBuf)

	assert.Equal(t, wantBuf.String(), got.String())
}

func TestScenario10LoneStarNimberSimplifiesToUpStarZeroTrue(t *testing.T) {
	sum := New(cgtvalue.NewNimber(1))
	changed := sum.SimplifyBasic()
	require.True(t, changed)
	active := sum.ActiveGames()
	require.Len(t, active, 1)

	upStar, ok := active[0].(*cgtvalue.UpStar)
	require.True(t, ok)
	n, star := upStar.Value()
	assert.Equal(t, 0, n)
	assert.True(t, star)
}
