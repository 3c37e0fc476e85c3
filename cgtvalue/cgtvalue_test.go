package cgtvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgtgo/mcgs/cgtbasics"
	"github.com/cgtgo/mcgs/fraction"
)

func TestIntegerPlayUndoRestoresValue(t *testing.T) {
	g := NewInteger(3)
	gen := g.MoveGenerator(cgtbasics.Black)
	assert.True(t, gen.Next())
	g.Play(gen.Move())
	assert.Equal(t, 2, g.Value())
	g.UndoMove()
	assert.Equal(t, 3, g.Value())
}

func TestIntegerZeroHasNoMoves(t *testing.T) {
	g := NewInteger(0)
	assert.False(t, g.MoveGenerator(cgtbasics.Black).Next())
	assert.False(t, g.MoveGenerator(cgtbasics.White).Next())
}

func TestNimberEnumeratesAllSmallerHeaps(t *testing.T) {
	g := NewNimber(3)
	gen := g.MoveGenerator(cgtbasics.Black)
	var seen []int
	for gen.Next() {
		seen = append(seen, gen.Move().First())
	}
	assert.ElementsMatch(t, []int{0, 1, 2}, seen)
}

func TestNimberIsItsOwnInverse(t *testing.T) {
	g := NewNimber(5)
	inv := g.Inverse().(*Nimber)
	assert.Equal(t, g.Value(), inv.Value())
}

func TestUpStarBaseValueMoves(t *testing.T) {
	up := NewUpStar(1, false)
	leftGen := up.MoveGenerator(cgtbasics.Black)
	assert.True(t, leftGen.Next())
	assert.False(t, leftGen.Next())
	rightGen := up.MoveGenerator(cgtbasics.White)
	assert.True(t, rightGen.Next())
	assert.False(t, rightGen.Next())
}

func TestUpStarPlayUndo(t *testing.T) {
	up := NewUpStar(2, false)
	gen := up.MoveGenerator(cgtbasics.White)
	assert.True(t, gen.Next())
	m := gen.Move()
	up.Play(m)
	n, star := up.Value()
	assert.Equal(t, 1, n)
	assert.True(t, star)
	up.UndoMove()
	n, star = up.Value()
	assert.Equal(t, 2, n)
	assert.False(t, star)
}

func TestSwitchKindProperWhenLeftExceedsRight(t *testing.T) {
	s := NewSwitch(fraction.FromInt(3), fraction.FromInt(-2))
	assert.Equal(t, SwitchProper, s.Kind())
}

func TestSwitchKindConvertibleNumberWhenNotOrderDependent(t *testing.T) {
	s := NewSwitch(fraction.FromInt(2), fraction.FromInt(2))
	assert.Equal(t, SwitchConvertibleNumber, s.Kind())
}

func TestSwitchPlaySettlesToChosenSide(t *testing.T) {
	s := NewSwitch(fraction.FromInt(3), fraction.FromInt(-2))
	gen := s.MoveGenerator(cgtbasics.Black)
	assert.True(t, gen.Next())
	s.Play(gen.Move())
	v, done := s.Settled()
	assert.True(t, done)
	assert.True(t, v.Equal(fraction.FromInt(3)))
}

func TestSwitchSplitsIntoSettledIntegerAfterPlay(t *testing.T) {
	s := NewSwitch(fraction.FromInt(5), fraction.FromInt(3))
	gen := s.MoveGenerator(cgtbasics.Black)
	assert.True(t, gen.Next())
	s.Play(gen.Move())

	parts, ok := s.Split()
	require.True(t, ok)
	require.Len(t, parts, 1)
	i, ok := parts[0].(*Integer)
	require.True(t, ok)
	assert.Equal(t, 5, i.Value())
}

func TestSwitchDoesNotSplitBeforeBeingPlayed(t *testing.T) {
	s := NewSwitch(fraction.FromInt(5), fraction.FromInt(3))
	_, ok := s.Split()
	assert.False(t, ok)
}

func TestSwitchKeepsBeingPlayableAfterSettlingToNonzero(t *testing.T) {
	s := NewSwitch(fraction.FromInt(5), fraction.FromInt(3))
	gen := s.MoveGenerator(cgtbasics.White)
	assert.True(t, gen.Next())
	s.Play(gen.Move()) // settles to 3

	blackGen := s.MoveGenerator(cgtbasics.Black)
	assert.True(t, blackGen.Next())
	whiteGen := s.MoveGenerator(cgtbasics.White)
	assert.False(t, whiteGen.Next())
}

func TestSwitchUndoMoveReversesRootCollapse(t *testing.T) {
	s := NewSwitch(fraction.FromInt(5), fraction.FromInt(3))
	gen := s.MoveGenerator(cgtbasics.Black)
	assert.True(t, gen.Next())
	s.Play(gen.Move())
	s.UndoMove()

	_, done := s.Settled()
	assert.False(t, done)
	_, ok := s.Split()
	assert.False(t, ok)
}

func TestDyadicRationalSplitsToIntegerOnceIntegral(t *testing.T) {
	g := NewDyadicRational(fraction.New(1, 2))
	gen := g.MoveGenerator(cgtbasics.Black)
	assert.True(t, gen.Next())
	g.Play(gen.Move()) // 1/2 - 1/2 == 0, an integer

	parts, ok := g.Split()
	require.True(t, ok)
	require.Len(t, parts, 1)
	i, ok := parts[0].(*Integer)
	require.True(t, ok)
	assert.Equal(t, 0, i.Value())
}

func TestDyadicRationalDoesNotSplitWhileTrulyFractional(t *testing.T) {
	g := NewDyadicRational(fraction.New(1, 2))
	_, ok := g.Split()
	assert.False(t, ok)
}
