package stripgame

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cgtgo/mcgs/cgtbasics"
)

func TestClobberPlayCapturesAndUndoRestores(t *testing.T) {
	g := NewClobber1xN("XO")
	gen := g.MoveGenerator(cgtbasics.Black)
	assert.True(t, gen.Next())
	before := g.String()
	g.Play(gen.Move())
	assert.Equal(t, ".X", g.String())
	g.UndoMove()
	assert.Equal(t, before, g.String())
}

func TestClobberSplitDropsEmptyAndSingletons(t *testing.T) {
	g := NewClobber1xN(".XO.X.X...X.......O..O.XOXOX....O.O..OOX")
	parts, ok := g.Split()
	assert.True(t, ok)
	var boards []string
	for _, p := range parts {
		boards = append(boards, p.(*Clobber1xN).String())
	}
	assert.Equal(t, []string{"XO", "XOXOX", "OOX"}, boards)
}

func TestClobberNoSplitWhenNoEmptyOrSingleton(t *testing.T) {
	g := NewClobber1xN("XOXO")
	_, ok := g.Split()
	assert.False(t, ok)
}

func TestNoGoIllegalToFillLastLibertyOfOwnGroup(t *testing.T) {
	// "XX." : placing Black at the last empty cell fills the whole
	// board with Black, leaving that group with no liberty at all.
	g := NewNoGo1xN("XX.")
	assert.False(t, isLegalNoGo(g.board, 2, cgtbasics.Black))
}

func TestNoGoLegalWhenPlacementKeepsALiberty(t *testing.T) {
	g := NewNoGo1xN("X..")
	assert.True(t, isLegalNoGo(g.board, 1, cgtbasics.Black))
}

func TestNoGoSplitsOnOppositeColorSeam(t *testing.T) {
	g := NewNoGo1xN("XO")
	parts, ok := g.Split()
	assert.True(t, ok)
	assert.Len(t, parts, 2)
}

func TestKaylesMoveSplitsHeap(t *testing.T) {
	g := NewKayles(5)
	gen := g.MoveGenerator(cgtbasics.Black)
	assert.True(t, gen.Next())
	m := gen.Move()
	g.Play(m)
	take, smaller, larger := decodeKaylesMove(m)
	assert.True(t, smaller+larger+take == 5)
	g.UndoMove()
	assert.Equal(t, 5, g.Value())
}
