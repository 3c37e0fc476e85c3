package hashing

import (
	"testing"

	"github.com/matryer/is"

	"github.com/cgtgo/mcgs/cgtbasics"
)

func TestLocalHashTogglesAreSelfInverse(t *testing.T) {
	is := is.New(t)
	var h LocalHash
	h.TogglePosition(3, 7)
	before := h.Value()
	h.TogglePosition(5, 2)
	h.TogglePosition(5, 2)
	is.Equal(h.Value(), before)
}

func TestGlobalHashAddRemoveRoundTrip(t *testing.T) {
	is := is.New(t)
	g := NewGlobalHash()
	g.AddSubgame(0, 123)
	g.AddSubgame(1, 456)
	mid := g.Value()
	is.True(mid != 0)
	g.RemoveSubgame(1)
	g.RemoveSubgame(0)
	is.Equal(g.Value(), uint64(0))
}

func TestGlobalHashToMoveChangesValue(t *testing.T) {
	is := is.New(t)
	g := NewGlobalHash()
	g.AddSubgame(0, 1)
	before := g.Value()
	g.SetToMove(cgtbasics.White)
	is.True(g.Value() != before)
	g.SetToMove(cgtbasics.Black)
	is.Equal(g.Value(), before)
}
