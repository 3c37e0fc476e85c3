package ttable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type boolEntry struct {
	win bool
}

func TestStoreThenGetRoundTrip(t *testing.T) {
	tb := New[boolEntry](8, 24, 2)
	key := uint64(0x12345)
	tb.Store(key, boolEntry{win: true}, 1<<0)
	res := tb.Get(key)
	assert.True(t, res.Valid)
	assert.True(t, res.Entry.win)
	assert.True(t, res.GetBool(0))
	assert.False(t, res.GetBool(1))
}

func TestTagMismatchMisses(t *testing.T) {
	tb := New[boolEntry](4, 24, 0)
	tb.Store(0x0, boolEntry{win: true}, 0)
	// Same index (low 4 bits), different tag bits above index.
	other := uint64(1) << 4
	res := tb.Get(other)
	assert.False(t, res.Valid)
}

func TestClearEmptiesTable(t *testing.T) {
	tb := New[boolEntry](4, 24, 0)
	tb.Store(7, boolEntry{win: true}, 0)
	tb.Clear()
	assert.False(t, tb.Get(7).Valid)
}

func TestAutoIndexBitsStaysWithinClampedRange(t *testing.T) {
	bits := AutoIndexBits(0.1, 16)
	assert.GreaterOrEqual(t, bits, uint(10))
	assert.LessOrEqual(t, bits, uint(30))
}

func TestAutoIndexBitsGrowsWithLargerBudget(t *testing.T) {
	small := AutoIndexBits(0.01, 16)
	large := AutoIndexBits(0.5, 16)
	assert.LessOrEqual(t, small, large)
}
