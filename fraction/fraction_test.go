package fraction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReducesToLowestTerms(t *testing.T) {
	f := New(2, 4)
	assert.Equal(t, int64(1), f.Numerator())
	assert.Equal(t, int64(2), f.Denominator())
}

func TestAddAcrossDifferentDenominators(t *testing.T) {
	a := New(1, 2)
	b := New(1, 4)
	got := a.Add(b)
	assert.True(t, got.Equal(New(3, 4)))
}

func TestSimplestBetweenIntegersPicksZero(t *testing.T) {
	got := Simplest(New(-3, 1), New(5, 1))
	assert.True(t, got.Equal(FromInt(0)))
}

func TestSimplestBetweenPositiveFractionsPicksSmallestDenominator(t *testing.T) {
	got := Simplest(New(1, 4), New(1, 2))
	assert.True(t, got.Equal(New(3, 8)))
}

func TestSimplestPanicsWhenNotOrdered(t *testing.T) {
	assert.Panics(t, func() { Simplest(New(1, 1), New(1, 1)) })
}

func TestTryAddSucceedsForOrdinaryValues(t *testing.T) {
	a := New(1, 2)
	b := New(1, 4)
	got, ok := a.TryAdd(b)
	assert.True(t, ok)
	assert.True(t, got.Equal(New(3, 4)))
}

func TestTryAddFailsOnNumeratorOverflow(t *testing.T) {
	a := FromInt(math.MaxInt64)
	b := FromInt(1)
	_, ok := a.TryAdd(b)
	assert.False(t, ok)
}

func TestTryAddLeavesOperandsUnchangedOnOverflow(t *testing.T) {
	a := FromInt(math.MaxInt64)
	b := FromInt(1)
	_, ok := a.TryAdd(b)
	assert.False(t, ok)
	assert.Equal(t, int64(math.MaxInt64), a.Numerator())
	assert.Equal(t, int64(1), b.Numerator())
}

func TestTrySubFailsOnOverflow(t *testing.T) {
	a := FromInt(math.MinInt64)
	b := FromInt(1)
	_, ok := a.TrySub(b)
	assert.False(t, ok)
}

func TestTryCompareFailsOnCrossMultiplicationOverflow(t *testing.T) {
	a := New(math.MaxInt64-1, 2)
	b := New(1, 4)
	_, ok := a.TryCompare(b)
	assert.False(t, ok)
}
