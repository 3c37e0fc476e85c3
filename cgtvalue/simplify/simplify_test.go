package simplify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cgtgo/mcgs/cgtvalue"
	"github.com/cgtgo/mcgs/game"
)

func TestSimplifyNimbersXorsTwoOrMore(t *testing.T) {
	r := RunAll([]game.Game{cgtvalue.NewNimber(2), cgtvalue.NewNimber(3)})
	assert.Len(t, r.Removed, 2)
	assert.Len(t, r.Added, 1)
	n, star := r.Added[0].(*cgtvalue.UpStar).Value()
	assert.Equal(t, 0, n)
	assert.True(t, star)
}

func TestSimplifyNimbersVanishesOnCancellation(t *testing.T) {
	r := RunAll([]game.Game{cgtvalue.NewNimber(4), cgtvalue.NewNimber(4)})
	assert.Len(t, r.Removed, 2)
	assert.Empty(t, r.Added)
}

func TestSimplifyNimbersRewritesLoneStarOneAsUpStar(t *testing.T) {
	r := RunAll([]game.Game{cgtvalue.NewNimber(1)})
	assert.Len(t, r.Removed, 1)
	assert.Len(t, r.Added, 1)
	n, star := r.Added[0].(*cgtvalue.UpStar).Value()
	assert.Equal(t, 0, n)
	assert.True(t, star)
}

func TestSimplifyNimbersVanishesLoneZero(t *testing.T) {
	r := RunAll([]game.Game{cgtvalue.NewNimber(0)})
	assert.Len(t, r.Removed, 1)
	assert.Empty(t, r.Added)
}

func TestSimplifyNimbersLeavesLoneOtherValueAlone(t *testing.T) {
	r := RunAll([]game.Game{cgtvalue.NewNimber(2)})
	assert.Empty(t, r.Removed)
	assert.Empty(t, r.Added)
}

func TestSimplifyUpStarsConsolidatesSums(t *testing.T) {
	r := RunAll([]game.Game{cgtvalue.NewUpStar(2, true), cgtvalue.NewUpStar(2, true)})
	assert.Len(t, r.Removed, 2)
	n, star := r.Added[0].(*cgtvalue.UpStar).Value()
	assert.Equal(t, 4, n)
	assert.False(t, star)
}

func TestSimplifyIntegersRationalsConsolidatesToInteger(t *testing.T) {
	r := RunAll([]game.Game{cgtvalue.NewInteger(3), cgtvalue.NewInteger(-5)})
	assert.Len(t, r.Removed, 2)
	assert.Equal(t, -2, r.Added[0].(*cgtvalue.Integer).Value())
}

func TestSimplifyLeavesLoneIntegerUntouched(t *testing.T) {
	other := cgtvalue.NewInteger(1)
	r := RunAll([]game.Game{other})
	assert.Empty(t, r.Removed)
	assert.Empty(t, r.Added)
}

func TestSimplifyIntegersRationalsSkipsOnOverflow(t *testing.T) {
	r := RunAll([]game.Game{cgtvalue.NewInteger(math.MaxInt64), cgtvalue.NewInteger(1)})
	assert.Empty(t, r.Removed)
	assert.Empty(t, r.Added)
}
