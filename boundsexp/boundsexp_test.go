package boundsexp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankerOrdersCandidatesByScript(t *testing.T) {
	script := `
function score(slot, first, second, mover)
  return first
end
`
	r, err := NewRanker(script)
	require.NoError(t, err)
	defer r.Close()

	candidates := []Candidate{
		{Slot: 0, First: 1, Mover: "Black"},
		{Slot: 1, First: 9, Mover: "Black"},
		{Slot: 2, First: 4, Mover: "Black"},
	}
	order, err := r.Rank(candidates)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, order)
}

func TestNewRankerRejectsScriptWithoutScoreFunction(t *testing.T) {
	_, err := NewRanker(`x = 1`)
	assert.Error(t, err)
}

func TestNewRankerRejectsInvalidLua(t *testing.T) {
	_, err := NewRanker(`this is not lua (`)
	assert.Error(t, err)
}
