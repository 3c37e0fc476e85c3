package move

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cgtgo/mcgs/cgtbasics"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	m := Encode(TwoPart(3, 10), cgtbasics.White)
	assert.Equal(t, cgtbasics.White, m.Color())
	assert.Equal(t, 3, m.First())
	assert.Equal(t, 10, m.Second())
}

func TestEncodeBlackDefaultColorBit(t *testing.T) {
	m := Encode(TwoPart(0, 0), cgtbasics.Black)
	assert.Equal(t, cgtbasics.Black, m.Color())
	assert.Zero(t, int32(m))
}

func TestTwoPartOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { TwoPart(MaxPartSize, 0) })
}
