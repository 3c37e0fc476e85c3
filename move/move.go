// Package move implements the packed integer move encoding shared by every
// game implementation in this module. A Move carries up to two
// game-specific payload fields plus the color of the player who made it,
// packed into a single int32 so move generators can hand them out without
// allocating.
package move

import (
	"fmt"

	"github.com/cgtgo/mcgs/cgtbasics"
)

const (
	bitsPerPart = 15
	colorBit    = 30
	partMask    = 1<<bitsPerPart - 1
	colorMask   = 1 << colorBit
	moveMask    = colorMask - 1
	unusedBit   = 1 << 31

	// MaxPartSize is one more than the largest value a single packed
	// field can hold.
	MaxPartSize = 1 << bitsPerPart
)

// Move is a packed move: two bitsPerPart-wide payload fields plus a color
// bit. Games that only need one field (most do) leave the second at 0.
type Move int32

// Encode packs a color and a combined move-specific payload into a Move.
// payload must already fit in moveMask bits (use TwoPart to build it from
// two separate fields).
func Encode(payload int32, c cgtbasics.Color) Move {
	if payload&^int32(moveMask) != 0 {
		panic("move: payload does not fit in available bits")
	}
	cb := int32(0)
	if c == cgtbasics.White {
		cb = colorMask
	}
	return Move(payload | cb)
}

// TwoPart packs two sub-fields (e.g. "from" and "to") into a single
// payload suitable for Encode.
func TwoPart(first, second int) int32 {
	if first < 0 || first >= MaxPartSize || second < 0 || second >= MaxPartSize {
		panic("move: sub-field out of range")
	}
	return int32(first) | int32(second)<<bitsPerPart
}

// Color returns the player who made the move.
func (m Move) Color() cgtbasics.Color {
	if int32(m)&colorMask != 0 {
		return cgtbasics.White
	}
	return cgtbasics.Black
}

// Payload returns the combined move-specific bits, with the color and
// reserved bits masked off.
func (m Move) Payload() int32 {
	return int32(m) & moveMask
}

// First returns the low sub-field of a two-part payload.
func (m Move) First() int {
	return int(m.Payload() & partMask)
}

// Second returns the high sub-field of a two-part payload.
func (m Move) Second() int {
	return int(m.Payload()>>bitsPerPart) & partMask
}

// From and To are conventional aliases for First/Second, used by games
// whose moves are naturally "move a token from X to Y".
func (m Move) From() int { return m.First() }
func (m Move) To() int   { return m.Second() }

func (m Move) String() string {
	return fmt.Sprintf("<move color=%v first=%d second=%d>", m.Color(), m.First(), m.Second())
}

var _ = unusedBit // reserved for future move flags; currently always 0
