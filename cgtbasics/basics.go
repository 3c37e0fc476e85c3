// Package cgtbasics holds the small, shared vocabulary that every layer of
// the solver depends on: colors, outcome classes, and the three-way
// ordering relation used to canonicalize a sum before hashing it.
package cgtbasics

// Color identifies a player, or a non-player cell/board state.
type Color uint8

const (
	Black Color = iota
	White
	Empty
	Border
)

// Opponent returns the other player. It panics if c is not Black or White.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		panic("cgtbasics: Opponent called on a non-player color")
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	case Empty:
		return "Empty"
	case Border:
		return "Border"
	default:
		return "Invalid"
	}
}

// Left and Right are conventional aliases for Black and White, matching the
// left/right option terminology used throughout CGT literature.
const (
	Left  = Black
	Right = White
)

// OutcomeClass classifies a game's value under normal play convention.
type OutcomeClass uint8

const (
	OutcomeP OutcomeClass = iota // previous player wins
	OutcomeN                     // next player wins
	OutcomeL                     // left wins regardless of who moves first
	OutcomeR                     // right wins regardless of who moves first
	OutcomeUnknown
)

func (o OutcomeClass) String() string {
	switch o {
	case OutcomeP:
		return "P"
	case OutcomeN:
		return "N"
	case OutcomeL:
		return "L"
	case OutcomeR:
		return "R"
	default:
		return "?"
	}
}

// Relation is the result of comparing two games/values for canonical
// ordering purposes. It is not a CGT partial-order comparison; it only
// needs to be a consistent total order so sums can be sorted before
// hashing (see the Game interface's Order method).
type Relation int8

const (
	Less Relation = iota - 1
	Equal
	Greater
)

// CompareInts is a small helper most Order implementations reduce to once
// they have picked out the fields that matter for canonicalization.
func CompareInts(a, b int) Relation {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}
