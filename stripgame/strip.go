// Package stripgame provides minimal concrete rule sets used as end-to-end
// scenario fixtures for the solver: one-dimensional Clobber, one-dimensional
// NoGo, and impartial Kayles. These are not core to the solver -- any rule
// set that implements game.Game works the same way -- but the three here
// are kept in the tree because the scenario table exercises them directly.
package stripgame

import (
	"strings"

	"github.com/cgtgo/mcgs/cgtbasics"
)

// parseBoard reads a Clobber/NoGo-style board string ('X' Black, 'O' White,
// '.' Empty) into a color slice.
func parseBoard(s string) []cgtbasics.Color {
	board := make([]cgtbasics.Color, len(s))
	for i, c := range s {
		switch c {
		case 'X':
			board[i] = cgtbasics.Black
		case 'O':
			board[i] = cgtbasics.White
		case '.':
			board[i] = cgtbasics.Empty
		default:
			panic("stripgame: invalid board character " + string(c))
		}
	}
	return board
}

func boardString(board []cgtbasics.Color) string {
	var sb strings.Builder
	for _, c := range board {
		switch c {
		case cgtbasics.Black:
			sb.WriteByte('X')
		case cgtbasics.White:
			sb.WriteByte('O')
		case cgtbasics.Empty:
			sb.WriteByte('.')
		default:
			panic("stripgame: invalid cell color")
		}
	}
	return sb.String()
}

// inverseBoard swaps Black and White throughout, used by Inverse().
func inverseBoard(board []cgtbasics.Color) []cgtbasics.Color {
	out := make([]cgtbasics.Color, len(board))
	for i, c := range board {
		switch c {
		case cgtbasics.Black:
			out[i] = cgtbasics.White
		case cgtbasics.White:
			out[i] = cgtbasics.Black
		default:
			out[i] = c
		}
	}
	return out
}
