package stripgame

import (
	"fmt"
	"strconv"

	"github.com/cgtgo/mcgs/game"
)

func errWrongFieldCount(typeName string, want, got int) error {
	return fmt.Errorf("stripgame: %s expects %d board field(s), got %d", typeName, want, got)
}

func parseNonNegativeInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("stripgame: invalid integer %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("stripgame: value must be non-negative, got %d", n)
	}
	return n, nil
}

// Constructor builds a game from its board token's fields (the comma- or
// space-split contents of a case file's "(...)" token).
type Constructor func(fields []string) (game.Game, error)

// registry maps a case file's "[Type]" token to the constructor for that
// type. Populated by Register, consumed by caseio.
var registry = map[string]Constructor{}

// Register adds name to the registry, overwriting any existing entry --
// callers are expected to register at package init time, not dynamically.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Lookup returns the constructor registered for name, if any.
func Lookup(name string) (Constructor, bool) {
	ctor, ok := registry[name]
	return ctor, ok
}

func init() {
	Register("Clobber1xN", func(fields []string) (game.Game, error) {
		if len(fields) != 1 {
			return nil, errWrongFieldCount("Clobber1xN", 1, len(fields))
		}
		return NewClobber1xN(fields[0]), nil
	})
	Register("NoGo1xN", func(fields []string) (game.Game, error) {
		if len(fields) != 1 {
			return nil, errWrongFieldCount("NoGo1xN", 1, len(fields))
		}
		return NewNoGo1xN(fields[0]), nil
	})
	Register("Kayles", func(fields []string) (game.Game, error) {
		if len(fields) != 1 {
			return nil, errWrongFieldCount("Kayles", 1, len(fields))
		}
		n, err := parseNonNegativeInt(fields[0])
		if err != nil {
			return nil, err
		}
		return NewKayles(n), nil
	})
}
