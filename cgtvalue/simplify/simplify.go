// Package simplify implements the basic-CGT algebraic simplifier: four
// ordered passes that each look at the active subgames of one concrete
// basic-CGT type. The up-star and integer/rational passes collapse two or
// more games into a single equivalent game; the nimber pass does the same
// and also rewrites a lone *0 or *1; the switch pass converts each
// non-proper switch into a number on its own. It is grounded on the
// same typed-grouping idea as a map view over a sum's active subgames:
// build one slice per concrete type, then let each pass consume its own
// slice.
package simplify

import (
	"github.com/samber/lo"

	"github.com/cgtgo/mcgs/cgtvalue"
	"github.com/cgtgo/mcgs/fraction"
	"github.com/cgtgo/mcgs/game"
)

// MapView groups a set of active games by concrete basic-CGT type. Games
// that are not one of the five basic-CGT types (concrete rule-set games
// like a Clobber strip) are kept verbatim in Other.
type MapView struct {
	Integers  []*cgtvalue.Integer
	Dyadics   []*cgtvalue.DyadicRational
	Nimbers   []*cgtvalue.Nimber
	UpStars   []*cgtvalue.UpStar
	Switches  []*cgtvalue.Switch
	Other     []game.Game
}

// Build partitions games into a MapView.
func Build(games []game.Game) MapView {
	var mv MapView
	for _, g := range games {
		switch v := g.(type) {
		case *cgtvalue.Integer:
			mv.Integers = append(mv.Integers, v)
		case *cgtvalue.DyadicRational:
			mv.Dyadics = append(mv.Dyadics, v)
		case *cgtvalue.Nimber:
			mv.Nimbers = append(mv.Nimbers, v)
		case *cgtvalue.UpStar:
			mv.UpStars = append(mv.UpStars, v)
		case *cgtvalue.Switch:
			mv.Switches = append(mv.Switches, v)
		default:
			mv.Other = append(mv.Other, g)
		}
	}
	return mv
}

// Result describes what a single pass did: which input games it consumed
// (to be removed from the sum) and which replacement games it produced (to
// be added in their place). A pass that found nothing useful to do
// returns a zero Result.
type Result struct {
	Removed []game.Game
	Added   []game.Game
}

func (r Result) changed() bool { return len(r.Removed) > 0 }

// RunAll runs all four passes, in order, against the given active games
// and returns the combined removal/addition set. Passes never see each
// other's output within one RunAll call; callers that want iterated
// simplification (simplify until fixed point) should call RunAll
// repeatedly against the updated game list, which is how the sumgame
// engine's simplify_basic/undo_simplify_basic stack frame is meant to be
// used.
func RunAll(games []game.Game) Result {
	mv := Build(games)
	var total Result
	for _, pass := range []func(MapView) Result{
		simplifyNimbers,
		simplifySwitches,
		simplifyUpStars,
		simplifyIntegersRationals,
	} {
		r := pass(mv)
		total.Removed = append(total.Removed, r.Removed...)
		total.Added = append(total.Added, r.Added...)
	}
	return total
}

// simplifyNimbers XORs every active nimber together into a single nimber,
// then rewrites that single remaining value into its canonical form: *0
// vanishes outright (removed, nothing added back), and *1 is rewritten as
// up_star(0, true), its up-star canonical form. A lone nimber that is
// neither is left untouched, since replacing one game with an equal
// single game of the same type is not useful.
func simplifyNimbers(mv MapView) Result {
	switch len(mv.Nimbers) {
	case 0:
		return Result{}
	case 1:
		n := mv.Nimbers[0]
		switch n.Value() {
		case 0:
			return Result{Removed: []game.Game{n}}
		case 1:
			return Result{Removed: []game.Game{n}, Added: []game.Game{cgtvalue.NewUpStar(0, true)}}
		default:
			return Result{}
		}
	default:
		xor := 0
		removed := make([]game.Game, 0, len(mv.Nimbers))
		for _, n := range mv.Nimbers {
			xor = cgtvalue.XorNimValue(xor, n.Value())
			removed = append(removed, n)
		}
		if xor == 0 {
			return Result{Removed: removed}
		}
		if xor == 1 {
			return Result{Removed: removed, Added: []game.Game{cgtvalue.NewUpStar(0, true)}}
		}
		return Result{Removed: removed, Added: []game.Game{cgtvalue.NewNimber(xor)}}
	}
}

// simplifySwitches converts every switch that has degenerated into a
// plain number (Kind is not Proper/ProperNormalized -- see
// cgtvalue.Switch.Kind) into a DyadicRational. Genuine switches are left
// untouched: summing two unsettled switches is not in general another
// switch, so there is nothing safe to consolidate there.
func simplifySwitches(mv MapView) Result {
	var result Result
	for _, sw := range mv.Switches {
		switch sw.Kind() {
		case cgtvalue.SwitchConvertibleNumber, cgtvalue.SwitchRational:
			result.Removed = append(result.Removed, sw)
			result.Added = append(result.Added, cgtvalue.NewDyadicRational(sw.Left()))
		}
	}
	return result
}

// simplifyUpStars consolidates every active up-star value into a single
// one by summing the up-multiples and XORing the star parity. This is
// exact: (n1.up+s1) + (n2.up+s2) = (n1+n2).up + (s1 xor s2).
func simplifyUpStars(mv MapView) Result {
	if len(mv.UpStars) < 2 {
		return Result{}
	}
	n := 0
	star := false
	removed := make([]game.Game, 0, len(mv.UpStars))
	for _, u := range mv.UpStars {
		un, us := u.Value()
		n += un
		star = star != us
		removed = append(removed, u)
	}
	return Result{Removed: removed, Added: []game.Game{cgtvalue.NewUpStar(n, star)}}
}

// simplifyIntegersRationals consolidates every active integer and dyadic
// rational into a single game equal to their sum: an Integer when the sum
// is integral, a DyadicRational otherwise. As with the
// other passes, a lone value is left alone: replacing one game with an
// equal single game is not useful. If the running sum would overflow
// int64 partway through, the whole merge is abandoned and every game
// seen so far is left exactly as it was: out-of-range arithmetic skips
// the affected simplification rather than corrupting it.
func simplifyIntegersRationals(mv MapView) Result {
	total := len(mv.Integers) + len(mv.Dyadics)
	if total < 2 {
		return Result{}
	}
	sum := fraction.FromInt(0)
	removed := make([]game.Game, 0, total)
	for _, g := range mv.Integers {
		next, ok := sum.TryAdd(fraction.FromInt(int64(g.Value())))
		if !ok {
			return Result{}
		}
		sum = next
		removed = append(removed, g)
	}
	for _, g := range mv.Dyadics {
		next, ok := sum.TryAdd(g.Value())
		if !ok {
			return Result{}
		}
		sum = next
		removed = append(removed, g)
	}
	var added game.Game
	if sum.IsInteger() {
		added = cgtvalue.NewInteger(int(sum.Numerator()))
	} else {
		added = cgtvalue.NewDyadicRational(sum)
	}
	return Result{Removed: removed, Added: []game.Game{added}}
}

// Changed reports whether any pass inside a Result did something; used by
// callers deciding whether a simplify_basic call is worth recording on the
// undo stack at all.
func Changed(results ...Result) bool {
	return lo.SomeBy(results, func(r Result) bool { return r.changed() })
}
