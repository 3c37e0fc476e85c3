// Package fraction implements dyadic rational arithmetic: fractions whose
// denominator is always a power of two, the only fractions that arise as
// values of combinatorial games. All operations keep the fraction in
// lowest terms.
package fraction

import "fmt"

// Fraction is p/q with q a power of two (q == 1<<exp for some exp >= 0).
// It is always kept reduced: p is odd unless q == 1.
type Fraction struct {
	p int64
	q int64 // always a power of two, >= 1
}

// New constructs a Fraction from a numerator and a power-of-two
// denominator, reducing it to lowest terms. It panics if q is not a
// power of two.
func New(p, q int64) Fraction {
	if q <= 0 || q&(q-1) != 0 {
		panic("fraction: denominator must be a positive power of two")
	}
	return reduce(p, q)
}

// FromInt builds an integral fraction.
func FromInt(n int64) Fraction {
	return Fraction{p: n, q: 1}
}

func reduce(p, q int64) Fraction {
	for q > 1 && p%2 == 0 {
		p /= 2
		q /= 2
	}
	return Fraction{p: p, q: q}
}

// Numerator and Denominator expose the reduced representation.
func (f Fraction) Numerator() int64   { return f.p }
func (f Fraction) Denominator() int64 { return f.q }

// IsInteger reports whether this fraction has denominator 1.
func (f Fraction) IsInteger() bool { return f.q == 1 }

// Add returns f + g. Overflows silently (see TryAdd for a checked
// variant); safe for callers that already know the operands are small.
func (f Fraction) Add(g Fraction) Fraction {
	q := f.q
	if g.q > q {
		q = g.q
	}
	p := f.p*(q/f.q) + g.p*(q/g.q)
	return reduce(p, q)
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	return Fraction{p: -f.p, q: f.q}
}

// Sub returns f - g. See Add for overflow behavior.
func (f Fraction) Sub(g Fraction) Fraction {
	return f.Add(g.Neg())
}

// mulOverflowsInt64 reports whether a*b would overflow int64.
func mulOverflowsInt64(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	r := a * b
	return r/b != a
}

// addOverflowsInt64 reports whether a+b would overflow int64.
func addOverflowsInt64(a, b int64) bool {
	r := a + b
	return (b > 0 && r < a) || (b < 0 && r > a)
}

// TryAdd is Add with an overflow check: it reports false (leaving f and
// g untouched, since they are plain values anyway) instead of silently
// wrapping when the common denominator's cross-multiplication or the
// numerator sum would overflow int64. Large sums of many Integer/
// DyadicRational values (cgtvalue/simplify's simplifyIntegersRationals
// pass) are the case this guards: one out-of-range merge should be
// skipped, not corrupt the running total.
func (f Fraction) TryAdd(g Fraction) (Fraction, bool) {
	q := f.q
	if g.q > q {
		q = g.q
	}
	m1, m2 := q/f.q, q/g.q
	if mulOverflowsInt64(f.p, m1) || mulOverflowsInt64(g.p, m2) {
		return Fraction{}, false
	}
	p1, p2 := f.p*m1, g.p*m2
	if addOverflowsInt64(p1, p2) {
		return Fraction{}, false
	}
	return reduce(p1+p2, q), true
}

// TrySub is Sub with the same overflow check as TryAdd.
func (f Fraction) TrySub(g Fraction) (Fraction, bool) {
	return f.TryAdd(g.Neg())
}

// Simplest returns the dyadic rational of least denominator strictly
// between f and g (f < g), following the CGT "simplicity rule" used to
// compute {L|R} when L and R are both numbers. It panics if f >= g.
func Simplest(f, g Fraction) Fraction {
	if !f.Less(g) {
		panic("fraction: Simplest requires f < g")
	}
	// Integers between f and g: the simplest is the integer closest to
	// zero in that open interval, if one exists.
	lo := ceilFrac(f)
	if f.IsInteger() {
		lo = f.p + 1
	}
	hi := floorFrac(g)
	if g.IsInteger() {
		hi = g.p - 1
	}
	if lo <= hi {
		// pick the integer in [lo, hi] closest to 0
		if lo <= 0 && hi >= 0 {
			return FromInt(0)
		}
		if lo > 0 {
			return FromInt(lo)
		}
		return FromInt(hi)
	}
	// No integer in range: binary search by denominator doubling, exactly
	// as in the original dyadic-rational midpoint construction.
	denom := int64(1)
	for {
		denom *= 2
		if denom%f.q != 0 || denom%g.q != 0 {
			continue
		}
		exactF := f.p * (denom / f.q)
		exactG := g.p * (denom / g.q)
		for n := exactF + 1; n < exactG; n++ {
			cand := reduce(n, denom)
			if f.Less(cand) && cand.Less(g) {
				return cand
			}
		}
	}
}

func ceilFrac(f Fraction) int64 {
	if f.p >= 0 {
		return (f.p + f.q - 1) / f.q
	}
	return f.p / f.q
}

func floorFrac(f Fraction) int64 {
	if f.p >= 0 {
		return f.p / f.q
	}
	return -((-f.p + f.q - 1) / f.q)
}

// Less, Equal and Compare give the fractions' natural total order.
func (f Fraction) Compare(g Fraction) int {
	lhs := f.p * g.q
	rhs := g.p * f.q
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

func (f Fraction) Less(g Fraction) bool  { return f.Compare(g) < 0 }
func (f Fraction) Equal(g Fraction) bool { return f.Compare(g) == 0 }

// TryCompare is Compare with an overflow check on its cross
// multiplication, reporting false when the comparison can't be trusted.
func (f Fraction) TryCompare(g Fraction) (int, bool) {
	if mulOverflowsInt64(f.p, g.q) || mulOverflowsInt64(g.p, f.q) {
		return 0, false
	}
	return f.Compare(g), true
}

func (f Fraction) String() string {
	if f.q == 1 {
		return fmt.Sprintf("%d", f.p)
	}
	return fmt.Sprintf("%d/%d", f.p, f.q)
}
