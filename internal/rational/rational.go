// Package rational provides exact rational-number arithmetic for the
// pattern engine's time axis. Every event boundary and every time-axis
// computation in the engine must go through this package; floating point
// is accepted only at the public API boundary and converted immediately.
package rational

import "fmt"

// Rational is an exact fraction, always kept in canonical form: the
// denominator is positive and numerator/denominator share no common
// factor greater than 1.
type Rational struct {
	Num int64
	Den int64
}

// Zero, One and Half are convenience constants used throughout the engine.
var (
	Zero = Rational{0, 1}
	One  = Rational{1, 1}
	Half = Rational{1, 2}
)

// New builds a canonicalised Rational from a numerator and denominator.
// A zero denominator collapses to Zero rather than panicking, since the
// engine must never fail on malformed internal arithmetic (spec §7).
func New(num, den int64) Rational {
	if den == 0 {
		return Zero
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs64(num), den)
	if g == 0 {
		g = 1
	}
	return Rational{Num: num / g, Den: den / g}
}

// FromInt wraps an integer as a Rational.
func FromInt(n int64) Rational {
	return Rational{Num: n, Den: 1}
}

// FromFloat converts a float64 to a Rational by fixed-point approximation.
// Used only at the public API boundary (queryArc accepts float64 begin/end).
func FromFloat(f float64) Rational {
	const den = int64(1_000_000_000)
	return New(int64(f*float64(den)+sign(f)*0.5), den)
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

// Float64 converts to a float64, lossily.
func (r Rational) Float64() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

func (r Rational) Add(o Rational) Rational {
	return New(r.Num*o.Den+o.Num*r.Den, r.Den*o.Den)
}

func (r Rational) Sub(o Rational) Rational {
	return New(r.Num*o.Den-o.Num*r.Den, r.Den*o.Den)
}

func (r Rational) Mul(o Rational) Rational {
	return New(r.Num*o.Num, r.Den*o.Den)
}

func (r Rational) Div(o Rational) Rational {
	if o.Num == 0 {
		return Zero
	}
	return New(r.Num*o.Den, r.Den*o.Num)
}

func (r Rational) Neg() Rational {
	return Rational{Num: -r.Num, Den: r.Den}
}

// Mod returns the rational modulo o, result has the same sign as o
// (matching floored division, consistent with Floor below).
func (r Rational) Mod(o Rational) Rational {
	if o.Num == 0 {
		return Zero
	}
	q := r.Div(o).Floor()
	return r.Sub(FromInt(q).Mul(o))
}

// Floor returns the greatest integer <= r.
func (r Rational) Floor() int64 {
	if r.Num >= 0 {
		return r.Num / r.Den
	}
	if r.Num%r.Den == 0 {
		return r.Num / r.Den
	}
	return r.Num/r.Den - 1
}

// Ceil returns the least integer >= r.
func (r Rational) Ceil() int64 {
	if r.Num <= 0 {
		return r.Num / r.Den
	}
	if r.Num%r.Den == 0 {
		return r.Num / r.Den
	}
	return r.Num/r.Den + 1
}

// Sam returns the start of the cycle containing r (the "cycle floor").
func (r Rational) Sam() Rational {
	return FromInt(r.Floor())
}

// NextSam returns the start of the next cycle after r's cycle.
func (r Rational) NextSam() Rational {
	return FromInt(r.Floor() + 1)
}

// CyclePos returns r's position within its cycle, in [0,1).
func (r Rational) CyclePos() Rational {
	return r.Sub(r.Sam())
}

func (r Rational) Cmp(o Rational) int {
	lhs := r.Num * o.Den
	rhs := o.Num * r.Den
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

func (r Rational) Lt(o Rational) bool  { return r.Cmp(o) < 0 }
func (r Rational) Lte(o Rational) bool { return r.Cmp(o) <= 0 }
func (r Rational) Gt(o Rational) bool  { return r.Cmp(o) > 0 }
func (r Rational) Gte(o Rational) bool { return r.Cmp(o) >= 0 }
func (r Rational) Eq(o Rational) bool  { return r.Cmp(o) == 0 }

// Min and Max return the smaller/larger of two rationals.
func Min(a, b Rational) Rational {
	if a.Lte(b) {
		return a
	}
	return b
}

func Max(a, b Rational) Rational {
	if a.Gte(b) {
		return a
	}
	return b
}

func (r Rational) String() string {
	if r.Den == 1 {
		return fmt.Sprintf("%d", r.Num)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
