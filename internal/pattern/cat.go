package pattern

import (
	"github.com/schollz/cyclepattern/internal/rational"
)

// Stack plays every pattern simultaneously, each across the full cycle.
// Stack() with no patterns is silence.
func Stack[T any](ps ...Pattern[T]) Pattern[T] {
	out := New(func(st QueryState) []Event[T] {
		var result []Event[T]
		for _, p := range ps {
			result = append(result, p.Query(st)...)
		}
		return result
	})
	if len(ps) > 0 {
		out.Weight, out.NumSteps = ps[0].Weight, ps[0].NumSteps
	}
	return out
}

// weightOf returns p.Weight, defaulting to One for a zero-value Weight
// (only relevant for patterns built without New, which shouldn't occur,
// but keeps Arrange/Seq robust).
func weightOf[T any](p Pattern[T]) rational.Rational {
	if p.Weight.Den == 0 {
		return rational.One
	}
	return p.Weight
}

// compressWeighted lays patterns end to end within a single cycle, each
// given space proportional to its weight; the whole thing repeats every
// cycle. This is the internal engine behind Fastcat and Seq, which both
// squeeze their children into one cycle rather than stretching them
// across several (that's what Arrange is for).
func compressWeighted[T any](ps ...Pattern[T]) Pattern[T] {
	if len(ps) == 0 {
		return Silence[T]()
	}
	total := rational.Zero
	for _, p := range ps {
		total = total.Add(weightOf(p))
	}
	if total.Eq(rational.Zero) {
		return Silence[T]()
	}
	var parts []Pattern[T]
	pos := rational.Zero
	for _, p := range ps {
		w := weightOf(p)
		begin := pos.Div(total)
		pos = pos.Add(w)
		end := pos.Div(total)
		parts = append(parts, Compress(begin, end, p))
	}
	out := Stack(parts...)
	out.NumSteps = total
	return out
}

// Arrange lays patterns end to end across whole cycles instead of
// squeezing them into one: each element claims as many consecutive
// cycles as its weight says (set via WithMetadata before passing it in;
// a plain pattern defaults to weight 1), and the whole arrangement loops
// every Σw_i cycles (spec §4.2). Distinct from Fastcat/seq, which
// compress every element into a single cycle.
func Arrange[T any](ps ...Pattern[T]) Pattern[T] {
	if len(ps) == 0 {
		return Silence[T]()
	}
	var expanded []Pattern[T]
	for _, p := range ps {
		count := weightOf(p).Floor()
		if count < 1 {
			count = 1
		}
		for i := int64(0); i < count; i++ {
			expanded = append(expanded, p)
		}
	}
	return Cat(expanded...)
}

// Fastcat lays n patterns end to end within a cycle, each taking an equal
// 1/n share, and speeds up so the whole arrangement fits one cycle
// (spec §4.2). Equivalent to compressWeighted with uniform weight 1 per
// element.
func Fastcat[T any](ps []Pattern[T]) Pattern[T] {
	if len(ps) == 0 {
		return Silence[T]()
	}
	uniform := make([]Pattern[T], len(ps))
	for i, p := range ps {
		uniform[i] = p.WithMetadata(rational.One, p.NumSteps)
	}
	out := compressWeighted(uniform...)
	out.NumSteps = rational.FromInt(int64(len(ps)))
	return out
}

// WeightedItem pairs a pattern with its proportional share of a cycle,
// for use with Seq.
type WeightedItem[T any] struct {
	Pattern Pattern[T]
	Weight  rational.Rational
}

// Seq lays items end to end within a cycle proportional to their
// explicit weights (spec §4.2); a plain Fastcat is Seq with every weight
// equal to 1.
func Seq[T any](items []WeightedItem[T]) Pattern[T] {
	if len(items) == 0 {
		return Silence[T]()
	}
	ps := make([]Pattern[T], len(items))
	for i, it := range items {
		ps[i] = it.Pattern.WithMetadata(it.Weight, it.Pattern.NumSteps)
	}
	out := compressWeighted(ps...)
	total := rational.Zero
	for _, it := range items {
		total = total.Add(it.Weight)
	}
	out.NumSteps = total
	return out
}

// Gap produces n silent steps of equal width, for use as a Seq/Arrange
// placeholder.
func Gap[T any](n int) Pattern[T] {
	return Silence[T]().WithMetadata(rational.FromInt(int64(n)), rational.FromInt(int64(n)))
}

// Cat (aka Slowcat) plays one whole pattern per cycle, cycling through
// the list: cycle c plays ps[c mod len(ps)]'s own cycle floor(c/len(ps)),
// so each sub-pattern's internal cycle count advances only once every
// len(ps) cycles.
func Cat[T any](ps ...Pattern[T]) Pattern[T] {
	if len(ps) == 0 {
		return Silence[T]()
	}
	n := int64(len(ps))
	q := perCycle(func(st QueryState) []Event[T] {
		c := st.Arc.Begin.Sam().Floor()
		innerCycle := floorDivInt(c, n)
		idx := c - innerCycle*n
		p := ps[idx]
		// Shift so the chosen pattern sees its own consecutive cycle
		// index (innerCycle) rather than the absolute output cycle c.
		shift := rational.FromInt(c - innerCycle)
		evs := p.Query(QueryState{Arc: st.Arc.WithTime(func(t rational.Rational) rational.Rational { return t.Sub(shift) }), Seed: st.Seed})
		return mapEvents(evs, func(t rational.Rational) rational.Rational { return t.Add(shift) })
	})
	out := New(q)
	out.NumSteps = rational.FromInt(n)
	return out
}

// Slowcat is an alias for Cat, matching spec.md's naming.
func Slowcat[T any](ps ...Pattern[T]) Pattern[T] {
	return Cat(ps...)
}
