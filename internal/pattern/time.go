package pattern

import (
	"github.com/schollz/cyclepattern/internal/arc"
	"github.com/schollz/cyclepattern/internal/rational"
)

// perCycle wraps a query function so it only ever sees arcs confined to a
// single cycle, splitting a multi-cycle query arc and concatenating the
// per-cycle results. Several combinators (Rev, Zoom, FastGap, ...) need a
// stable "sam" for the arc they're given, which only holds within one
// cycle.
func perCycle[T any](f func(QueryState) []Event[T]) func(QueryState) []Event[T] {
	return func(st QueryState) []Event[T] {
		var out []Event[T]
		for _, c := range st.Arc.Cycles() {
			out = append(out, f(QueryState{Arc: c, Seed: st.Seed})...)
		}
		return out
	}
}

func mapEventTime[T any](e Event[T], f func(rational.Rational) rational.Rational) Event[T] {
	part := e.Part.WithTime(f)
	var whole *arc.Arc
	if e.Whole != nil {
		w := e.Whole.WithTime(f)
		whole = &w
	}
	return Event[T]{Whole: whole, Part: part, Value: e.Value}
}

func mapEvents[T any](evs []Event[T], f func(rational.Rational) rational.Rational) []Event[T] {
	out := make([]Event[T], len(evs))
	for i, e := range evs {
		out[i] = mapEventTime(e, f)
	}
	return out
}

// reflectArc reverses an arc's direction under a time-reflecting function:
// reflecting [b,e) produces [reflect(e), reflect(b)) since reflection
// flips ordering.
func reflectArc(a arc.Arc, reflect func(rational.Rational) rational.Rational) arc.Arc {
	return arc.New(reflect(a.End), reflect(a.Begin))
}

func reflectEvent[T any](e Event[T], reflect func(rational.Rational) rational.Rational) Event[T] {
	part := reflectArc(e.Part, reflect)
	var whole *arc.Arc
	if e.Whole != nil {
		w := reflectArc(*e.Whole, reflect)
		whole = &w
	}
	return Event[T]{Whole: whole, Part: part, Value: e.Value}
}

// Fast scales time by k: the query arc is scaled by k about the origin,
// and result times divided by k. k == 0 silences the pattern (spec §4.3).
func Fast[T any](k rational.Rational, p Pattern[T]) Pattern[T] {
	if k.Eq(rational.Zero) {
		return Silence[T]()
	}
	out := New(func(st QueryState) []Event[T] {
		queryArc := st.Arc.WithTime(func(t rational.Rational) rational.Rational { return t.Mul(k) })
		evs := p.Query(QueryState{Arc: queryArc, Seed: st.Seed})
		return mapEvents(evs, func(t rational.Rational) rational.Rational { return t.Div(k) })
	})
	out.Weight, out.NumSteps = p.Weight, p.NumSteps
	return out
}

// Slow is fast(1/k); k == 0 silences the pattern since 1/0 collapses to
// Rational zero, which Fast already treats as silence.
func Slow[T any](k rational.Rational, p Pattern[T]) Pattern[T] {
	return Fast(rational.One.Div(k), p)
}

// Early shifts the pattern to start d cycles sooner: query arc shifted
// forward by d, result times shifted back by d.
func Early[T any](d rational.Rational, p Pattern[T]) Pattern[T] {
	out := New(func(st QueryState) []Event[T] {
		queryArc := st.Arc.WithTime(func(t rational.Rational) rational.Rational { return t.Add(d) })
		evs := p.Query(QueryState{Arc: queryArc, Seed: st.Seed})
		return mapEvents(evs, func(t rational.Rational) rational.Rational { return t.Sub(d) })
	})
	out.Weight, out.NumSteps = p.Weight, p.NumSteps
	return out
}

// Late is early(-d): the inverse shift.
func Late[T any](d rational.Rational, p Pattern[T]) Pattern[T] {
	return Early(d.Neg(), p)
}

// Rev reflects the pattern about the center of each cycle it touches.
func Rev[T any](p Pattern[T]) Pattern[T] {
	q := perCycle(func(st QueryState) []Event[T] {
		cycBegin := st.Arc.Begin.Sam()
		cycEnd := cycBegin.Add(rational.One)
		reflect := func(t rational.Rational) rational.Rational { return cycBegin.Add(cycEnd).Sub(t) }

		queryArc := reflectArc(st.Arc, reflect)
		evs := p.Query(QueryState{Arc: queryArc, Seed: st.Seed})

		// Reflection flips time order, so fill the result back to front to
		// keep it in the source's order.
		out := make([]Event[T], len(evs))
		for i, e := range evs {
			out[len(evs)-1-i] = reflectEvent(e, reflect)
		}
		return out
	})
	out := New(q)
	out.Weight, out.NumSteps = p.Weight, p.NumSteps
	return out
}

// Revv reflects the pattern globally about time 0, rather than per-cycle.
func Revv[T any](p Pattern[T]) Pattern[T] {
	reflect := func(t rational.Rational) rational.Rational { return t.Neg() }
	out := New(func(st QueryState) []Event[T] {
		queryArc := reflectArc(st.Arc, reflect)
		evs := p.Query(QueryState{Arc: queryArc, Seed: st.Seed})
		out := make([]Event[T], len(evs))
		for i, e := range evs {
			out[i] = reflectEvent(e, reflect)
		}
		return out
	})
	out.Weight, out.NumSteps = p.Weight, p.NumSteps
	return out
}

// Zoom maps the sub-interval [s,e) of each cycle to fill the whole cycle,
// looping; silence if s >= e.
func Zoom[T any](s, e rational.Rational, p Pattern[T]) Pattern[T] {
	if s.Gte(e) {
		return Silence[T]()
	}
	d := e.Sub(s)
	q := perCycle(func(st QueryState) []Event[T] {
		samQ := st.Arc.Begin.Sam()
		mapQuery := func(t rational.Rational) rational.Rational {
			return samQ.Add(d.Mul(t.Sub(samQ)).Add(s))
		}
		queryArc := st.Arc.WithTime(mapQuery)
		evs := p.Query(QueryState{Arc: queryArc, Seed: st.Seed})
		mapResult := func(t rational.Rational) rational.Rational {
			return samQ.Add(t.Sub(samQ).Sub(s).Div(d))
		}
		return mapEvents(evs, mapResult)
	})
	out := New(q)
	out.Weight, out.NumSteps = p.Weight, p.NumSteps
	return out
}

// FastGap compresses the pattern's contents into the first 1/k of every
// cycle, leaving the rest silent (spec §4.3). k <= 0 silences entirely.
func FastGap[T any](k rational.Rational, p Pattern[T]) Pattern[T] {
	if k.Lte(rational.Zero) {
		return Silence[T]()
	}
	rp := k
	if rp.Lt(rational.One) {
		rp = rational.One
	}
	q := perCycle(func(st QueryState) []Event[T] {
		mungeQuery := func(t rational.Rational) rational.Rational {
			return t.Sam().Add(rational.Min(rational.One, rp.Mul(t.CyclePos())))
		}
		mappedBegin := mungeQuery(st.Arc.Begin)
		mappedEnd := mungeQuery(st.Arc.End)
		if mappedBegin.Eq(st.Arc.Begin.NextSam()) {
			return nil
		}
		evs := p.Query(QueryState{Arc: arc.New(mappedBegin, mappedEnd), Seed: st.Seed})

		samOrig := st.Arc.Begin.Sam()
		backMap := func(t rational.Rational) rational.Rational {
			return samOrig.Add(t.Sub(samOrig).Div(rp))
		}
		return mapEvents(evs, backMap)
	})
	out := New(q)
	out.Weight, out.NumSteps = p.Weight, p.NumSteps
	return out
}

// Compress places the pattern's contents into the sub-interval [s,e) of
// each cycle, silent outside it — the inverse of Zoom.
func Compress[T any](s, e rational.Rational, p Pattern[T]) Pattern[T] {
	if s.Gt(e) || s.Gt(rational.One) || e.Gt(rational.One) || s.Lt(rational.Zero) || e.Lt(rational.Zero) || s.Eq(e) {
		return Silence[T]()
	}
	return Late(s, FastGap(rational.One.Div(e.Sub(s)), p))
}

// Linger takes the first |f| fraction of the cycle (or, for negative f,
// its tail) and repeats it to fill the cycle.
func Linger[T any](f rational.Rational, p Pattern[T]) Pattern[T] {
	if f.Eq(rational.Zero) {
		return Silence[T]()
	}
	var zoomed Pattern[T]
	size := f
	if f.Lt(rational.Zero) {
		zoomed = Zoom(rational.One.Add(f), rational.One, p)
		size = f.Neg()
	} else {
		zoomed = Zoom(rational.Zero, f, p)
	}
	return Fast(rational.One.Div(size), zoomed)
}

// RepeatCycles repeats each underlying cycle n times: output cycle c
// plays source cycle floor(c/n).
func RepeatCycles[T any](n int, p Pattern[T]) Pattern[T] {
	if n <= 0 {
		return p
	}
	q := perCycle(func(st QueryState) []Event[T] {
		c := st.Arc.Begin.Sam().Floor()
		qCyc := floorDivInt(c, int64(n))
		shift := rational.FromInt(c - qCyc)
		evs := p.Query(QueryState{Arc: st.Arc.WithTime(func(t rational.Rational) rational.Rational { return t.Sub(shift) }), Seed: st.Seed})
		return mapEvents(evs, func(t rational.Rational) rational.Rational { return t.Add(shift) })
	})
	out := New(q)
	out.Weight, out.NumSteps = p.Weight, p.NumSteps
	return out
}

func floorDivInt(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Ply splits each discrete event into n equal-duration copies spanning
// the same whole; continuous (whole == nil) events pass through
// unchanged. PlyWith additionally lets the caller transform each copy's
// value given its index within the split (the plyforeach/plywith variants
// spec §4.3 names).
func Ply[T any](n int, p Pattern[T]) Pattern[T] {
	return PlyWith(n, func(_ int, v T) T { return v }, p)
}

func PlyWith[T any](n int, f func(index int, v T) T, p Pattern[T]) Pattern[T] {
	if n <= 0 {
		return Silence[T]()
	}
	out := New(func(st QueryState) []Event[T] {
		evs := p.Query(st)
		var result []Event[T]
		for _, e := range evs {
			if e.Whole == nil {
				result = append(result, e)
				continue
			}
			dur := e.Whole.Duration().Div(rational.FromInt(int64(n)))
			for i := 0; i < n; i++ {
				subBegin := e.Whole.Begin.Add(dur.Mul(rational.FromInt(int64(i))))
				subWhole := arc.New(subBegin, subBegin.Add(dur))
				part, ok := subWhole.Intersect(st.Arc)
				if !ok || part.IsEmpty() {
					continue
				}
				w := subWhole
				result = append(result, Event[T]{Whole: &w, Part: part, Value: f(i, e.Value)})
			}
		}
		return result
	})
	out.Weight = p.Weight
	out.NumSteps = p.NumSteps.Mul(rational.FromInt(int64(n)))
	return out
}

// Segment samples the source at n equally spaced points per cycle,
// forcing a continuous pattern to discrete events of duration 1/n.
func Segment[T any](n int, p Pattern[T]) Pattern[T] {
	if n <= 0 {
		return Silence[T]()
	}
	pulses := make([]Pattern[bool], n)
	for i := range pulses {
		pulses[i] = Pure(true)
	}
	mask := Fastcat(pulses)
	return Struct(mask, p)
}

// Take keeps the first f weighted steps (per p.NumSteps) of one cycle,
// scaled to fill the cycle; a fractional f clips the last step.
func Take[T any](f rational.Rational, p Pattern[T]) Pattern[T] {
	if p.NumSteps.Eq(rational.Zero) {
		return Silence[T]()
	}
	out := Zoom(rational.Zero, f.Div(p.NumSteps), p)
	out.NumSteps = f
	return out
}

// oddSliceMask builds an n-step boolean pattern alternating
// false,true,false,true,... used by SwingBy to pick out the off-beat
// subdivisions of a cycle.
func oddSliceMask(n int) Pattern[bool] {
	steps := make([]Pattern[bool], n)
	for i := range steps {
		steps[i] = Pure(i%2 == 1)
	}
	return Fastcat(steps)
}

// SwingBy delays the odd-numbered of n equal subdivisions of the cycle by
// amt/(2n); Swing(n) is SwingBy(1/3, n).
func SwingBy[T any](amt rational.Rational, n int, p Pattern[T]) Pattern[T] {
	if n <= 0 {
		return p
	}
	shift := amt.Div(rational.FromInt(int64(2 * n)))
	return When(oddSliceMask(n), func(pp Pattern[T]) Pattern[T] { return Late(shift, pp) }, p)
}

func Swing[T any](n int, p Pattern[T]) Pattern[T] {
	return SwingBy(rational.New(1, 3), n, p)
}
