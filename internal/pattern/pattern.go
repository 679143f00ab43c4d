// Package pattern implements the pure pattern-query algebra: the
// Pattern[T] abstraction, the query contract, and the constructors and
// combinators spec.md §4 describes. A Pattern is, at its core, a function
// from an arc to a finite list of events; every combinator here is built
// by composing those functions, never by mutating shared state (spec §5).
package pattern

import (
	"github.com/schollz/cyclepattern/internal/arc"
	"github.com/schollz/cyclepattern/internal/rational"
)

// QueryState carries the arc being queried plus the RNG seed currently in
// scope. Seed is threaded down the query recursion rather than carried as
// a mutable cursor, so stochastic combinators stay pure functions of
// position (spec §4.8/§9).
type QueryState struct {
	Arc  arc.Arc
	Seed uint64
}

// Event is a timed carrier of a value: Whole is the event's full extent
// (nil for a continuous-sampled event), Part is the slice visible inside
// the queried arc.
type Event[T any] struct {
	Whole *arc.Arc
	Part  arc.Arc
	Value T
}

// HasOnset reports whether this event is a note-on (as opposed to the
// clipped continuation of an event that began before the query arc).
func (e Event[T]) HasOnset() bool {
	return e.Whole != nil && e.Whole.Begin.Eq(e.Part.Begin)
}

// WithWhole returns a copy of e with a new Whole.
func (e Event[T]) WithWhole(w *arc.Arc) Event[T] {
	e.Whole = w
	return e
}

// WithPart returns a copy of e with a new Part.
func (e Event[T]) WithPart(p arc.Arc) Event[T] {
	e.Part = p
	return e
}

// withValue returns a copy of e carrying a different value, used by Fmap.
func withValue[T, U any](e Event[T], v U) Event[U] {
	return Event[U]{Whole: e.Whole, Part: e.Part, Value: v}
}

// Pattern is a pure function from an arc to a finite list of events,
// plus the non-temporal metadata (Weight, NumSteps) spec §3 describes.
type Pattern[T any] struct {
	query    func(QueryState) []Event[T]
	Weight   rational.Rational
	NumSteps rational.Rational
}

// New wraps a raw query function as a Pattern with default metadata
// (Weight 1, NumSteps 1).
func New[T any](q func(QueryState) []Event[T]) Pattern[T] {
	return Pattern[T]{query: q, Weight: rational.One, NumSteps: rational.One}
}

// Query runs the pattern's query function over a QueryState.
func (p Pattern[T]) Query(st QueryState) []Event[T] {
	if p.query == nil {
		return nil
	}
	return p.query(st)
}

// QueryArc is the public entry point (spec §6): begin/end are accepted as
// float64 and converted to exact rationals immediately, using the default
// seed (0) and no RNG scoping.
func (p Pattern[T]) QueryArc(begin, end float64) []Event[T] {
	return p.Query(QueryState{Arc: arc.FromFloats(begin, end), Seed: 0})
}

// WithMetadata returns a copy of p carrying new Weight/NumSteps.
func (p Pattern[T]) WithMetadata(w, n rational.Rational) Pattern[T] {
	p.Weight = w
	p.NumSteps = n
	return p
}

// Seed returns a copy of p whose subtree queries with the RNG seed fixed
// to s; seeds propagate outward through the rest of the tree but an inner
// .Seed shadows any seed set further out (spec §4.8).
func (p Pattern[T]) Seed(s uint64) Pattern[T] {
	inner := p
	out := New(func(st QueryState) []Event[T] {
		st.Seed = s
		return inner.Query(st)
	})
	out.Weight, out.NumSteps = p.Weight, p.NumSteps
	return out
}

// Fmap transforms every event's value with f, preserving timing and
// metadata — the "data_transform" capability of spec §4.1.
func Fmap[T, U any](p Pattern[T], f func(T) U) Pattern[U] {
	out := New(func(st QueryState) []Event[U] {
		evs := p.Query(st)
		result := make([]Event[U], len(evs))
		for i, e := range evs {
			result[i] = withValue(e, f(e.Value))
		}
		return result
	})
	out.Weight, out.NumSteps = p.Weight, p.NumSteps
	return out
}

// Silence is the identity of Stack and the unit of Cat: it yields no
// events for any arc.
func Silence[T any]() Pattern[T] {
	return New(func(QueryState) []Event[T] { return nil })
}

// Pure emits one whole-cycle event per integer cycle overlapping the
// query arc (spec §4.2).
func Pure[T any](v T) Pattern[T] {
	return New(func(st QueryState) []Event[T] {
		if st.Arc.IsEmpty() {
			return nil
		}
		var out []Event[T]
		for _, cyc := range st.Arc.Cycles() {
			whole := cyc.CycleArc()
			part, ok := whole.Intersect(st.Arc)
			if !ok || part.IsEmpty() {
				continue
			}
			w := whole
			out = append(out, Event[T]{Whole: &w, Part: part, Value: v})
		}
		return out
	})
}

// Steady is a continuous signal: every query returns exactly one event
// spanning the whole arc with Whole == nil (spec §4.2).
func Steady[T any](v T) Pattern[T] {
	return New(func(st QueryState) []Event[T] {
		if st.Arc.IsEmpty() {
			return nil
		}
		return []Event[T]{{Whole: nil, Part: st.Arc, Value: v}}
	})
}
