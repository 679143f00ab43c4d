package pattern

import (
	"github.com/schollz/cyclepattern/internal/arc"
	"github.com/schollz/cyclepattern/internal/rational"
)

// Bind maps p's values into patterns with f and flattens the result with
// the given join strategy — the common shape behind every Pattern-of-
// Patterns combinator in this package.
func Bind[T, U any](p Pattern[T], f func(T) Pattern[U], join func(Pattern[Pattern[U]]) Pattern[U]) Pattern[U] {
	return join(Fmap(p, f))
}

func combineWholes(a, b *arc.Arc) *arc.Arc {
	if a == nil || b == nil {
		return nil
	}
	w, ok := a.Intersect(*b)
	if !ok {
		return nil
	}
	return &w
}

// MixJoin flattens a pattern of patterns by querying each outer event's
// inner pattern restricted to the outer event's own part, intersecting
// both whole and part — the general-purpose "mix" flavor (spec §4.9).
func MixJoin[T any](pp Pattern[Pattern[T]]) Pattern[T] {
	out := New(func(st QueryState) []Event[T] {
		var result []Event[T]
		for _, oe := range pp.Query(st) {
			inner := oe.Value
			for _, ie := range inner.Query(QueryState{Arc: oe.Part, Seed: st.Seed}) {
				part, ok := oe.Part.Intersect(ie.Part)
				if !ok || part.IsEmpty() {
					continue
				}
				result = append(result, Event[T]{Whole: combineWholes(oe.Whole, ie.Whole), Part: part, Value: ie.Value})
			}
		}
		return result
	})
	out.Weight, out.NumSteps = pp.Weight, pp.NumSteps
	return out
}

// InnerJoin flattens taking timing/structure entirely from the inner
// (value) pattern; the outer pattern only selects which inner pattern is
// active at a given time.
func InnerJoin[T any](pp Pattern[Pattern[T]]) Pattern[T] {
	out := New(func(st QueryState) []Event[T] {
		var result []Event[T]
		for _, oe := range pp.Query(st) {
			inner := oe.Value
			for _, ie := range inner.Query(QueryState{Arc: st.Arc, Seed: st.Seed}) {
				part, ok := ie.Part.Intersect(oe.Part)
				if !ok || part.IsEmpty() {
					continue
				}
				result = append(result, Event[T]{Whole: ie.Whole, Part: part, Value: ie.Value})
			}
		}
		return result
	})
	return out
}

// OuterJoin flattens taking timing/structure entirely from the outer
// pattern, sampling the inner pattern's value at the outer event's onset.
func OuterJoin[T any](pp Pattern[Pattern[T]]) Pattern[T] {
	out := New(func(st QueryState) []Event[T] {
		var result []Event[T]
		for _, oe := range pp.Query(st) {
			inner := oe.Value
			var val T
			found := false
			for _, ie := range inner.Query(QueryState{Arc: oe.Part, Seed: st.Seed}) {
				if !ie.Part.Begin.Gt(oe.Part.Begin) {
					val = ie.Value
					found = true
					break
				}
			}
			if !found {
				continue
			}
			result = append(result, Event[T]{Whole: oe.Whole, Part: oe.Part, Value: val})
		}
		return result
	})
	out.Weight, out.NumSteps = pp.Weight, pp.NumSteps
	return out
}

// ResetJoin flattens like MixJoin but realigns the inner pattern's own
// cycle phase to 0 at the start of each outer whole, so every outer
// event restarts the inner pattern from its beginning.
func ResetJoin[T any](pp Pattern[Pattern[T]]) Pattern[T] {
	out := New(func(st QueryState) []Event[T] {
		var result []Event[T]
		for _, oe := range pp.Query(st) {
			if oe.Whole == nil {
				continue
			}
			shift := oe.Whole.Begin
			inner := oe.Value
			queryArc := oe.Part.WithTime(func(t rational.Rational) rational.Rational { return t.Sub(shift) })
			evs := inner.Query(QueryState{Arc: queryArc, Seed: st.Seed})
			mapped := mapEvents(evs, func(t rational.Rational) rational.Rational { return t.Add(shift) })
			for _, ie := range mapped {
				part, ok := ie.Part.Intersect(oe.Part)
				if !ok || part.IsEmpty() {
					continue
				}
				result = append(result, Event[T]{Whole: combineWholes(oe.Whole, ie.Whole), Part: part, Value: ie.Value})
			}
		}
		return result
	})
	return out
}

// focusArc maps the inner pattern's own cycle 0 onto the absolute span
// [s,e), tiling continuously outside it (unlike Compress, which leaves
// the rest of the cycle silent).
func focusArc[T any](s, e rational.Rational, p Pattern[T]) Pattern[T] {
	return Late(s, Fast(rational.One.Div(e.Sub(s)), p))
}

// SqueezeJoin flattens by squeezing each outer event's inner pattern's
// cycle 0 into the outer event's own whole span — the combinator behind
// Bite/selectSqueeze style indexing (spec §4.9).
func SqueezeJoin[T any](pp Pattern[Pattern[T]]) Pattern[T] {
	out := New(func(st QueryState) []Event[T] {
		var result []Event[T]
		for _, oe := range pp.Query(st) {
			target := oe.Part
			if oe.Whole != nil {
				target = *oe.Whole
			}
			if target.Duration().Eq(rational.Zero) {
				continue
			}
			focused := focusArc(target.Begin, target.End, oe.Value)
			for _, ie := range focused.Query(QueryState{Arc: oe.Part, Seed: st.Seed}) {
				part, ok := oe.Part.Intersect(ie.Part)
				if !ok || part.IsEmpty() {
					continue
				}
				result = append(result, Event[T]{Whole: combineWholes(oe.Whole, ie.Whole), Part: part, Value: ie.Value})
			}
		}
		return result
	})
	return out
}
