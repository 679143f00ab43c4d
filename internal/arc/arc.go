// Package arc implements the half-open rational time interval that every
// pattern query is defined over.
package arc

import "github.com/schollz/cyclepattern/internal/rational"

// Arc is a half-open interval [Begin, End) on the rational time axis.
// Begin must be <= End; Begin == End denotes an empty arc that yields no
// events.
type Arc struct {
	Begin rational.Rational
	End   rational.Rational
}

// New builds an Arc, clamping nothing — callers are responsible for
// Begin <= End (the engine never constructs an inverted arc internally).
func New(begin, end rational.Rational) Arc {
	return Arc{Begin: begin, End: end}
}

// FromFloats converts float64 boundaries to a rational Arc, used only at
// the public queryArc(begin, end float64) API boundary.
func FromFloats(begin, end float64) Arc {
	return Arc{Begin: rational.FromFloat(begin), End: rational.FromFloat(end)}
}

// Duration returns End - Begin.
func (a Arc) Duration() rational.Rational {
	return a.End.Sub(a.Begin)
}

// IsEmpty reports whether the arc spans zero time.
func (a Arc) IsEmpty() bool {
	return a.Begin.Eq(a.End)
}

// Intersect returns the overlap of two arcs, and whether they overlap at
// all (a zero-width touch at a shared endpoint does not count as overlap
// unless at least one of the arcs is itself zero-width at that point).
func (a Arc) Intersect(b Arc) (Arc, bool) {
	begin := rational.Max(a.Begin, b.Begin)
	end := rational.Min(a.End, b.End)
	if begin.Gt(end) {
		return Arc{}, false
	}
	if begin.Eq(end) {
		// Touching endpoints only count when one side is itself a point.
		if !a.IsEmpty() && !b.IsEmpty() {
			return Arc{}, false
		}
	}
	return Arc{Begin: begin, End: end}, true
}

// WithTime maps both endpoints through f, used by time transforms that
// scale/shift the whole arc.
func (a Arc) WithTime(f func(rational.Rational) rational.Rational) Arc {
	return Arc{Begin: f(a.Begin), End: f(a.End)}
}

// CycleArc returns the arc of the single cycle containing Begin:
// [Begin.Sam(), Begin.Sam()+1).
func (a Arc) CycleArc() Arc {
	sam := a.Begin.Sam()
	return Arc{Begin: sam, End: sam.Add(rational.One)}
}

// Cycles splits the arc into a sequence of per-cycle sub-arcs, so that
// combinators which must act cycle-by-cycle (pure, slowcat, euclid, ...)
// never see a query spanning more than one cycle at a time.
func (a Arc) Cycles() []Arc {
	if a.IsEmpty() {
		return []Arc{a}
	}
	var out []Arc
	begin := a.Begin
	for begin.Lt(a.End) {
		end := rational.Min(begin.NextSam(), a.End)
		out = append(out, Arc{Begin: begin, End: end})
		begin = end
	}
	return out
}
