package pattern

import (
	"sort"

	"github.com/schollz/cyclepattern/internal/rational"
)

// Struct applies a boolean mask's pulses as structure: each true pulse
// becomes an event carrying p's value, timed to the pulse's own whole.
// If a pulse spans a whole cycle and p has several events inside it, all
// of them are emitted sharing that pulse's whole — only the first keeps
// hasOnset, the rest read as continuations of the same pulse (spec §4.4).
// False pulses vanish.
func Struct[T any](mask Pattern[bool], p Pattern[T]) Pattern[T] {
	return Bind(mask, func(b bool) Pattern[T] {
		if b {
			return p
		}
		return Silence[T]()
	}, structJoin[T])
}

// structJoin is OuterJoin's sibling for Struct: instead of sampling a
// single value at the pulse's onset, it re-emits every inner event that
// falls within the pulse, all sharing the pulse's own whole.
func structJoin[T any](pp Pattern[Pattern[T]]) Pattern[T] {
	out := New(func(st QueryState) []Event[T] {
		var result []Event[T]
		for _, oe := range pp.Query(st) {
			inner := oe.Value
			for _, ie := range inner.Query(QueryState{Arc: oe.Part, Seed: st.Seed}) {
				part, ok := oe.Part.Intersect(ie.Part)
				if !ok || part.IsEmpty() {
					continue
				}
				result = append(result, Event[T]{Whole: oe.Whole, Part: part, Value: ie.Value})
			}
		}
		return result
	})
	out.Weight, out.NumSteps = pp.Weight, pp.NumSteps
	return out
}

// Mask keeps p's own events and timing wherever the boolean mask is true,
// clipping at the mask's true/false boundaries; unlike Struct, the
// pulse grid never introduces new onsets (spec §4.4).
func Mask[T any](mask Pattern[bool], p Pattern[T]) Pattern[T] {
	return Bind(mask, func(b bool) Pattern[T] {
		if b {
			return p
		}
		return Silence[T]()
	}, InnerJoin[T])
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// bjorklund computes the maximally-even distribution of k onsets across
// n steps (the Euclidean rhythm algorithm).
func bjorklund(k, n int) []bool {
	if n <= 0 {
		return nil
	}
	if k <= 0 {
		return make([]bool, n)
	}
	if k >= n {
		out := make([]bool, n)
		for i := range out {
			out[i] = true
		}
		return out
	}

	a := make([][]bool, k)
	for i := range a {
		a[i] = []bool{true}
	}
	b := make([][]bool, n-k)
	for i := range b {
		b[i] = []bool{false}
	}

	for len(b) > 1 {
		m := len(a)
		if len(b) < m {
			m = len(b)
		}
		newA := make([][]bool, 0, m)
		for i := 0; i < m; i++ {
			combined := append(append([]bool{}, a[i]...), b[i]...)
			newA = append(newA, combined)
		}
		var remainder [][]bool
		if len(a) > m {
			remainder = a[m:]
		} else {
			remainder = b[m:]
		}
		a, b = newA, remainder
	}

	var result []bool
	for _, seq := range a {
		result = append(result, seq...)
	}
	for _, seq := range b {
		result = append(result, seq...)
	}
	return result
}

func euclidPulses(k, n int) []bool {
	invert := k < 0
	if invert {
		k = -k
	}
	pulses := bjorklund(k, n)
	if invert {
		for i, v := range pulses {
			pulses[i] = !v
		}
	}
	return pulses
}

// Euclid structures p with the maximally-even k-in-n Euclidean rhythm
// (spec §4.4); a negative k inverts the pulse (euclidInv).
func Euclid[T any](k, n int, p Pattern[T]) Pattern[T] {
	pulses := euclidPulses(k, n)
	if len(pulses) == 0 {
		return Silence[T]()
	}
	steps := make([]Pattern[bool], len(pulses))
	for i, v := range pulses {
		steps[i] = Pure(v)
	}
	return Struct(Fastcat(steps), p)
}

// EuclidLegato structures p like Euclid, but each onset sustains until
// the next onset rather than occupying a fixed 1/n slot, so there are no
// silent gaps between pulses.
func EuclidLegato[T any](k, n int, p Pattern[T]) Pattern[T] {
	pulses := euclidPulses(k, n)
	var onsets []int
	for i, v := range pulses {
		if v {
			onsets = append(onsets, i)
		}
	}
	if len(onsets) == 0 {
		return Silence[T]()
	}
	items := make([]WeightedItem[T], len(onsets))
	for i, idx := range onsets {
		next := onsets[(i+1)%len(onsets)]
		width := next - idx
		if width <= 0 {
			width += n
		}
		items[i] = WeightedItem[T]{Pattern: p, Weight: rational.FromInt(int64(width))}
	}
	// Seq starts its first item at 0; shift it to the first pulse's step.
	return Late(rational.New(int64(onsets[0]), int64(n)), Seq(items))
}

// WhenCycle applies f to p only on cycles where cond holds, leaving p
// unchanged elsewhere.
func WhenCycle[T any](cond func(cycle int64) bool, f func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	transformed := f(p)
	q := perCycle(func(st QueryState) []Event[T] {
		c := st.Arc.Begin.Sam().Floor()
		if cond(c) {
			return transformed.Query(st)
		}
		return p.Query(st)
	})
	out := New(q)
	out.Weight, out.NumSteps = p.Weight, p.NumSteps
	return out
}

// FirstOf applies f every n cycles, starting on cycle 0; Every is its
// usual alias in spec.md.
func FirstOf[T any](n int, f func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	if n <= 0 {
		return p
	}
	nn := int64(n)
	return WhenCycle(func(c int64) bool { return floorMod(c, nn) == 0 }, f, p)
}

func Every[T any](n int, f func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	return FirstOf(n, f, p)
}

// When applies f to the subtree rooted at p for each of p's own events
// whose onset lands on a truthy sample of cond, leaving other events
// untouched — the per-event conditional spec §4.4 describes (used to
// build Swing).
func When[T any](cond Pattern[bool], f func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	transformed := f(p)
	out := New(func(st QueryState) []Event[T] {
		var result []Event[T]
		for _, e := range p.Query(st) {
			active := false
			for _, ce := range cond.Query(QueryState{Arc: e.Part, Seed: st.Seed}) {
				if !ce.Part.Begin.Gt(e.Part.Begin) {
					active = ce.Value
					break
				}
			}
			if active {
				result = append(result, transformed.Query(QueryState{Arc: e.Part, Seed: st.Seed})...)
			} else {
				result = append(result, e)
			}
		}
		return result
	})
	out.Weight, out.NumSteps = p.Weight, p.NumSteps
	return out
}

// Within applies f to p only for events whose onset falls within cycle
// positions [s,e), leaving the rest of the cycle as plain p; the building
// block behind ChunkInto.
func Within[T any](s, e rational.Rational, f func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	transformed := f(p)
	inRange := func(cp rational.Rational) bool { return cp.Gte(s) && cp.Lt(e) }
	out := New(func(st QueryState) []Event[T] {
		var result []Event[T]
		for _, ev := range transformed.Query(st) {
			if inRange(ev.Part.Begin.CyclePos()) {
				result = append(result, ev)
			}
		}
		for _, ev := range p.Query(st) {
			if !inRange(ev.Part.Begin.CyclePos()) {
				result = append(result, ev)
			}
		}
		sort.SliceStable(result, func(i, j int) bool { return result[i].Part.Begin.Lt(result[j].Part.Begin) })
		return result
	})
	out.Weight, out.NumSteps = p.Weight, p.NumSteps
	return out
}

// ChunkInto divides the cycle into n equal slices and, over n
// consecutive cycles, applies f to a different slice each time,
// cycling through all of them (spec §4.4). Chunk is its usual alias;
// ChunkBack walks the slices in the opposite order.
func ChunkInto[T any](n int, f func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	if n <= 0 {
		return p
	}
	step := rational.New(1, int64(n))
	items := make([]Pattern[T], n)
	for i := 0; i < n; i++ {
		s := step.Mul(rational.FromInt(int64(i)))
		e := step.Mul(rational.FromInt(int64(i + 1)))
		items[i] = Within(s, e, f, p)
	}
	return Cat(items...)
}

func Chunk[T any](n int, f func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	return ChunkInto(n, f, p)
}

func ChunkBack[T any](n int, f func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	if n <= 0 {
		return p
	}
	step := rational.New(1, int64(n))
	items := make([]Pattern[T], n)
	for i := 0; i < n; i++ {
		idx := n - 1 - i
		s := step.Mul(rational.FromInt(int64(idx)))
		e := step.Mul(rational.FromInt(int64(idx + 1)))
		items[i] = Within(s, e, f, p)
	}
	return Cat(items...)
}

// FastChunk is ChunkInto sped up by n: the whole n-cycle walk through
// the slices fits in a single cycle.
func FastChunk[T any](n int, f func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	if n <= 0 {
		return p
	}
	nr := rational.FromInt(int64(n))
	return Fast(nr, ChunkInto(n, f, Slow(nr, p)))
}

// Bite divides p into n equal zoom-slices and uses idx to pick which
// slice plays at each of idx's own events, squeeze-joined so each chosen
// slice fills the idx event's whole span.
func Bite[T any](n int, idx Pattern[int], p Pattern[T]) Pattern[T] {
	if n <= 0 {
		return Silence[T]()
	}
	nn := int64(n)
	return Bind(idx, func(i int) Pattern[T] {
		ii := floorMod(int64(i), nn)
		s := rational.New(ii, nn)
		e := rational.New(ii+1, nn)
		return Zoom(s, e, p)
	}, SqueezeJoin[T])
}

// Palindrome plays the pattern forwards then backwards on alternate
// cycles. On a multi-cycle source this reverses whichever absolute
// cycle comes up on the odd beat (cycle 1 is the reverse of the
// source's own cycle 1), not the reverse of a separately-advancing
// rev(p) slot — so it is built on WhenCycle rather than a literal
// cat(p, rev(p)).
func Palindrome[T any](p Pattern[T]) Pattern[T] {
	return WhenCycle(func(c int64) bool { return floorMod(c, 2) == 1 }, Rev[T], p)
}

// Brak turns p into a lopsided breakbeat: on odd cycles, squeezes it
// with a trailing silence and nudges it a quarter-cycle later.
func Brak[T any](p Pattern[T]) Pattern[T] {
	f := func(pp Pattern[T]) Pattern[T] {
		return Late(rational.New(1, 4), Fastcat([]Pattern[T]{pp, Silence[T]()}))
	}
	return WhenCycle(func(c int64) bool { return floorMod(c, 2) == 1 }, f, p)
}
