package pattern

import (
	"github.com/schollz/cyclepattern/internal/rng"
)

// randAtArc hashes an arc's begin position (as an exact rational) with
// the query's seed and a combinator-specific salt, the one source of
// randomness every stochastic combinator in this file draws from
// (spec §4.8).
func randAtArc(seed uint64, num, den int64, salt uint64) float64 {
	return rng.RandAt(seed, num, den, salt)
}

// Rand is a continuous signal in [0,1), re-hashed at every query.
func Rand() Pattern[float64] {
	return New(func(st QueryState) []Event[float64] {
		if st.Arc.IsEmpty() {
			return nil
		}
		t := st.Arc.Begin
		v := randAtArc(st.Seed, t.Num, t.Den, rng.SaltRand)
		return []Event[float64]{{Whole: nil, Part: st.Arc, Value: v}}
	})
}

// Rand2 is a continuous signal in [-1,1).
func Rand2() Pattern[float64] {
	return New(func(st QueryState) []Event[float64] {
		if st.Arc.IsEmpty() {
			return nil
		}
		t := st.Arc.Begin
		v := randAtArc(st.Seed, t.Num, t.Den, rng.SaltRand2)
		return []Event[float64]{{Whole: nil, Part: st.Arc, Value: v*2 - 1}}
	})
}

// Brand is a continuous boolean signal, true half the time.
func Brand() Pattern[bool] {
	return BrandBy(0.5)
}

// BrandBy is a continuous boolean signal, true with probability prob.
func BrandBy(prob float64) Pattern[bool] {
	return New(func(st QueryState) []Event[bool] {
		if st.Arc.IsEmpty() {
			return nil
		}
		t := st.Arc.Begin
		v := randAtArc(st.Seed, t.Num, t.Den, rng.SaltBrandBy)
		return []Event[bool]{{Whole: nil, Part: st.Arc, Value: v < prob}}
	})
}

// Irand is a continuous signal of integers in [0,n).
func Irand(n int) Pattern[int] {
	return New(func(st QueryState) []Event[int] {
		if st.Arc.IsEmpty() || n <= 0 {
			return nil
		}
		t := st.Arc.Begin
		v := randAtArc(st.Seed, t.Num, t.Den, rng.SaltIrand)
		idx := int(v * float64(n))
		if idx >= n {
			idx = n - 1
		}
		return []Event[int]{{Whole: nil, Part: st.Arc, Value: idx}}
	})
}

// DegradeBy discards each event independently with probability prob.
func DegradeBy[T any](prob float64, p Pattern[T]) Pattern[T] {
	out := New(func(st QueryState) []Event[T] {
		var result []Event[T]
		for _, e := range p.Query(st) {
			t := e.Part.Begin
			r := randAtArc(st.Seed, t.Num, t.Den, rng.SaltDegrade)
			if r >= prob {
				result = append(result, e)
			}
		}
		return result
	})
	out.Weight, out.NumSteps = p.Weight, p.NumSteps
	return out
}

// UndegradeBy keeps each event independently with probability prob (the
// inverse framing of DegradeBy). It draws from DegradeBy's salt, so under
// the same seed UndegradeBy(x) keeps exactly the events DegradeBy(x)
// drops.
func UndegradeBy[T any](prob float64, p Pattern[T]) Pattern[T] {
	out := New(func(st QueryState) []Event[T] {
		var result []Event[T]
		for _, e := range p.Query(st) {
			t := e.Part.Begin
			r := randAtArc(st.Seed, t.Num, t.Den, rng.SaltDegrade)
			if r < prob {
				result = append(result, e)
			}
		}
		return result
	})
	out.Weight, out.NumSteps = p.Weight, p.NumSteps
	return out
}

func Degrade[T any](p Pattern[T]) Pattern[T] {
	return DegradeBy(0.5, p)
}

func Undegrade[T any](p Pattern[T]) Pattern[T] {
	return UndegradeBy(0.5, p)
}

// SometimesBy applies f to each event independently with probability
// prob, leaving the rest untouched.
func SometimesBy[T any](prob float64, f func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	transformed := f(p)
	out := New(func(st QueryState) []Event[T] {
		var result []Event[T]
		for _, e := range p.Query(st) {
			t := e.Part.Begin
			r := randAtArc(st.Seed, t.Num, t.Den, rng.SaltSometimes)
			if r < prob {
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

func Always[T any](f func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	return SometimesBy(1.0, f, p)
}
func Never[T any](f func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	return SometimesBy(0.0, f, p)
}
func AlmostAlways[T any](f func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	return SometimesBy(0.9, f, p)
}
func AlmostNever[T any](f func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	return SometimesBy(0.1, f, p)
}
func Often[T any](f func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	return SometimesBy(0.75, f, p)
}
func Rarely[T any](f func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	return SometimesBy(0.25, f, p)
}
func Sometimes[T any](f func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	return SometimesBy(0.5, f, p)
}

// Randcat picks one of ps at random for each whole cycle, the choice
// hashed from the cycle number so it's reproducible under a fixed seed.
func Randcat[T any](ps ...Pattern[T]) Pattern[T] {
	if len(ps) == 0 {
		return Silence[T]()
	}
	n := len(ps)
	q := perCycle(func(st QueryState) []Event[T] {
		c := st.Arc.Begin.Sam().Floor()
		r := randAtArc(st.Seed, c, 1, rng.SaltRandcat)
		idx := int(r * float64(n))
		if idx >= n {
			idx = n - 1
		}
		return ps[idx].Query(st)
	})
	out := New(q)
	return out
}

// Choose is a continuous signal that picks uniformly among options at
// every query point; Choose2 is the common two-value case.
func Choose[T any](options []T) Pattern[T] {
	n := len(options)
	return New(func(st QueryState) []Event[T] {
		if st.Arc.IsEmpty() || n == 0 {
			return nil
		}
		t := st.Arc.Begin
		r := randAtArc(st.Seed, t.Num, t.Den, rng.SaltChoose)
		idx := int(r * float64(n))
		if idx >= n {
			idx = n - 1
		}
		return []Event[T]{{Whole: nil, Part: st.Arc, Value: options[idx]}}
	})
}

func Choose2[T any](a, b T) Pattern[T] {
	return Choose([]T{a, b})
}
