package pattern

import "math"

// continuousSignal builds a Steady-shaped continuous pattern whose value
// at any queried point is f of that point's exact time, converted to a
// float64 only at the moment of evaluation (the oscillators are the one
// part of the engine where float math is appropriate, since they're
// inherently continuous waveforms rather than exact rational steps).
func continuousSignal(f func(t float64) float64) Pattern[float64] {
	return New(func(st QueryState) []Event[float64] {
		if st.Arc.IsEmpty() {
			return nil
		}
		v := f(st.Arc.Begin.Float64())
		return []Event[float64]{{Whole: nil, Part: st.Arc, Value: v}}
	})
}

func frac(t float64) float64 {
	f := math.Mod(t, 1)
	if f < 0 {
		f++
	}
	return f
}

// Sine is a continuous sine oscillator in [0,1]: t=0 sits at 0.5 (the
// midpoint), t=0.25 at the peak (spec §4.5).
func Sine() Pattern[float64] {
	return continuousSignal(func(t float64) float64 {
		return (math.Cos(2*math.Pi*t-math.Pi/2) + 1) / 2
	})
}

// Cosine is a continuous cosine oscillator in [0,1]: t=0 sits at the
// peak.
func Cosine() Pattern[float64] {
	return continuousSignal(func(t float64) float64 {
		return (math.Cos(2*math.Pi*t) + 1) / 2
	})
}

// Saw is a continuous rising ramp in [0,1), resetting every cycle.
func Saw() Pattern[float64] {
	return continuousSignal(frac)
}

// Tri is a continuous triangle wave in [0,1]: rises over the first half
// of the cycle, falls over the second.
func Tri() Pattern[float64] {
	return continuousSignal(func(t float64) float64 {
		f := frac(t)
		if f < 0.5 {
			return f * 2
		}
		return 2 * (1 - f)
	})
}

// Square is a continuous square wave: 0 over the first half of the
// cycle, 1 over the second.
func Square() Pattern[float64] {
	return continuousSignal(func(t float64) float64 {
		if frac(t) < 0.5 {
			return 0
		}
		return 1
	})
}

// Range rescales a [0,1]-valued pattern (typically an oscillator) to
// [lo,hi].
func Range(lo, hi float64, p Pattern[float64]) Pattern[float64] {
	return Fmap(p, func(v float64) float64 { return lo + v*(hi-lo) })
}
