package pattern

import (
	"math"

	"github.com/schollz/cyclepattern/internal/voice"
)

// combineValues is the shared shape behind every binary operator: the
// right pattern is sampled within each left event's own part and the two
// values combined, via MixJoin so the result's structure is the
// intersection of both operands' events (spec §4.6).
func combineValues(a, b Pattern[voice.Value], f func(x, y voice.Value) voice.Value) Pattern[voice.Value] {
	return MixJoin(Fmap(a, func(x voice.Value) Pattern[voice.Value] {
		return Fmap(b, func(y voice.Value) voice.Value { return f(x, y) })
	}))
}

// numeric applies f to both operands' numeric values; if either side
// isn't numeric, the operator is a no-op that returns the left operand
// unchanged rather than failing (spec §7).
func numeric(f func(x, y float64) float64) func(voice.Value, voice.Value) voice.Value {
	return func(x, y voice.Value) voice.Value {
		nx, okx := x.AsNumber()
		ny, oky := y.AsNumber()
		if !okx || !oky {
			return x
		}
		return voice.Num(f(nx, ny))
	}
}

func compare(f func(x, y float64) bool, fallback func(x, y string) bool) func(voice.Value, voice.Value) voice.Value {
	return func(x, y voice.Value) voice.Value {
		nx, okx := x.AsNumber()
		ny, oky := y.AsNumber()
		if okx && oky {
			return voice.Bool(f(nx, ny))
		}
		return voice.Bool(fallback(x.Text, y.Text))
	}
}

func Add(a, b Pattern[voice.Value]) Pattern[voice.Value] {
	return combineValues(a, b, numeric(func(x, y float64) float64 { return x + y }))
}

func Sub(a, b Pattern[voice.Value]) Pattern[voice.Value] {
	return combineValues(a, b, numeric(func(x, y float64) float64 { return x - y }))
}

func Mul(a, b Pattern[voice.Value]) Pattern[voice.Value] {
	return combineValues(a, b, numeric(func(x, y float64) float64 { return x * y }))
}

func Div(a, b Pattern[voice.Value]) Pattern[voice.Value] {
	return combineValues(a, b, numeric(func(x, y float64) float64 {
		if y == 0 {
			return 0
		}
		return x / y
	}))
}

func Mod(a, b Pattern[voice.Value]) Pattern[voice.Value] {
	return combineValues(a, b, numeric(func(x, y float64) float64 {
		if y == 0 {
			return 0
		}
		return math.Mod(x, y)
	}))
}

func Pow(a, b Pattern[voice.Value]) Pattern[voice.Value] {
	return combineValues(a, b, numeric(math.Pow))
}

func LessThan(a, b Pattern[voice.Value]) Pattern[voice.Value] {
	return combineValues(a, b, compare(func(x, y float64) bool { return x < y }, func(x, y string) bool { return x < y }))
}

func LessEq(a, b Pattern[voice.Value]) Pattern[voice.Value] {
	return combineValues(a, b, compare(func(x, y float64) bool { return x <= y }, func(x, y string) bool { return x <= y }))
}

func GreaterThan(a, b Pattern[voice.Value]) Pattern[voice.Value] {
	return combineValues(a, b, compare(func(x, y float64) bool { return x > y }, func(x, y string) bool { return x > y }))
}

func GreaterEq(a, b Pattern[voice.Value]) Pattern[voice.Value] {
	return combineValues(a, b, compare(func(x, y float64) bool { return x >= y }, func(x, y string) bool { return x >= y }))
}

func EqualTo(a, b Pattern[voice.Value]) Pattern[voice.Value] {
	return combineValues(a, b, func(x, y voice.Value) voice.Value {
		if nx, okx := x.AsNumber(); okx {
			if ny, oky := y.AsNumber(); oky {
				return voice.Bool(nx == ny)
			}
		}
		return voice.Bool(x.Text == y.Text && x.Kind == y.Kind)
	})
}

func NotEqualTo(a, b Pattern[voice.Value]) Pattern[voice.Value] {
	eq := EqualTo(a, b)
	return Fmap(eq, func(v voice.Value) voice.Value { return voice.Bool(!v.Bool) })
}

func And(a, b Pattern[voice.Value]) Pattern[voice.Value] {
	return combineValues(a, b, func(x, y voice.Value) voice.Value { return voice.Bool(x.Truthy() && y.Truthy()) })
}

func Or(a, b Pattern[voice.Value]) Pattern[voice.Value] {
	return combineValues(a, b, func(x, y voice.Value) voice.Value { return voice.Bool(x.Truthy() || y.Truthy()) })
}
