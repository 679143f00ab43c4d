package pattern

// Pick selects among options by selector's integer value; an
// out-of-range index clamps to the nearest end of the list rather than
// silencing. The chosen option's own timing is preserved (innerJoin),
// clipped to the selecting event's part.
func Pick[T any](selector Pattern[int], options []Pattern[T]) Pattern[T] {
	n := len(options)
	if n == 0 {
		return Silence[T]()
	}
	return Bind(selector, func(i int) Pattern[T] {
		if i < 0 {
			i = 0
		} else if i >= n {
			i = n - 1
		}
		return options[i]
	}, InnerJoin[T])
}

// PickMod is Pick but wraps out-of-range indices with floored modulo
// instead of clamping them.
func PickMod[T any](selector Pattern[int], options []Pattern[T]) Pattern[T] {
	n := len(options)
	if n == 0 {
		return Silence[T]()
	}
	return Bind(selector, func(i int) Pattern[T] {
		return options[floorMod(int64(i), int64(n))]
	}, InnerJoin[T])
}

// PickOut is like PickMod but takes its timing from the selector instead
// of the chosen option, clipping the option's content to the selector's
// own event span.
func PickOut[T any](selector Pattern[int], options []Pattern[T]) Pattern[T] {
	n := len(options)
	if n == 0 {
		return Silence[T]()
	}
	return Bind(selector, func(i int) Pattern[T] {
		return options[floorMod(int64(i), int64(n))]
	}, OuterJoin[T])
}

// PickReset is PickMod, but the chosen option restarts its own cycle
// phase from zero at every selector event.
func PickReset[T any](selector Pattern[int], options []Pattern[T]) Pattern[T] {
	n := len(options)
	if n == 0 {
		return Silence[T]()
	}
	return Bind(selector, func(i int) Pattern[T] {
		return options[floorMod(int64(i), int64(n))]
	}, ResetJoin[T])
}

// PickF selects which transform of p to apply by selector's value.
func PickF[T any](selector Pattern[int], fs []func(Pattern[T]) Pattern[T], p Pattern[T]) Pattern[T] {
	n := len(fs)
	if n == 0 {
		return p
	}
	return Bind(selector, func(i int) Pattern[T] {
		return fs[floorMod(int64(i), int64(n))](p)
	}, InnerJoin[T])
}

// PickSqueeze (aka Inhabit) selects among options by selector's value and
// squeezes the chosen option's own cycle into the selecting event's span.
func PickSqueeze[T any](selector Pattern[int], options []Pattern[T]) Pattern[T] {
	n := len(options)
	if n == 0 {
		return Silence[T]()
	}
	return Bind(selector, func(i int) Pattern[T] {
		return options[floorMod(int64(i), int64(n))]
	}, SqueezeJoin[T])
}

func Inhabit[T any](selector Pattern[int], options []Pattern[T]) Pattern[T] {
	return PickSqueeze(selector, options)
}
