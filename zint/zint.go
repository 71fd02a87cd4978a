package zint

import "math"

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

const Undefined = math.MaxInt

func Maximize(a *int, b int) bool {
	if *a > b {
		return false
	}
	*a = b
	return true
}

func Minimize(a *int, b int) bool {
	if *a < b {
		return false
	}
	*a = b
	return true
}

func Clamp[N Integer](a, min, max N) N {
	if a < min {
		a = min
	} else if a > max {
		a = max
	}
	return a
}

func Abs[N Integer](a N) N {
	if a < 0 {
		return -a
	}
	return a
}
