package zfloat

import (
	"math"
	"strconv"
)

type Slice []float64

// Missing is used for a value that isn't there, like a null in a data set.
// Use IsMissing to check for it, as NaN != NaN.
var Missing = math.NaN()

func IsMissing(f float64) bool {
	return math.IsNaN(f)
}

// AnyMissing returns true if any of fs IsMissing
func AnyMissing(fs ...float64) bool {
	for _, f := range fs {
		if math.IsNaN(f) {
			return true
		}
	}
	return false
}

func Minimize(a *float64, b float64) bool {
	if *a < b {
		return false
	}
	*a = b
	return true
}

func Maximize(a *float64, b float64) bool {
	if *a > b {
		return false
	}
	*a = b
	return true
}

func Clamped(v, min, max float64) float64 {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}

func Clamped32(v, min, max float32) float32 {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}

// KeepFractionDigits rounds f to have at most digits post-comma digits
func KeepFractionDigits(f float64, digits int) float64 {
	str := strconv.FormatFloat(f, 'f', digits, 64)
	n, _ := strconv.ParseFloat(str, 64)
	return n
}

// Minimum returns the smallest value in s, or Missing if empty
func (s Slice) Minimum() float64 {
	if len(s) == 0 {
		return Missing
	}
	min := s[0]
	for _, n := range s[1:] {
		Minimize(&min, n)
	}
	return min
}

// Maximum returns the largest value in s, or Missing if empty
func (s Slice) Maximum() float64 {
	if len(s) == 0 {
		return Missing
	}
	max := s[0]
	for _, n := range s[1:] {
		Maximize(&max, n)
	}
	return max
}

// AbsSum returns the sum of the absolute values in s
func (s Slice) AbsSum() float64 {
	var sum float64
	for _, n := range s {
		sum += math.Abs(n)
	}
	return sum
}

// Positive returns the values > 0 in s
func (s Slice) Positive() Slice {
	var out Slice
	for _, n := range s {
		if n > 0 {
			out = append(out, n)
		}
	}
	return out
}
