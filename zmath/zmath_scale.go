package zmath

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/torlangballe/zchart/zfloat"
)

const (
	DefaultMinScale = 4  // DefaultMinScale is the fewest ticks ComputeScale tries to produce
	DefaultMaxScale = 16 // DefaultMaxScale is the most ticks ComputeScale allows before doubling the step
)

// RoundToScale rounds n to the nearest multiple of precision.
// Precisions >= 1 are treated as integers, with n truncated first.
// Smaller precisions are rounded in decimal, so 0.1 steps give 0.3 and not 0.30000000000000004.
func RoundToScale(n, precision float64) float64 {
	if precision < 1 {
		return roundToFloat(n, precision)
	}
	return roundToInt(n, precision)
}

func roundToInt(n, precision float64) float64 {
	p := math.Trunc(precision)
	return math.Floor((math.Trunc(n)+p/2)/p) * p
}

func roundToFloat(n, precision float64) float64 {
	steps := math.Floor((n + precision/2) / precision)
	return zfloat.KeepFractionDigits(steps*precision, decimalsIn(precision))
}

func decimalsIn(f float64) int {
	str := strconv.FormatFloat(f, 'f', -1, 64)
	i := strings.IndexByte(str, '.')
	if i == -1 {
		return 0
	}
	return len(str) - i - 1
}

// ComputeScale returns ordered tick positions between min and max inclusive.
// The step is a power of ten (or that doubled) giving between minScale and maxScale ticks.
// orderMin, if not nil, is the smallest power of ten allowed as a step.
// With logarithmic, a log scale is tried first, falling back to linear if the range spans too few decades.
func ComputeScale(min, max float64, logarithmic bool, orderMin *int, minScale, maxScale int) []float64 {
	if min == 0 && max == 0 {
		return []float64{0}
	}
	if max-min == 0 {
		return []float64{min}
	}
	if math.IsInf(max-min, 0) || math.IsNaN(max-min) {
		return []float64{min, max}
	}
	if logarithmic {
		logScale := ComputeLogarithmicScale(min, max, minScale, maxScale)
		if len(logScale) != 0 {
			return logScale
		}
	}
	order := int(math.RoundToEven(math.Log10(math.Max(math.Abs(min), math.Abs(max))))) - 1
	if orderMin != nil && order < *orderMin {
		order = *orderMin
	} else {
		for (max-min)/math.Pow(10, float64(order)) < float64(minScale) && (orderMin == nil || order > *orderMin) {
			order--
		}
	}
	step := math.Pow(10, float64(order))
	for (max-min)/step > float64(maxScale) {
		step *= 2
	}
	start := RoundToScale(min, step)
	if start+step == start {
		// step is below the float spacing at this magnitude
		return []float64{min, max}
	}
	var positions []float64
	count := int(math.Ceil((max-start)/step)) + 1
	for i := 0; i <= count; i++ {
		position := start + float64(i)*step
		if position >= max+step {
			break
		}
		rounded := RoundToScale(position, step)
		if min <= rounded && rounded <= max && !slices.Contains(positions, rounded) {
			positions = append(positions, rounded)
		}
	}
	if len(positions) < 2 {
		return []float64{min, max}
	}
	return positions
}

// ComputeLogarithmicScale returns 1,2,3...9 style ticks for each power of ten between min and max.
// It returns nil if min or max is not positive, or they are within one decade of each other.
func ComputeLogarithmicScale(min, max float64, minScale, maxScale int) []float64 {
	if max <= 0 || min <= 0 {
		return nil
	}
	minOrder := int(math.Floor(math.Log10(min)))
	maxOrder := int(math.Ceil(math.Log10(max)))
	amplitude := float64(maxOrder - minOrder)
	if amplitude <= 1 {
		return nil
	}
	detail := 10.0
	for amplitude*detail < float64(minScale*5) {
		detail *= 2
	}
	for amplitude*detail > float64(maxScale*3) {
		detail /= 2
	}
	var positions []float64
	for order := minOrder; order <= maxOrder; order++ {
		for i := 0; i < int(detail); i++ {
			tick := 10 * float64(i) / detail
			if tick == 0 {
				tick = 1
			}
			tick *= math.Pow(10, float64(order))
			tick = RoundToScale(tick, tick)
			if min <= tick && tick <= max && !slices.Contains(positions, tick) {
				positions = append(positions, tick)
			}
		}
	}
	return positions
}
