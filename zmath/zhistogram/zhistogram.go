package zhistogram

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/torlangballe/zchart/zstr"
)

// Class is one bucket: it counts values above the previous class's MaxRange, up to and including its own.
// Named classes count values added by name, and may have no range.
type Class struct {
	Count    int    `json:",omitempty"`
	Label    string `json:",omitempty"`
	MaxRange float64
}

// Histogram counts samples into classes. Samples outside the classes are counted as outliers.
type Histogram struct {
	MinValue          float64
	Classes           []Class `json:",omitempty"`
	OutlierBelow      int     `json:",omitempty"`
	OutlierAbove      int     `json:",omitempty"`
	OutlierBelowSum   float64 `json:",omitempty"`
	OutlierAboveSum   float64 `json:",omitempty"`
	Unit              string  `json:",omitempty"`
	AccumilateClasses bool    // each distinct value added gets its own class
}

// New returns a histogram with classes from min to max of width step.
// A step <= 0 gives one with no classes, for named or accumulated classes.
func New(step, min, max float64) *Histogram {
	h := &Histogram{}
	if step > 0 {
		h.Setup(step, min, max)
	}
	return h
}

// ClassCount is how many classes of width step cover min to max.
// A last partial class is counted, but not one made only of float rounding.
func ClassCount(step, min, max float64) int {
	if step <= 0 || max <= min {
		return 0
	}
	n := math.Ceil((max - min) / step * (1 - 1e-12))
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return 0
	}
	return int(n)
}

// Setup sets up the histogram with a step and min/max range.
// It generates the classes based on these parameters.
func (h *Histogram) Setup(step, min, max float64) {
	h.MinValue = min
	count := ClassCount(step, min, max)
	for i := 1; i <= count; i++ {
		h.Classes = append(h.Classes, Class{MaxRange: min + float64(i)*step})
	}
}

// SetupRanges sets classes from min up to each of maxes, which must be increasing
func (h *Histogram) SetupRanges(min float64, maxes ...float64) {
	h.MinValue = min
	for _, m := range maxes {
		h.Classes = append(h.Classes, Class{MaxRange: m})
	}
}

// SetupNamedRanges sets up classes from pairs of max-range (float64 or int) and name
func (h *Histogram) SetupNamedRanges(min float64, mNames ...any) {
	h.MinValue = min
	for i := 0; i+1 < len(mNames); i += 2 {
		f, is := mNames[i].(float64)
		if !is {
			n := mNames[i].(int)
			f = float64(n)
		}
		name := mNames[i+1].(string)
		h.Classes = append(h.Classes, Class{MaxRange: f, Label: name})
	}
}

func (h *Histogram) ClassString() string {
	var out string
	for _, c := range h.Classes {
		str := c.Label
		if c.MaxRange != 0 {
			str = zstr.Concat("/", str, c.MaxRange)
		}
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s:%d", str, c.Count)
	}
	return out
}

func (h *Histogram) FindName(name string) int {
	for i, c := range h.Classes {
		if c.Label == name {
			return i
		}
	}
	return -1
}

// AddName counts one for the class called name, adding it if needed
func (h *Histogram) AddName(name string) {
	i := h.FindName(name)
	if i == -1 {
		h.Classes = append(h.Classes, Class{Count: 1, Label: name})
		return
	}
	h.Classes[i].Count++
}

func (h *Histogram) Add(value float64) {
	if value < h.MinValue {
		h.OutlierBelow++
		h.OutlierBelowSum += value
		return
	}
	if h.AccumilateClasses {
		for i, c := range h.Classes {
			if c.MaxRange == value {
				h.Classes[i].Count++
				return
			}
		}
		h.Classes = append(h.Classes, Class{Count: 1, MaxRange: value})
		return
	}
	for i, c := range h.Classes {
		if value <= c.MaxRange {
			h.Classes[i].Count++
			return
		}
	}
	h.OutlierAbove++
	h.OutlierAboveSum += value
}

func (h *Histogram) AddValues(values ...float64) {
	for _, v := range values {
		h.Add(v)
	}
}

func (h *Histogram) TotalCount() int {
	count := h.OutlierAbove + h.OutlierBelow
	for _, c := range h.Classes {
		count += c.Count
	}
	return count
}

// Sum estimates the sum of values added, using each class's width
func (h *Histogram) Sum() float64 {
	sum := h.OutlierAboveSum + h.OutlierBelowSum
	prev := h.MinValue
	for _, c := range h.Classes {
		diff := c.MaxRange - prev
		sum += diff * float64(c.Count)
		prev = c.MaxRange
	}
	return sum
}

func (h *Histogram) CountAsRatio(c int) float64 {
	total := h.TotalCount()
	if total == 0 {
		return 0
	}
	return float64(c) / float64(total)
}

// MergeIn adds the counts of in's classes to h's classes with same range and label,
// appending those h doesn't have.
func (h *Histogram) MergeIn(in Histogram) {
	found := map[int]bool{}
	for i, c := range h.Classes {
		for j, ic := range in.Classes {
			if ic.MaxRange == c.MaxRange && ic.Label == c.Label {
				h.Classes[i].Count += ic.Count
				found[j] = true
				break
			}
		}
	}
	for j, ic := range in.Classes {
		if !found[j] {
			h.Classes = append(h.Classes, ic)
		}
	}
	h.OutlierAbove += in.OutlierAbove
	h.OutlierBelow += in.OutlierBelow
	h.OutlierAboveSum += in.OutlierAboveSum
	h.OutlierBelowSum += in.OutlierBelowSum
}

func (h *Histogram) MaxUsedClassIndex() int {
	for i := len(h.Classes) - 1; i >= 0; i-- {
		if h.Classes[i].Count != 0 {
			return i + 1
		}
	}
	return 0
}

// NamedClassesSortedByLabel returns the classes sorted numerically if all labels are integers, otherwise alphabetically.
func (h *Histogram) NamedClassesSortedByLabel() []Class {
	classes := slices.Clone(h.Classes)
	intSortable := true
	for _, c := range classes {
		_, err := strconv.Atoi(c.Label)
		if err != nil {
			intSortable = false
			break
		}
	}
	if intSortable {
		slices.SortFunc(classes, func(a, b Class) int {
			ia, _ := strconv.Atoi(a.Label)
			ib, _ := strconv.Atoi(b.Label)
			return ia - ib
		})
		return classes
	}
	slices.SortFunc(classes, func(a, b Class) int {
		return strings.Compare(a.Label, b.Label)
	})
	return classes
}

// HasRanges is true if classes are ranges of values, rather than named or accumulated
func (h *Histogram) HasRanges() bool {
	if h.AccumilateClasses {
		return false
	}
	for _, c := range h.Classes {
		if c.MaxRange != 0 {
			return true
		}
	}
	return false
}
