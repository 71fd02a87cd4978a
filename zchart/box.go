package zchart

import "math"

// Box is the data-space extent mapped onto the plot area
type Box struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

func DefaultBox() Box {
	return Box{XMin: 0, XMax: 1, YMin: 0, YMax: 1}
}

func (b Box) Width() float64 {
	return b.XMax - b.XMin
}

func (b Box) Height() float64 {
	return b.YMax - b.YMin
}

// Fix expands an axis with no extent, so mapping onto it is defined.
// With logarithmic, the y axis is also made positive.
func (b *Box) Fix(logarithmic bool) {
	if b.Width() == 0 {
		b.XMax = b.XMin + 1
	}
	if logarithmic && b.YMin <= 0 {
		if b.YMax <= 0 {
			b.YMin, b.YMax = 1, 10
		} else {
			b.YMin = b.YMax / 10
		}
	}
	if b.Height() == 0 {
		if b.YMin == 0 {
			b.YMax = 1
		} else {
			d := math.Abs(b.YMin) / 2
			b.YMin -= d
			b.YMax += d
		}
	}
}

// TickLabel is one axis tick; Value is exactly the computed tick, Label its display text.
type TickLabel struct {
	Label string
	Value float64
}
