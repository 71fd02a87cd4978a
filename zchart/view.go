package zchart

import (
	"math"

	"github.com/torlangballe/zchart/zgeo"
)

// CoordinateMapper maps data-space to view-space, in the chart's logical order:
// the first coordinate runs along the x axis, the second along the y axis.
// For a vertical chart this is drawing order, for a horizontal chart it is swapped.
type CoordinateMapper interface {
	Map(p zgeo.Pos) zgeo.Pos
	MapY(y float64) float64
}

// View linearly maps Box onto a plot area of Size.
type View struct {
	Size        zgeo.Size
	Box         Box
	Orientation Orientation
}

// LogView is a View with a log10 y axis. Box.YMin must be positive.
type LogView struct {
	View
}

func NewView(size zgeo.Size, box Box, o Orientation, logarithmic bool) CoordinateMapper {
	v := View{Size: size, Box: box, Orientation: o}
	if logarithmic {
		return LogView{View: v}
	}
	return v
}

func (v View) Map(p zgeo.Pos) zgeo.Pos {
	return zgeo.PosD(v.x(p.X), v.MapY(p.Y))
}

func (v View) x(x float64) float64 {
	r := (x - v.Box.XMin) / v.Box.Width()
	if v.Orientation == Horizontal {
		return v.Size.H - v.Size.H*r
	}
	return v.Size.W * r
}

func (v View) MapY(y float64) float64 {
	return v.yFromRatio((y - v.Box.YMin) / v.Box.Height())
}

func (v View) yFromRatio(r float64) float64 {
	if v.Orientation == Horizontal {
		return v.Size.W * r
	}
	return v.Size.H - v.Size.H*r
}

func (v LogView) Map(p zgeo.Pos) zgeo.Pos {
	return zgeo.PosD(v.x(p.X), v.MapY(p.Y))
}

func (v LogView) MapY(y float64) float64 {
	min := math.Log10(v.Box.YMin)
	max := math.Log10(v.Box.YMax)
	return v.yFromRatio((math.Log10(y) - min) / (max - min))
}
