package zchart

import (
	"github.com/torlangballe/zchart/zgeo"
	"github.com/torlangballe/zchart/zsvg"
)

// ScaleComputer returns ordered tick values between min and max
type ScaleComputer func(min, max float64, logarithmic bool, orderMin *int) []float64

// RenderContext is what a Histogram needs from the chart it is drawn in:
// coordinate mapping, formatting, the shared box, and building of svg nodes.
type RenderContext interface {
	Mapper() CoordinateMapper
	Format(v float64) string
	Box() *Box
	Orientation() Orientation
	Logarithmic() bool
	Zero() float64
	OrderMin() *int
	SeriesMargin() float64
	RoundedBars() float64
	Scale(min, max float64, logarithmic bool, orderMin *int) []float64

	// SeriesNodes returns the plot and text-overlay groups of the series at index
	SeriesNodes(index int) (plot, overlay *zsvg.Node)
	Group(parent *zsvg.Node, class string) *zsvg.Node
	TransposableRect(parent *zsvg.Node, rect zgeo.Rect, corner float64, class string) *zsvg.Node
	Decorate(node *zsvg.Node, meta *Metadata) *zsvg.Node
	Tooltip(node *zsvg.Node, value string, center zgeo.Pos, classes string)
	StaticValue(container *zsvg.Node, value string, center zgeo.Pos)
}
