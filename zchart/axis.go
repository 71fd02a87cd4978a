package zchart

import (
	"github.com/torlangballe/zchart/zfloat"
	"github.com/torlangballe/zchart/zgeo"
	"github.com/torlangballe/zchart/zsvg"
)

type edge int

const (
	edgeBottom edge = iota
	edgeLeft
	edgeRight
	edgeTop
)

// drawPos maps a data-space point to drawing coordinates in the plot
func (c *Chart) drawPos(x, y float64) zgeo.Pos {
	return c.Orientation().Swapped(c.view.Map(zgeo.PosD(x, y)))
}

// labelEdges returns which side of the plot x, y and secondary y tick labels go on
func (c *Chart) labelEdges() (x, y, secondary edge) {
	if c.Config.Horizontal {
		return edgeLeft, edgeBottom, edgeTop
	}
	return edgeBottom, edgeLeft, edgeRight
}

func (c *Chart) drawAxes() {
	h := c.Histogram
	xEdge, yEdge, secEdge := c.labelEdges()
	axes := c.svg.Group(c.plot, "axes")

	xAxis := c.svg.Group(axes, "axis x")
	for _, l := range h.XLabels {
		from := c.drawPos(l.Value, c.box.YMin)
		if c.Config.ShowXGuides {
			c.svg.StrokeLine(xAxis, from, c.drawPos(l.Value, c.box.YMax), 1, "guide line")
		}
		c.tickText(xAxis, from, l.Label, xEdge)
	}
	yAxis := c.svg.Group(axes, "axis y")
	for _, l := range h.YLabels {
		from := c.drawPos(c.box.XMin, l.Value)
		if c.Config.ShowYGuides {
			c.svg.StrokeLine(yAxis, from, c.drawPos(c.box.XMax, l.Value), 1, "guide line")
		}
		c.tickText(yAxis, from, l.Label, yEdge)
	}
	if len(h.SecondaryYLabels) != 0 {
		secAxis := c.svg.Group(axes, "axis y2")
		for _, l := range h.SecondaryYLabels {
			c.tickText(secAxis, c.drawPos(c.box.XMax, l.Value), l.Label, secEdge)
		}
	}
	zero := zfloat.Clamped(h.Zero(), c.box.YMin, c.box.YMax)
	c.svg.StrokeLine(axes, c.drawPos(c.box.XMin, zero), c.drawPos(c.box.XMax, zero), 1, "axis-line")
}

func (c *Chart) tickText(parent *zsvg.Node, pos zgeo.Pos, text string, e edge) *zsvg.Node {
	d := c.fontSize / 2
	var align zgeo.Alignment
	switch e {
	case edgeBottom:
		pos.Y += d
		align = zgeo.TopCenter
	case edgeLeft:
		pos.X -= d
		align = zgeo.CenterRight
	case edgeRight:
		pos.X += d
		align = zgeo.CenterLeft
	case edgeTop:
		pos.Y -= d
		align = zgeo.BottomCenter
	}
	return c.svg.DrawTextAlignedInPos(parent, pos, text, align, "")
}
