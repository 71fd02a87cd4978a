package zchart

import (
	"math"

	"github.com/torlangballe/zchart/zfloat"
	"github.com/torlangballe/zchart/zgeo"
	"github.com/torlangballe/zchart/zmath"
	"github.com/torlangballe/zchart/zsvg"
)

// Histogram turns series of (y, x0, x1) points into bars, and axis ticks for them.
// Compute must be called before Plot, once per render.
type Histogram struct {
	Series           []*Series
	XLabels          []TickLabel
	YLabels          []TickLabel
	SecondaryYLabels []TickLabel // Value is the tick rescaled onto the primary y range
	zero             float64
	secondary        *rescaler
}

// rescaler maps secondary y values linearly (or log-linearly) onto the primary y range
type rescaler struct {
	from        zmath.RangeF64
	to          zmath.RangeF64
	logarithmic bool
}

func NewHistogram(series ...*Series) *Histogram {
	return &Histogram{Series: series}
}

func (h *Histogram) SeriesWithRole(role SeriesRole) []*Series {
	var out []*Series
	for _, s := range h.Series {
		if s.Role == role {
			out = append(out, s)
		}
	}
	return out
}

// XValues is every x0 and x1 of all series, primary and secondary.
func (h *Histogram) XValues() zfloat.Slice {
	var vals zfloat.Slice
	for _, s := range h.Series {
		for _, p := range s.Values {
			for _, x := range []float64{p.X0, p.X1} {
				if !zfloat.IsMissing(x) {
					vals = append(vals, x)
				}
			}
		}
	}
	return vals
}

// YValues is every y of primary series only.
func (h *Histogram) YValues() zfloat.Slice {
	return yValues(h.SeriesWithRole(Primary))
}

func (h *Histogram) SecondaryYValues() zfloat.Slice {
	return yValues(h.SeriesWithRole(Secondary))
}

func yValues(series []*Series) zfloat.Slice {
	var vals zfloat.Slice
	for _, s := range series {
		for _, p := range s.Values {
			if !zfloat.IsMissing(p.Y) {
				vals = append(vals, p.Y)
			}
		}
	}
	return vals
}

// HasData is true if there are any points, and not all x and y values are zero.
// Points that won't be drawn are counted too.
func (h *Histogram) HasData() bool {
	var count int
	for _, s := range h.Series {
		count += len(s.Values)
	}
	if count == 0 {
		return false
	}
	return h.XValues().AbsSum() != 0 || h.YValues().AbsSum() != 0
}

// Zero is the baseline bars are drawn from, as set by Compute
func (h *Histogram) Zero() float64 {
	return h.zero
}

// Compute sets the box's ranges from the series values, the axis tick labels, and each series' Points.
// An axis with no values keeps the box's range for it, and gets no labels.
func (h *Histogram) Compute(ctx RenderContext) {
	box := ctx.Box()
	logarithmic := ctx.Logarithmic()
	h.zero = ctx.Zero()
	xvals := h.XValues()
	yvals := h.YValues()
	if logarithmic {
		yvals = yvals.Positive()
		if h.zero <= 0 {
			h.zero = 1
			if len(yvals) != 0 {
				h.zero = yvals.Minimum()
			}
		}
	}
	h.XLabels = nil
	h.YLabels = nil
	if len(xvals) != 0 {
		box.XMin = xvals.Minimum()
		box.XMax = xvals.Maximum()
		h.XLabels = tickLabels(ctx, box.XMin, box.XMax, logarithmic)
	}
	if len(yvals) != 0 {
		box.YMin = math.Min(yvals.Minimum(), h.zero)
		box.YMax = math.Max(yvals.Maximum(), h.zero)
		h.YLabels = tickLabels(ctx, box.YMin, box.YMax, logarithmic)
	}
	h.computeSecondary(ctx, *box)
	for _, s := range h.Series {
		s.Points = s.Values
	}
}

func tickLabels(ctx RenderContext, min, max float64, logarithmic bool) []TickLabel {
	ticks := ctx.Scale(min, max, logarithmic, ctx.OrderMin())
	labels := make([]TickLabel, len(ticks))
	for i, t := range ticks {
		labels[i] = TickLabel{Label: ctx.Format(t), Value: t}
	}
	return labels
}

func (h *Histogram) computeSecondary(ctx RenderContext, box Box) {
	h.secondary = nil
	h.SecondaryYLabels = nil
	logarithmic := ctx.Logarithmic()
	yvals := h.SecondaryYValues()
	if logarithmic {
		yvals = yvals.Positive()
	}
	if len(yvals) == 0 {
		return
	}
	box.Fix(logarithmic)
	min := math.Min(yvals.Minimum(), h.zero)
	max := math.Max(yvals.Maximum(), h.zero)
	r := &rescaler{
		from:        zmath.MakeRange(min, max),
		to:          zmath.MakeRange(box.YMin, box.YMax),
		logarithmic: logarithmic,
	}
	for _, t := range ctx.Scale(min, max, logarithmic, ctx.OrderMin()) {
		h.SecondaryYLabels = append(h.SecondaryYLabels, TickLabel{Label: ctx.Format(t), Value: r.apply(t)})
	}
	h.secondary = r
}

func (r *rescaler) apply(v float64) float64 {
	if r.from.Length() == 0 {
		return r.to.Min
	}
	if r.logarithmic {
		from := zmath.MakeRange(math.Log10(r.from.Min), math.Log10(r.from.Max))
		to := zmath.MakeRange(math.Log10(r.to.Min), math.Log10(r.to.Max))
		return math.Pow(10, to.T(from.Ratio(math.Log10(v))))
	}
	return r.to.T(r.from.Ratio(v))
}

// Plot draws the primary series at index 0..N-1, then the secondary ones at N.. rescaled.
func (h *Histogram) Plot(ctx RenderContext) {
	primary := h.SeriesWithRole(Primary)
	for i, s := range primary {
		h.Bar(ctx, s, i, false)
	}
	for i, s := range h.SeriesWithRole(Secondary) {
		h.Bar(ctx, s, len(primary)+i, true)
	}
}

// Bar draws a series' points as bars in a histbars group of its plot node.
// Points with missing values, or y <= 0 on a logarithmic chart, are skipped.
func (h *Histogram) Bar(ctx RenderContext, series *Series, index int, secondary bool) {
	plot, overlay := ctx.SeriesNodes(index)
	bars := ctx.Group(plot, "histbars")
	logarithmic := ctx.Logarithmic()
	rescale := secondary && h.secondary != nil
	zero := h.zero
	if rescale {
		zero = h.secondary.apply(zero)
	}
	for i, p := range series.Points {
		if p.IsMissing() || (logarithmic && p.Y <= 0) {
			continue
		}
		bar := ctx.Decorate(ctx.Group(bars, "histbar"), series.metadataAt(i))
		value := ctx.Format(p.Y)
		y := p.Y
		if rescale {
			y = h.secondary.apply(y)
		}
		center := h.barRect(ctx, bar, p.X0, p.X1, y, zero)
		ctx.Tooltip(bar, value, center, "centered")
		ctx.StaticValue(overlay, value, center)
	}
}

// barRect adds the rect from x0 to x1 and zero to y in parent, and returns its center in drawing order.
func (h *Histogram) barRect(ctx RenderContext, parent *zsvg.Node, x0, x1, y, zero float64) zgeo.Pos {
	mapper := ctx.Mapper()
	pos := mapper.Map(zgeo.PosD(x0, y))
	x1v := mapper.Map(zgeo.PosD(x1, y)).X
	width := x1v - pos.X
	height := mapper.MapY(zero) - pos.Y
	margin := width * ctx.SeriesMargin()
	pos.X += margin
	width -= 2 * margin
	rect := zgeo.RectFromXYWH(pos.X, pos.Y, width, height)
	ctx.TransposableRect(parent, rect, ctx.RoundedBars(), "rect reactive tooltip-trigger")
	return ctx.Orientation().Swapped(rect.Center())
}
