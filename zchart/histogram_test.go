package zchart

import (
	"testing"

	"github.com/torlangballe/zchart/zfloat"
	"github.com/torlangballe/zchart/zgeo"
	"github.com/torlangballe/zchart/zmath"
	"github.com/torlangballe/zchart/zsvg"
	"github.com/torlangballe/zchart/ztesting"
)

// fixedMapper maps x*10 and 100-y*10 regardless of box or orientation
type fixedMapper struct{}

func (fixedMapper) Map(p zgeo.Pos) zgeo.Pos {
	return zgeo.PosD(p.X*10, fixedMapper{}.MapY(p.Y))
}

func (fixedMapper) MapY(y float64) float64 {
	return 100 - y*10
}

type fakeContext struct {
	orientation Orientation
	logarithmic bool
	zero        float64
	margin      float64
	format      NumericFormatter
	box         Box
	root        *zsvg.Node
	series      map[int]seriesNodes
	seriesOrder []int
	rects       []zgeo.Rect
	tooltips    []string
	statics     []string
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		box:    DefaultBox(),
		root:   zsvg.NewNode("g"),
		series: map[int]seriesNodes{},
		format: NiceFormatter(4),
	}
}

func (f *fakeContext) Mapper() CoordinateMapper { return fixedMapper{} }
func (f *fakeContext) Format(v float64) string  { return f.format(v) }
func (f *fakeContext) Box() *Box                { return &f.box }
func (f *fakeContext) Orientation() Orientation { return f.orientation }
func (f *fakeContext) Logarithmic() bool        { return f.logarithmic }
func (f *fakeContext) Zero() float64            { return f.zero }
func (f *fakeContext) OrderMin() *int           { return nil }
func (f *fakeContext) SeriesMargin() float64    { return f.margin }
func (f *fakeContext) RoundedBars() float64     { return 0 }
func (f *fakeContext) Group(parent *zsvg.Node, class string) *zsvg.Node {
	return parent.Add("g", "class", class)
}

func (f *fakeContext) Scale(min, max float64, logarithmic bool, orderMin *int) []float64 {
	return zmath.ComputeScale(min, max, logarithmic, orderMin, zmath.DefaultMinScale, zmath.DefaultMaxScale)
}

func (f *fakeContext) SeriesNodes(index int) (plot, overlay *zsvg.Node) {
	f.seriesOrder = append(f.seriesOrder, index)
	sn, got := f.series[index]
	if !got {
		sn.plot = f.root.Add("g", "class", "series")
		sn.overlay = f.root.Add("g", "class", "overlay")
		f.series[index] = sn
	}
	return sn.plot, sn.overlay
}

func (f *fakeContext) TransposableRect(parent *zsvg.Node, rect zgeo.Rect, corner float64, class string) *zsvg.Node {
	f.rects = append(f.rects, rect)
	return parent.Add("rect", "class", class)
}

func (f *fakeContext) Decorate(node *zsvg.Node, meta *Metadata) *zsvg.Node {
	if meta != nil && meta.Link != "" {
		return node.Add("a")
	}
	return node
}

func (f *fakeContext) Tooltip(node *zsvg.Node, value string, center zgeo.Pos, classes string) {
	f.tooltips = append(f.tooltips, value)
}

func (f *fakeContext) StaticValue(container *zsvg.Node, value string, center zgeo.Pos) {
	f.statics = append(f.statics, value)
}

func exampleSeries() *Series {
	return NewSeries("example", P(5, 0, 1), P(zfloat.Missing, 1, 2), P(3, 2, 3))
}

func TestComputeExample(t *testing.T) {
	ctx := newFakeContext()
	h := NewHistogram(exampleSeries())
	ztesting.Equal(t, "has data", h.HasData(), true)
	h.Compute(ctx)
	ztesting.Equal(t, "box", ctx.box, Box{XMin: 0, XMax: 3, YMin: 0, YMax: 5})
	ztesting.Equal(t, "points", len(h.Series[0].Points), 3)

	xticks := ctx.Scale(0, 3, false, nil)
	ztesting.Equal(t, "x labels", len(h.XLabels), len(xticks))
	for i, l := range h.XLabels {
		ztesting.Equal(t, "x tick value", l.Value, xticks[i])
		ztesting.Equal(t, "x tick label", l.Label, ctx.Format(xticks[i]))
	}
	ztesting.EqualSlice(t, "y labels", h.YLabels, []TickLabel{{"0", 0}, {"1", 1}, {"2", 2}, {"3", 3}, {"4", 4}, {"5", 5}})

	h.Plot(ctx)
	ztesting.Equal(t, "rects", len(ctx.rects), 2)
	ztesting.EqualSlice(t, "tooltips", ctx.tooltips, []string{"5", "3"})
	ztesting.EqualSlice(t, "statics", ctx.statics, []string{"5", "3"})
	plot, _ := ctx.SeriesNodes(0)
	ztesting.Equal(t, "histbar groups", len(plot.FindAllWithClass("histbar")), 2)
	ztesting.Equal(t, "histbars group", len(plot.FindAllWithClass("histbars")), 1)
}

func TestEmptyHistogram(t *testing.T) {
	ctx := newFakeContext()
	h := NewHistogram()
	ztesting.Equal(t, "has data", h.HasData(), false)
	h.Compute(ctx)
	ztesting.Equal(t, "x labels", len(h.XLabels), 0)
	ztesting.Equal(t, "y labels", len(h.YLabels), 0)
	ztesting.Equal(t, "box untouched", ctx.box, DefaultBox())
	h.Plot(ctx)
	ztesting.Equal(t, "rects", len(ctx.rects), 0)

	empty := NewHistogram(NewSeries("empty"))
	ztesting.Equal(t, "empty series has data", empty.HasData(), false)
	allMissing := NewHistogram(NewSeries("missing", P(zfloat.Missing, zfloat.Missing, zfloat.Missing)))
	ztesting.Equal(t, "all missing has data", allMissing.HasData(), false)
}

func TestZeroBaselineInYRange(t *testing.T) {
	for _, zero := range []float64{-10, 0, 2, 4, 100} {
		ctx := newFakeContext()
		ctx.zero = zero
		h := NewHistogram(NewSeries("", P(3, 0, 1), P(5, 1, 2), P(-1, 2, 4)))
		h.Compute(ctx)
		ztesting.LessThan(t, "ymin <= zero", ctx.box.YMin, zero)
		ztesting.GreaterThan(t, "ymax >= zero", ctx.box.YMax, zero)
	}
}

func TestLogarithmicSkipsNonPositive(t *testing.T) {
	values := []Point{P(0, 0, 1), P(-2, 1, 2), P(10, 2, 3), P(100, 3, 4)}
	for _, log := range []bool{false, true} {
		ctx := newFakeContext()
		ctx.logarithmic = log
		h := NewHistogram(NewSeries("", values...))
		h.Compute(ctx)
		h.Plot(ctx)
		want := 4
		if log {
			want = 2
			ztesting.Equal(t, "log zero", h.Zero(), 10.0)
			ztesting.Equal(t, "log ymin", ctx.box.YMin, 10.0)
		}
		ztesting.Equal(t, "bars", len(ctx.rects), want)
	}
}

func TestMissingPointsGetNoAnnotation(t *testing.T) {
	ctx := newFakeContext()
	s := NewSeries("", P(zfloat.Missing, 0, 1), P(2, zfloat.Missing, 2), P(2, 2, zfloat.Missing), P(4, 3, 4))
	s.SetMetadata(0, Metadata{Label: "missing"})
	h := NewHistogram(s)
	ztesting.Equal(t, "has data", h.HasData(), true)
	h.Compute(ctx)
	h.Plot(ctx)
	ztesting.Equal(t, "bars", len(ctx.rects), 1)
	ztesting.EqualSlice(t, "tooltips", ctx.tooltips, []string{"4"})
	ztesting.EqualSlice(t, "statics", ctx.statics, []string{"4"})
}

func TestBarMargin(t *testing.T) {
	ctx := newFakeContext()
	h := NewHistogram()
	parent := zsvg.NewNode("g")
	h.barRect(ctx, parent, 1, 3, 4, 0)
	full := ctx.rects[0]
	ztesting.Equal(t, "full x", full.Pos.X, 10.0)
	ztesting.Equal(t, "full width", full.Size.W, 20.0)
	ztesting.Equal(t, "full y", full.Pos.Y, 60.0)
	ztesting.Equal(t, "full height", full.Size.H, 40.0)

	ctx.margin = 0.25
	h.barRect(ctx, parent, 1, 3, 4, 0)
	shrunk := ctx.rects[1]
	ztesting.Equal(t, "shifted x", shrunk.Pos.X, full.Pos.X+full.Size.W*0.25)
	ztesting.Equal(t, "shrunk width", shrunk.Size.W, full.Size.W-2*full.Size.W*0.25)
	ztesting.Equal(t, "same height", shrunk.Size.H, full.Size.H)
}

func TestHorizontalCenterIsSwapped(t *testing.T) {
	h := NewHistogram()
	for _, p := range []Point{P(4, 1, 3), P(-2, 0, 0.5), P(7.5, 2, 9)} {
		ctx := newFakeContext()
		ctx.margin = 0.1
		vertical := h.barRect(ctx, zsvg.NewNode("g"), p.X0, p.X1, p.Y, 1)
		ctx.orientation = Horizontal
		horizontal := h.barRect(ctx, zsvg.NewNode("g"), p.X0, p.X1, p.Y, 1)
		ztesting.Equal(t, "swapped center", horizontal, vertical.Swapped())
	}
}

func TestTickLabelsKeepExactValues(t *testing.T) {
	ctx := newFakeContext()
	ctx.format = NiceFormatter(0)
	h := NewHistogram(NewSeries("", P(0.35, 0, 0.7), P(0.1, 0.7, 1.3)))
	h.Compute(ctx)
	ticks := ctx.Scale(ctx.box.YMin, ctx.box.YMax, false, nil)
	ztesting.Equal(t, "count", len(h.YLabels), len(ticks))
	for i, l := range h.YLabels {
		ztesting.Equal(t, "value", l.Value, ticks[i])
	}
}

func TestSecondarySeries(t *testing.T) {
	ctx := newFakeContext()
	primary := NewSeries("primary", P(10, 0, 1))
	secondary := NewSeries("secondary", P(100, 1, 2))
	secondary.Role = Secondary
	h := NewHistogram(secondary, primary)
	h.Compute(ctx)
	ztesting.Equal(t, "x from all", ctx.box.XMax, 2.0)
	ztesting.Equal(t, "y from primary", ctx.box.YMax, 10.0)
	ztesting.Equal(t, "secondary labels", len(h.SecondaryYLabels), 11)
	last := h.SecondaryYLabels[len(h.SecondaryYLabels)-1]
	ztesting.Equal(t, "secondary label", last.Label, "100")
	ztesting.EqualFloat(t, "secondary rescaled", last.Value, 10)

	h.Plot(ctx)
	ztesting.EqualSlice(t, "series order", ctx.seriesOrder, []int{0, 1})
	ztesting.Equal(t, "bars", len(ctx.rects), 2)
	ztesting.EqualFloat(t, "secondary bar top", ctx.rects[1].Pos.Y, fixedMapper{}.MapY(10))
	ztesting.EqualFloat(t, "secondary bar height", ctx.rects[1].Size.H, 100)
	ztesting.EqualSlice(t, "tooltips show raw values", ctx.tooltips, []string{"10", "100"})
}

func TestLogarithmicXTicks(t *testing.T) {
	ctx := newFakeContext()
	ctx.logarithmic = true
	h := NewHistogram(NewSeries("", P(5, 1, 10), P(6, 10, 100), P(7, 100, 1000)))
	h.Compute(ctx)
	ztesting.Equal(t, "x ticks", len(h.XLabels), 28)
	ztesting.Equal(t, "first", h.XLabels[0].Value, 1.0)
	ztesting.Equal(t, "tenth", h.XLabels[9].Value, 10.0)
	ztesting.Equal(t, "last", h.XLabels[len(h.XLabels)-1].Value, 1000.0)

	ctx = newFakeContext()
	ctx.logarithmic = true
	h = NewHistogram(NewSeries("", P(5, 0, 4)))
	h.Compute(ctx)
	ztesting.Equal(t, "linear when x starts at 0", h.XLabels[0].Value, 0.0)
}
