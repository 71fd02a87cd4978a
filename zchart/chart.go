package zchart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/torlangballe/zchart/zgeo"
	"github.com/torlangballe/zchart/zlog"
	"github.com/torlangballe/zchart/zmath"
	"github.com/torlangballe/zchart/zsvg"
	"github.com/torlangballe/zchart/zwords"
)

// EnableLog turns on render logging, or use zlog.SetEnabled("zchart.EnableLog", true)
var EnableLog zlog.Enabler

func init() {
	zlog.RegisterEnabler("zchart.EnableLog", &EnableLog)
}

type seriesNodes struct {
	plot    *zsvg.Node
	overlay *zsvg.Node
}

// Chart renders a Histogram to svg. It is the RenderContext the histogram is computed and plotted with.
// A Chart builds a new document each Render, but should not be rendered concurrently.
type Chart struct {
	Config    Config
	Histogram *Histogram
	svg       *zsvg.SVGGenerator
	box       Box
	view      CoordinateMapper
	plotRect  zgeo.Rect
	plot      *zsvg.Node
	overlay   *zsvg.Node
	series    map[int]seriesNodes
	format    NumericFormatter
	fontSize  float64
}

func New(config Config, series ...*Series) *Chart {
	c := &Chart{Config: config}
	c.Histogram = NewHistogram(series...)
	c.format = NiceFormatter(config.ValueDigits)
	return c
}

func (c *Chart) SetFormatter(f NumericFormatter) {
	c.format = f
}

// SVG returns the document made by the last Build or Render
func (c *Chart) SVG() *zsvg.SVGGenerator {
	return c.svg
}

func (c *Chart) PlotRect() zgeo.Rect {
	return c.plotRect
}

// Render builds the chart and writes it as svg to w
func (c *Chart) Render(w io.Writer) error {
	err := c.Build()
	if err != nil {
		return err
	}
	_, err = c.svg.WriteTo(w)
	if err != nil {
		return zlog.Error(err, "write svg")
	}
	return nil
}

func (c *Chart) RenderString() (string, error) {
	var sb strings.Builder
	err := c.Render(&sb)
	return sb.String(), err
}

// Build creates the svg document. If the histogram has no data, a "No data" text is drawn instead of axes and bars.
func (c *Chart) Build() error {
	err := c.Config.Validate()
	if err != nil {
		return err
	}
	size := zgeo.SizeD(c.Config.Width, c.Config.Height)
	c.fontSize = math.Max(8, math.Min(14, size.Min()/40))
	label := c.Config.Title
	if label == "" {
		label = "histogram"
	}
	c.svg = zsvg.NewGenerator(size, label, c.fontSize)
	c.svg.Horizontal = c.Config.Horizontal
	c.series = map[int]seriesNodes{}
	c.box = DefaultBox()
	c.view = nil
	c.svg.AddStyle(c.css())
	c.svg.SetColor(zgeo.ColorWhite)
	c.svg.FillRect(c.svg.Group(nil, "background"), zgeo.RectFromWH(size.W, size.H), 0)

	hasData := c.Histogram.HasData()
	if hasData {
		c.Histogram.Compute(c)
	}
	c.layout()
	if c.Config.Title != "" {
		c.svg.DrawTextAlignedInPos(nil, zgeo.PosD(size.W/2, c.Config.Margin*size.Min()), c.Config.Title, zgeo.TopCenter, "title")
	}
	c.plot = c.svg.Node(nil, "g", "class", "plot", "transform", translate(c.plotRect.Pos))
	c.svg.SetColor(zgeo.ColorNewGray(0.97, 1))
	c.svg.FillRect(c.plot, zgeo.RectFromWH(c.plotRect.Size.W, c.plotRect.Size.H), 0).Set("class", "background")
	if !hasData {
		c.svg.DrawTextAlignedInPos(c.plot, c.plotRect.Size.Pos().DividedByD(2), zwords.NoData(), zgeo.Center, "no_data")
		zlog.Info(EnableLog, "zchart: no data in", len(c.Histogram.Series), "series")
		return nil
	}
	c.box.Fix(c.Config.Logarithmic)
	c.view = NewView(c.plotRect.Size, c.box, c.Orientation(), c.Config.Logarithmic)
	c.overlay = c.svg.Node(nil, "g", "class", "plot text-overlay", "transform", translate(c.plotRect.Pos))
	c.drawAxes()
	c.Histogram.Plot(c)
	zlog.Info(EnableLog, "zchart: rendered", len(c.Histogram.Series), "series in box", c.box, c.Orientation())
	return nil
}

func translate(p zgeo.Pos) string {
	return fmt.Sprintf("translate(%s, %s)", zsvg.FormatValue(p.X), zsvg.FormatValue(p.Y))
}

func (c *Chart) css() string {
	var sb strings.Builder
	fs := zwords.NiceFloat(c.fontSize, 1)
	fmt.Fprintf(&sb, "text{font-family:sans-serif;font-size:%spx;fill:#333}\n", fs)
	fmt.Fprintf(&sb, ".title{font-size:%spx}\n", zwords.NiceFloat(c.fontSize*1.5, 1))
	fmt.Fprintf(&sb, ".no_data{font-size:%spx}\n", zwords.NiceFloat(c.fontSize*2, 1))
	sb.WriteString(".guide{stroke:#ddd}\n.axis-line{stroke:#666}\n.value{fill:#000}\n")
	for i, col := range zgeo.Palette {
		hex := col.Hex()
		fmt.Fprintf(&sb, ".color-%d .rect{fill:%s;stroke:%s;fill-opacity:0.7}\n", i, hex, hex)
	}
	return sb.String()
}

// layout sets the plot area inside margins, title and the tick label space of each edge.
func (c *Chart) layout() {
	size := c.svg.Size()
	m := c.Config.Margin * size.Min()
	r := zgeo.RectFromWH(size.W, size.H).Inset(m, m)
	if c.Config.Title != "" {
		r.SetMinY(r.Pos.Y + c.fontSize*2.5)
	}
	h := c.Histogram
	side := c.labelWidth(h.YLabels)
	secondary := c.labelWidth(h.SecondaryYLabels)
	if c.Config.Horizontal {
		side = c.labelWidth(h.XLabels)
		if len(h.SecondaryYLabels) != 0 {
			r.SetMinY(r.Pos.Y + c.fontSize*2)
		}
	} else if len(h.SecondaryYLabels) != 0 {
		r.SetMaxX(r.Max().X - secondary)
	}
	r.SetMinX(r.Pos.X + side)
	r.SetMaxY(r.Max().Y - c.fontSize*2)
	r.Size.W = math.Max(1, r.Size.W)
	r.Size.H = math.Max(1, r.Size.H)
	c.plotRect = r
}

func (c *Chart) labelWidth(labels []TickLabel) float64 {
	var n int
	for _, l := range labels {
		n = max(n, len(l.Label))
	}
	return float64(n)*c.fontSize*0.6 + c.fontSize
}

func (c *Chart) Mapper() CoordinateMapper {
	return c.view
}

func (c *Chart) Format(v float64) string {
	return c.format(v)
}

func (c *Chart) Box() *Box {
	return &c.box
}

func (c *Chart) Orientation() Orientation {
	return c.Config.Orientation()
}

func (c *Chart) Logarithmic() bool {
	return c.Config.Logarithmic
}

func (c *Chart) Zero() float64 {
	return c.Config.Zero
}

func (c *Chart) OrderMin() *int {
	return c.Config.OrderMin
}

func (c *Chart) SeriesMargin() float64 {
	return c.Config.SeriesMargin
}

func (c *Chart) RoundedBars() float64 {
	return c.Config.RoundedBars
}

func (c *Chart) Scale(min, max float64, logarithmic bool, orderMin *int) []float64 {
	return zmath.ComputeScale(min, max, logarithmic, orderMin, c.Config.MinScale, c.Config.MaxScale)
}

func (c *Chart) SeriesNodes(index int) (plot, overlay *zsvg.Node) {
	sn, got := c.series[index]
	if !got {
		class := fmt.Sprintf("series serie-%d color-%d", index, index%len(zgeo.Palette))
		sn.plot = c.svg.Group(c.plot, class)
		sn.overlay = c.svg.Group(c.overlay, class)
		c.series[index] = sn
	}
	return sn.plot, sn.overlay
}

func (c *Chart) Group(parent *zsvg.Node, class string) *zsvg.Node {
	return c.svg.Group(parent, class)
}

func (c *Chart) TransposableRect(parent *zsvg.Node, rect zgeo.Rect, corner float64, class string) *zsvg.Node {
	return c.svg.TransposableRect(parent, rect, corner, class)
}

func (c *Chart) Decorate(node *zsvg.Node, meta *Metadata) *zsvg.Node {
	return c.svg.Decorate(node, meta)
}

// Tooltip adds the value and center as <desc> data for a tooltip to show, if Config.Tooltips.
func (c *Chart) Tooltip(node *zsvg.Node, value string, center zgeo.Pos, classes string) {
	if !c.Config.Tooltips {
		return
	}
	node.Add("desc", "class", "value").Text = value
	node.Add("desc", "class", "x "+classes).Text = zsvg.FormatValue(center.X)
	node.Add("desc", "class", "y "+classes).Text = zsvg.FormatValue(center.Y)
}

// StaticValue prints value at center in container, if Config.PrintValues.
func (c *Chart) StaticValue(container *zsvg.Node, value string, center zgeo.Pos) {
	if !c.Config.PrintValues {
		return
	}
	c.svg.DrawTextAlignedInPos(container, center, value, zgeo.Center, "value")
}
