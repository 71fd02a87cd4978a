package zhistogram

import (
	"fmt"
	"io"

	"github.com/torlangballe/zchart/zchart"
	"github.com/torlangballe/zchart/zfloat"
	"github.com/torlangballe/zchart/zgeo"
	"github.com/torlangballe/zchart/zint"
	"github.com/torlangballe/zchart/zwords"
)

type DrawOpts struct {
	Config             zchart.Config
	MaxClassIndex      int
	OutlierBelow       bool                                // draw a bar for values below MinValue
	OutlierAbove       bool                                // draw a bar for values above the last class
	AsPercent          bool                                // bar heights are percent of total count
	CriticalClassValue float64                             // if a class's max range is > this, show in red
	SignificantDigits  int                                 // For bar labels
	BarNameFunc        func(n string) (string, zgeo.Color) // this is for transforming named classes' names and getting a color for it, if Valid
}

func DefaultDrawOpts() DrawOpts {
	return DrawOpts{Config: zchart.DefaultConfig(), OutlierAbove: true}
}

func (h *Histogram) barValue(count int, opts DrawOpts) float64 {
	if opts.AsPercent {
		return h.CountAsRatio(count) * 100
	}
	return float64(count)
}

// Points returns a chart point per class, with metadata labelling each.
// Range classes span from the previous class's MaxRange (or MinValue) to their own,
// named and accumulated classes are drawn one unit wide each, in order.
func (h *Histogram) Points(opts DrawOpts) ([]zchart.Point, map[int]zchart.Metadata) {
	var points []zchart.Point
	meta := map[int]zchart.Metadata{}
	classCount := len(h.Classes)
	if opts.MaxClassIndex != 0 {
		zint.Minimize(&classCount, opts.MaxClassIndex)
	}
	ranged := h.HasRanges()
	add := func(p zchart.Point, m zchart.Metadata) {
		meta[len(points)] = m
		points = append(points, p)
	}
	if ranged && opts.OutlierBelow && h.OutlierBelow != 0 && classCount != 0 {
		width := h.Classes[0].MaxRange - h.MinValue
		p := zchart.P(h.barValue(h.OutlierBelow, opts), h.MinValue-width, h.MinValue)
		add(p, h.outlierMetadata("<", h.OutlierBelow))
	}
	prev := h.MinValue
	for i := 0; i < classCount; i++ {
		class := h.Classes[i]
		var p zchart.Point
		m := zchart.Metadata{}
		str := class.Label
		if ranged {
			p = zchart.P(h.barValue(class.Count, opts), prev, class.MaxRange)
			prev = class.MaxRange
		} else {
			p = zchart.P(h.barValue(class.Count, opts), float64(i), float64(i+1))
		}
		if str != "" && opts.BarNameFunc != nil {
			var col zgeo.Color
			str, col = opts.BarNameFunc(str)
			if col.Valid {
				m.Color = col.Hex()
			}
		}
		if str == "" {
			str = h.rangeLabel(class.MaxRange, opts)
			if opts.CriticalClassValue != 0 && class.MaxRange > opts.CriticalClassValue {
				m.Color = zgeo.ColorRed.Hex()
			}
		}
		m.Label = str
		m.Tooltip = fmt.Sprint(str, ": ", class.Count, h.Unit)
		add(p, m)
	}
	if ranged && opts.OutlierAbove && h.OutlierAbove != 0 && classCount != 0 {
		last := h.Classes[classCount-1].MaxRange
		width := last - h.MinValue
		if classCount > 1 {
			width = last - h.Classes[classCount-2].MaxRange
		}
		p := zchart.P(h.barValue(h.OutlierAbove, opts), last, last+width)
		add(p, h.outlierMetadata(">", h.OutlierAbove))
	}
	return points, meta
}

func (h *Histogram) rangeLabel(max float64, opts DrawOpts) string {
	sig := 7 // so it doesn't show things like 0.300000000001
	if opts.SignificantDigits != 0 {
		sig = opts.SignificantDigits + 1
	}
	return zwords.NiceFloat(zfloat.KeepFractionDigits(max, sig), sig)
}

func (h *Histogram) outlierMetadata(sign string, count int) zchart.Metadata {
	col := zgeo.PaletteColor(0).Mixed(zgeo.ColorRed, 0.5)
	return zchart.Metadata{
		Label:   sign,
		Tooltip: fmt.Sprint(sign, " ", count, h.Unit),
		Color:   col.Hex(),
	}
}

// Series makes a chart series of the histogram's classes
func (h *Histogram) Series(title string, opts DrawOpts) *zchart.Series {
	points, meta := h.Points(opts)
	s := zchart.NewSeries(title, points...)
	s.Metadata = meta
	return s
}

// Draw renders the histogram as an svg chart to w, using opts.Config, or the default config if it has no size.
func (h *Histogram) Draw(w io.Writer, opts DrawOpts) error {
	config := opts.Config
	if config.Width == 0 || config.Height == 0 {
		config = zchart.DefaultConfig()
	}
	if opts.AsPercent && config.ValueDigits == 0 {
		config.ValueDigits = 1
	}
	title := config.Title
	if title == "" {
		title = h.Unit
	}
	chart := zchart.New(config, h.Series(title, opts))
	return chart.Render(w)
}
