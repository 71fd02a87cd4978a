package zhistogram

import (
	"bytes"
	"strings"
	"testing"

	"github.com/torlangballe/zchart/zchart"
	"github.com/torlangballe/zchart/zgeo"
	"github.com/torlangballe/zchart/zlog"
	"github.com/torlangballe/zchart/ztesting"
)

func counts(h *Histogram) []int {
	var out []int
	for _, c := range h.Classes {
		out = append(out, c.Count)
	}
	return out
}

func testSimple(t *testing.T) {
	zlog.Warn("testSimple")
	h1 := New(10, 0, 70)
	ztesting.Equal(t, "class count", len(h1.Classes), 7)
	h1.AddValues(5, 10, 12, 55)
	ztesting.EqualSlice(t, "classes", counts(h1), []int{2, 1, 0, 0, 0, 1, 0})

	h2 := New(10, 0, 70)
	h2.AddValues(7, 14, 42, 80, -1)
	ztesting.EqualSlice(t, "classes2", counts(h2), []int{1, 1, 0, 0, 1, 0, 0})
	ztesting.Equal(t, "above", h2.OutlierAbove, 1)
	ztesting.Equal(t, "below", h2.OutlierBelow, 1)

	h1.MergeIn(*h2)
	ztesting.EqualSlice(t, "merged", counts(h1), []int{3, 2, 0, 0, 1, 1, 0})
	ztesting.Equal(t, "total", h1.TotalCount(), 9)
	ztesting.Equal(t, "max used", h1.MaxUsedClassIndex(), 6)
}

func testNames(t *testing.T) {
	zlog.Warn("testNames")
	h1 := New(-1, 0, 0)
	for _, n := range []string{"512", "512", "512", "256", "256", "64"} {
		h1.AddName(n)
	}
	ztesting.Equal(t, "set-count", h1.ClassString(), "512:3 256:2 64:1")

	h2 := New(-1, 0, 0)
	for _, n := range []string{"16", "512", "512", "256", "256", "256", "64", "64", "64", "64", "64"} {
		h2.AddName(n)
	}
	ztesting.Equal(t, "set-count2", h2.ClassString(), "16:1 512:2 256:3 64:5")

	h1.MergeIn(*h2)
	ztesting.Equal(t, "set-merged-count", h1.ClassString(), "512:5 256:5 64:6 16:1")
	sorted := h1.NamedClassesSortedByLabel()
	ztesting.Equal(t, "sorted first", sorted[0].Label, "16")
	ztesting.Equal(t, "sorted last", sorted[3].Label, "512")
}

func TestAll(t *testing.T) {
	testSimple(t)
	testNames(t)
}

func TestClassCount(t *testing.T) {
	ztesting.Equal(t, "whole", ClassCount(10, 0, 70), 7)
	ztesting.Equal(t, "partial last", ClassCount(10, 0, 75), 8)
	ztesting.Equal(t, "rounding only", ClassCount(1e-7, 0, 1), 10000000)
	ztesting.Equal(t, "tenths", ClassCount(0.1, 0, 0.3), 3)
	ztesting.Equal(t, "no step", ClassCount(0, 0, 1), 0)
	ztesting.Equal(t, "empty range", ClassCount(1, 5, 5), 0)
	ztesting.Equal(t, "classes made", len(New(0.1, 0, 0.3).Classes), 3)
}

func TestSetupRanges(t *testing.T) {
	h := New(0, 0, 0)
	h.SetupRanges(0, 1, 5, 10)
	h.AddValues(0.5, 1, 3, 12)
	ztesting.EqualSlice(t, "counts", counts(h), []int{2, 1, 0})
	ztesting.Equal(t, "above", h.OutlierAbove, 1)
	ztesting.Equal(t, "sum", h.Sum(), 18.0)
	ztesting.Equal(t, "has ranges", h.HasRanges(), true)
}

func TestPoints(t *testing.T) {
	h := New(10, 0, 30)
	h.AddValues(1, 2, 15, 25, 26, 27, 50, -4)
	opts := DefaultDrawOpts()
	opts.OutlierBelow = true
	points, meta := h.Points(opts)
	ztesting.EqualSlice(t, "points", points, []zchart.Point{
		zchart.P(1, -10, 0),
		zchart.P(2, 0, 10),
		zchart.P(1, 10, 20),
		zchart.P(3, 20, 30),
		zchart.P(1, 30, 40),
	})
	ztesting.Equal(t, "below label", meta[0].Label, "<")
	ztesting.Equal(t, "class label", meta[2].Label, "20")
	ztesting.Equal(t, "above label", meta[4].Label, ">")

	opts.AsPercent = true
	opts.OutlierBelow = false
	opts.OutlierAbove = false
	points, _ = h.Points(opts)
	ztesting.Equal(t, "percent points", len(points), 3)
	ztesting.EqualFloat(t, "percent", points[2].Y, 3*100.0/8)
}

func TestNamedPoints(t *testing.T) {
	h := New(0, 0, 0)
	h.AddName("tcp")
	h.AddName("udp")
	h.AddName("tcp")
	opts := DefaultDrawOpts()
	opts.BarNameFunc = func(n string) (string, zgeo.Color) {
		if n == "udp" {
			return "UDP", zgeo.ColorBlue
		}
		return n, zgeo.Color{}
	}
	s := h.Series("protocols", opts)
	ztesting.EqualSlice(t, "points", s.Values, []zchart.Point{zchart.P(2, 0, 1), zchart.P(1, 1, 2)})
	ztesting.Equal(t, "renamed", s.Metadata[1].Label, "UDP")
	ztesting.Equal(t, "colored", s.Metadata[1].Color, "#0000ff")
	ztesting.Equal(t, "uncolored", s.Metadata[0].Color, "")
}

func TestDraw(t *testing.T) {
	var h Histogram
	h.SetupNamedRanges(0, 30, "30s", 60, "1m", 300, "5m", 3600, "1h")
	h.AddValues(10, 22, 5, 33, 16, 44, 55, 33, 70, 71, 72, 60, 155, 222, 211, 333, 555, 4444)
	ztesting.EqualSlice(t, "classes", counts(&h), []int{4, 5, 6, 2})
	ztesting.Equal(t, "above", h.OutlierAbove, 1)

	opts := DefaultDrawOpts()
	opts.Config.Width = 400
	opts.Config.Height = 300
	var buf bytes.Buffer
	err := h.Draw(&buf, opts)
	if err != nil {
		t.Fatal(err)
	}
	svg := buf.String()
	ztesting.Equal(t, "bars", strings.Count(svg, `class="histbar"`), 5)
	if !strings.Contains(svg, "<desc class=\"label\">1m</desc>") {
		t.Error("no class label in svg")
	}
}
