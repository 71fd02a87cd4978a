package zsvg

import (
	"strings"
	"testing"

	"github.com/torlangballe/zchart/zgeo"
	"github.com/torlangballe/zchart/ztesting"
)

func TestTransposableRect(t *testing.T) {
	s := NewGenerator(zgeo.SizeD(400, 300), "test", 12)
	r := zgeo.RectFromXYWH(10, 100, 20, -50)
	n := s.TransposableRect(nil, r, 0, "rect")
	y, _ := n.Float("y")
	h, _ := n.Float("height")
	ztesting.Equal(t, "normalized y", y, 50.0)
	ztesting.Equal(t, "normalized height", h, 50.0)

	s.Horizontal = true
	n = s.TransposableRect(nil, r, 3, "rect")
	x, _ := n.Float("x")
	w, _ := n.Float("width")
	h, _ = n.Float("height")
	ztesting.Equal(t, "swapped x", x, 50.0)
	ztesting.Equal(t, "swapped width", w, 50.0)
	ztesting.Equal(t, "swapped height", h, 20.0)
	rx, _ := n.Float("rx")
	ztesting.Equal(t, "corner", rx, 3.0)
}

func TestDecorate(t *testing.T) {
	s := NewGenerator(zgeo.SizeD(100, 100), "test", 12)
	g := s.Group(nil, "histbar")
	meta := &Metadata{Link: "https://example.com/a?b=1&c=2", Label: "first", Color: "red"}
	inner := s.Decorate(g, meta)
	ztesting.Equal(t, "link child", inner.Tag, "a")
	ztesting.Equal(t, "link parent", inner.Parent(), g)
	ztesting.Equal(t, "target default", inner.String("target"), "_blank")
	ztesting.Equal(t, "label desc", len(inner.FindAllWithClass("label")), 1)
	ztesting.Equal(t, "color style", inner.String("style"), "fill: red; stroke: red")
	ztesting.Equal(t, "no meta", s.Decorate(g, nil), g)

	out := s.String()
	if !strings.Contains(out, `xlink:href="https://example.com/a?b=1&amp;c=2"`) {
		t.Error("link not escaped:", out)
	}
}

func TestWriteTo(t *testing.T) {
	s := NewGenerator(zgeo.SizeD(200, 100), "histo", 12)
	s.AddStyle(".rect{fill:red}")
	g := s.Group(nil, "plot")
	s.SetColor(zgeo.ColorWhite)
	s.FillRect(g, zgeo.RectFromWH(200, 100), 0)
	s.DrawTextAlignedInPos(g, zgeo.PosD(100, 50), "a<b", zgeo.Center, "title")
	want := `<?xml version="1.0" encoding="utf-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="200" height="100" viewBox="0 0 200 100" role="img" aria-label="histo">
  <defs>
    <style type="text/css">.rect{fill:red}</style>
  </defs>
  <g class="plot">
    <rect x="0" y="0" width="200" height="100" style="fill:#ffffff"/>
    <text x="100" y="54" text-anchor="middle" class="title">a&lt;b</text>
  </g>
</svg>
`
	ztesting.EqualLines(t, "svg output", s.String(), want)
}

func TestFormatValue(t *testing.T) {
	ztesting.Equal(t, "float", FormatValue(33.333333333), "33.3333")
	ztesting.Equal(t, "path", FormatValue([]any{"M", 1.5, 2.0, "L", 3.0, 4.25}), "M 1.5 2 L 3 4.25")
	ztesting.Equal(t, "int", FormatValue(3), "3")
}
