package zsvg

import (
	"github.com/torlangballe/zchart/zgeo"
)

// Metadata decorates a drawn node with a link, tooltip title, label or style.
type Metadata struct {
	Label   string `json:"label,omitempty" toml:"label,omitempty" yaml:"label,omitempty"`
	Tooltip string `json:"tooltip,omitempty" toml:"tooltip,omitempty" yaml:"tooltip,omitempty"`
	Link    string `json:"link,omitempty" toml:"link,omitempty" yaml:"link,omitempty"`
	Target  string `json:"target,omitempty" toml:"target,omitempty" yaml:"target,omitempty"`
	Style   string `json:"style,omitempty" toml:"style,omitempty" yaml:"style,omitempty"`
	Color   string `json:"color,omitempty" toml:"color,omitempty" yaml:"color,omitempty"`
}

type SVGGenerator struct {
	Root       *Node
	Defs       *Node
	Horizontal bool // Horizontal makes TransposableRect swap x/y and width/height
	size       zgeo.Size
	color      zgeo.Color
	fontSize   float64
	title      string
}

func NewGenerator(size zgeo.Size, tag string, fontSize float64) *SVGGenerator {
	s := &SVGGenerator{}
	s.size = size
	s.title = tag
	s.color = zgeo.ColorBlack
	s.fontSize = fontSize
	s.Root = NewNode("svg",
		"xmlns", "http://www.w3.org/2000/svg",
		"xmlns:xlink", "http://www.w3.org/1999/xlink",
		"width", size.W,
		"height", size.H,
		"viewBox", []float64{0, 0, size.W, size.H},
		"role", "img",
		"aria-label", tag,
	)
	s.Defs = s.Root.Add("defs")
	return s
}

func (s *SVGGenerator) Size() zgeo.Size {
	return s.size
}

func (s *SVGGenerator) SetColor(col zgeo.Color) {
	s.color = col
}

// AddStyle adds a css <style> block to the defs
func (s *SVGGenerator) AddStyle(css string) *Node {
	n := s.Defs.Add("style", "type", "text/css")
	n.Text = css
	return n
}

// Node adds a child to parent, or the root if parent is nil
func (s *SVGGenerator) Node(parent *Node, tag string, keyVals ...any) *Node {
	if parent == nil {
		parent = s.Root
	}
	return parent.Add(tag, keyVals...)
}

// Group adds a <g> with class to parent
func (s *SVGGenerator) Group(parent *Node, class string) *Node {
	if class == "" {
		return s.Node(parent, "g")
	}
	return s.Node(parent, "g", "class", class)
}

// TransposableRect adds a rect, with rect's x/y and w/h swapped if s.Horizontal.
// Negative sizes are normalized, so a rect can be given from any corner.
func (s *SVGGenerator) TransposableRect(parent *Node, rect zgeo.Rect, corner float64, class string) *Node {
	if s.Horizontal {
		rect = rect.Swapped()
	}
	return s.rect(parent, rect, corner, "class", class)
}

func (s *SVGGenerator) rect(parent *Node, rect zgeo.Rect, corner float64, keyVals ...any) *Node {
	rect = rect.Normalized()
	n := s.Node(parent, "rect",
		"x", rect.Pos.X,
		"y", rect.Pos.Y,
		"width", rect.Size.W,
		"height", rect.Size.H,
	)
	if corner != 0 {
		n.SetPairs("rx", corner, "ry", corner)
	}
	n.SetPairs(keyVals...)
	return n
}

// FillRect adds a rect filled with the current color
func (s *SVGGenerator) FillRect(parent *Node, r zgeo.Rect, corner float64) *Node {
	return s.rect(parent, r, corner, "style", "fill:"+s.color.Hex())
}

func (s *SVGGenerator) StrokeLine(parent *Node, from, to zgeo.Pos, width float64, class string) *Node {
	n := s.Node(parent, "path",
		"d", []any{"M", from.X, from.Y, "L", to.X, to.Y},
		"stroke-width", width,
	)
	if class != "" {
		n.Set("class", class)
	}
	return n
}

// DrawTextAlignedInPos adds text at pos, anchored at start/middle/end using align's horizontal part.
// Vertical center alignment moves the baseline down a third of the font size.
func (s *SVGGenerator) DrawTextAlignedInPos(parent *Node, pos zgeo.Pos, text string, align zgeo.Alignment, class string) *Node {
	anchor := "middle"
	if align.Has(zgeo.Left) {
		anchor = "start"
	} else if align.Has(zgeo.Right) {
		anchor = "end"
	}
	if align.Has(zgeo.VertCenter) {
		pos.Y += s.fontSize / 3
	} else if align.Has(zgeo.Top) {
		pos.Y += s.fontSize
	}
	n := s.Node(parent, "text", "x", pos.X, "y", pos.Y, "text-anchor", anchor)
	if class != "" {
		n.Set("class", class)
	}
	n.Text = text
	return n
}

// Decorate adds metadata to node. If there is a link, an <a> child is made,
// and returned for the caller to add the decorated content to.
func (s *SVGGenerator) Decorate(node *Node, meta *Metadata) *Node {
	if meta == nil {
		return node
	}
	if meta.Link != "" {
		target := meta.Target
		if target == "" {
			target = "_blank"
		}
		node = node.Add("a", "xlink:href", meta.Link, "target", target)
		node.Add("desc", "class", "xlink").Text = meta.Link
	}
	if meta.Tooltip != "" {
		node.Add("title").Text = meta.Tooltip
	}
	if meta.Color != "" {
		node.Set("style", "fill: "+meta.Color+"; stroke: "+meta.Color)
	}
	if meta.Style != "" {
		node.Set("style", meta.Style)
	}
	if meta.Label != "" {
		node.Add("desc", "class", "label").Text = meta.Label
	}
	return node
}
