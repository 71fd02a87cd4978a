package zchart

import (
	"github.com/torlangballe/zchart/zgeo"
	"github.com/torlangballe/zchart/zlog"
	"github.com/torlangballe/zchart/zsvg"
)

type Metadata = zsvg.Metadata

// SeriesRole says which y scale a series is plotted against.
// Secondary series don't affect the y range, and are rescaled onto it.
type SeriesRole int

const (
	Primary SeriesRole = iota
	Secondary
)

func (r SeriesRole) String() string {
	if r == Secondary {
		return "secondary"
	}
	return "primary"
}

func (r SeriesRole) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *SeriesRole) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "primary":
		*r = Primary
	case "secondary":
		*r = Secondary
	default:
		return zlog.NewError("unknown series role:", string(text))
	}
	return nil
}

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Swapped returns p with x and y switched if o is Horizontal.
// It converts between a chart's logical (along x-axis, along y-axis) order and drawing order.
func (o Orientation) Swapped(p zgeo.Pos) zgeo.Pos {
	if o == Horizontal {
		return p.Swapped()
	}
	return p
}

type Series struct {
	Title    string           `json:"title,omitempty" yaml:"title,omitempty"`
	Role     SeriesRole       `json:"role,omitempty" yaml:"role,omitempty"`
	Values   []Point          `json:"values" yaml:"values"`
	Metadata map[int]Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Points   []Point          `json:"-" yaml:"-"` // Points are what is drawn, set by Histogram.Compute
}

func NewSeries(title string, values ...Point) *Series {
	return &Series{Title: title, Values: values}
}

// SetMetadata attaches meta to the point at index i
func (s *Series) SetMetadata(i int, meta Metadata) {
	if s.Metadata == nil {
		s.Metadata = map[int]Metadata{}
	}
	s.Metadata[i] = meta
}

func (s *Series) metadataAt(i int) *Metadata {
	m, got := s.Metadata[i]
	if !got {
		return nil
	}
	return &m
}
