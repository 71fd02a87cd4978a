package zgeo

import (
	"fmt"
	"math"
)

type Size struct {
	W float64 `json:"w" toml:"w" yaml:"w"`
	H float64 `json:"h" toml:"h" yaml:"h"`
}

var SizeNull Size

// SizeD creates a Size from float64 w and h
func SizeD(w, h float64) Size {
	return Size{w, h}
}

// SizeBoth uses a for W and H
func SizeBoth(a float64) Size {
	return Size{a, a}
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.W, s.H)
}

// Pos converts a size to a Pos
func (s Size) Pos() Pos {
	return Pos{s.W, s.H}
}

// IsNull returns true if S and W are zero
func (s Size) IsNull() bool {
	return s.W == 0 && s.H == 0
}

// Vertice returns the non-vertical s.W or vertical s.H
func (s Size) Vertice(vertical bool) float64 {
	if vertical {
		return s.H
	}
	return s.W
}

func (s Size) Swapped() Size {
	return Size{W: s.H, H: s.W}
}

// Max returns the greater of W and H
func (s Size) Max() float64 {
	return math.Max(s.W, s.H)
}

// Min returns the lesser of W and H
func (s Size) Min() float64 {
	return math.Min(s.W, s.H)
}

func (s Size) Plus(a Size) Size  { return Size{s.W + a.W, s.H + a.H} }
func (s Size) Minus(a Size) Size { return Size{s.W - a.W, s.H - a.H} }
