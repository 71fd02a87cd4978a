package zgeo

import (
	"fmt"
	"math"

	"github.com/torlangballe/zchart/zfloat"
)

type Pos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

var (
	PosUndef = PosD(zfloat.Missing, zfloat.Missing)
	PosNull  Pos
)

func PosD(x, y float64) Pos {
	return Pos{X: x, Y: y}
}

func (p Pos) String() string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}

// Element returns Y if vertical, else X
func (p Pos) Element(vertical bool) float64 {
	if vertical {
		return p.Y
	}
	return p.X
}

func (p Pos) Size() Size {
	return Size{p.X, p.Y}
}

func (p *Pos) Set(x, y float64) {
	p.X = x
	p.Y = y
}

func (p Pos) Swapped() Pos {
	return Pos{X: p.Y, Y: p.X}
}

// IsUndef is true if either of X or Y is a missing value
func (p Pos) IsUndef() bool {
	return zfloat.IsMissing(p.X) || zfloat.IsMissing(p.Y)
}

func (p Pos) IsNull() bool             { return p.X == 0.0 && p.Y == 0.0 }
func (p Pos) Length() float64          { return math.Sqrt(p.X*p.X + p.Y*p.Y) }
func (p Pos) DividedByD(a float64) Pos { return Pos{p.X / a, p.Y / a} }
func (p Pos) Plus(a Pos) Pos           { return Pos{p.X + a.X, p.Y + a.Y} }
func (p Pos) Minus(a Pos) Pos          { return Pos{p.X - a.X, p.Y - a.Y} }
func (p *Pos) Add(a Pos)               { p.X += a.X; p.Y += a.Y }
