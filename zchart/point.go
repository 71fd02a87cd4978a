package zchart

import (
	"encoding/json"

	"github.com/torlangballe/zchart/zfloat"
	"github.com/torlangballe/zchart/zlog"
	"gopkg.in/yaml.v3"
)

// Point is one histogram bar: the height Y over the interval [X0, X1).
// A component that has no value is zfloat.Missing.
type Point struct {
	Y  float64
	X0 float64
	X1 float64
}

func P(y, x0, x1 float64) Point {
	return Point{Y: y, X0: x0, X1: x1}
}

// IsMissing is true if any of y, x0 or x1 is missing. Such points aren't drawn.
func (p Point) IsMissing() bool {
	return zfloat.AnyMissing(p.Y, p.X0, p.X1)
}

func (p Point) triple() []*float64 {
	var out []*float64
	for _, f := range []float64{p.Y, p.X0, p.X1} {
		if zfloat.IsMissing(f) {
			out = append(out, nil)
			continue
		}
		v := f
		out = append(out, &v)
	}
	return out
}

func (p *Point) setTriple(t []*float64) error {
	if len(t) != 3 {
		return zlog.NewError("point needs [y, x0, x1], got", len(t), "values")
	}
	vals := make([]float64, 3)
	for i, f := range t {
		vals[i] = zfloat.Missing
		if f != nil {
			vals[i] = *f
		}
	}
	p.Y, p.X0, p.X1 = vals[0], vals[1], vals[2]
	return nil
}

// MarshalJSON writes the point as [y, x0, x1], with null for missing values.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.triple())
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var t []*float64
	err := json.Unmarshal(data, &t)
	if err != nil {
		return err
	}
	return p.setTriple(t)
}

func (p Point) MarshalYAML() (any, error) {
	return p.triple(), nil
}

func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var t []*float64
	err := value.Decode(&t)
	if err != nil {
		return err
	}
	return p.setTriple(t)
}
