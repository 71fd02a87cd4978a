package zgeo

type Rect struct {
	Pos  Pos  `json:"pos"`
	Size Size `json:"size"`
}

var RectNull Rect

func RectFromXYWH(x, y, w, h float64) Rect {
	return Rect{Pos{x, y}, SizeD(w, h)}
}

func RectFromXY2(x, y, x2, y2 float64) Rect {
	return Rect{PosD(x, y), SizeD(x2-x, y2-y)}
}

// RectFromMarginSize makes a margin rect, with negative size, to be used with Plus()
func RectFromMarginSize(m Size) Rect {
	return RectFromXY2(m.W, m.H, -m.W, -m.H)
}

func RectFromWH(w, h float64) Rect {
	return Rect{Size: SizeD(w, h)}
}

func (r Rect) IsNull() bool {
	return r.Pos.X == 0 && r.Pos.Y == 0 && r.Size.W == 0 && r.Size.H == 0
}

func (r Rect) String() string {
	return r.Pos.String() + " " + r.Size.String()
}

func (r Rect) Max() Pos {
	return Pos{r.Pos.X + r.Size.W, r.Pos.Y + r.Size.H}
}

func (r Rect) Min() Pos {
	return r.Pos
}

func (r *Rect) SetMaxX(x float64) {
	r.Size.W = x - r.Pos.X
}

func (r *Rect) SetMaxY(y float64) {
	r.Size.H = y - r.Pos.Y
}

func (r *Rect) SetMinX(x float64) {
	r.Size.W += (r.Pos.X - x)
	r.Pos.X = x
}

func (r *Rect) SetMinY(y float64) {
	r.Size.H += (r.Pos.Y - y)
	r.Pos.Y = y
}

func (r Rect) XCenter() float64 {
	return r.Pos.X + r.Size.W/2
}

func (r Rect) YCenter() float64 {
	return r.Pos.Y + r.Size.H/2
}

func (r Rect) Center() Pos {
	return PosD(r.XCenter(), r.YCenter())
}


// Plus adds the pos and size of a to r, typically a margin rect from RectFromMarginSize
func (r Rect) Plus(a Rect) Rect {
	return Rect{Pos: r.Pos.Plus(a.Pos), Size: r.Size.Plus(a.Size)}
}

// Swapped transposes the rect, switching x/y and w/h.
func (r Rect) Swapped() Rect {
	return Rect{Pos: r.Pos.Swapped(), Size: r.Size.Swapped()}
}

// Normalized returns a rect with the same area but positive width and height,
// moving Pos to the min corner where the size was negative.
func (r Rect) Normalized() Rect {
	if r.Size.W < 0 {
		r.Pos.X += r.Size.W
		r.Size.W = -r.Size.W
	}
	if r.Size.H < 0 {
		r.Pos.Y += r.Size.H
		r.Size.H = -r.Size.H
	}
	return r
}

// Inset shrinks r by dx on left and right, and dy on top and bottom
func (r Rect) Inset(dx, dy float64) Rect {
	return RectFromXYWH(r.Pos.X+dx, r.Pos.Y+dy, r.Size.W-2*dx, r.Size.H-2*dy)
}

func (r Rect) Contains(pos Pos) bool {
	min := r.Min()
	max := r.Max()
	return pos.X >= min.X && pos.X <= max.X && pos.Y >= min.Y && pos.Y <= max.Y
}

