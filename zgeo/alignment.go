package zgeo

import "strings"

type Alignment int64

const (
	Left Alignment = 1 << iota
	Right
	Top
	HorCenter
	VertCenter
	Bottom

	AlignmentNone Alignment = 0
	BottomLeft              = Bottom | Left
	BottomRight             = Bottom | Right
	BottomCenter            = Bottom | HorCenter
	TopLeft                 = Top | Left
	TopRight                = Top | Right
	TopCenter               = Top | HorCenter
	CenterLeft              = Left | VertCenter
	CenterRight             = Right | VertCenter
	Center                  = HorCenter | VertCenter

	VertPos = Top | VertCenter | Bottom
	HorPos  = Left | HorCenter | Right
)

var nameMap = map[Alignment]string{
	Left:       "left",
	HorCenter:  "horcenter",
	Right:      "right",
	Top:        "top",
	VertCenter: "vertcenter",
	Bottom:     "bottom",
}

func (a Alignment) Has(mask Alignment) bool {
	return a&mask != 0
}

func (a Alignment) String() string {
	if a == AlignmentNone {
		return "none"
	}
	var parts []string
	for _, f := range []Alignment{Left, HorCenter, Right, Top, VertCenter, Bottom} {
		if a&f != 0 {
			parts = append(parts, nameMap[f])
		}
	}
	return strings.Join(parts, "|")
}

// Swapped switches horizontal and vertical alignment parts, for transposed layouts.
func (a Alignment) Swapped() Alignment {
	var n Alignment
	if a&Left != 0 {
		n |= Top
	}
	if a&Right != 0 {
		n |= Bottom
	}
	if a&HorCenter != 0 {
		n |= VertCenter
	}
	if a&Top != 0 {
		n |= Left
	}
	if a&Bottom != 0 {
		n |= Right
	}
	if a&VertCenter != 0 {
		n |= HorCenter
	}
	return n
}
