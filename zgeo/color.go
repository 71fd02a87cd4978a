package zgeo

import (
	"fmt"
	"strconv"

	"github.com/torlangballe/zchart/zfloat"
	"github.com/torlangballe/zchart/zlog"
	"github.com/torlangballe/zchart/zstr"
)

//  Created by Tor Langballe on 07-June-2019
//

type RGBA struct {
	R float32 `json:"R"`
	G float32 `json:"G"`
	B float32 `json:"B"`
	A float32 `json:"A"`
}

type Color struct {
	Valid  bool
	Colors RGBA
}

func ColorNewGray(white, a float32) (c Color) {
	c.Valid = true
	w := zfloat.Clamped32(white, 0, 1)
	c.Colors.R = w
	c.Colors.G = w
	c.Colors.B = w
	c.Colors.A = zfloat.Clamped32(a, 0, 1)
	return
}

func ColorNew(r, g, b, a float32) (c Color) {
	c.Valid = true
	c.Colors.R = zfloat.Clamped32(r, 0, 1)
	c.Colors.G = zfloat.Clamped32(g, 0, 1)
	c.Colors.B = zfloat.Clamped32(b, 0, 1)
	c.Colors.A = zfloat.Clamped32(a, 0, 1)
	return
}

func (c Color) Mixed(withColor Color, amount float32) Color {
	wc := withColor.Colors
	col := c.Colors
	r := (1-amount)*col.R + wc.R*amount
	g := (1-amount)*col.G + wc.G*amount
	b := (1-amount)*col.B + wc.B*amount
	a := (1-amount)*col.A + wc.A*amount
	return ColorNew(r, g, b, a)
}

// Hex returns #rrggbb, ignoring alpha, as used for svg fill attributes
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", int(c.Colors.R*255+0.5), int(c.Colors.G*255+0.5), int(c.Colors.B*255+0.5))
}

func getHexAsValue(str string, len int) float32 {
	n, err := strconv.ParseInt(str, 16, 32)
	if err != nil {
		zlog.Error(err, "parse")
		return -1
	}
	if len == 1 {
		n *= 17
	}
	return float32(n) / 255
}

// ColorFromString parses #rgb, #rrggbb, #rrggbbaa or a few names
func ColorFromString(str string) Color {
	switch str {
	case "red":
		return ColorRed
	case "white":
		return ColorWhite
	case "black":
		return ColorBlack
	case "gray":
		return ColorGray
	case "blue":
		return ColorBlue
	case "green":
		return ColorGreen
	case "orange":
		return ColorOrange
	}
	if zstr.HasPrefix(str, "#", &str) {
		slen := len(str)
		switch slen {
		case 3:
			r := getHexAsValue(str[0:1], 1)
			g := getHexAsValue(str[1:2], 1)
			b := getHexAsValue(str[2:3], 1)
			return ColorNew(r, g, b, 1)
		case 6, 8:
			var a float32 = 1
			r := getHexAsValue(str[0:2], 2)
			g := getHexAsValue(str[2:4], 2)
			b := getHexAsValue(str[4:6], 2)
			if slen == 8 {
				a = getHexAsValue(str[6:8], 2)
			}
			return ColorNew(r, g, b, a)
		}
	}
	zlog.Error(nil, "bad color string", str)
	return Color{}
}

var (
	ColorWhite  = ColorNewGray(1, 1)
	ColorGray   = ColorNewGray(0.5, 1)
	ColorBlack  = ColorNewGray(0, 1)
	ColorRed    = ColorNew(1, 0, 0, 1)
	ColorGreen  = ColorNew(0, 0.5, 0, 1)
	ColorBlue   = ColorNew(0, 0, 1, 1)
	ColorOrange = ColorNew(1, 0.5, 0, 1)
)

// Palette is the cycle of series colors, indexed by series index modulo its length.
var Palette = []Color{
	ColorFromString("#F44336"),
	ColorFromString("#3F51B5"),
	ColorFromString("#009688"),
	ColorFromString("#FFC107"),
	ColorFromString("#FF5722"),
	ColorFromString("#9C27B0"),
	ColorFromString("#03A9F4"),
	ColorFromString("#8BC34A"),
}

func PaletteColor(i int) Color {
	return Palette[i%len(Palette)]
}
