package zsvg

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/torlangballe/zchart/zwords"
)

// FloatDigits is how many post-comma digits floats are written with
var FloatDigits = 4

// WriteTo writes the svg document to w.
func (s *SVGGenerator) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	writeNode(&buf, s.Root, 0)
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

func (s *SVGGenerator) String() string {
	var sb strings.Builder
	s.WriteTo(&sb)
	return sb.String()
}

func writeNode(buf *bytes.Buffer, n *Node, level int) {
	indent := strings.Repeat("  ", level)
	buf.WriteString(indent + "<" + n.Tag)
	for _, a := range n.Attrs {
		fmt.Fprintf(buf, ` %s="%s"`, a.Key, html.EscapeString(FormatValue(a.Value)))
	}
	if len(n.Children) == 0 && n.Text == "" {
		buf.WriteString("/>\n")
		return
	}
	buf.WriteString(">")
	buf.WriteString(html.EscapeString(n.Text))
	if len(n.Children) != 0 {
		buf.WriteString("\n")
		for _, c := range n.Children {
			writeNode(buf, c, level+1)
		}
		buf.WriteString(indent)
	}
	buf.WriteString("</" + n.Tag + ">\n")
}

// FormatValue formats an attribute value. Floats are written with at most FloatDigits decimals,
// slices are space-separated.
func FormatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return zwords.NiceFloat(t, FloatDigits)
	case []float64:
		parts := make([]string, len(t))
		for i, f := range t {
			parts[i] = FormatValue(f)
		}
		return strings.Join(parts, " ")
	case []any:
		parts := make([]string, len(t))
		for i, a := range t {
			parts[i] = FormatValue(a)
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(v)
	}
}
