package zwords

import (
	"fmt"
	"strings"

	"github.com/torlangballe/zchart/zstr"
)

// TS is a function to translate a string to current language
// Not implemented yet
var TS = func(str string) string {
	return str
}

// NiceFloat converts a float to string, with only significant amount of post-comma digits
func NiceFloat(f float64, significant int) string {
	var s string
	if significant == 0 {
		s = fmt.Sprintf("%f", f)
	} else {
		format := fmt.Sprintf("%%.%df", significant)
		s = fmt.Sprintf(format, f)
	}
	if strings.ContainsRune(s, '.') {
		for zstr.HasSuffix(s, "0", &s) {
		}
		zstr.HasSuffix(s, ".", &s)
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// NoData is the text shown in a chart with nothing to plot
func NoData() string { return TS("No data") }
