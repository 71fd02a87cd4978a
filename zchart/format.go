package zchart

import "github.com/torlangballe/zchart/zwords"

// NumericFormatter makes the display string for a value
type NumericFormatter func(v float64) string

// NiceFormatter shows at most digits post-comma digits, dropping trailing zeros
func NiceFormatter(digits int) NumericFormatter {
	return func(v float64) string {
		return zwords.NiceFloat(v, digits)
	}
}
