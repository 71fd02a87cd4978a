package zstr

import (
	"fmt"
	"strings"
)

func Body(str string, pos, length int) string {
	rs := []rune(str)
	rl := len(rs)
	if pos < 0 {
		pos = 0
	}
	if pos >= rl {
		return ""
	}
	if length == -1 {
		length = rl - pos
	}
	e := pos + length
	if e > rl {
		e = rl
	}
	if e-pos == 0 {
		return ""
	}
	return string(rs[pos:e])
}

func HeadUntilLast(str, sep string, rest *string) string {
	i := strings.LastIndex(str, sep)
	if i == -1 {
		return str
	}
	if rest != nil {
		*rest = str[i+1:]
	}
	return str[:i]
}

// Concat joins the non-empty string versions of parts with divider, not doubling up dividers already there
func Concat(divider string, parts ...any) string {
	var str string
	for _, p := range parts {
		s := fmt.Sprintf("%v", p)
		if s == "" {
			continue
		}
		if str == "" {
			str = s
			continue
		}
		prevHas := strings.HasSuffix(str, divider)
		currentHas := strings.HasPrefix(s, divider)
		if !prevHas && !currentHas {
			str += divider
		}
		if prevHas && currentHas {
			str = str[:len(str)-len(divider)]
		}
		str += s
	}
	return str
}

func Spaced(parts ...any) string {
	return Concat(" ", parts...)
}

// SprintSpaced is like fmt.Sprintln without the newline
func SprintSpaced(parts ...any) string {
	return strings.TrimSuffix(fmt.Sprintln(parts...), "\n")
}

func HasPrefix(str, prefix string, rest *string) bool {
	if strings.HasPrefix(str, prefix) {
		*rest = str[len(prefix):]
		return true
	}
	return false
}

func HasSuffix(str, suffix string, rest *string) bool {
	if strings.HasSuffix(str, suffix) {
		*rest = str[:len(str)-len(suffix)]
		return true
	}
	return false
}

// SplitByAnyOf splits str by any of seps, optionally skipping empty parts
func SplitByAnyOf(str string, seps []string, skipEmpty bool) []string {
	var parts []string
	oldnew := make([]string, 0, len(seps)*2)
	for _, s := range seps[1:] {
		oldnew = append(oldnew, s, seps[0])
	}
	str = strings.NewReplacer(oldnew...).Replace(str)
	for _, p := range strings.Split(str, seps[0]) {
		p = strings.TrimSpace(p)
		if skipEmpty && p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return parts
}
