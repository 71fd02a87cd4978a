package ztesting

import (
	"cmp"
	"math"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/torlangballe/zchart/zlog"
	"github.com/torlangballe/zchart/zstr"
)

func Equal[N comparable](t *testing.T, str string, a, b N) bool {
	t.Helper()
	if a != b {
		str := zstr.Spaced(str+":", a, "!=", b)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}

func Different[N comparable](t *testing.T, str string, a, b N) bool {
	t.Helper()
	if a == b {
		str := zstr.Spaced(str+":", a, "==", b)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}

func GreaterThan[N cmp.Ordered](t *testing.T, str string, a, b N) bool {
	t.Helper()
	if a < b {
		str := zstr.Spaced(str+":", a, "<", b)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}

func LessThan[N cmp.Ordered](t *testing.T, str string, a, b N) bool {
	t.Helper()
	if a > b {
		str := zstr.Spaced(str+":", a, ">", b)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}

// EqualFloat is Equal for floats within a small tolerance, to allow for rounding in calculated geometry
func EqualFloat(t *testing.T, str string, a, b float64) bool {
	t.Helper()
	const epsilon = 1e-9
	if math.Abs(a-b) > epsilon*math.Max(1, math.Max(math.Abs(a), math.Abs(b))) {
		str := zstr.Spaced(str+":", a, "!=", b)
		zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
		t.Error(str)
		return false
	}
	return true
}

func EqualSlice[N comparable](t *testing.T, str string, a, b []N) bool {
	t.Helper()
	if len(a) != len(b) {
		return Equal(t, str+" length", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			return Equal(t, zstr.Spaced(str, "index", i), a[i], b[i])
		}
	}
	return true
}

// EqualLines compares two multi-line texts, like generated svg, failing with a line diff.
func EqualLines(t *testing.T, str string, got, want string) bool {
	t.Helper()
	if got == want {
		return true
	}
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	out := zstr.Spaced(str+":", "text differs (-want +got):\n") + dmp.DiffPrettyText(diffs)
	zlog.Error(nil, zlog.StackAdjust(1), "Fail:", str)
	t.Error(out)
	return false
}
