package zstr

import "testing"

func TestConcat(t *testing.T) {
	if s := Spaced("a", "", "b", 3); s != "a b 3" {
		t.Error("spaced:", s)
	}
	if s := Concat("/", "a/", "/b"); s != "a/b" {
		t.Error("concat no double divider:", s)
	}
}

func TestHasPrefixSuffix(t *testing.T) {
	var rest string
	if !HasPrefix("#ff00aa", "#", &rest) || rest != "ff00aa" {
		t.Error("prefix:", rest)
	}
	if !HasSuffix("chart.svg", ".svg", &rest) || rest != "chart" {
		t.Error("suffix:", rest)
	}
}

func TestSplitByAnyOf(t *testing.T) {
	parts := SplitByAnyOf("1, 2;3,,4", []string{",", ";"}, true)
	if len(parts) != 4 || parts[2] != "3" {
		t.Error("split:", parts)
	}
}
